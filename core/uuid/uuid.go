// Package uuid generates RFC 4122 version 4 UUIDs and converts them to and
// from a compact base-N notation.
package uuid

import (
	"fmt"
	"io"

	googleuuid "github.com/google/uuid"

	"github.com/RRWM1rr0rB/uuidx/errors"
)

// Size is the length of a UUID in bytes.
const Size = 16

// UUID represents a 128-bit UUID.
type UUID = googleuuid.UUID

// ErrShortRandom is returned when caller-supplied random bytes are shorter than Size.
var ErrShortRandom = errors.New("uuid: random bytes must be at least 16 bytes")

// GenerateOption configures how a v4 UUID is produced.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	random []byte
	reader io.Reader
	dst    *UUID
}

// WithRandom uses the first 16 bytes of b as the UUID entropy instead of
// reading a random source. The version and variant bits are overwritten.
func WithRandom(b []byte) GenerateOption {
	return func(o *generateOptions) {
		o.random = b
	}
}

// WithReader reads entropy from r instead of crypto/rand.
func WithReader(r io.Reader) GenerateOption {
	return func(o *generateOptions) {
		o.reader = r
	}
}

// WithBuffer also stores the generated UUID in dst.
func WithBuffer(dst *UUID) GenerateOption {
	return func(o *generateOptions) {
		o.dst = dst
	}
}

// NewV4 generates a RFC-compliant UUIDv4.
// WithRandom takes precedence over WithReader.
func NewV4(opts ...GenerateOption) (UUID, error) {
	var o generateOptions
	for _, opt := range opts {
		opt(&o)
	}

	var (
		u   UUID
		err error
	)
	switch {
	case o.random != nil:
		if len(o.random) < Size {
			return UUID{}, fmt.Errorf("%w: got %d", ErrShortRandom, len(o.random))
		}
		copy(u[:], o.random[:Size])
		u[6] = (u[6] & 0x0f) | 0x40 // Version 4
		u[8] = (u[8] & 0x3f) | 0x80 // Variant 10xx
	case o.reader != nil:
		u, err = googleuuid.NewRandomFromReader(o.reader)
	default:
		u, err = googleuuid.NewRandom()
	}
	if err != nil {
		return UUID{}, errors.Wrap(err, "uuid: v4 generation failed")
	}

	if o.dst != nil {
		*o.dst = u
	}
	return u, nil
}

package uuid

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/RRWM1rr0rB/uuidx/core/basex"
	"github.com/RRWM1rr0rB/uuidx/errors"
)

var (
	// ErrInvalidEncodedUUID is returned when an encoded string is not a 16 byte value.
	ErrInvalidEncodedUUID = errors.New("uuid: invalid encoded UUID")

	// ErrInvalidUUID is returned when a textual UUID is not 32 hex digits.
	ErrInvalidUUID = errors.New("uuid: invalid UUID")

	// ErrUnknownPreset is returned by FromPreset for an unregistered alphabet name.
	ErrUnknownPreset = errors.New("uuid: unknown alphabet preset")
)

// Encoder converts bytes to text and back. *basex.Codec implements it.
type Encoder interface {
	Encode(src []byte) string
	Decode(s string) ([]byte, error)
}

// Transcoder converts UUIDs between canonical and compact notation.
// It holds no mutable state and is safe for concurrent use.
type Transcoder struct {
	enc Encoder
}

// New returns a Transcoder bound to enc.
func New(enc Encoder) *Transcoder {
	return &Transcoder{enc: enc}
}

// FromAlphabet builds a Transcoder over a custom alphabet.
func FromAlphabet(symbols string) (*Transcoder, error) {
	c, err := basex.New(symbols)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

// FromPreset builds a Transcoder over a named alphabet, see basex.Presets.
func FromPreset(name string) (*Transcoder, error) {
	c, ok := basex.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPreset, name, strings.Join(basex.Presets(), ", "))
	}
	return New(c), nil
}

// Base62 returns a Transcoder using the base62 preset.
func Base62() *Transcoder {
	return New(basex.Base62)
}

// URLSafe returns a Transcoder using the url-safe preset.
func URLSafe() *Transcoder {
	return New(basex.URLSafe)
}

// Generate creates a v4 UUID and returns it encoded.
func (t *Transcoder) Generate(opts ...GenerateOption) (string, error) {
	u, err := NewV4(opts...)
	if err != nil {
		return "", err
	}
	return t.Encode(u), nil
}

// Encode returns the compact form of id.
func (t *Transcoder) Encode(id UUID) string {
	return t.enc.Encode(id[:])
}

// Parse decodes a compact UUID.
func (t *Transcoder) Parse(encoded string) (UUID, error) {
	b, err := t.enc.Decode(encoded)
	if err != nil {
		return UUID{}, errors.Reclassify(ErrInvalidEncodedUUID, err)
	}
	if len(b) != Size {
		return UUID{}, fmt.Errorf("%w: %q decodes to %d bytes", ErrInvalidEncodedUUID, encoded, len(b))
	}

	var u UUID
	copy(u[:], b)
	return u, nil
}

// ToUUID decodes a compact UUID to the canonical
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form.
func (t *Transcoder) ToUUID(encoded string) (string, error) {
	u, err := t.Parse(encoded)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// FromUUID encodes a textual UUID. All hyphens are ignored, the rest must be
// exactly 32 hex digits.
func (t *Transcoder) FromUUID(s string) (string, error) {
	raw := strings.ReplaceAll(s, "-", "")
	b, err := hex.DecodeString(raw)
	if err != nil {
		return "", errors.Reclassify(ErrInvalidUUID, err)
	}
	if len(b) != Size {
		return "", fmt.Errorf("%w: %q has %d bytes", ErrInvalidUUID, s, len(b))
	}
	return t.enc.Encode(b), nil
}

// Decode returns the raw bytes of any encoded string, without a length check.
func (t *Transcoder) Decode(encoded string) ([]byte, error) {
	return t.enc.Decode(encoded)
}

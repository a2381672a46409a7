// Package fastrand provides a high-speed entropy source for UUID generation.
package fastrand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	mathrand "math/rand/v2"
	"sync"
	"time"
)

// Reader adapts mathrand.ChaCha8 to the io.Reader interface.
// It is safe for concurrent use.
type Reader struct {
	mu  sync.Mutex
	rng *mathrand.ChaCha8
}

// New creates a Reader with a secure seed from crypto/rand.
func New() (*Reader, error) {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("fastrand: failed to generate seed: %w", err)
	}

	// Inject timestamp for additional entropy
	ts := binary.LittleEndian.Uint64(seed[24:]) ^ uint64(time.Now().UnixNano())
	binary.LittleEndian.PutUint64(seed[24:], ts)

	return NewWithSeed(seed), nil
}

// NewWithSeed creates a deterministic Reader. Intended for tests and replay.
func NewWithSeed(seed [32]byte) *Reader {
	return &Reader{rng: mathrand.NewChaCha8(seed)}
}

// Read fills p with pseudo-random bytes. It never fails.
func (r *Reader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], r.rng.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

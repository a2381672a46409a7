// Package basex converts byte sequences to and from positional notation over
// an arbitrary alphabet.
//
// The bytes are read as one big-endian unsigned integer. Leading zero bytes
// carry no value, so each of them is written as one leading zero-value symbol
// (the first symbol of the alphabet) and restored on decode. This keeps the
// length of fixed-size payloads through a round trip and matches the output of
// the base-x family of encoders.
package basex

import (
	"fmt"
	"strings"

	"github.com/RRWM1rr0rB/uuidx/errors"
)

var (
	// ErrInvalidEncoding is returned by Decode for a symbol outside the alphabet.
	ErrInvalidEncoding = errors.New("basex: invalid encoding")

	// ErrInvalidAlphabet is returned by New for an unusable alphabet.
	ErrInvalidAlphabet = errors.New("basex: invalid alphabet")
)

// Capacity hint, log(256)/log(58). Smaller bases grow the digit slice.
const digitsPerByte = 1.37

// Codec is a base-N numeral system defined by an ordered alphabet.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	alphabet string
	symbols  []rune
	index    map[rune]int
	base     int
}

// New builds a codec for alphabet. Every rune of alphabet is one symbol.
//
// Returns:
//   - *Codec: Ready codec
//   - error: ErrInvalidAlphabet if the alphabet has fewer than two symbols,
//     repeats a symbol or is not valid UTF-8
func New(alphabet string) (*Codec, error) {
	symbols, index, err := validateAlphabet(alphabet)
	if err != nil {
		return nil, err
	}
	return &Codec{
		alphabet: alphabet,
		symbols:  symbols,
		index:    index,
		base:     len(symbols),
	}, nil
}

// MustNew is like New but panics on an invalid alphabet.
// Useful for package level codecs.
func MustNew(alphabet string) *Codec {
	c, err := New(alphabet)
	if err != nil {
		panic(err)
	}
	return c
}

// Alphabet returns the symbols of the codec in digit order.
func (c *Codec) Alphabet() string {
	return c.alphabet
}

// Base returns the number of symbols.
func (c *Codec) Base() int {
	return c.base
}

// Encode writes src in base N, most significant digit first.
// Empty input gives an empty string and k zero bytes give k zero symbols.
func (c *Codec) Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	// Little-endian digits of the value that follows the zero prefix.
	digits := make([]int, 0, int(float64(len(src)-zeros)*digitsPerByte)+1)
	for _, b := range src[zeros:] {
		carry := int(b)
		for i := range digits {
			carry += digits[i] << 8
			digits[i] = carry % c.base
			carry /= c.base
		}
		for carry > 0 {
			digits = append(digits, carry%c.base)
			carry /= c.base
		}
	}

	var sb strings.Builder
	sb.Grow(zeros + len(digits))
	for range zeros {
		sb.WriteRune(c.symbols[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteRune(c.symbols[digits[i]])
	}
	return sb.String()
}

// Decode is the inverse of Encode.
//
// Returns:
//   - []byte: Minimal big-endian bytes of the value, prefixed by one zero byte
//     per leading zero symbol
//   - error: ErrInvalidEncoding naming the first symbol outside the alphabet
func (c *Codec) Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	var (
		zeros   int
		leading = true
		pos     int
		// Little-endian base-256 digits of the value.
		value = make([]byte, 0, len(s))
	)
	for _, r := range s {
		digit, ok := c.index[r]
		if !ok {
			return nil, fmt.Errorf("%w: symbol %q at position %d", ErrInvalidEncoding, r, pos)
		}
		pos++

		if leading {
			if digit == 0 {
				zeros++
				continue
			}
			leading = false
		}

		carry := digit
		for i := range value {
			carry += int(value[i]) * c.base
			value[i] = byte(carry)
			carry >>= 8
		}
		for carry > 0 {
			value = append(value, byte(carry))
			carry >>= 8
		}
	}

	out := make([]byte, zeros+len(value))
	for i, b := range value {
		out[len(out)-1-i] = b
	}
	return out, nil
}

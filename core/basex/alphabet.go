package basex

import (
	"fmt"
	"unicode/utf8"

	"github.com/RRWM1rr0rB/uuidx/errors"
)

// Alphabets of the built-in presets. The order of the symbols defines the
// digit values and must never change: encoded values depend on it.
const (
	Base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// URLSafeAlphabet is the nanoid URL alphabet.
	URLSafeAlphabet = "ModuleSymbhasOwnPr-0123456789ABCDEFGHNRVfgctiUvz_KqYTJkLxpZXIjQW"
)

// Preset names accepted by Lookup.
const (
	PresetBase62  = "base62"
	PresetURLSafe = "url-safe"
)

const minBase = 2

var (
	// Base62 encodes with digits, then lowercase, then uppercase letters.
	Base62 = MustNew(Base62Alphabet)

	// URLSafe encodes with the 64 symbol URL-safe alphabet.
	URLSafe = MustNew(URLSafeAlphabet)

	presets = map[string]*Codec{
		PresetBase62:  Base62,
		PresetURLSafe: URLSafe,
	}
)

// Lookup returns the codec registered under a preset name.
func Lookup(name string) (*Codec, bool) {
	c, ok := presets[name]
	return c, ok
}

// Presets returns the preset names in a stable order.
func Presets() []string {
	return []string{PresetBase62, PresetURLSafe}
}

// validateAlphabet checks every rule and reports all violations at once.
func validateAlphabet(alphabet string) ([]rune, map[rune]int, error) {
	var problems error

	if !utf8.ValidString(alphabet) {
		problems = errors.Append(problems, errors.New("alphabet is not valid UTF-8"))
	}

	symbols := []rune(alphabet)
	if len(symbols) < minBase {
		problems = errors.Append(problems,
			fmt.Errorf("alphabet has %d symbols, need at least %d", len(symbols), minBase))
	}

	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if first, dup := index[r]; dup {
			problems = errors.Append(problems,
				fmt.Errorf("symbol %q repeated at positions %d and %d", r, first, i))
			continue
		}
		index[r] = i
	}

	if problems != nil {
		return nil, nil, errors.Errorf("%w: %w", ErrInvalidAlphabet, problems)
	}
	return symbols, index, nil
}

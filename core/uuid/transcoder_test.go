package uuid

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/eknkc/basex"
	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	basecodec "github.com/RRWM1rr0rB/uuidx/core/basex"
)

func transcoders(t *testing.T) map[string]*Transcoder {
	t.Helper()
	custom, err := FromAlphabet("0123456789abcdef")
	require.NoError(t, err)

	return map[string]*Transcoder{
		"base62":   Base62(),
		"url-safe": URLSafe(),
		"hex":      custom,
	}
}

func randomUUID(t *testing.T) UUID {
	t.Helper()
	var u UUID
	_, err := rand.Read(u[:])
	require.NoError(t, err)
	return u
}

func TestTranscoder_Generate(t *testing.T) {
	for name, tc := range transcoders(t) {
		t.Run(name, func(t *testing.T) {
			for range 100 {
				enc, err := tc.Generate()
				require.NoError(t, err)

				canonical, err := tc.ToUUID(enc)
				require.NoError(t, err)
				require.Regexp(t, canonicalRe, canonical)
				assert.Equal(t, byte('4'), canonical[14], "version nibble")

				back, err := tc.FromUUID(canonical)
				require.NoError(t, err)
				assert.Equal(t, enc, back)
			}
		})
	}
}

func TestTranscoder_GenerateWithOptions(t *testing.T) {
	tc := Base62()

	var dst UUID
	enc, err := tc.Generate(WithRandom(make([]byte, 16)), WithBuffer(&dst))
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-4000-8000-000000000000", dst.String())

	canonical, err := tc.ToUUID(enc)
	require.NoError(t, err)
	assert.Equal(t, dst.String(), canonical)

	_, err = tc.Generate(WithRandom([]byte{1, 2, 3}))
	require.ErrorIs(t, err, ErrShortRandom)
}

func TestTranscoder_CanonicalRoundTrip(t *testing.T) {
	for name, tc := range transcoders(t) {
		t.Run(name, func(t *testing.T) {
			for range 100 {
				u := randomUUID(t)
				enc := tc.Encode(u)

				canonical, err := tc.ToUUID(enc)
				require.NoError(t, err)
				assert.Equal(t, u.String(), canonical)

				back, err := tc.FromUUID(canonical)
				require.NoError(t, err)
				assert.Equal(t, enc, back)

				parsed, err := tc.Parse(enc)
				require.NoError(t, err)
				assert.Equal(t, u, parsed)
			}
		})
	}
}

func TestTranscoder_LeadingZeroBytes(t *testing.T) {
	tc := Base62()
	for k := 0; k <= Size; k++ {
		var u UUID
		for i := k; i < Size; i++ {
			u[i] = 0xa5
		}

		enc := tc.Encode(u)
		raw, err := tc.Decode(enc)
		require.NoError(t, err)
		require.Len(t, raw, Size)
		assert.Equal(t, u[:], raw)

		canonical, err := tc.ToUUID(enc)
		require.NoError(t, err)
		assert.Equal(t, u.String(), canonical)
	}
}

func TestTranscoder_NilUUID(t *testing.T) {
	tc := Base62()

	enc, err := tc.FromUUID("00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("0", Size), enc)

	raw, err := tc.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, Size), raw)

	canonical, err := tc.ToUUID(enc)
	require.NoError(t, err)
	assert.Equal(t, googleuuid.Nil.String(), canonical)
}

func TestTranscoder_MatchesReferenceEncoder(t *testing.T) {
	ref, err := basex.NewEncoding(basecodec.Base62Alphabet)
	require.NoError(t, err)
	viaRef := New(ref)

	for range 50 {
		u := randomUUID(t)
		u[0] |= 0x10
		assert.Equal(t, Base62().Encode(u), viaRef.Encode(u))

		canonical, err := viaRef.ToUUID(Base62().Encode(u))
		require.NoError(t, err)
		assert.Equal(t, u.String(), canonical)
	}
}

func TestTranscoder_ToUUIDErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "OutOfAlphabet", in: "7n42DGM5Tflk9n8mt7Fhc-"},
		{name: "Whitespace", in: " 7n42DGM5Tflk9n8mt7Fhc"},
		{name: "TooShort", in: "abc"},
		{name: "TooLong", in: strings.Repeat("Z", 30)},
		{name: "SeventeenZeros", in: strings.Repeat("0", 17)},
		{name: "Empty", in: ""},
	}

	tc := Base62()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tc.ToUUID(tt.in)
			require.ErrorIs(t, err, ErrInvalidEncodedUUID)
			assert.NotErrorIs(t, err, basecodec.ErrInvalidEncoding)
			assert.Empty(t, got)
		})
	}
}

func TestTranscoder_FromUUID(t *testing.T) {
	tc := Base62()
	u := randomUUID(t)
	want := tc.Encode(u)

	tests := []struct {
		name string
		in   string
	}{
		{name: "Canonical", in: u.String()},
		{name: "NoHyphens", in: strings.ReplaceAll(u.String(), "-", "")},
		{name: "Uppercase", in: strings.ToUpper(u.String())},
		{name: "StrayHyphens", in: "-" + strings.ReplaceAll(u.String(), "-", "--") + "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tc.FromUUID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestTranscoder_FromUUIDErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "Empty", in: ""},
		{name: "TooFewDigits", in: "00000000-0000-0000-0000-00000000000"},
		{name: "ThirtyHexDigits", in: "00000000-0000-0000-0000-0000000000"},
		{name: "TooManyDigits", in: "00000000-0000-0000-0000-00000000000000"},
		{name: "NonHex", in: "0000000g-0000-0000-0000-000000000000"},
		{name: "Braces", in: "{00000000-0000-0000-0000-000000000000}"},
		{name: "URN", in: "urn:uuid:00000000-0000-0000-0000-000000000000"},
	}

	tc := Base62()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tc.FromUUID(tt.in)
			require.ErrorIs(t, err, ErrInvalidUUID)
			assert.Empty(t, got)
		})
	}
}

func TestTranscoder_DecodeRaw(t *testing.T) {
	tc := URLSafe()

	raw, err := tc.Decode("oM")
	require.NoError(t, err)
	assert.Equal(t, []byte{64}, raw)

	raw, err = tc.Decode("")
	require.NoError(t, err)
	assert.Empty(t, raw)

	_, err = tc.Decode("oM+")
	require.ErrorIs(t, err, basecodec.ErrInvalidEncoding)
	assert.NotErrorIs(t, err, ErrInvalidEncodedUUID)
}

func TestFromPreset(t *testing.T) {
	for _, name := range basecodec.Presets() {
		tc, err := FromPreset(name)
		require.NoError(t, err)
		assert.NotNil(t, tc)
	}

	tc, err := FromPreset("base58")
	require.ErrorIs(t, err, ErrUnknownPreset)
	assert.Nil(t, tc)
	assert.Contains(t, err.Error(), "base62, url-safe")
}

func TestFromAlphabet_Invalid(t *testing.T) {
	for _, alphabet := range []string{"", "x", "abcb"} {
		tc, err := FromAlphabet(alphabet)
		require.ErrorIs(t, err, basecodec.ErrInvalidAlphabet, alphabet)
		assert.Nil(t, tc)
	}
}

func TestTranscoder_ConcurrentUse(t *testing.T) {
	tc := URLSafe()

	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			for range 200 {
				enc, err := tc.Generate()
				if err != nil {
					return err
				}
				canonical, err := tc.ToUUID(enc)
				if err != nil {
					return err
				}
				back, err := tc.FromUUID(canonical)
				if err != nil {
					return err
				}
				if back != enc {
					t.Errorf("round trip mismatch: %q != %q", back, enc)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

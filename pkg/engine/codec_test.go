package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCodecEmptyIsUTF8(t *testing.T) {
	c, err := LookupCodec("  ")
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", c.Name())
	assert.Equal(t, []byte("café"), c.Encode("café"))
}

func TestLookupCodecNames(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"UTF-8", "naïve"},
		{"utf8", "naïve"},
		{"ISO8859-1", "café"},
		{"ISO-8859-15", "€uro"},
		{"KOI8-R", "привет"},
		{"microsoft-cp1251", "привет"},
		{"windows-1252", "déjà"},
		{"CP1250", "łódź"},
		{"TIS620-2533", "ภาษา"},
		{"Shift_JIS", "日本語"},
	}

	for _, tt := range tests {
		c, err := LookupCodec(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.name, c.Name())
		assert.Equal(t, tt.text, c.Decode(c.Encode(tt.text)), "round trip through %s", tt.name)
	}
}

func TestCodecEncodesSingleByte(t *testing.T) {
	latin1, err := LookupCodec("ISO8859-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("caf\xe9"), latin1.Encode("café"))
	assert.Equal(t, "café", latin1.DecodeString("caf\xe9"))

	cp1251, err := LookupCodec("microsoft-cp1251")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xef}, cp1251.Encode("п"))
}

func TestCodecReplacesUnsupported(t *testing.T) {
	latin1, err := LookupCodec("ISO8859-1")
	require.NoError(t, err)

	out := latin1.Encode("a日")
	require.Len(t, out, 2)
	assert.Equal(t, byte('a'), out[0])
}

func TestLookupCodecUnknown(t *testing.T) {
	c, err := LookupCodec("no-such-charset")
	assert.Error(t, err)
	assert.Equal(t, "UTF-8", c.Name(), "unknown encodings fall back to UTF-8")
}

func TestUTF8DecodeRepairsInvalidBytes(t *testing.T) {
	assert.Equal(t, "a�b", UTF8.DecodeString("a\xffb"))
	assert.Equal(t, []string{"x", "y"}, UTF8.DecodeAll([]string{"x", "y"}))
	assert.Empty(t, UTF8.DecodeAll(nil))
}

func TestZeroCodecIsUTF8(t *testing.T) {
	var c Codec
	assert.Equal(t, "UTF-8", c.Name())
	assert.Equal(t, []byte("ü"), c.Encode("ü"))
}

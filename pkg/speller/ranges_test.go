package speller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func words(text string, ranges []WordRange) []string {
	var out []string
	for _, r := range ranges {
		out = append(out, r.Text(text))
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"hello, world's café", []string{"hello", "world's", "café"}},
		{"", nil},
		{"  \t ", nil},
		{"one", []string{"one"}},
		{"snake_case and `quoted` 42nd", []string{"snake_case", "and", "`quoted`", "42nd"}},
		{"naïve/résumé", []string{"naïve", "résumé"}},
		{"a-b", []string{"a", "b"}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.text)
		assert.Equal(t, tt.want, words(tt.text, got), "text %q", tt.text)

		for i := 1; i < len(got); i++ {
			assert.Greater(t, got[i].Start, got[i-1].End(), "ranges of %q overlap or touch", tt.text)
		}
	}
}

func TestTokenizeOffsetsAreRunes(t *testing.T) {
	got := Tokenize("hello, world's café")

	assert.Equal(t, []WordRange{
		{Start: 0, Length: 5},
		{Start: 7, Length: 7},
		{Start: 15, Length: 4},
	}, got)
}

func TestWordRangeContains(t *testing.T) {
	r := WordRange{Start: 4, Length: 3}

	assert.False(t, r.Contains(3))
	assert.True(t, r.Contains(4))
	assert.True(t, r.Contains(7), "a cursor right after the word touches it")
	assert.False(t, r.Contains(8))
}

func TestWordRangeTextClamps(t *testing.T) {
	assert.Equal(t, "lo", WordRange{Start: 3, Length: 10}.Text("hello"))
	assert.Empty(t, WordRange{Start: 9, Length: 2}.Text("hello"))
}

func TestLongestContaining(t *testing.T) {
	ranges := []WordRange{
		{Start: 0, Length: 5},
		{Start: 2, Length: 8},
		{Start: 2, Length: 8},
		{Start: 12, Length: 3},
	}

	tests := []struct {
		cursor int
		want   int
		ok     bool
	}{
		{0, 0, true},
		{3, 1, true},
		{10, 1, true},
		{11, 0, false},
		{15, 3, true},
		{20, 0, false},
	}

	for _, tt := range tests {
		got, ok := LongestContaining(tt.cursor, ranges)
		assert.Equal(t, tt.ok, ok, "cursor %d", tt.cursor)
		if tt.ok {
			assert.Equal(t, tt.want, got, "cursor %d", tt.cursor)
		}
	}

	_, ok := LongestContaining(0, nil)
	assert.False(t, ok)
}

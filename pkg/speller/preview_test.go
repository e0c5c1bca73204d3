package speller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		meaning Meaning
		max     int
		want    string
	}{
		{Meaning{"(verb)", "go", "travel", "move"}, MaxPreviewWords, "(verb), travel, move"},
		{Meaning{"(verb)", "go", "a", "b", "c", "d", "e"}, 3, "(verb), a, b, ..."},
		{Meaning{"(verb)", "go", "a", "b"}, 3, "(verb), a, b"},
		{Meaning{"(noun)"}, MaxPreviewWords, "(noun)"},
		{nil, MaxPreviewWords, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Preview(tt.meaning, tt.max), "meaning %q", tt.meaning)
	}
}

func TestAbbreviate(t *testing.T) {
	assert.Equal(t, "short", Abbreviate("short", MaxDisplayWord))
	assert.Equal(t, "exactlyten", Abbreviate("exactlyten", MaxDisplayWord))
	assert.Equal(t, "extraord...", Abbreviate("extraordinary", MaxDisplayWord))
	assert.Equal(t, "ñandú", Abbreviate("ñandú", 5))
	assert.Equal(t, "ab", Abbreviate("ab", 2))
}

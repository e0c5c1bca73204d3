package speller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	goMeanings := []Meaning{
		{"(verb)", "travel", "move"},
		{"(noun)", "trip", "journey"},
	}

	tests := []struct {
		name     string
		original string
		meanings []Meaning
		max      int
		want     []string
		wantMore bool
	}{
		{
			name:     "breadth first",
			original: "go",
			meanings: goMeanings,
			max:      3,
			want:     []string{"travel", "trip", "move"},
			wantMore: true,
		},
		{
			name:     "surrounding space trimmed",
			original: "go",
			meanings: []Meaning{{"(verb)", " travel ", "move\t"}, {"(noun)", "Travel"}},
			max:      3,
			want:     []string{"travel", "move"},
			wantMore: false,
		},
		{
			name:     "exactly two",
			original: "go",
			meanings: goMeanings,
			max:      2,
			want:     []string{"travel", "trip"},
			wantMore: true,
		},
		{
			name:     "everything fits",
			original: "go",
			meanings: goMeanings,
			max:      4,
			want:     []string{"travel", "trip", "move", "journey"},
			wantMore: false,
		},
		{
			name:     "zero with candidates",
			original: "go",
			meanings: goMeanings,
			max:      0,
			want:     nil,
			wantMore: true,
		},
		{
			name:     "zero without candidates",
			original: "go",
			meanings: []Meaning{{"(verb)", "Go"}},
			max:      0,
			want:     nil,
			wantMore: false,
		},
		{
			name:     "original and duplicates skipped ignoring case",
			original: " Go ",
			meanings: []Meaning{
				{"(verb)", "go", "Travel"},
				{"(verb)", "travel", "GO", "wander"},
			},
			max:      5,
			want:     []string{"Travel", "wander"},
			wantMore: false,
		},
		{
			name:     "blank synonyms ignored",
			original: "go",
			meanings: []Meaning{{"(verb)", " ", "", "leave"}},
			max:      5,
			want:     []string{"leave"},
			wantMore: false,
		},
		{
			name:     "meaning without synonyms",
			original: "go",
			meanings: []Meaning{{"(verb)"}, {"(noun)", "trip"}},
			max:      5,
			want:     []string{"trip"},
			wantMore: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, more := Sample(tt.original, tt.meanings, tt.max)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMore, more)
		})
	}
}

package spellcheck

import "github.com/Code-Monger/WordSpinneret/pkg/speller"

// Misspelling is a word of a text the dictionary rejects
type Misspelling struct {
	speller.WordRange
	Word        string   `json:"word"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// SpellCheckResult represents a spelling issue found in a file. Lines and
// columns start at 1; columns count characters and ColumnEnd is exclusive.
type SpellCheckResult struct {
	FilePath    string   `json:"file_path"`
	LineNumber  int      `json:"line_number"`
	ColumnStart int      `json:"column_start"`
	ColumnEnd   int      `json:"column_end"`
	Word        string   `json:"word"`
	Context     string   `json:"context"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// MeaningResult is one sense of a thesaurus lookup
type MeaningResult struct {
	Gloss    string   `json:"gloss"`
	Synonyms []string `json:"synonyms"`
	Preview  string   `json:"preview"`
}

// ThesaurusResult is the outcome of a thesaurus lookup
type ThesaurusResult struct {
	// Word is the word that was asked for
	Word string `json:"word"`
	// Actual is the word whose entry was used, a stem of Word when it had none
	Actual   string          `json:"actual"`
	Meanings []MeaningResult `json:"meanings"`
	// Sample is a short list of distinct synonyms across the meanings
	Sample []string `json:"sample"`
	// More reports that Sample left synonyms out
	More bool `json:"more"`
}

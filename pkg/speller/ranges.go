package speller

import "unicode"

// WordRange is a half-open span of a text, counted in characters (runes)
type WordRange struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// End returns the offset just past the range
func (r WordRange) End() int {
	return r.Start + r.Length
}

// Contains reports whether a cursor at offset touches the range; a cursor
// right after the last character still counts.
func (r WordRange) Contains(cursor int) bool {
	return r.Start <= cursor && cursor <= r.End()
}

// Text returns the characters of text covered by the range
func (r WordRange) Text(text string) string {
	return r.slice([]rune(text))
}

func (r WordRange) slice(runes []rune) string {
	start, end := r.Start, r.End()
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// isWordChar reports whether r belongs to a word: letters, digits, marks,
// underscore, backtick and apostrophe.
func isWordChar(r rune) bool {
	switch r {
	case '_', '`', '\'':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// Tokenize returns the words of text from left to right. A word is a maximal
// run of word characters; ranges never overlap.
func Tokenize(text string) []WordRange {
	return tokenizeRunes([]rune(text))
}

func tokenizeRunes(runes []rune) []WordRange {
	var ranges []WordRange
	start := -1
	// one step past the end acts as a separator, closing the last word
	for i := 0; i <= len(runes); i++ {
		inWord := i < len(runes) && isWordChar(runes[i])
		switch {
		case inWord && start < 0:
			start = i
		case !inWord && start >= 0:
			ranges = append(ranges, WordRange{Start: start, Length: i - start})
			start = -1
		}
	}
	return ranges
}

// LongestContaining returns the index of the longest range containing cursor.
// Ranges may overlap; on equal lengths the first one wins.
func LongestContaining(cursor int, ranges []WordRange) (int, bool) {
	found, foundLen := -1, 0
	for i, r := range ranges {
		if r.Contains(cursor) && r.Length > foundLen {
			found, foundLen = i, r.Length
		}
	}
	return found, found >= 0
}

package spellcheck

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Code-Monger/WordSpinneret/pkg/speller"
)

// CheckText returns the misspelled words of text with up to maxSuggestions
// corrections each.
func CheckText(s *speller.Session, text string, maxSuggestions int) []Misspelling {
	var out []Misspelling
	for _, r := range s.ErrorRanges(text) {
		word := r.Text(text)
		out = append(out, Misspelling{
			WordRange:   r,
			Word:        word,
			Suggestions: limit(s.Suggestions(word), maxSuggestions),
		})
	}
	return out
}

// CheckAt returns the misspelled word under cursor, if any. When misspelled
// ranges overlap the longest one is used.
func CheckAt(s *speller.Session, text string, cursor, maxSuggestions int) (Misspelling, bool) {
	misspellings := CheckText(s, text, maxSuggestions)
	ranges := make([]speller.WordRange, len(misspellings))
	for i, m := range misspellings {
		ranges[i] = m.WordRange
	}

	i, ok := speller.LongestContaining(cursor, ranges)
	if !ok {
		return Misspelling{}, false
	}
	return misspellings[i], true
}

// WordAt returns the word of text under cursor
func WordAt(text string, cursor int) (string, bool) {
	ranges := speller.Tokenize(text)
	i, ok := speller.LongestContaining(cursor, ranges)
	if !ok {
		return "", false
	}
	return ranges[i].Text(text), true
}

// CheckFile spell checks a text file line by line
func CheckFile(s *speller.Session, filePath string, maxSuggestions int) ([]SpellCheckResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	return CheckReader(s, filePath, file, maxSuggestions)
}

// CheckReader spell checks the lines read from r; name is reported as the
// file path of every result.
func CheckReader(s *speller.Session, name string, r io.Reader, maxSuggestions int) ([]SpellCheckResult, error) {
	var results []SpellCheckResult

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		for _, m := range CheckText(s, line, maxSuggestions) {
			results = append(results, SpellCheckResult{
				FilePath:    name,
				LineNumber:  lineNumber,
				ColumnStart: m.Start + 1,
				ColumnEnd:   m.End() + 1,
				Word:        m.Word,
				Context:     line,
				Suggestions: m.Suggestions,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return results, fmt.Errorf("error reading %s: %w", name, err)
	}

	return results, nil
}

// LookupThesaurus collects the meanings of word, at most speller.MaxMenuItems
// of them, and samples up to maxWords synonyms across all meanings.
func LookupThesaurus(s *speller.Session, word string, maxWords int) ThesaurusResult {
	meanings, actual := s.Thesaurus(word)
	sample, more := speller.Sample(word, meanings, maxWords)

	result := ThesaurusResult{
		Word:     word,
		Actual:   actual,
		Meanings: []MeaningResult{},
		Sample:   sample,
		More:     more,
	}
	for i, m := range meanings {
		if i >= speller.MaxMenuItems {
			break
		}
		result.Meanings = append(result.Meanings, MeaningResult{
			Gloss:    m.Gloss(),
			Synonyms: m.Synonyms(),
			Preview:  speller.Preview(m, speller.MaxPreviewWords),
		})
	}
	return result
}

// limit caps suggestions at max and at the menu size; max <= 0 means the menu size
func limit(suggestions []string, max int) []string {
	if max <= 0 || max > speller.MaxMenuItems {
		max = speller.MaxMenuItems
	}
	if len(suggestions) > max {
		return suggestions[:max]
	}
	return suggestions
}

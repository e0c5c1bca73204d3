package speller

import (
	"slices"
	"strings"

	"github.com/Code-Monger/WordSpinneret/pkg/engine"
)

// Meaning is one sense of a word: element 0 is the description, the rest are
// synonyms.
type Meaning []string

// Gloss returns the description of the meaning
func (m Meaning) Gloss() string {
	if len(m) == 0 {
		return ""
	}
	return m[0]
}

// Synonyms returns the alternatives offered for the meaning
func (m Meaning) Synonyms() []string {
	if len(m) < 2 {
		return nil
	}
	return m[1:]
}

// LookupMeanings collects the thesaurus meanings of word. When the thesaurus
// has no entry for the word itself, the dictionary stems are tried in order
// and the first stem with an entry is used; its synonyms are then inflected
// like word where the dictionary can generate forms.
//
// actual is the word whose entry was used. It keeps the caller's spelling when
// the stem only differs from word in case or surrounding space. A word
// without meanings yields an empty list, never an error.
func LookupMeanings(word string, dict *Dictionary, thes *Thesaurus) (meanings []Meaning, actual string) {
	actual = word
	if thes == nil {
		return nil, actual
	}

	senses := thes.lookup(word)
	stemmed := false
	if len(senses) == 0 && dict != nil {
		for _, stem := range dict.Stems(word) {
			senses = thes.lookup(stem)
			if len(senses) == 0 {
				continue
			}
			stemmed = true
			actual = stem
			if sameWord(stem, word) {
				actual = word
			}
			break
		}
	}

	for _, sense := range senses {
		m := buildMeaning(sense, word, dict, stemmed)
		if !containsMeaning(meanings, m) {
			meanings = append(meanings, m)
		}
	}
	return meanings, actual
}

// buildMeaning lists the synonyms of a sense, inflected like word when the
// entry was found through a stem.
func buildMeaning(sense engine.Sense, word string, dict *Dictionary, stemmed bool) Meaning {
	m := Meaning{strings.TrimSpace(sense.Description)}
	for _, syn := range sense.Synonyms {
		var forms []string
		if dict != nil && stemmed {
			forms = dict.Generate(syn, word)
		}
		if len(forms) == 0 {
			forms = []string{syn}
		}
		for _, f := range forms {
			f = strings.TrimSpace(f)
			if !slices.Contains(m, f) {
				m = append(m, f)
			}
		}
	}
	return m
}

func containsMeaning(meanings []Meaning, m Meaning) bool {
	for _, existing := range meanings {
		if slices.Equal(existing, m) {
			return true
		}
	}
	return false
}

// sameWord compares two words ignoring case and surrounding space
func sameWord(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

package speller

import "strings"

// Feature is a set of optional adapter capabilities
type Feature uint8

const (
	// FeatureIgnoreWord accepts a word for the rest of the session
	FeatureIgnoreWord Feature = 1 << iota
	// FeatureAddWord stores a word in the user's dictionary
	FeatureAddWord
	// FeatureThesaurus offers synonyms for correctly spelled words
	FeatureThesaurus
	// FeatureMultiLang can switch between installed languages
	FeatureMultiLang
)

// Has reports whether every feature in f is in the set
func (s Feature) Has(f Feature) bool {
	return s&f == f
}

// String lists the features, e.g. "IGNORE_WORD|THESAURUS"
func (s Feature) String() string {
	names := []struct {
		f    Feature
		name string
	}{
		{FeatureIgnoreWord, "IGNORE_WORD"},
		{FeatureAddWord, "ADD_WORD"},
		{FeatureThesaurus, "THESAURUS"},
		{FeatureMultiLang, "MULTI_LANG"},
	}
	var parts []string
	for _, n := range names {
		if s.Has(n.f) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// features supported by Session. A user dictionary is not supported.
const sessionFeatures = FeatureIgnoreWord | FeatureThesaurus | FeatureMultiLang

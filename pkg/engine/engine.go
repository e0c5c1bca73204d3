// Package engine defines the capabilities the adapter expects from a
// morphological speller and a thesaurus, and ships the implementations that
// can be compiled in: a pure Go word-list speller, and cgo bindings to
// hunspell and mythes behind the "hunspell" and "mythes" build tags.
//
// Words cross this boundary encoded in the engine's own character set, as
// reported by Encoding. Callers convert with a Codec.
package engine

import "errors"

var (
	// ErrThesaurusUnsupported is returned by loaders built without a thesaurus engine
	ErrThesaurusUnsupported = errors.New("thesaurus engine not available in this build")
	// ErrUnreadable is wrapped when dictionary or thesaurus files cannot be read
	ErrUnreadable = errors.New("engine files missing or unreadable")
)

// Speller judges words and proposes corrections for one loaded dictionary
type Speller interface {
	// Spell reports whether word is correct
	Spell(word []byte) bool
	// Suggest returns corrections for word
	Suggest(word []byte) *List
	// Stem returns the stems of word, best match first
	Stem(word []byte) *List
	// Generate inflects word the way model is inflected
	Generate(word, model []byte) *List
	// Add accepts word until the speller is closed
	Add(word []byte)
	// Encoding names the character set of the loaded dictionary
	Encoding() string
	// Close releases the engine
	Close() error
}

// Thesaurus maps a word to its senses
type Thesaurus interface {
	// Lookup returns the senses of word; the result must be released
	Lookup(word []byte) *Entries
	// Encoding names the character set of the thesaurus data
	Encoding() string
	// Close releases the engine
	Close() error
}

// Loader opens engines from files on disk
type Loader interface {
	OpenSpeller(affPath, dicPath string) (Speller, error)
	OpenThesaurus(idxPath, datPath string) (Thesaurus, error)
}

// LoaderFuncs adapts two functions to a Loader. A nil OpenThesaurusFunc
// reports ErrThesaurusUnsupported.
type LoaderFuncs struct {
	OpenSpellerFunc   func(affPath, dicPath string) (Speller, error)
	OpenThesaurusFunc func(idxPath, datPath string) (Thesaurus, error)
}

// OpenSpeller calls OpenSpellerFunc
func (l LoaderFuncs) OpenSpeller(affPath, dicPath string) (Speller, error) {
	return l.OpenSpellerFunc(affPath, dicPath)
}

// OpenThesaurus calls OpenThesaurusFunc
func (l LoaderFuncs) OpenThesaurus(idxPath, datPath string) (Thesaurus, error) {
	if l.OpenThesaurusFunc == nil {
		return nil, ErrThesaurusUnsupported
	}
	return l.OpenThesaurusFunc(idxPath, datPath)
}

// DefaultLoader returns the best engines compiled into this binary
func DefaultLoader() Loader {
	return LoaderFuncs{
		OpenSpellerFunc:   openDefaultSpeller,
		OpenThesaurusFunc: openDefaultThesaurus,
	}
}

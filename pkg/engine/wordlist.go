package engine

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sajari/fuzzy"
)

// Settings of the fuzzy model backing WordList suggestions
const (
	wordListDepth       = 2
	wordListThreshold   = 0
	wordListSuggestions = 10
)

// WordList is a Speller over the head words of a hunspell .dic file. It knows
// no affix rules: every listed word is its own stem and nothing can be
// generated. Suggestions come from a fuzzy edit-distance model.
type WordList struct {
	codec   Codec
	words   map[string]bool
	session map[string]bool
	model   *fuzzy.Model
}

// OpenWordList loads the .aff encoding and the .dic word list
func OpenWordList(affPath, dicPath string) (*WordList, error) {
	if !readable(affPath) || !readable(dicPath) {
		return nil, fmt.Errorf("%w: %s, %s", ErrUnreadable, dicPath, affPath)
	}

	encName, err := affixEncoding(affPath)
	if err != nil {
		return nil, err
	}
	codec, err := LookupCodec(encName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(dicPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			// the first line holds the approximate word count
			if _, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				continue
			}
		}
		if w := headWord(codec.DecodeString(line)); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", dicPath, err)
	}

	return NewWordList(words, codec), nil
}

// NewWordList builds a speller from decoded words; codec is the encoding the
// speller reports and expects its input in.
func NewWordList(words []string, codec Codec) *WordList {
	model := fuzzy.NewModel()
	model.SetDepth(wordListDepth)
	model.SetThreshold(wordListThreshold)
	model.SetUseAutocomplete(false)

	wl := &WordList{
		codec:   codec,
		words:   make(map[string]bool, len(words)),
		session: make(map[string]bool),
		model:   model,
	}
	for _, w := range words {
		wl.words[w] = true
		model.TrainWord(strings.ToLower(w))
	}
	return wl
}

// headWord strips hunspell flags (word/FLAGS) and morphological fields
func headWord(line string) string {
	if i := strings.IndexAny(line, "\t"); i >= 0 {
		line = line[:i]
	}
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) && line[i+1] == '/' {
			b.WriteByte('/')
			i++
			continue
		}
		if c == '/' {
			break
		}
		b.WriteByte(c)
	}
	return strings.TrimSpace(b.String())
}

// affixEncoding returns the value of the SET directive of an .aff file
func affixEncoding(affPath string) (string, error) {
	f, err := os.Open(affPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[0] == "SET" {
			return fields[1], nil
		}
	}
	return "", scanner.Err()
}

// known reports whether w, or its lower-cased form for capitalized and
// upper-case words, is in the list
func (wl *WordList) known(w string) bool {
	if wl.words[w] || wl.session[w] {
		return true
	}
	if lower := strings.ToLower(w); lower != w {
		if wl.words[lower] || wl.session[lower] {
			return true
		}
		if title := capitalize(lower); title != w && (wl.words[title] || wl.session[title]) {
			return true
		}
	}
	return false
}

// Spell implements Speller
func (wl *WordList) Spell(word []byte) bool {
	w := wl.codec.Decode(word)
	if w == "" || isNumber(w) {
		return true
	}
	return wl.known(w)
}

// Suggest implements Speller
func (wl *WordList) Suggest(word []byte) *List {
	w := wl.codec.Decode(word)
	suggestions := wl.model.SpellCheckSuggestions(strings.ToLower(w), wordListSuggestions)

	upper := startsUpper(w)
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if upper {
			s = capitalize(s)
		}
		out = append(out, string(wl.codec.Encode(s)))
	}
	return NewList(out, nil)
}

// Stem implements Speller; a listed word is its own stem
func (wl *WordList) Stem(word []byte) *List {
	w := wl.codec.Decode(word)
	switch {
	case wl.words[w]:
		return NewList([]string{string(word)}, nil)
	case wl.words[strings.ToLower(w)]:
		return NewList([]string{string(wl.codec.Encode(strings.ToLower(w)))}, nil)
	}
	return NewList(nil, nil)
}

// Generate implements Speller; without affix rules nothing can be generated
func (wl *WordList) Generate(word, model []byte) *List {
	return NewList(nil, nil)
}

// Add implements Speller
func (wl *WordList) Add(word []byte) {
	wl.session[wl.codec.Decode(word)] = true
}

// Encoding implements Speller
func (wl *WordList) Encoding() string {
	return wl.codec.Name()
}

// Close implements Speller
func (wl *WordList) Close() error {
	wl.words = nil
	wl.session = nil
	return nil
}

// Len returns the number of dictionary words
func (wl *WordList) Len() int {
	return len(wl.words)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return false
		}
	}
	return true
}

// readable reports whether path is a file that can be opened
func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && !info.IsDir()
}

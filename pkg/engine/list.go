package engine

// List owns a word list allocated by an engine. The words stay valid until
// Release, which frees the engine memory exactly once; further calls do
// nothing. A nil *List is an empty list.
type List struct {
	words   []string
	release func()
}

// NewList wraps words; release may be nil when nothing has to be freed
func NewList(words []string, release func()) *List {
	return &List{words: words, release: release}
}

// Len returns the number of words
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// Words returns the encoded words
func (l *List) Words() []string {
	if l == nil {
		return nil
	}
	return l.words
}

// Release frees the list
func (l *List) Release() {
	if l == nil || l.release == nil {
		return
	}
	release := l.release
	l.release = nil
	release()
}

// Sense is one meaning of a thesaurus entry: a description such as
// "(noun) journey" and its synonyms.
type Sense struct {
	Description string
	Synonyms    []string
}

// Entries owns the senses returned by a thesaurus lookup. Release must be
// called once per lookup; a nil *Entries has no senses.
type Entries struct {
	senses  []Sense
	release func()
}

// NewEntries wraps senses; release may be nil
func NewEntries(senses []Sense, release func()) *Entries {
	return &Entries{senses: senses, release: release}
}

// Len returns the number of senses
func (e *Entries) Len() int {
	if e == nil {
		return 0
	}
	return len(e.senses)
}

// Senses returns the encoded senses
func (e *Entries) Senses() []Sense {
	if e == nil {
		return nil
	}
	return e.senses
}

// Release frees the lookup result
func (e *Entries) Release() {
	if e == nil || e.release == nil {
		return
	}
	release := e.release
	e.release = nil
	release()
}

package speller

import "github.com/Code-Monger/WordSpinneret/pkg/engine"

// Dictionary is a loaded speller engine together with the codec of its
// dictionary. All methods take and return Go strings.
type Dictionary struct {
	engine engine.Speller
	codec  engine.Codec
}

// NewDictionary binds a speller engine to codec
func NewDictionary(e engine.Speller, codec engine.Codec) *Dictionary {
	return &Dictionary{engine: e, codec: codec}
}

// Spell reports whether word is spelled correctly; without a dictionary every
// word is correct.
func (d *Dictionary) Spell(word string) bool {
	return d == nil || d.engine.Spell(d.codec.Encode(word))
}

// Suggest returns the engine's corrections for word
func (d *Dictionary) Suggest(word string) []string {
	if d == nil {
		return nil
	}
	list := d.engine.Suggest(d.codec.Encode(word))
	defer list.Release()

	return d.codec.DecodeAll(list.Words())
}

// Stems returns the stems of word, best match first
func (d *Dictionary) Stems(word string) []string {
	if d == nil {
		return nil
	}
	list := d.engine.Stem(d.codec.Encode(word))
	defer list.Release()

	return d.codec.DecodeAll(list.Words())
}

// Generate inflects word like model
func (d *Dictionary) Generate(word, model string) []string {
	if d == nil {
		return nil
	}
	list := d.engine.Generate(d.codec.Encode(word), d.codec.Encode(model))
	defer list.Release()

	return d.codec.DecodeAll(list.Words())
}

// Add accepts word for the lifetime of the engine
func (d *Dictionary) Add(word string) {
	if d != nil {
		d.engine.Add(d.codec.Encode(word))
	}
}

// Codec returns the dictionary codec
func (d *Dictionary) Codec() engine.Codec {
	return d.codec
}

func (d *Dictionary) close() error {
	return d.engine.Close()
}

// Thesaurus is a loaded thesaurus engine together with its codec
type Thesaurus struct {
	engine engine.Thesaurus
	codec  engine.Codec
}

// NewThesaurus binds a thesaurus engine to codec
func NewThesaurus(e engine.Thesaurus, codec engine.Codec) *Thesaurus {
	return &Thesaurus{engine: e, codec: codec}
}

// lookup returns the decoded senses of word. The engine result is released
// before returning.
func (t *Thesaurus) lookup(word string) []engine.Sense {
	entries := t.engine.Lookup(t.codec.Encode(word))
	defer entries.Release()

	if entries.Len() == 0 {
		return nil
	}
	senses := make([]engine.Sense, entries.Len())
	for i, s := range entries.Senses() {
		senses[i] = engine.Sense{
			Description: t.codec.DecodeString(s.Description),
			Synonyms:    t.codec.DecodeAll(s.Synonyms),
		}
	}
	return senses
}

// Codec returns the thesaurus codec
func (t *Thesaurus) Codec() engine.Codec {
	return t.codec
}

func (t *Thesaurus) close() error {
	return t.engine.Close()
}

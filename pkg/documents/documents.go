// Package documents keeps one speller session per open document so that
// several editors can check text in different languages at the same time.
package documents

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Code-Monger/WordSpinneret/pkg/engine"
	"github.com/Code-Monger/WordSpinneret/pkg/speller"
)

var (
	// ErrNotFound is returned for unknown document ids
	ErrNotFound = errors.New("document not found")
	// ErrClosed is returned when a document is used after Close
	ErrClosed = errors.New("document closed")
)

// Options configures the sessions created by a Store
type Options struct {
	// DefaultLanguage is used when a document is opened without a language
	DefaultLanguage string
	// Thesaurus enables thesaurus lookups in new sessions
	Thesaurus bool
	// Logger is passed to every session
	Logger *slog.Logger
}

// Info is a snapshot of a document's state
type Info struct {
	ID           string    `json:"id"`
	Language     string    `json:"language"`
	Enabled      bool      `json:"enabled"`
	Loaded       bool      `json:"loaded"`
	HasThesaurus bool      `json:"has_thesaurus"`
	Opened       time.Time `json:"opened"`
	LastAccess   time.Time `json:"last_access"`
}

// Document owns the speller session of one open document. Access to the
// session is serialized by Do.
type Document struct {
	id     string
	opened time.Time

	mutex      sync.Mutex
	session    *speller.Session
	lastAccess time.Time
	closed     bool
}

// ID returns the document id
func (d *Document) ID() string {
	return d.id
}

// Do runs fn with exclusive access to the document's session
func (d *Document) Do(fn func(s *speller.Session) error) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return fmt.Errorf("%w: %s", ErrClosed, d.id)
	}
	d.lastAccess = time.Now()
	return fn(d.session)
}

// Info returns a snapshot of the document
func (d *Document) Info() Info {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return Info{
		ID:           d.id,
		Language:     d.session.Language(),
		Enabled:      d.session.Enabled(),
		Loaded:       d.session.Loaded(),
		HasThesaurus: d.session.HasThesaurus(),
		Opened:       d.opened,
		LastAccess:   d.lastAccess,
	}
}

func (d *Document) close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	return d.session.Close()
}

// Store tracks open documents. Sessions share the catalog source but own
// their engines.
type Store struct {
	source  speller.CatalogSource
	loader  engine.Loader
	options Options

	mutex     sync.RWMutex
	documents map[string]*Document
}

// NewStore creates an empty store
func NewStore(source speller.CatalogSource, loader engine.Loader, options Options) *Store {
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	return &Store{
		source:    source,
		loader:    loader,
		options:   options,
		documents: make(map[string]*Document),
	}
}

// Open creates a document with an enabled session for language. An empty
// language picks the default language when it is installed and the first
// installed language otherwise; with no dictionaries at all the document has
// no language. An unknown language is an error; a dictionary that fails to
// load is logged and leaves the document without a dictionary.
func (s *Store) Open(language string) (*Document, error) {
	if language == "" {
		language = s.defaultLanguage()
	}

	id := uuid.NewString()
	session := speller.NewSession(s.source, s.loader,
		speller.WithEnabled(true),
		speller.WithThesaurus(s.options.Thesaurus),
		speller.WithLogger(s.options.Logger.With("document", id)),
	)

	if language != "" {
		err := session.SetLanguage(language)
		if errors.Is(err, speller.ErrUnknownLanguage) {
			return nil, err
		}
		if err != nil {
			s.options.Logger.Warn("document opened without dictionary", "document", id, "lang", language, "err", err)
		}
	}

	now := time.Now()
	doc := &Document{
		id:         id,
		opened:     now,
		session:    session,
		lastAccess: now,
	}

	s.mutex.Lock()
	s.documents[id] = doc
	s.mutex.Unlock()

	s.options.Logger.Info("document opened", "document", id, "lang", session.Language())
	return doc, nil
}

// defaultLanguage resolves the language of a document opened without one
func (s *Store) defaultLanguage() string {
	catalog, err := s.source.Catalog()
	if err != nil {
		s.options.Logger.Warn("listing languages", "err", err)
	}

	language := catalog.Preferred(s.options.DefaultLanguage)
	if language != s.options.DefaultLanguage {
		s.options.Logger.Info("default language not installed", "lang", s.options.DefaultLanguage, "using", language)
	}
	return language
}

// Get returns an open document
func (s *Store) Get(id string) (*Document, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return doc, nil
}

// Close releases the engines of a document and forgets it
func (s *Store) Close(id string) error {
	s.mutex.Lock()
	doc, ok := s.documents[id]
	delete(s.documents, id)
	s.mutex.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.options.Logger.Info("document closed", "document", id)
	return doc.close()
}

// CloseAll closes every open document
func (s *Store) CloseAll() error {
	s.mutex.Lock()
	docs := s.documents
	s.documents = make(map[string]*Document)
	s.mutex.Unlock()

	var errs []error
	for _, doc := range docs {
		errs = append(errs, doc.close())
	}
	return errors.Join(errs...)
}

// List returns the open documents, oldest first
func (s *Store) List() []Info {
	s.mutex.RLock()
	docs := make([]*Document, 0, len(s.documents))
	for _, doc := range s.documents {
		docs = append(docs, doc)
	}
	s.mutex.RUnlock()

	infos := make([]Info, 0, len(docs))
	for _, doc := range docs {
		infos = append(infos, doc.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Opened.Equal(infos[j].Opened) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].Opened.Before(infos[j].Opened)
	})
	return infos
}

// Len returns the number of open documents
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.documents)
}

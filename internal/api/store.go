package api

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/samcharles93/clif/pkg/clif"
)

// Document is one decoded CLI file held by the viewer. Exactly one of the two
// model fields is set, matching Encoding.
type Document struct {
	ID       string
	Path     string
	Encoding string // "short" or "long"

	file  *clif.File
	short *clif.ShortModel
	long  *clif.LongModel
}

// LoadDocument maps path and decodes it with the requested encoding.
func LoadDocument(path, encoding string) (*Document, error) {
	f, err := clif.Open(path)
	if err != nil {
		return nil, err
	}
	doc := &Document{
		ID:       "doc_" + uuid.NewString(),
		Path:     path,
		Encoding: encoding,
		file:     f,
	}
	switch encoding {
	case "short":
		doc.short, err = f.DecodeShort()
	case "long":
		doc.long, err = f.DecodeLong()
	default:
		err = fmt.Errorf("unknown encoding %q (want short or long)", encoding)
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return doc, nil
}

// NewDocumentFromShort wraps an already decoded model, for tests and callers
// that manage the backing buffer themselves.
func NewDocumentFromShort(path string, m *clif.ShortModel) *Document {
	return &Document{ID: "doc_" + uuid.NewString(), Path: path, Encoding: "short", short: m}
}

// NewDocumentFromLong wraps an already decoded model.
func NewDocumentFromLong(path string, m *clif.LongModel) *Document {
	return &Document{ID: "doc_" + uuid.NewString(), Path: path, Encoding: "long", long: m}
}

// Header returns the parsed header of the underlying model.
func (d *Document) Header() clif.Header {
	if d.short != nil {
		return d.short.Header()
	}
	return d.long.Header()
}

// LayerCount returns the number of decoded layers.
func (d *Document) LayerCount() int {
	if d.short != nil {
		return len(d.short.Layers())
	}
	return len(d.long.Layers())
}

// Close releases the mapped file. The document must not be used afterwards.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}

// DocumentStore is the set of documents served by the API, keyed by ID. It is
// safe for concurrent use.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Add registers doc and returns its ID.
func (s *DocumentStore) Add(doc *Document) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	return doc.ID
}

// Get returns the document with the given ID.
func (s *DocumentStore) Get(id string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// Remove unregisters and returns the document so the caller can close it.
func (s *DocumentStore) Remove(id string) (*Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if ok {
		delete(s.docs, id)
	}
	return doc, ok
}

// List returns all documents ordered by path for stable output.
func (s *DocumentStore) List() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

package ferret

import (
	"io"
	"log/slog"
	"sync"
)

// Searcher is the façade a caller actually talks to: add documents,
// remove them, search. DocId is whatever identifier the caller uses
// to name a document (a file path, a database key, a URL); it is
// never interpreted, only compared for equality and used as a map
// key.
//
// Internally every document is tracked by a sequential int id, since
// the index and its roaring bitmaps need small dense integers. The
// translation between the two lives only here; InvertedIndex and the
// evaluator never see a DocId.
type Searcher[DocId comparable] struct {
	mu sync.RWMutex

	index  *InvertedIndex
	idOf   map[DocId]int
	docOf  map[int]DocId
	nextID int
}

// NewSearcher returns an empty Searcher.
func NewSearcher[DocId comparable]() *Searcher[DocId] {
	return &Searcher[DocId]{
		index: NewInvertedIndex(),
		idOf:  make(map[DocId]int),
		docOf: make(map[int]DocId),
	}
}

// AddDocument tokenizes the full contents of source and indexes them
// under doc. doc already being known is a silent no-op: the source is
// still read to completion (so the caller's stream is always fully
// consumed), but its content is discarded rather than replacing what
// is already indexed. Internal ids are never reused, including across
// a remove-then-readd of the same DocId, so a reader mid-walk over a
// stale skip-list node can never alias onto a different document's
// occurrence.
func (s *Searcher[DocId]) AddDocument(doc DocId, source io.Reader) error {
	content, err := io.ReadAll(source)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, known := s.idOf[doc]; known {
		return nil
	}

	id := s.nextID
	s.nextID++
	s.idOf[doc] = id
	s.docOf[id] = doc

	tokens := Tokenize(string(content))
	for _, tok := range tokens {
		s.index.Insert(tok.Term, id, tok.Position)
	}

	slog.Debug("indexed document", slog.Int("tokens", len(tokens)))
	return nil
}

// RemoveDocument deletes doc from the index. Removing an unknown
// DocId is a no-op.
func (s *Searcher[DocId]) RemoveDocument(doc DocId) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, known := s.idOf[doc]
	if !known {
		return
	}

	s.index.Remove(id)
	delete(s.idOf, doc)
	delete(s.docOf, id)
}

// Search parses query and returns every known document that satisfies
// it, in no particular order. An empty result is not an error; a
// malformed query is, always as a BadQuery.
func (s *Searcher[DocId]) Search(query string) ([]DocId, error) {
	q, err := ParseQuery(query)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := Evaluate(s.index, q)

	results := make([]DocId, 0, int(matches.GetCardinality()))
	iter := matches.Iterator()
	for iter.HasNext() {
		id := int(iter.Next())
		if doc, ok := s.docOf[id]; ok {
			results = append(results, doc)
		}
	}
	return results, nil
}

// Contains reports whether doc is currently indexed.
func (s *Searcher[DocId]) Contains(doc DocId) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.idOf[doc]
	return ok
}

// Len returns the number of documents currently indexed.
func (s *Searcher[DocId]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.idOf)
}

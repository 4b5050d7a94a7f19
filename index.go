// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS AN INVERTED INDEX?
// ═══════════════════════════════════════════════════════════════════════════════
// An inverted index is like the index at the back of a book, but for search engines.
//
// Example: Given these documents (internal ids, not caller DocIds):
//   Doc 0: "the quick brown fox"
//   Doc 1: "the lazy dog"
//   Doc 2: "quick brown dogs"
//
// The inverted index would look like:
//   "quick"  → docs {0, 2}, positions [Doc0:Pos1, Doc2:Pos0]
//   "brown"  → docs {0, 2}, positions [Doc0:Pos2, Doc2:Pos1]
//   "fox"    → docs {0},    positions [Doc0:Pos3]
//   "lazy"   → docs {1},    positions [Doc1:Pos1]
//   "dog"    → docs {1},    positions [Doc1:Pos2]
//   "dogs"   → docs {2},    positions [Doc2:Pos2]
//
// This allows the evaluator to:
// 1. Find documents containing a term instantly (bitmap lookup, no scan)
// 2. Verify phrases by checking whether term positions are consecutive
// ═══════════════════════════════════════════════════════════════════════════════

package ferret

import (
	"errors"
	"log/slog"

	"github.com/RoaringBitmap/roaring"
)

var (
	ErrNoPostingList = errors.New("no posting list exists for term")
)

// InvertedIndex stores, per term, a roaring bitmap of the internal
// document ids containing it (document-level, for fast set
// intersection) and a skip list of its exact (doc, position)
// occurrences (position-level, for phrase adjacency).
//
// Document ids here are always the Searcher façade's internal
// sequential ids; the index itself knows nothing about caller-
// supplied DocIds.
type InvertedIndex struct {
	docBitmaps map[string]*roaring.Bitmap
	postings   map[string]*SkipList

	// docTerms is the reverse index needed to support Remove: which
	// terms, and at which offsets, a given document contributed.
	// Without it, removing a document would require scanning every
	// term's posting list.
	docTerms map[int]map[string][]int
}

// NewInvertedIndex returns an empty index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		docBitmaps: make(map[string]*roaring.Bitmap),
		postings:   make(map[string]*SkipList),
		docTerms:   make(map[int]map[string][]int),
	}
}

// Insert records that term occurs in doc at position. Callers
// guarantee positions arrive in ascending order per (term, doc)
// within a single ingestion, so this only ever appends.
func (idx *InvertedIndex) Insert(term string, doc, position int) {
	if idx.docBitmaps[term] == nil {
		idx.docBitmaps[term] = roaring.New()
	}
	idx.docBitmaps[term].Add(uint32(doc))

	sl, exists := idx.postings[term]
	if !exists {
		sl = NewSkipList()
		idx.postings[term] = sl
	}
	sl.Insert(Position{DocumentID: float64(doc), Offset: float64(position)})

	terms, ok := idx.docTerms[doc]
	if !ok {
		terms = make(map[string][]int)
		idx.docTerms[doc] = terms
	}
	terms[term] = append(terms[term], position)
}

// Remove deletes every (term, doc) entry for doc across all posting
// lists. Terms whose posting list becomes empty are retained (their
// skip list becomes empty) rather than deleted from the term maps;
// First/Last treat an empty posting list the same as an absent one,
// so this is unobservable to callers.
func (idx *InvertedIndex) Remove(doc int) {
	terms, ok := idx.docTerms[doc]
	if !ok {
		return
	}

	for term, offsets := range terms {
		if sl, exists := idx.postings[term]; exists {
			for _, offset := range offsets {
				sl.Delete(Position{DocumentID: float64(doc), Offset: float64(offset)})
			}
		}
		if bitmap := idx.docBitmaps[term]; bitmap != nil {
			bitmap.Remove(uint32(doc))
		}
	}

	delete(idx.docTerms, doc)
	slog.Debug("removed document from index", slog.Int("doc", doc))
}

// Contains reports whether doc has at least one posting in the
// index. Empty documents (zero tokens) are tracked separately by the
// Searcher façade's known-documents set, not here.
func (idx *InvertedIndex) Contains(doc int) bool {
	_, ok := idx.docTerms[doc]
	return ok
}

// DocIDs returns the bitmap of internal document ids containing
// term, or nil if the term has never been indexed.
func (idx *InvertedIndex) DocIDs(term string) *roaring.Bitmap {
	return idx.docBitmaps[term]
}

// ═══════════════════════════════════════════════════════════════════════════════
// CURSOR PRIMITIVES
// ═══════════════════════════════════════════════════════════════════════════════
// First, Last, Next, and Previous are the four operations the phrase
// evaluator composes into a global walk across a term's occurrences,
// in (document, offset) order, using BOF/EOF sentinels to mark the
// boundaries.
// ═══════════════════════════════════════════════════════════════════════════════

// First returns the earliest occurrence of term in the index.
func (idx *InvertedIndex) First(term string) (Position, error) {
	sl, exists := idx.postings[term]
	if !exists || sl.IsEmpty() {
		return EOFPosition, ErrNoPostingList
	}
	return sl.Head.Tower[0].Key, nil
}

// Last returns the latest occurrence of term in the index.
func (idx *InvertedIndex) Last(term string) (Position, error) {
	sl, exists := idx.postings[term]
	if !exists || sl.IsEmpty() {
		return EOFPosition, ErrNoPostingList
	}
	return sl.Last(), nil
}

// Next returns the next occurrence of term strictly after
// currentPos. currentPos may be the BOF or EOF sentinel.
func (idx *InvertedIndex) Next(term string, currentPos Position) (Position, error) {
	if currentPos.IsBeginning() {
		return idx.First(term)
	}
	if currentPos.IsEnd() {
		return EOFPosition, nil
	}

	sl, exists := idx.postings[term]
	if !exists {
		return EOFPosition, ErrNoPostingList
	}

	nextPos, _ := sl.FindGreaterThan(currentPos)
	return nextPos, nil
}

// Previous returns the occurrence of term strictly before
// currentPos. currentPos may be the BOF or EOF sentinel.
func (idx *InvertedIndex) Previous(term string, currentPos Position) (Position, error) {
	if currentPos.IsEnd() {
		return idx.Last(term)
	}
	if currentPos.IsBeginning() {
		return BOFPosition, nil
	}

	sl, exists := idx.postings[term]
	if !exists {
		return BOFPosition, ErrNoPostingList
	}

	prevPos, _ := sl.FindLessThan(currentPos)
	return prevPos, nil
}

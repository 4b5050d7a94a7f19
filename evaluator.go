package ferret

import "github.com/RoaringBitmap/roaring"

// ═══════════════════════════════════════════════════════════════════════════════
// PHRASE MATCHING
// ═══════════════════════════════════════════════════════════════════════════════
// To find "brown fox" we need both words at consecutive positions in
// the same document. The walk:
//
//  1. Find ANY occurrence of every term in order, possibly far apart
//     (findPhraseEnd: hop from term to term with Next).
//  2. Walk backward from the last term's position to where the first
//     term would need to be for a contiguous run (findPhraseStart).
//  3. Check the run really is contiguous (isValidPhrase): same
//     document, and the distance between first and last position
//     equals termCount-1.
//  4. If the check fails, retry starting from where the backward walk
//     landed -- this is what lets the algorithm skip past spurious
//     occurrences like "brown dog brown fox" when looking for
//     "brown fox".
//
// Because position values are assigned once per document regardless
// of which term they belong to, two different terms in the same
// document never share a position, and each retry makes strictly
// forward progress, so the recursion always terminates.
// ═══════════════════════════════════════════════════════════════════════════════

func (idx *InvertedIndex) findPhraseEnd(terms []string, startPos Position) Position {
	currentPos := startPos
	for _, term := range terms {
		currentPos, _ = idx.Next(term, currentPos)
		if currentPos.IsEnd() {
			return EOFPosition
		}
	}
	return currentPos
}

func (idx *InvertedIndex) findPhraseStart(terms []string, endPos Position) Position {
	currentPos := endPos
	for i := len(terms) - 2; i >= 0; i-- {
		currentPos, _ = idx.Previous(terms[i], currentPos)
	}
	return currentPos
}

func isValidPhrase(start, end Position, termCount int) bool {
	expectedDistance := float64(termCount - 1)
	actualDistance := end.Offset - start.Offset
	return start.DocumentID == end.DocumentID && actualDistance == expectedDistance
}

// nextPhrase returns the [start, end] positions of the next
// contiguous occurrence of terms after startPos, or
// [EOFPosition, EOFPosition] if none remains.
func (idx *InvertedIndex) nextPhrase(terms []string, startPos Position) [2]Position {
	endPos := idx.findPhraseEnd(terms, startPos)
	if endPos.IsEnd() {
		return [2]Position{EOFPosition, EOFPosition}
	}

	phraseStart := idx.findPhraseStart(terms, endPos)
	if isValidPhrase(phraseStart, endPos, len(terms)) {
		return [2]Position{phraseStart, endPos}
	}

	return idx.nextPhrase(terms, phraseStart)
}

// matchPhrase returns the bitmap of internal document ids in which
// terms occurs as a contiguous, in-order run of positions.
func (idx *InvertedIndex) matchPhrase(terms []string) *roaring.Bitmap {
	bitmap := roaring.NewBitmap()
	currentPos := BOFPosition

	for !currentPos.IsEnd() {
		match := idx.nextPhrase(terms, currentPos)
		start := match[0]
		if start.IsEnd() {
			break
		}
		bitmap.Add(uint32(start.GetDocumentID()))
		currentPos = start
	}

	return bitmap
}

// Evaluate computes the set of internal document ids satisfying every
// atom of q: single-term atoms intersect by document bitmap, phrase
// atoms intersect by the set of documents where the phrase matches
// contiguously. An absent term or a phrase with no match anywhere
// short-circuits to the empty set.
func Evaluate(idx *InvertedIndex, q *Query) *roaring.Bitmap {
	var candidates *roaring.Bitmap

	for term := range q.Terms {
		bitmap := idx.DocIDs(term)
		if bitmap == nil || bitmap.IsEmpty() {
			return roaring.NewBitmap()
		}
		if candidates == nil {
			candidates = bitmap.Clone()
		} else {
			candidates = roaring.And(candidates, bitmap)
		}
		if candidates.IsEmpty() {
			return candidates
		}
	}

	for _, phrase := range q.Phrases {
		if candidates != nil && candidates.IsEmpty() {
			return candidates
		}
		matched := idx.matchPhrase(phrase)
		if candidates == nil {
			candidates = matched
		} else {
			candidates = roaring.And(candidates, matched)
		}
	}

	if candidates == nil {
		return roaring.NewBitmap()
	}
	return candidates
}

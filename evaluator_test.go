package ferret

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════
// EVALUATOR TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func evalQuery(t *testing.T, idx *InvertedIndex, raw string) map[int]bool {
	t.Helper()
	q, err := ParseQuery(raw)
	if err != nil {
		t.Fatalf("ParseQuery(%q) error: %v", raw, err)
	}
	bitmap := Evaluate(idx, q)
	out := make(map[int]bool)
	for _, id := range bitmap.ToArray() {
		out[int(id)] = true
	}
	return out
}

func TestEvaluate_SingleTerm(t *testing.T) {
	idx := NewInvertedIndex()
	indexDoc(idx, 0, "the quick brown fox")
	indexDoc(idx, 1, "the lazy dog")

	got := evalQuery(t, idx, "quick")
	if !got[0] || got[1] {
		t.Errorf("quick -> %v, want {0}", got)
	}
}

func TestEvaluate_ImplicitAnd(t *testing.T) {
	idx := NewInvertedIndex()
	indexDoc(idx, 0, "the quick brown fox")
	indexDoc(idx, 1, "the quick lazy dog")
	indexDoc(idx, 2, "the lazy brown dog")

	got := evalQuery(t, idx, "quick brown")
	if len(got) != 1 || !got[0] {
		t.Errorf("quick brown -> %v, want {0}", got)
	}
}

func TestEvaluate_UnknownTermYieldsEmpty(t *testing.T) {
	idx := NewInvertedIndex()
	indexDoc(idx, 0, "the quick brown fox")

	got := evalQuery(t, idx, "giraffe")
	if len(got) != 0 {
		t.Errorf("giraffe -> %v, want empty", got)
	}
}

func TestEvaluate_PhraseRequiresAdjacency(t *testing.T) {
	idx := NewInvertedIndex()
	indexDoc(idx, 0, "the speed of the fox")
	indexDoc(idx, 1, "the speed and the fox")

	got := evalQuery(t, idx, `"speed of"`)
	if !got[0] || got[1] {
		t.Errorf(`"speed of" -> %v, want {0}`, got)
	}
}

func TestEvaluate_PhraseAcrossDocumentBoundaryDoesNotMatch(t *testing.T) {
	idx := NewInvertedIndex()
	indexDoc(idx, 0, "the quick")
	indexDoc(idx, 1, "brown fox")

	got := evalQuery(t, idx, `"quick brown"`)
	if len(got) != 0 {
		t.Errorf(`"quick brown" -> %v, want empty (spans two documents)`, got)
	}
}

func TestEvaluate_PhraseSkipsSpuriousOccurrence(t *testing.T) {
	idx := NewInvertedIndex()
	indexDoc(idx, 0, "brown dog brown fox")

	got := evalQuery(t, idx, `"brown fox"`)
	if !got[0] {
		t.Errorf(`"brown fox" -> %v, want {0}`, got)
	}
}

func TestEvaluate_PhrasePlusWordAtom(t *testing.T) {
	idx := NewInvertedIndex()
	indexDoc(idx, 0, "the quick brown fox jumps")
	indexDoc(idx, 1, "the quick brown dog jumps")

	got := evalQuery(t, idx, `"quick brown" fox`)
	if len(got) != 1 || !got[0] {
		t.Errorf(`"quick brown" fox -> %v, want {0}`, got)
	}
}

func TestEvaluate_PhraseSubsumesWordRepeat(t *testing.T) {
	idx := NewInvertedIndex()
	indexDoc(idx, 0, "fast fast car")

	got := evalQuery(t, idx, `"fast fast" car`)
	if !got[0] {
		t.Errorf(`"fast fast" car -> %v, want {0}`, got)
	}
}

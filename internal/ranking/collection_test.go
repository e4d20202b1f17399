package ranking

import (
	"errors"
	"testing"
)

func cand(id string, pct int) Candidate {
	return Candidate{ID: id, MatchPercentage: pct}
}

func ids(cands []Candidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.ID)
	}
	return out
}

func assertSortedDesc(t *testing.T, cands []Candidate) {
	t.Helper()
	for i := 1; i < len(cands); i++ {
		if cands[i-1].MatchPercentage < cands[i].MatchPercentage {
			t.Fatalf("collection not sorted at %d: %v", i, ids(cands))
		}
	}
}

func TestCollectionAddKeepsStableDescendingOrder(t *testing.T) {
	col := NewCollection()
	col.Add(cand("a", 50), cand("b", 90))
	col.Add(cand("c", 50), cand("d", 70))

	got := ids(col.List())
	want := []string{"b", "d", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCollectionDeleteDropsSelection(t *testing.T) {
	col := NewCollection()
	col.Add(cand("a", 10), cand("b", 20))
	if _, err := col.ToggleSelection("a"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if err := col.Delete("a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(col.Selected()) != 0 {
		t.Fatalf("expected deleted candidate to leave the selection")
	}
	if err := col.Delete("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCollectionToggleSelection(t *testing.T) {
	col := NewCollection()
	col.Add(cand("a", 10))

	on, err := col.ToggleSelection("a")
	if err != nil || !on {
		t.Fatalf("expected selected, got %v %v", on, err)
	}
	off, err := col.ToggleSelection("a")
	if err != nil || off {
		t.Fatalf("expected deselected, got %v %v", off, err)
	}
	if _, err := col.ToggleSelection("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
	if len(col.SelectedIDs()) != 0 {
		t.Fatalf("unknown id must not be selected")
	}
}

func TestCollectionClearKeepsJobDescription(t *testing.T) {
	col := NewCollection()
	col.SetJobDescription("Go engineer")
	col.Add(cand("a", 10))
	_, _ = col.ToggleSelection("a")

	col.Clear()

	if col.Len() != 0 || len(col.Selected()) != 0 {
		t.Fatalf("expected empty collection and selection")
	}
	if col.JobDescription() != "Go engineer" {
		t.Fatalf("unexpected job description %q", col.JobDescription())
	}
}

func TestCollectionListIsACopy(t *testing.T) {
	col := NewCollection()
	col.Add(cand("a", 10))

	list := col.List()
	list[0].ID = "mutated"

	if col.List()[0].ID != "a" {
		t.Fatalf("List must not expose internal storage")
	}
}

func TestCollectionInvariantAfterMixedOperations(t *testing.T) {
	col := NewCollection()
	ops := []func(){
		func() { col.Add(cand("a", 40), cand("b", 85)) },
		func() { _, _ = col.ToggleSelection("a") },
		func() { _, _ = col.ToggleSelection("b") },
		func() { col.Add(cand("c", 85), cand("d", 10)) },
		func() { _ = col.Delete("b") },
		func() { _, _ = col.ToggleSelection("d") },
		func() { _ = col.Delete("d") },
		func() { col.Add(cand("e", 99)) },
	}
	for _, op := range ops {
		op()
		list := col.List()
		assertSortedDesc(t, list)
		present := map[string]bool{}
		for _, c := range list {
			present[c.ID] = true
		}
		for _, id := range col.SelectedIDs() {
			if !present[id] {
				t.Fatalf("selected id %q absent from collection", id)
			}
		}
	}
}

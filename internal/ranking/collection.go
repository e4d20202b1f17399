package ranking

import (
	"slices"
	"sort"
	"sync"
)

// Collection holds ranked candidates, the selection set and the job description used for scoring.
// It is safe for concurrent use. Candidates stay sorted by MatchPercentage, highest first; equal
// scores keep upload order.
type Collection struct {
	mu             sync.RWMutex
	candidates     []Candidate
	selected       map[string]struct{}
	jobDescription string
}

// NewCollection constructs an empty Collection.
func NewCollection() *Collection {
	return &Collection{selected: make(map[string]struct{})}
}

// Add appends the batch and re-sorts the whole collection.
func (c *Collection) Add(batch ...Candidate) {
	if len(batch) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.candidates = append(c.candidates, batch...)
	sort.SliceStable(c.candidates, func(i, j int) bool {
		return c.candidates[i].MatchPercentage > c.candidates[j].MatchPercentage
	})
}

// Delete removes a candidate and drops it from the selection.
func (c *Collection) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := slices.IndexFunc(c.candidates, func(cand Candidate) bool { return cand.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	c.candidates = slices.Delete(c.candidates, idx, idx+1)
	delete(c.selected, id)
	return nil
}

// Clear removes every candidate and empties the selection. The job description is kept.
func (c *Collection) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.candidates = nil
	c.selected = make(map[string]struct{})
}

// ToggleSelection flips the selection state of id and reports the new state. Unknown ids leave the
// selection untouched and return ErrNotFound.
func (c *Collection) ToggleSelection(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slices.ContainsFunc(c.candidates, func(cand Candidate) bool { return cand.ID == id }) {
		return false, ErrNotFound
	}
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
		return false, nil
	}
	c.selected[id] = struct{}{}
	return true, nil
}

// ClearSelection empties the selection.
func (c *Collection) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = make(map[string]struct{})
}

// Selected returns the selected candidates in rank order.
func (c *Collection) Selected() []Candidate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Candidate, 0, len(c.selected))
	for _, cand := range c.candidates {
		if _, ok := c.selected[cand.ID]; ok {
			out = append(out, cand)
		}
	}
	return out
}

// SelectedIDs returns the selected ids in rank order.
func (c *Collection) SelectedIDs() []string {
	selected := c.Selected()
	ids := make([]string, 0, len(selected))
	for _, cand := range selected {
		ids = append(ids, cand.ID)
	}
	return ids
}

// List returns a copy of the ranked candidates.
func (c *Collection) List() []Candidate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Candidate, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// Len reports how many candidates are held.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.candidates)
}

// SetJobDescription replaces the job description used for later uploads.
func (c *Collection) SetJobDescription(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobDescription = text
}

// JobDescription returns the current job description.
func (c *Collection) JobDescription() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jobDescription
}

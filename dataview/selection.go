package dataview

import "sort"

// Selection tracks the set of selected record ids of a list screen.
//
// Selection is deliberately NOT pruned when the filtered set shrinks: ids
// selected while visible stay selected when a narrower search scrolls them
// out of the current filter. Callers that want selection scoped to the
// visible rows must re-derive it with SelectAll. Bulk operations must
// tolerate ids that are no longer visible.
type Selection struct {
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle flips membership of the id (symmetric difference with {id}).
func (s *Selection) Toggle(id string) {
	if _, found := s.ids[id]; found {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// SelectAll replaces the selection with exactly the visible ids. This is
// the "header checkbox" semantic: it selects all currently filtered rows,
// not the union with rows selected under earlier filters.
func (s *Selection) SelectAll(visibleIDs []string) {
	s.ids = make(map[string]struct{}, len(visibleIDs))
	for _, id := range visibleIDs {
		s.ids[id] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

func (s *Selection) Has(id string) bool {
	_, found := s.ids[id]
	return found
}

// Count is the size of the underlying set, including ids that drifted out
// of the current filter.
func (s *Selection) Count() int {
	return len(s.ids)
}

// CountIn counts the selected ids among the visible ones.
func (s *Selection) CountIn(visibleIDs []string) int {
	count := 0
	for _, id := range visibleIDs {
		if s.Has(id) {
			count++
		}
	}
	return count
}

// IsIndeterminate reports the header checkbox tri-state: true iff the
// selection is non-empty and not equal to the full currently visible id
// set.
func (s *Selection) IsIndeterminate(visibleIDs []string) bool {
	if len(s.ids) == 0 {
		return false
	}
	if len(s.ids) != len(visibleIDs) {
		return true
	}
	for _, id := range visibleIDs {
		if !s.Has(id) {
			return true
		}
	}
	return false
}

// IDs returns the selected ids in a stable order.
func (s *Selection) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

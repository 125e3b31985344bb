package dataview

// Inputs are the tracked inputs of the view pipeline. The output is a pure
// derivation of them; any change produces a full recomputation over the
// in-memory source, which is acceptable because the source is a bounded,
// page-limited snapshot (typically a few hundred records).
type Inputs struct {
	Source  []Record
	Search  SearchSpec
	Filters FilterSet
	Sort    SortSpec
}

// Pipeline orchestrates search matching, filter evaluation and stable
// sorting into the current visible result set. The last result is memoized
// on input identity so redundant Render calls do not re-filter.
type Pipeline struct {
	memoValid   bool
	memoSource  []Record
	memoQuery   string
	memoFilters FilterSet
	memoSortKey string
	memoSortDir Direction
	memoResult  []Record
}

// Recompute returns the ordered result set for the inputs. The returned
// slice is a fresh derivation and is never mutated afterwards, only
// replaced. Callers must treat it as immutable.
func (p *Pipeline) Recompute(in Inputs) []Record {
	if p.memoValid && p.sameInputs(in) {
		return p.memoResult
	}

	result := make([]Record, 0, len(in.Source))
	for _, record := range in.Source {
		if !in.Search.Matches(record) {
			continue
		}
		if !in.Filters.Matches(record) {
			continue
		}
		result = append(result, record)
	}
	SortRecords(result, in.Sort)

	p.memoValid = true
	p.memoSource = in.Source
	p.memoQuery = in.Search.Query
	p.memoFilters = in.Filters
	p.memoSortKey = in.Sort.KeyName
	p.memoSortDir = in.Sort.Direction
	p.memoResult = result
	return result
}

// Invalidate drops the memoized result, forcing the next Recompute to run.
func (p *Pipeline) Invalidate() {
	p.memoValid = false
	p.memoResult = nil
}

// sameInputs checks input identity, not deep equality: slices compare by
// header, the sort spec by column and direction.
func (p *Pipeline) sameInputs(in Inputs) bool {
	return sameSlice(p.memoSource, in.Source) &&
		p.memoQuery == in.Search.Query &&
		sameFilterSet(p.memoFilters, in.Filters) &&
		p.memoSortKey == in.Sort.KeyName &&
		p.memoSortDir == in.Sort.Direction
}

func sameSlice(a, b []Record) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

func sameFilterSet(a, b FilterSet) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

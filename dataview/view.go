package dataview

import (
	"context"
	"sync"
	"time"

	"github.com/Wilsonthoma/Ecommerce-sub002/log"
	"go.uber.org/atomic"
)

// Source fetches the collection snapshot a view operates on. The store API
// client implements it; tests substitute fakes.
type Source interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// ViewConfig is the per-screen configuration surface of the engine.
type ViewConfig struct {
	SearchFields    []FieldAccessor
	DefaultSort     SortSpec
	PageSizeOptions []int
	DefaultPageSize int
	Debounce        time.Duration
	Logger          log.Logger
	Source          Source
}

// View is the view-model of one list screen. It owns the source snapshot
// and all derived state (search, filters, sort, page, selection), and emits
// immutable render snapshots. All methods are safe for concurrent use; the
// debounce timer and overlapping fetches are the only asynchronous inputs.
type View struct {
	mu        sync.Mutex
	logger    log.Logger
	source    Source
	pipeline  Pipeline
	records   []Record
	search    SearchSpec
	debouncer *Debouncer
	filters   FilterSet
	sort      SortSpec
	page      PageState
	selection *Selection

	// fetchSeq tags every fetch at issue time; a response whose tag is no
	// longer the latest issued is stale and discarded, so the last filter
	// change wins rather than the last response to arrive.
	fetchSeq atomic.Int64

	// fetchFailed marks the current snapshot as the empty fallback after
	// an upstream error; derived statistics render zeroed until a refresh
	// succeeds.
	fetchFailed bool
}

func NewView(cfg ViewConfig) *View {
	pageSize := cfg.DefaultPageSize
	if pageSize == 0 {
		options := cfg.PageSizeOptions
		if len(options) == 0 {
			options = DefaultPageSizeOptions
		}
		pageSize = options[0]
	}

	v := &View{
		logger:    cfg.Logger,
		source:    cfg.Source,
		search:    SearchSpec{Fields: cfg.SearchFields},
		sort:      cfg.DefaultSort,
		page:      PageState{Page: 1, PageSize: pageSize},
		selection: NewSelection(),
	}
	v.debouncer = NewDebouncer(cfg.Debounce, v.applyQuery)
	return v
}

// Refresh fetches a new snapshot from the source. On upstream failure the
// view falls back to an empty collection with zeroed statistics and stays
// interactive; the error is returned so the caller can raise a transient
// notification. A response that lost the race against a newer refresh is
// dropped without touching state.
func (v *View) Refresh(ctx context.Context) error {
	seq := v.fetchSeq.Inc()

	records, err := v.source.Fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.fetchSeq.Load() != seq {
		v.logger.Debug("stale fetch response discarded", "seq", seq)
		return nil
	}

	if err != nil {
		v.records = nil
		v.fetchFailed = true
		v.pipeline.Invalidate()
		v.logger.Error("collection fetch failed, rendering empty set", "error", err)
		return err
	}

	v.records = records
	v.fetchFailed = false
	v.pipeline.Invalidate()
	return nil
}

// SetQuery feeds a raw keystroke value into the debouncer. Only the last
// value of a burst inside the window reaches the matcher.
func (v *View) SetQuery(query string) {
	v.debouncer.Update(query)
}

// SubmitQuery applies a query immediately, flushing any pending debounce.
// An explicit submit never waits for the window.
func (v *View) SubmitQuery(query string) {
	v.debouncer.Cancel()
	v.applyQuery(query)
}

// ClearQuery cancels any pending debounce and resets the search.
func (v *View) ClearQuery() {
	v.debouncer.Cancel()
	v.applyQuery("")
}

func (v *View) applyQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.search.Query == query {
		return
	}
	v.search.Query = query
	v.page.Page = 1
}

// SetFilters replaces the filter set and resets to the first page.
func (v *View) SetFilters(filters FilterSet) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.filters = filters
	v.page.Page = 1
}

// SortBy activates the given sort key. Re-sorting the active column
// toggles its direction; switching to a different column resets the
// direction to descending.
func (v *View) SortBy(spec SortSpec) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if spec.KeyName == v.sort.KeyName {
		if v.sort.Direction == Ascending {
			v.sort.Direction = Descending
		} else {
			v.sort.Direction = Ascending
		}
		return
	}
	spec.Direction = Descending
	v.sort = spec
}

// SetSort replaces the sort spec verbatim, without the column-toggle
// behavior of SortBy.
func (v *View) SetSort(spec SortSpec) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sort = spec
}

// SetPage requests a page; the value is clamped at render time.
func (v *View) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page.Page = page
}

// SetPageSize changes the page size. Unlike a search or filter change it
// does not reset the page beyond the clamp.
func (v *View) SetPageSize(pageSize int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if pageSize > 0 {
		v.page.PageSize = pageSize
	}
}

// Toggle flips selection of a single record id.
func (v *View) Toggle(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.Toggle(id)
}

// SelectAll selects exactly the currently filtered rows (across all pages
// of the filtered set, not only the visible page).
func (v *View) SelectAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.SelectAll(recordIDs(v.orderedLocked()))
}

// ClearSelection empties the selection.
func (v *View) ClearSelection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.Clear()
}

// SelectedIDs returns the underlying selected id set, including ids that
// drifted out of the current filter. Bulk operations consume this.
func (v *View) SelectedIDs() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection.IDs()
}

// Row pairs a visible record with its selection flag.
type Row struct {
	Record   Record
	Selected bool
}

// Rendered is the immutable snapshot emitted for the presentation layer:
// the visible page rows plus pagination and selection metadata.
type Rendered struct {
	Rows          []Row
	CurrentPage   int
	TotalPages    int
	TotalItems    int
	PageSize      int
	SelectedCount int
	Indeterminate bool
	FetchFailed   bool
}

// Render recomputes the pipeline, clamps the page against the filtered
// total and emits the current snapshot.
func (v *View) Render() Rendered {
	v.mu.Lock()
	defer v.mu.Unlock()

	ordered := v.orderedLocked()
	visibleIDs := recordIDs(ordered)

	v.page = v.page.Clamp(len(ordered))
	page := Paginate(ordered, v.page)

	rows := make([]Row, len(page.Items))
	for i, record := range page.Items {
		rows[i] = Row{Record: record, Selected: v.selection.Has(record.ID())}
	}

	return Rendered{
		Rows:          rows,
		CurrentPage:   v.page.Page,
		TotalPages:    page.TotalPages,
		TotalItems:    page.TotalItems,
		PageSize:      v.page.PageSize,
		SelectedCount: v.selection.CountIn(visibleIDs),
		Indeterminate: v.selection.IsIndeterminate(visibleIDs),
		FetchFailed:   v.fetchFailed,
	}
}

func (v *View) orderedLocked() []Record {
	return v.pipeline.Recompute(Inputs{
		Source:  v.records,
		Search:  v.search,
		Filters: v.filters,
		Sort:    v.sort,
	})
}

func recordIDs(records []Record) []string {
	ids := make([]string, len(records))
	for i, record := range records {
		ids[i] = record.ID()
	}
	return ids
}

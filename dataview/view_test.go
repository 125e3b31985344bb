package dataview_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wilsonthoma/Ecommerce-sub002/dataview"
	"github.com/Wilsonthoma/Ecommerce-sub002/internal/testutil"
)

// fakeSource serves canned snapshots; fetchFn is swappable per test to
// model failures and slow responses.
type fakeSource struct {
	mu      sync.Mutex
	fetchFn func(ctx context.Context) ([]dataview.Record, error)
}

func (s *fakeSource) Fetch(ctx context.Context) ([]dataview.Record, error) {
	s.mu.Lock()
	fetch := s.fetchFn
	s.mu.Unlock()
	return fetch(ctx)
}

func (s *fakeSource) serve(records []dataview.Record, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchFn = func(ctx context.Context) ([]dataview.Record, error) {
		return records, err
	}
}

func productView(source dataview.Source) *dataview.View {
	return dataview.NewView(dataview.ViewConfig{
		SearchFields: []dataview.FieldAccessor{dataview.Field("name")},
		DefaultSort: dataview.SortSpec{
			KeyName:   "createdAt",
			Key:       dataview.Field("createdAt"),
			Hint:      dataview.CompareDate,
			Direction: dataview.Descending,
		},
		DefaultPageSize: 25,
		Debounce:        20 * time.Millisecond,
		Logger:          testutil.TestLogger(),
		Source:          source,
	})
}

func refreshed(t *testing.T, source *fakeSource) *dataview.View {
	t.Helper()
	view := productView(source)
	require.NoError(t, view.Refresh(context.Background()))
	return view
}

func TestViewRefreshAndRender(t *testing.T) {
	source := &fakeSource{}
	source.serve(testutil.Products(), nil)
	view := refreshed(t, source)

	rendered := view.Render()
	require.Len(t, rendered.Rows, 3)
	// Default sort: newest first.
	assert.Equal(t, "3", rendered.Rows[0].Record.ID())
	assert.Equal(t, 1, rendered.CurrentPage)
	assert.Equal(t, 1, rendered.TotalPages)
	assert.Equal(t, 3, rendered.TotalItems)
	assert.Equal(t, 25, rendered.PageSize)
	assert.False(t, rendered.FetchFailed)
}

func TestViewFetchFailureFallsBackToEmpty(t *testing.T) {
	source := &fakeSource{}
	source.serve(nil, errors.New("upstream down"))

	view := productView(source)
	err := view.Refresh(context.Background())
	require.Error(t, err)

	rendered := view.Render()
	assert.Empty(t, rendered.Rows)
	assert.Equal(t, 0, rendered.TotalItems)
	assert.Equal(t, 1, rendered.TotalPages)
	assert.True(t, rendered.FetchFailed)

	// The view stays interactive; a later refresh recovers.
	source.serve(testutil.Products(), nil)
	require.NoError(t, view.Refresh(context.Background()))
	rendered = view.Render()
	assert.Len(t, rendered.Rows, 3)
	assert.False(t, rendered.FetchFailed)
}

func TestViewStaleFetchResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	stale := testutil.Products()[:1]

	source := &fakeSource{}
	source.serve(stale, nil)
	view := productView(source)

	// First refresh blocks until released; by then a newer refresh has
	// been issued, so its response must be dropped.
	source.mu.Lock()
	source.fetchFn = func(ctx context.Context) ([]dataview.Record, error) {
		<-release
		return stale, nil
	}
	source.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = view.Refresh(context.Background())
	}()

	// Make sure the slow fetch is issued before the fresh one.
	time.Sleep(20 * time.Millisecond)

	source.serve(testutil.Products(), nil)
	require.NoError(t, view.Refresh(context.Background()))

	close(release)
	wg.Wait()

	rendered := view.Render()
	assert.Equal(t, 3, rendered.TotalItems, "stale single-record response must not win")
}

func TestViewFilterChangeResetsPage(t *testing.T) {
	source := &fakeSource{}
	source.serve(manyProducts(97), nil)
	view := refreshed(t, source)

	view.SetPage(4)
	assert.Equal(t, 4, view.Render().CurrentPage)

	view.SetFilters(dataview.FilterSet{dataview.Equality{Field: "status", Value: "active"}})
	assert.Equal(t, 1, view.Render().CurrentPage)
}

func TestViewQueryChangeResetsPage(t *testing.T) {
	source := &fakeSource{}
	source.serve(manyProducts(97), nil)
	view := refreshed(t, source)

	view.SetPage(3)
	require.Equal(t, 3, view.Render().CurrentPage)

	view.SubmitQuery("product")
	assert.Equal(t, 1, view.Render().CurrentPage)
}

func TestViewPageSizeChangeOnlyClamps(t *testing.T) {
	source := &fakeSource{}
	source.serve(manyProducts(97), nil)
	view := refreshed(t, source)

	view.SetPage(2)
	view.SetPageSize(50)
	// Page 2 is still valid for 97 items at size 50: no reset to 1.
	assert.Equal(t, 2, view.Render().CurrentPage)

	view.SetPage(4)
	view.SetPageSize(100)
	// 97 items fit one page of 100; the out-of-range page clamps.
	assert.Equal(t, 1, view.Render().CurrentPage)
}

func TestViewDebouncedQueryCollapses(t *testing.T) {
	source := &fakeSource{}
	source.serve(testutil.Products(), nil)
	view := refreshed(t, source)

	view.SetQuery("w")
	view.SetQuery("wi")
	view.SetQuery("widget")

	require.Eventually(t, func() bool {
		return view.Render().TotalItems == 1
	}, 2*time.Second, 5*time.Millisecond)

	rendered := view.Render()
	assert.Equal(t, "1", rendered.Rows[0].Record.ID())
}

func TestViewClearQueryCancelsPendingDebounce(t *testing.T) {
	source := &fakeSource{}
	source.serve(testutil.Products(), nil)
	view := refreshed(t, source)

	view.SubmitQuery("widget")
	require.Equal(t, 1, view.Render().TotalItems)

	view.SetQuery("gizmo")
	view.ClearQuery()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 3, view.Render().TotalItems)
}

func TestViewSortByTogglesDirection(t *testing.T) {
	source := &fakeSource{}
	source.serve(testutil.Products(), nil)
	view := refreshed(t, source)

	price := dataview.SortSpec{KeyName: "price", Key: dataview.Field("price"), Hint: dataview.CompareNumeric}

	// Switching column starts descending.
	view.SortBy(price)
	rendered := view.Render()
	assert.Equal(t, "2", rendered.Rows[0].Record.ID())

	// Re-sorting the same column toggles to ascending.
	view.SortBy(price)
	rendered = view.Render()
	assert.Equal(t, "1", rendered.Rows[0].Record.ID())
	assert.Equal(t, "3", rendered.Rows[1].Record.ID())
}

func TestViewSelectionMetadata(t *testing.T) {
	source := &fakeSource{}
	source.serve(testutil.Products(), nil)
	view := refreshed(t, source)

	view.SetFilters(dataview.FilterSet{dataview.Equality{Field: "status", Value: "active"}})
	view.SelectAll()

	rendered := view.Render()
	assert.Equal(t, 2, rendered.SelectedCount)
	assert.False(t, rendered.Indeterminate)
	for _, row := range rendered.Rows {
		assert.True(t, row.Selected)
	}

	view.Toggle("1")
	rendered = view.Render()
	assert.Equal(t, 1, rendered.SelectedCount)
	assert.True(t, rendered.Indeterminate)

	// Selection drifts: widening the filter keeps the selected ids but
	// the wider visible set is no longer fully selected.
	view.SetFilters(nil)
	rendered = view.Render()
	assert.Equal(t, 1, rendered.SelectedCount)
	assert.True(t, rendered.Indeterminate)
	assert.ElementsMatch(t, []string{"3"}, view.SelectedIDs())
}

func manyProducts(count int) []dataview.Record {
	records := make([]dataview.Record, count)
	for i := range records {
		records[i] = dataview.Record{
			"id":     strconv.Itoa(i + 1),
			"name":   "Product " + strconv.Itoa(i+1),
			"price":  float64(i),
			"status": "active",
		}
	}
	return records
}

package dataview

// DefaultPageSizeOptions are the page sizes offered by every list screen
// unless the screen configures its own.
var DefaultPageSizeOptions = []int{10, 25, 50, 100}

// PageState is the pagination cursor of a list screen. Page is 1-based.
type PageState struct {
	Page     int
	PageSize int
}

// Clamp constrains the page to [1, totalPages] for the given result size.
// Out-of-range pages are a caller error that is silently corrected so that
// navigation controls stay safe against races between data changes and
// pending page-change events.
func (ps PageState) Clamp(totalItems int) PageState {
	totalPages := TotalPages(totalItems, ps.PageSize)
	if ps.Page < 1 {
		ps.Page = 1
	}
	if ps.Page > totalPages {
		ps.Page = totalPages
	}
	return ps
}

// TotalPages is max(1, ceil(totalItems / pageSize)). An empty result still
// has one (empty) page.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (totalItems + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Page is one visible slice of the ordered result set together with its
// position arithmetic. StartIndex is 0-based inclusive, EndIndex exclusive.
type Page struct {
	Items      []Record
	TotalItems int
	TotalPages int
	StartIndex int
	EndIndex   int
}

// Paginate slices the ordered result set for the page state, clamping the
// requested page rather than failing.
func Paginate(ordered []Record, state PageState) Page {
	totalItems := len(ordered)
	state = state.Clamp(totalItems)

	startIndex := (state.Page - 1) * state.PageSize
	if startIndex > totalItems {
		startIndex = totalItems
	}
	endIndex := startIndex + state.PageSize
	if endIndex > totalItems {
		endIndex = totalItems
	}

	return Page{
		Items:      ordered[startIndex:endIndex],
		TotalItems: totalItems,
		TotalPages: TotalPages(totalItems, state.PageSize),
		StartIndex: startIndex,
		EndIndex:   endIndex,
	}
}

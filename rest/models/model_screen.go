package models

// ColumnModel describes one table column of a screen: the upstream field
// name and the human readable header title.
type ColumnModel struct {
	Field    string `json:"field"`
	Title    string `json:"title"`
	Sortable bool   `json:"sortable"`
}

// ScreenRow is one visible row of a rendered list screen.
type ScreenRow struct {
	Record   map[string]interface{} `json:"record"`
	Selected bool                   `json:"selected"`
}

// ScreenResponse is the rendered snapshot of a list screen: the visible
// page plus pagination and selection metadata. FetchFailed marks the
// zeroed fallback after an upstream error.
type ScreenResponse struct {
	Columns       []ColumnModel `json:"columns"`
	Rows          []ScreenRow   `json:"rows"`
	CurrentPage   int           `json:"currentPage"`
	TotalPages    int           `json:"totalPages"`
	TotalItems    int           `json:"totalItems"`
	PageSize      int           `json:"pageSize"`
	SelectedCount int           `json:"selectedCount"`
	Indeterminate bool          `json:"indeterminate"`
	FetchFailed   bool          `json:"fetchFailed,omitempty"`
}

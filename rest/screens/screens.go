// Package screens holds the per-screen configuration of the back office:
// which fields a screen searches over, which filters it exposes as query
// parameters, its table columns and its default ordering. The engine itself
// is schema-free; this package is where shape is pinned down.
package screens

import (
	"net/url"
	"strconv"
	"time"

	"github.com/Wilsonthoma/Ecommerce-sub002/config"
	"github.com/Wilsonthoma/Ecommerce-sub002/dataview"
	"github.com/Wilsonthoma/Ecommerce-sub002/rest/models"
)

// FilterKind selects how a filter definition reads its query parameters.
type FilterKind int

const (
	Equality FilterKind = iota
	NumericRange
	DateRange
)

// FilterDefinition exposes one record field as a screen filter. The query
// parameter name is derived from the field via the naming convention;
// Param overrides the derived base when the two diverge (e.g. "created"
// instead of "created_at"). Range kinds read <base>_min/<base>_max,
// date kinds <base>_after/<base>_before.
type FilterDefinition struct {
	Field string
	Kind  FilterKind
	Param string
}

// Column is one table column of a screen.
type Column struct {
	Field    string
	Accessor dataview.FieldAccessor
	Hint     dataview.TypeHint
	Sortable bool
}

// Definition is the static configuration of one list screen.
type Definition struct {
	Name     string
	Resource string

	SearchFields []dataview.FieldAccessor
	Columns      []Column
	Filters      []FilterDefinition

	DefaultSortField string
	DefaultSortDir   dataview.Direction
}

func (d Definition) column(field string) (Column, bool) {
	for _, col := range d.Columns {
		if col.Field == field {
			return col, true
		}
	}
	return Column{}, false
}

// DefaultSortSpec returns the ordering a screen starts with.
func (d Definition) DefaultSortSpec() dataview.SortSpec {
	col, found := d.column(d.DefaultSortField)
	if !found {
		return dataview.SortSpec{}
	}
	return dataview.SortSpec{
		KeyName:   col.Field,
		Key:       col.Accessor,
		Direction: d.DefaultSortDir,
		Hint:      col.Hint,
	}
}

// SortSpecFor resolves a sort query parameter (snake_case) to a sortable
// column of the screen.
func (d Definition) SortSpecFor(param string, naming config.NamingConvention) (dataview.SortSpec, bool) {
	field := naming.ToAPIField(param)
	col, found := d.column(field)
	if !found || !col.Sortable {
		return dataview.SortSpec{}, false
	}
	return dataview.SortSpec{
		KeyName: col.Field,
		Key:     col.Accessor,
		Hint:    col.Hint,
	}, true
}

// CriteriaFromQuery reads the screen's filter parameters out of a request
// query. Absent parameters contribute no criterion.
func (d Definition) CriteriaFromQuery(values url.Values, naming config.NamingConvention) dataview.FilterSet {
	var filters dataview.FilterSet

	for _, def := range d.Filters {
		base := def.Param
		if base == "" {
			base = naming.ToQueryParam(def.Field)
		}

		switch def.Kind {
		case Equality:
			if value := values.Get(base); value != "" {
				filters = append(filters, dataview.Equality{Field: def.Field, Value: value})
			}
		case NumericRange:
			criterion := dataview.NumericRange{
				Field: def.Field,
				Min:   parseFloat(values.Get(base + "_min")),
				Max:   parseFloat(values.Get(base + "_max")),
			}
			if criterion.Present() {
				filters = append(filters, criterion)
			}
		case DateRange:
			criterion := dataview.DateRange{
				Field: def.Field,
				Start: parseTime(values.Get(base + "_after")),
				End:   parseTime(values.Get(base + "_before")),
			}
			if criterion.Present() {
				filters = append(filters, criterion)
			}
		}
	}

	return filters
}

// ColumnModels renders the screen's columns with titles derived from the
// naming convention, for the table header of the front end.
func (d Definition) ColumnModels(naming config.NamingConvention) []models.ColumnModel {
	columns := make([]models.ColumnModel, len(d.Columns))
	for i, col := range d.Columns {
		columns[i] = models.ColumnModel{
			Field:    col.Field,
			Title:    naming.ToColumnTitle(col.Field),
			Sortable: col.Sortable,
		}
	}
	return columns
}

func parseFloat(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, ok := dataview.TimeOf(value)
	if !ok {
		return nil
	}
	return &t
}

// Screen pairs a definition with the live view that serves it.
type Screen struct {
	Definition Definition
	View       *dataview.View
}

// New builds the view for a definition against the given source.
func New(def Definition, cfg config.Config, source dataview.Source) *Screen {
	return &Screen{
		Definition: def,
		View: dataview.NewView(dataview.ViewConfig{
			SearchFields:    def.SearchFields,
			DefaultSort:     def.DefaultSortSpec(),
			PageSizeOptions: cfg.PageSizeOptions(),
			DefaultPageSize: cfg.DefaultPageSize(),
			Debounce:        cfg.SearchDebounce(),
			Logger:          cfg.Logger().With("screen", def.Name),
			Source:          source,
		}),
	}
}

// Registry returns the screen definitions of the back office.
func Registry() map[string]Definition {
	return map[string]Definition{
		"products": {
			Name:     "products",
			Resource: "products",
			SearchFields: []dataview.FieldAccessor{
				dataview.Field("name"),
				dataview.Field("tags"),
			},
			Columns: []Column{
				{Field: "id", Accessor: dataview.Field("id"), Hint: dataview.CompareNumeric, Sortable: true},
				{Field: "name", Accessor: dataview.Field("name"), Hint: dataview.CompareString, Sortable: true},
				{Field: "price", Accessor: dataview.Field("price"), Hint: dataview.CompareNumeric, Sortable: true},
				{Field: "stock", Accessor: dataview.Field("stock"), Hint: dataview.CompareNumeric, Sortable: true},
				{Field: "status", Accessor: dataview.Field("status"), Hint: dataview.CompareString, Sortable: true},
				{Field: "createdAt", Accessor: dataview.Field("createdAt"), Hint: dataview.CompareDate, Sortable: true},
				{Field: "tags", Accessor: dataview.Field("tags"), Hint: dataview.CompareString, Sortable: false},
			},
			Filters: []FilterDefinition{
				{Field: "status", Kind: Equality},
				{Field: "price", Kind: NumericRange},
				{Field: "stock", Kind: NumericRange},
				{Field: "createdAt", Kind: DateRange, Param: "created"},
			},
			DefaultSortField: "createdAt",
			DefaultSortDir:   dataview.Descending,
		},
		"orders": {
			Name:     "orders",
			Resource: "orders",
			SearchFields: []dataview.FieldAccessor{
				dataview.Field("orderNumber"),
				dataview.NestedField("customer", "name"),
				dataview.NestedField("customer", "email"),
			},
			Columns: []Column{
				{Field: "orderNumber", Accessor: dataview.Field("orderNumber"), Hint: dataview.CompareNumeric, Sortable: true},
				{Field: "totalAmount", Accessor: dataview.Field("totalAmount"), Hint: dataview.CompareNumeric, Sortable: true},
				{Field: "status", Accessor: dataview.Field("status"), Hint: dataview.CompareString, Sortable: true},
				{Field: "createdAt", Accessor: dataview.Field("createdAt"), Hint: dataview.CompareDate, Sortable: true},
				{Field: "customerName", Accessor: dataview.NestedField("customer", "name"), Hint: dataview.CompareString, Sortable: true},
			},
			Filters: []FilterDefinition{
				{Field: "status", Kind: Equality},
				{Field: "totalAmount", Kind: NumericRange, Param: "total"},
				{Field: "createdAt", Kind: DateRange, Param: "created"},
			},
			DefaultSortField: "createdAt",
			DefaultSortDir:   dataview.Descending,
		},
		"users": {
			Name:     "users",
			Resource: "users",
			SearchFields: []dataview.FieldAccessor{
				dataview.Field("name"),
				dataview.Field("email"),
			},
			Columns: []Column{
				{Field: "name", Accessor: dataview.Field("name"), Hint: dataview.CompareString, Sortable: true},
				{Field: "email", Accessor: dataview.Field("email"), Hint: dataview.CompareString, Sortable: true},
				{Field: "role", Accessor: dataview.Field("role"), Hint: dataview.CompareString, Sortable: true},
				{Field: "createdAt", Accessor: dataview.Field("createdAt"), Hint: dataview.CompareDate, Sortable: true},
			},
			Filters: []FilterDefinition{
				{Field: "role", Kind: Equality},
				{Field: "createdAt", Kind: DateRange, Param: "created"},
			},
			DefaultSortField: "createdAt",
			DefaultSortDir:   dataview.Descending,
		},
	}
}

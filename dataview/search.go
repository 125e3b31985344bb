package dataview

import "strings"

// SearchSpec describes the free-text search of a list screen: the raw user
// query and the set of fields it is matched against.
type SearchSpec struct {
	Query  string
	Fields []FieldAccessor
}

// Matches reports whether the record matches the search query. The query is
// trimmed and lower-cased; an empty query matches every record. A non-empty
// query matches when the lower-cased string form of at least one configured
// field contains it as a substring. Pure boolean gate, no tokenization and
// no ranking.
func (s SearchSpec) Matches(r Record) bool {
	query := strings.ToLower(strings.TrimSpace(s.Query))
	if query == "" {
		return true
	}

	for _, field := range s.Fields {
		value := strings.ToLower(StringOf(field(r)))
		if strings.Contains(value, query) {
			return true
		}
	}
	return false
}

// Package dataview implements the tabular data view engine shared by every
// back-office list screen: free-text search, typed filtering, stable
// sorting, pagination, row selection and bulk actions over an in-memory
// collection snapshot fetched from the store API.
package dataview

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is one row of a managed collection (product, order or user). The
// engine enforces no schema; it is generic over record shape and relies on
// the field accessors supplied by the screen configuration.
type Record map[string]interface{}

// ID returns the string form of the record's "id" field, or the empty
// string when the record has none.
func (r Record) ID() string {
	value, found := r["id"]
	if !found || value == nil {
		return ""
	}
	return StringOf(value)
}

// FieldAccessor extracts a single field value from a record.
type FieldAccessor func(Record) interface{}

// Field returns an accessor for a top level field.
func Field(name string) FieldAccessor {
	return func(r Record) interface{} {
		return r[name]
	}
}

// NestedField returns an accessor that walks nested objects, e.g.
// NestedField("customer", "email") reads record["customer"]["email"].
func NestedField(names ...string) FieldAccessor {
	return func(r Record) interface{} {
		var value interface{} = map[string]interface{}(r)
		for _, name := range names {
			obj, ok := value.(map[string]interface{})
			if !ok {
				return nil
			}
			value = obj[name]
		}
		return value
	}
}

// arrayJoinSeparator is used to flatten array valued fields before search
// matching, mirroring how the rendered cell displays them.
const arrayJoinSeparator = ", "

// StringOf coerces an arbitrary field value to its string form. Arrays are
// joined element-wise, nil becomes the empty string and numbers render
// without a trailing exponent.
func StringOf(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case []interface{}:
		parts := make([]string, len(v))
		for i := range v {
			parts[i] = StringOf(v[i])
		}
		return strings.Join(parts, arrayJoinSeparator)
	case []string:
		return strings.Join(v, arrayJoinSeparator)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// NumberOf coerces a field value to float64. Missing and non-numeric values
// coerce to 0 so that a single malformed record cannot halt filtering or
// sorting of the rest of the collection.
func NumberOf(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// dateFormats are tried in order when parsing string dates coming from the
// upstream API.
var dateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TimeOf parses a field value as a timestamp. The second return value
// reports whether parsing succeeded; callers choose their own fallback
// (filtering defaults to now, sorting to the zero epoch).
func TimeOf(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case float64:
		// Numeric timestamps arrive as epoch milliseconds.
		return time.UnixMilli(int64(v)), true
	case int64:
		return time.UnixMilli(v), true
	case string:
		for _, format := range dateFormats {
			if t, err := time.Parse(format, v); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

package dataview

import (
	"sort"
	"strings"
)

// Direction of a sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// TypeHint selects the comparison used by a sort key.
type TypeHint int

const (
	CompareString TypeHint = iota
	CompareNumeric
	CompareDate
)

// SortSpec is the single active ordering of a list screen. KeyName
// identifies the column so the view can detect same-column re-sorts; Key
// extracts the compared value.
type SortSpec struct {
	KeyName   string
	Key       FieldAccessor
	Direction Direction
	Hint      TypeHint
}

// Compare returns -1, 0 or 1 for the pair of records under the spec.
// String comparison is case-insensitive; numeric and date comparison coerce
// malformed values to 0 and the zero epoch respectively. Descending negates
// the ascending result.
func (s SortSpec) Compare(a, b Record) int {
	result := s.compareAscending(a, b)
	if s.Direction == Descending {
		return -result
	}
	return result
}

func (s SortSpec) compareAscending(a, b Record) int {
	switch s.Hint {
	case CompareNumeric:
		return compareFloat(NumberOf(s.Key(a)), NumberOf(s.Key(b)))
	case CompareDate:
		timeA, okA := TimeOf(s.Key(a))
		timeB, okB := TimeOf(s.Key(b))
		var unixA, unixB int64
		if okA {
			unixA = timeA.UnixMilli()
		}
		if okB {
			unixB = timeB.UnixMilli()
		}
		return compareFloat(float64(unixA), float64(unixB))
	default:
		return strings.Compare(
			strings.ToLower(StringOf(s.Key(a))),
			strings.ToLower(StringOf(s.Key(b))))
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SortRecords orders records in place under the spec. The sort is
// explicitly stable: records that compare equal keep their relative order
// from the source collection.
func SortRecords(records []Record, spec SortSpec) {
	if spec.Key == nil {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		return spec.Compare(records[i], records[j]) < 0
	})
}

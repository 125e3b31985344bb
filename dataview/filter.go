package dataview

import "time"

// Criterion is a single typed filter constraint. A criterion that is not
// Present imposes no constraint and never excludes a record.
type Criterion interface {
	// Present reports whether the criterion carries a value or bound.
	Present() bool
	// Matches reports whether the record passes the criterion. Only
	// called when Present.
	Matches(r Record) bool
}

// FilterSet is an ordered collection of criteria combined with AND
// semantics: a record passes iff it passes every present criterion.
type FilterSet []Criterion

func (fs FilterSet) Matches(r Record) bool {
	for _, criterion := range fs {
		if !criterion.Present() {
			continue
		}
		if !criterion.Matches(r) {
			return false
		}
	}
	return true
}

// Equality passes when the record field equals the expected value. String
// values compare on their string forms, numeric values numerically.
type Equality struct {
	Field string
	Value interface{}
}

func (c Equality) Present() bool {
	if c.Value == nil {
		return false
	}
	if s, ok := c.Value.(string); ok {
		return s != ""
	}
	return true
}

func (c Equality) Matches(r Record) bool {
	value := r[c.Field]
	switch expected := c.Value.(type) {
	case string:
		return StringOf(value) == expected
	case float64, float32, int, int64:
		return NumberOf(value) == NumberOf(expected)
	case bool:
		actual, ok := value.(bool)
		return ok && actual == expected
	default:
		return StringOf(value) == StringOf(expected)
	}
}

// NumericRange passes when min <= numeric(field) <= max. An absent bound is
// unbounded; a non-numeric field value is treated as 0.
type NumericRange struct {
	Field string
	Min   *float64
	Max   *float64
}

func (c NumericRange) Present() bool {
	return c.Min != nil || c.Max != nil
}

func (c NumericRange) Matches(r Record) bool {
	value := NumberOf(r[c.Field])
	if c.Min != nil && value < *c.Min {
		return false
	}
	if c.Max != nil && value > *c.Max {
		return false
	}
	return true
}

// DateRange passes when the record's date field falls within [start, end]
// inclusive. An absent bound is unbounded; an unparsable or missing date is
// treated as the current time.
type DateRange struct {
	Field string
	Start *time.Time
	End   *time.Time

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func (c DateRange) Present() bool {
	return c.Start != nil || c.End != nil
}

func (c DateRange) Matches(r Record) bool {
	value, ok := TimeOf(r[c.Field])
	if !ok {
		if c.now != nil {
			value = c.now()
		} else {
			value = time.Now()
		}
	}
	if c.Start != nil && value.Before(*c.Start) {
		return false
	}
	if c.End != nil && value.After(*c.End) {
		return false
	}
	return true
}

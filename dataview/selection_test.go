package dataview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var fiveIDs = []string{"1", "2", "3", "4", "5"}

func TestSelectionToggle(t *testing.T) {
	selection := NewSelection()

	selection.Toggle("1")
	assert.True(t, selection.Has("1"))
	assert.Equal(t, 1, selection.Count())

	selection.Toggle("1")
	assert.False(t, selection.Has("1"))
	assert.Equal(t, 0, selection.Count())
}

func TestSelectAllThenToggleIsIndeterminate(t *testing.T) {
	selection := NewSelection()

	selection.SelectAll(fiveIDs)
	assert.Equal(t, 5, selection.Count())
	assert.False(t, selection.IsIndeterminate(fiveIDs))

	selection.Toggle("3")
	assert.Equal(t, 4, selection.Count())
	assert.True(t, selection.IsIndeterminate(fiveIDs))

	selection.SelectAll(fiveIDs)
	assert.False(t, selection.IsIndeterminate(fiveIDs))
}

func TestSelectAllReplacesInsteadOfUnions(t *testing.T) {
	selection := NewSelection()
	selection.Toggle("old")

	selection.SelectAll([]string{"1", "2"})
	assert.False(t, selection.Has("old"))
	assert.Equal(t, 2, selection.Count())
}

func TestSelectionEmptyIsNeverIndeterminate(t *testing.T) {
	selection := NewSelection()
	assert.False(t, selection.IsIndeterminate(fiveIDs))
	assert.False(t, selection.IsIndeterminate(nil))
}

func TestSelectionSurvivesFilterShrink(t *testing.T) {
	// Ids selected while visible stay selected when the filter narrows;
	// only the visible intersection is reported for rendering.
	selection := NewSelection()
	selection.SelectAll(fiveIDs)

	narrowed := []string{"1", "2"}
	assert.Equal(t, 5, selection.Count())
	assert.Equal(t, 2, selection.CountIn(narrowed))
	assert.True(t, selection.IsIndeterminate(narrowed))
}

func TestSelectionClear(t *testing.T) {
	selection := NewSelection()
	selection.SelectAll(fiveIDs)

	selection.Clear()
	assert.Equal(t, 0, selection.Count())
	assert.Empty(t, selection.IDs())
}

func TestSelectionIDsStableOrder(t *testing.T) {
	selection := NewSelection()
	selection.Toggle("b")
	selection.Toggle("a")
	selection.Toggle("c")

	assert.Equal(t, []string{"a", "b", "c"}, selection.IDs())
}

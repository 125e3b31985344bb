package models

// SelectionRequest mutates the selection state of a list screen. toggle
// flips a single id, select_all replaces the selection with the currently
// filtered rows, clear empties it.
type SelectionRequest struct {
	Action string `json:"action" validate:"required,oneof=toggle select_all clear"`
	ID     string `json:"id,omitempty" validate:"required_if=Action toggle"`
}

package config

import (
	"fmt"
)

// BulkActions is a bitmask of the bulk operations a deployment allows
// operators to run from list screens.
type BulkActions int

const (
	BulkDelete BulkActions = 1 << iota
	BulkSetStatus
)

func Actions(actions ...string) (BulkActions, error) {
	var a BulkActions
	err := a.Add(actions...)
	return a, err
}

func (a *BulkActions) Set(actions BulkActions)             { *a |= actions }
func (a *BulkActions) Clear(actions BulkActions)           { *a &= ^actions }
func (a BulkActions) IsSupported(actions BulkActions) bool { return a&actions != 0 }

func (a *BulkActions) Add(actions ...string) error {
	for _, action := range actions {
		switch action {
		case "delete":
			a.Set(BulkDelete)
		case "set_status":
			a.Set(BulkSetStatus)
		default:
			return fmt.Errorf("invalid bulk action: %s", action)
		}
	}
	return nil
}

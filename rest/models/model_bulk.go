package models

import (
	"github.com/Wilsonthoma/Ecommerce-sub002/dataview"
)

// BulkRequest applies one action to a set of record ids.
type BulkRequest struct {
	Action string `json:"action" validate:"required,oneof=delete set_status"`

	IDs []string `json:"ids" validate:"required,min=1"`

	// Fields carries the action payload, e.g. the target status for
	// set_status. Ignored for delete.
	Fields map[string]interface{} `json:"fields,omitempty"`
}

// StatusChange is the decoded payload of a set_status action.
type StatusChange struct {
	Status string `mapstructure:"status" validate:"required"`
}

// BulkResponse reports one outcome per id plus aggregate counts. A partial
// failure is reported as such, never rolled up into a single boolean.
type BulkResponse struct {
	Results   []dataview.BulkResult `json:"results"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

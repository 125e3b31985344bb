package models

// RecordUpdate is a partial field change applied to a single record and
// passed through to the store API.
type RecordUpdate struct {
	Fields map[string]interface{} `json:"fields" validate:"required,min=1"`
}

// MutationResponse acknowledges a single-record mutation.
type MutationResponse struct {
	Success bool `json:"success"`
}

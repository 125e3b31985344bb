// Package errors holds the error taxonomy of the REST surface. Handlers
// switch on the concrete type to pick the response status.
package errors

// NotFoundError reports that the store API has no record or resource for
// the request.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string {
	return e.msg
}

func NewNotFoundError(text string) error {
	return &NotFoundError{text}
}

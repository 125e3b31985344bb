package errors

import "fmt"

// UpstreamError reports a failed call to the store API, either a transport
// failure or a non-success envelope. It is recoverable: list screens fall
// back to an empty collection and stay interactive.
type UpstreamError struct {
	Status int
	msg    string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("store api: %s (status %d)", e.msg, e.Status)
	}
	return "store api: " + e.msg
}

func NewUpstreamError(text string, status int) error {
	return &UpstreamError{Status: status, msg: text}
}

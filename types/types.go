// types package contains the public API types
// that are shared between the REST surface and the endpoint wiring
package types

import "net/http"

// Route represents a request route to be served
type Route struct {
	Method  string
	Pattern string
	Handler http.Handler
}

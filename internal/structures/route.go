package structures

import "net/http"

// Route is one method-qualified ServeMux pattern and its handler.
type Route struct {
	Url     string
	Handler http.Handler
}

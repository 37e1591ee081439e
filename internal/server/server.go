// package server contains middleware & handlers for the song API
package server

import (
	"net/http"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
// Common middleware includes logging, authentication, CORS, panic recovery, etc.
type Middleware func(http.Handler) http.Handler

// Route is one method + pattern pair served by a [Handler].
type Route struct {
	Method  string
	Pattern string
	Handler http.Handler
}

// Handler defines the interface for groups of related endpoints.
// Implementations return every route they serve so registration stays next to the handler code.
type Handler interface {
	Routes() []Route // Routes returns the method, pattern and handler for each endpoint
}

// Router defines the interface for HTTP routing and middleware management.
// Implementations register handlers, apply middleware, and configure the HTTP server.
type Router interface {
	Use(middleware ...Middleware)                     // Use adds middleware to the router's middleware stack
	Handle(method, path string, handler http.Handler) // Handle registers a handler for the specified method and path
	Handler(handler Handler)                          // Handler registers every route of a custom Handler implementation
	ServeHTTP(w http.ResponseWriter, r *http.Request) // ServeHTTP implements http.Handler for the entire router
}

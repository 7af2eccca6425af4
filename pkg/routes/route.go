// Package routes declares HTTP routes as nested groups and registers them
// on a ServeMux.
package routes

import "net/http"

// Route binds a method and a path pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

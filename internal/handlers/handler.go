package handlers

import "github.com/go-chi/chi/v5"

// Handler is implemented by every resource handler and wires its routes
// into the shared router.
type Handler interface {
	Register(router chi.Router)
}

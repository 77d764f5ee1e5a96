package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/anima/internal/http/health"
	"github.com/janisto/anima/internal/http/prompt"
)

// Register wires all HTTP routes. Health stays a plain chi route so it is
// left out of the OpenAPI document.
func Register(router chi.Router, api huma.API, version string) {
	router.Get("/health", health.Handler(version))
	prompt.Register(api)
}

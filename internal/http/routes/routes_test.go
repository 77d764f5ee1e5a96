package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
)

func TestRegisterWiresAllRoutes(t *testing.T) {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))
	Register(router, api, "test")

	tests := []struct {
		path   string
		status int
	}{
		{"/", http.StatusOK},
		{"/prompt-v1", http.StatusOK},
		{"/prompt-v2", http.StatusOK},
		{"/health", http.StatusOK},
		{"/unknown-path", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.Code)
			}
		})
	}

	if _, ok := api.OpenAPI().Paths["/health"]; ok {
		t.Fatal("expected /health to stay out of the OpenAPI document")
	}
}

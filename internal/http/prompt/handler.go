// Package prompt serves the fixed prompt texts as plain-text responses.
package prompt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/anima/internal/platform/logging"
	promptdata "github.com/janisto/anima/internal/prompt"
)

// ContentType is sent with every prompt body.
const ContentType = "text/plain; charset=utf-8"

// Output writes Body verbatim; huma skips serialization for []byte bodies.
type Output struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// Register adds a GET operation for each entry in the prompt table.
func Register(api huma.API) {
	for _, route := range promptdata.Routes() {
		huma.Register(api, huma.Operation{
			OperationID: route.OperationID,
			Method:      http.MethodGet,
			Path:        route.Path,
			Summary:     route.Summary,
			Tags:        []string{"Prompts"},
			Responses: map[string]*huma.Response{
				"200": {
					Description: "Literal text",
					Content: map[string]*huma.MediaType{
						"text/plain": {
							Schema:  &huma.Schema{Type: huma.TypeString},
							Example: route.Body,
						},
					},
				},
			},
		}, handler(route.Path))
	}
}

// handler resolves the body from the table on every request.
func handler(path string) func(context.Context, *struct{}) (*Output, error) {
	return func(ctx context.Context, _ *struct{}) (*Output, error) {
		route, ok := promptdata.Lookup(path)
		if !ok {
			return nil, huma.Error404NotFound("no prompt for " + path)
		}
		applog.LogInfo(ctx, "prompt served", zap.String("path", route.Path))
		return &Output{ContentType: ContentType, Body: []byte(route.Body)}, nil
	}
}

// Package prompt holds the fixed table of paths and the literal text served for each.
package prompt

// Route pairs a request path with the body served verbatim for it.
type Route struct {
	Path        string
	Body        string
	OperationID string
	Summary     string
}

var table = [...]Route{
	{
		Path:        "/",
		Body:        "Hello, World!",
		OperationID: "get-root",
		Summary:     "Greeting",
	},
	{
		Path:        "/prompt-v1",
		Body:        "This is the prompt v1",
		OperationID: "get-prompt-v1",
		Summary:     "Prompt, version 1",
	},
	{
		Path:        "/prompt-v2",
		Body:        "This is the prompt v2",
		OperationID: "get-prompt-v2",
		Summary:     "Prompt, version 2",
	},
}

// Routes returns a copy of the route table in declaration order.
func Routes() []Route {
	out := make([]Route, len(table))
	copy(out, table[:])
	return out
}

// Lookup finds the route registered for path. Matching is exact.
func Lookup(path string) (Route, bool) {
	for _, r := range table {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

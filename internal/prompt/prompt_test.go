package prompt

import "testing"

func TestRoutesTable(t *testing.T) {
	want := []struct {
		path string
		body string
	}{
		{"/", "Hello, World!"},
		{"/prompt-v1", "This is the prompt v1"},
		{"/prompt-v2", "This is the prompt v2"},
	}

	got := Routes()
	if len(got) != len(want) {
		t.Fatalf("expected %d routes, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Path != w.path {
			t.Errorf("route %d: expected path %q, got %q", i, w.path, got[i].Path)
		}
		if got[i].Body != w.body {
			t.Errorf("route %d: expected body %q, got %q", i, w.body, got[i].Body)
		}
		if got[i].OperationID == "" {
			t.Errorf("route %d: expected operation ID", i)
		}
	}
}

func TestRoutesReturnsCopy(t *testing.T) {
	first := Routes()
	first[0].Body = "mutated"

	second := Routes()
	if second[0].Body != "Hello, World!" {
		t.Fatalf("expected table to be unaffected by caller mutation, got %q", second[0].Body)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{"root", "/", "Hello, World!", true},
		{"prompt v1", "/prompt-v1", "This is the prompt v1", true},
		{"prompt v2", "/prompt-v2", "This is the prompt v2", true},
		{"unknown", "/unknown-path", "", false},
		{"trailing slash", "/prompt-v1/", "", false},
		{"case differs", "/Prompt-V1", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Lookup(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if r.Body != tt.want {
				t.Fatalf("Lookup(%q) body = %q, want %q", tt.path, r.Body, tt.want)
			}
		})
	}
}

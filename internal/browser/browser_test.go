package browser

import "testing"

func TestSearchURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		query    string
		want     string
		wantErr  bool
	}{
		{name: "google", template: "https://www.google.com/search?q=%s", query: "go modules", want: "https://www.google.com/search?q=go+modules"},
		{name: "trims and escapes", template: "https://duckduckgo.com/?q=%s", query: "  a&b=c ", want: "https://duckduckgo.com/?q=a%26b%3Dc"},
		{name: "no placeholder", template: "https://example.com/s?q=", query: "x", want: "https://example.com/s?q=x"},
		{name: "empty query", template: "https://example.com/?q=%s", query: "   ", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := SearchURL(tt.template, tt.query)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSystemOpenRejectsEmpty(t *testing.T) {
	if err := (System{}).Open("  "); err == nil {
		t.Fatal("expected error")
	}
}

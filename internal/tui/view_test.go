package tui

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		width int
		want  string
	}{
		{"fits", "editor", 10, "editor"},
		{"exact", "editor", 6, "editor"},
		{"cut ascii", "long window title", 4, "long"},
		{"cut multibyte", "héllo wörld", 7, "héllo w"},
		{"cut inside cjk", "日本語タイトル", 3, "日本語"},
		{"zero width", "editor", 0, ""},
		{"negative width", "editor", -3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateTitle(tt.title, tt.width)
			if got != tt.want {
				t.Errorf("truncateTitle(%q, %d) = %q, want %q", tt.title, tt.width, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateTitle(%q, %d) produced invalid UTF-8", tt.title, tt.width)
			}
		})
	}
}

package cmd

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short name unchanged", "postgres", 28, "postgres"},
		{"exact fit unchanged", strings.Repeat("x", 28), 28, strings.Repeat("x", 28)},
		{"long name truncated with ellipsis", strings.Repeat("x", 40), 28, strings.Repeat("x", 27) + "…"},
		{"multibyte name cut on rune boundary", strings.Repeat("αβ", 20), 28, strings.Repeat("αβ", 13) + "α…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateName(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncateName(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateName(%q, %d) produced invalid UTF-8: %q", tt.in, tt.max, got)
			}
		})
	}
}

package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Yesterday", "Yesterday"},
		{"separators", "AC/DC: Back\\In*Black", "AC-DC- Back-In-Black"},
		{"dropped", "What? \"Why\" <now>|", "What Why now"},
		{"whitespace", "  lots   of\tspace ", "lots of space"},
		{"dots", "..hidden..", "hidden"},
		{"empty", "???", "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.in, "fallback"); got != tt.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

package textutil

import "testing"

func TestCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello,", "hello"},
		{"DON'T", "dont"},
		{"  spaced  ", "spaced"},
		{"...", ""},
		{"", ""},
		{"naïve", "naïve"},
		{"ÉCOLE", "école"},
		{"snake_case", "snake_case"},
		{"Rock&Roll", "rockroll"},
		{"123!", "123"},
		{"½", "½"},
		{"♪", ""},
		{"a b", "a b"},
		{"(Chorus)", "chorus"},
		{"İstanbul", "istanbul"},
	}

	for _, tt := range tests {
		got := Canonical(tt.input)
		if got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	inputs := []string{
		"Hello,", "DON'T", "ÉCOLE", "İstanbul", "ΣΊΣΥΦΟΣ", "Straße!", "  x  ", "½", "♪♪",
		"already", "two words",
	}
	for _, input := range inputs {
		once := Canonical(input)
		twice := Canonical(once)
		if once != twice {
			t.Errorf("Canonical not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestCanonicalEmptyTokensMatch(t *testing.T) {
	if Canonical("!!!") != Canonical("--") {
		t.Fatal("expected punctuation-only words to share the empty token")
	}
}

func TestCanonicalAll(t *testing.T) {
	got := CanonicalAll([]string{"A,", "b!", "?"})
	want := []string{"a", "b", ""}
	if len(got) != len(want) {
		t.Fatalf("CanonicalAll length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsWordRune(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '7', '_', 'é', '語'} {
		if !IsWordRune(r) {
			t.Errorf("IsWordRune(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{' ', '\'', '-', '!', '\u0301'} {
		if IsWordRune(r) {
			t.Errorf("IsWordRune(%q) = true, want false", r)
		}
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  hello   world ", []string{"hello", "world"}},
		{"a\x1cb\x1dc\x1ed\x1fe", []string{"a", "b", "c", "d", "e"}},
		{"tab\there\u3000wide\u00a0nbsp", []string{"tab", "here", "wide", "nbsp"}},
		{"zero\u200bwidth", []string{"zero\u200bwidth"}},
	}
	for _, tt := range tests {
		got := Fields(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("Fields(%q) = %q, want %q", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Fields(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
	if IsFieldSeparator('\x1b') {
		t.Error("escape is not a field separator")
	}
}

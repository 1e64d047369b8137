package similarity

import "testing"

func TestDistance_Basic(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"empty strings", "", "", 0},
		{"identical", "test", "test", 0},
		{"empty vs non-empty", "", "hello", 5},
		{"kitten to sitting", "kitten", "sitting", 3},
		{"saturday to sunday", "saturday", "sunday", 3},
		{"book to back", "book", "back", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance([]rune(tt.a), []rune(tt.b))
			if got != tt.expected {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestDistance_Unicode(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"accented to plain", "café", "cafe", 1},
		{"emoji identical", "👍🎉", "👍🎉", 0},
		{"cjk single edit", "日本語", "日本後", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance([]rune(tt.a), []rune(tt.b))
			if got != tt.expected {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"flaw", "lawn"},
		{"", "abc"},
		{"gumbo", "gambol"},
	}
	for _, p := range pairs {
		a, b := Distance([]rune(p[0]), []rune(p[1])), Distance([]rune(p[1]), []rune(p[0]))
		if a != b {
			t.Errorf("Distance(%q, %q)=%d != Distance(%q, %q)=%d", p[0], p[1], a, p[1], p[0], b)
		}
	}
}

func TestNormalizedDistance_LSeq(t *testing.T) {
	got := NormalizedDistance(NormLSeq, []rune("kitten"), []rune("sitting"))
	want := 3.0 / 7.0
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("NormalizedDistance(LSeq) = %v, want %v", got, want)
	}
}

func TestNormalizedDistance_EmptyPairs(t *testing.T) {
	if got := NormalizedDistance(NormLSeq, nil, nil); got != 0.0 {
		t.Errorf("NormalizedDistance(empty, empty) = %v, want 0.0", got)
	}
	if got := NormalizedDistance(NormLSeq, []rune("x"), nil); got != 1.0 {
		t.Errorf("NormalizedDistance(x, empty) = %v, want 1.0", got)
	}
}

func TestNormalizedDistance_LAlign(t *testing.T) {
	// Identical sequences always normalize to 0 regardless of method.
	got := NormalizedDistance(NormLAlign, []rune("abcdef"), []rune("abcdef"))
	if got != 0.0 {
		t.Errorf("NormalizedDistance(LAlign, identical) = %v, want 0.0", got)
	}
}

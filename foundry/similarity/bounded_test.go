package similarity

import "testing"

func TestBoundedLevenshtein_Bound0(t *testing.T) {
	if got := BoundedLevenshtein(0, []rune("abc"), []rune("abc")); got != 0 {
		t.Errorf("bound 0 identical = %d, want 0", got)
	}
	if got := BoundedLevenshtein(0, []rune("abc"), []rune("abd")); got != 1 {
		t.Errorf("bound 0 one diff = %d, want 1", got)
	}
	if got := BoundedLevenshtein(0, []rune("ab"), []rune("abc")); got != MaxDistance {
		t.Errorf("bound 0 length mismatch = %d, want MaxDistance", got)
	}
}

func TestBoundedLevenshtein_Bound1(t *testing.T) {
	if got := BoundedLevenshtein(1, []rune("abc"), []rune("abc")); got != 0 {
		t.Errorf("bound 1 identical = %d, want 0", got)
	}
	if got := BoundedLevenshtein(1, []rune("abc"), []rune("abd")); got != 1 {
		t.Errorf("bound 1 substitution = %d, want 1", got)
	}
	if got := BoundedLevenshtein(1, []rune("abc"), []rune("abcd")); got != 1 {
		t.Errorf("bound 1 insertion = %d, want 1", got)
	}
	if got := BoundedLevenshtein(1, []rune("abc"), []rune("xyz")); got <= 1 {
		t.Errorf("bound 1 totally different = %d, want > 1", got)
	}
}

func TestBoundedLevenshtein_Bound2(t *testing.T) {
	if got := BoundedLevenshtein(2, []rune("abcdef"), []rune("abXdYf")); got != 2 {
		t.Errorf("bound 2 two substitutions = %d, want 2", got)
	}
	if got := BoundedLevenshtein(2, []rune("abc"), []rune("abc")); got != 0 {
		t.Errorf("bound 2 identical = %d, want 0", got)
	}
	if got := BoundedLevenshtein(2, []rune("abcdefgh"), []rune("xxxxxxxx")); got <= 2 {
		t.Errorf("bound 2 far apart = %d, want > 2", got)
	}
	if got := BoundedLevenshtein(2, []rune("ab"), []rune("abcde")); got != MaxDistance {
		t.Errorf("bound 2 length diff > 2 = %d, want MaxDistance", got)
	}
}

func TestBoundedLevenshtein_AgreesWithDistance(t *testing.T) {
	pairs := [][2]string{
		{"abc", "abc"},
		{"abc", "abd"},
		{"abcdef", "abXdYf"},
	}
	for _, p := range pairs {
		exact := Distance([]rune(p[0]), []rune(p[1]))
		if exact > 2 {
			continue
		}
		bounded := BoundedLevenshtein(2, []rune(p[0]), []rune(p[1]))
		if bounded != exact {
			t.Errorf("BoundedLevenshtein(2, %q, %q) = %d, want %d (exact)", p[0], p[1], bounded, exact)
		}
	}
}

package memo

import "testing"

func TestMemoizer_Levenshtein(t *testing.T) {
	m := New(Levenshtein, 20, Unbounded)
	m.SetReference([]rune("kitten"))
	if got := m.Compute([]rune("sitting")); got != 3 {
		t.Errorf("Compute(sitting) = %d, want 3", got)
	}
}

func TestMemoizer_Damerau(t *testing.T) {
	m := New(Damerau, 20, Unbounded)
	m.SetReference([]rune("ca"))
	if got := m.Compute([]rune("ac")); got != 1 {
		t.Errorf("Compute(ac) = %d, want 1", got)
	}
}

func TestMemoizer_LongestCommonSubstring(t *testing.T) {
	m := New(LongestCommonSubstring, 20, 0)
	m.SetReference([]rune("expediter"))
	if got := m.Compute([]rune("expeditor")); got != 7 {
		t.Errorf("Compute(expeditor) = %d, want 7", got)
	}
}

func TestMemoizer_LongestCommonSubsequence(t *testing.T) {
	m := New(LongestCommonSubsequence, 20, 0)
	m.SetReference([]rune("ABCBDAB"))
	if got := m.Compute([]rune("BDCABA")); got != 4 {
		t.Errorf("Compute(BDCABA) = %d, want 4", got)
	}
}

func TestMemoizer_MaxDistRejectsOnLengthGap(t *testing.T) {
	m := New(Levenshtein, 20, 2)
	m.SetReference([]rune("kitten"))
	if got := m.Compute([]rune("a")); got != Unbounded {
		t.Errorf("Compute(a) = %d, want Unbounded (length gap exceeds max_dist)", got)
	}
}

func TestMemoizer_SequentialQueriesAgainstSameReference(t *testing.T) {
	m := New(Levenshtein, 20, Unbounded)
	m.SetReference([]rune("kitten"))

	if got := m.Compute([]rune("sitting")); got != 3 {
		t.Errorf("Compute(sitting) = %d, want 3", got)
	}
	if got := m.Compute([]rune("kitten")); got != 0 {
		t.Errorf("Compute(kitten) = %d, want 0 (identical to reference)", got)
	}
	if got := m.Compute([]rune("kitchen")); got != 2 {
		t.Errorf("Compute(kitchen) = %d, want 2", got)
	}
}

func TestMemoizer_SetReferenceResetsPreviousQuery(t *testing.T) {
	m := New(Levenshtein, 20, Unbounded)
	m.SetReference([]rune("kitten"))
	m.Compute([]rune("sitting"))

	m.SetReference([]rune("flaw"))
	if got := m.Compute([]rune("lawn")); got != 2 {
		t.Errorf("Compute(lawn) against new reference = %d, want 2", got)
	}
}

func TestMemoizer_ComputeBeforeSetReferencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Compute before SetReference should panic")
		}
	}()
	m := New(Levenshtein, 20, Unbounded)
	m.Compute([]rune("abc"))
}

func TestMemoizer_ReferenceExceedsMaxLenPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetReference with an over-long sequence should panic")
		}
	}()
	m := New(Levenshtein, 3, Unbounded)
	m.SetReference([]rune("toolong"))
}

func TestMemoizer_Metric(t *testing.T) {
	m := New(Damerau, 10, Unbounded)
	if m.Metric() != Damerau {
		t.Errorf("Metric() = %v, want Damerau", m.Metric())
	}
}

package similarity

import "github.com/fulmenhq/gofaconde/errors"

// stripAffixes removes the common prefix and common suffix of seq1 and
// seq2, returning the shortened slices. Matched leading/trailing runes
// contribute nothing to Levenshtein/Damerau's optimal cost, so the metric's
// value is unaffected; the recurrence just has less work to do.
//
// Precondition: len(seq1) >= len(seq2). Callers swap the pair first when
// necessary (see orderByLength). This is not applied ahead of LCS-substring,
// LCS-subsequence, Jaro, or any LALIGN-normalized recurrence — see §4.2.
func stripAffixes(seq1, seq2 []rune) ([]rune, []rune) {
	len1, len2 := len(seq1), len(seq2)
	if len1 < len2 {
		errors.Fatal("similarity.precondition", "stripAffixes requires len(seq1) >= len(seq2), got %d < %d", len1, len2)
	}

	start := 0
	for start < len2 && seq1[start] == seq2[start] {
		start++
	}
	seq1 = seq1[start:]
	seq2 = seq2[start:]
	len1 -= start
	len2 -= start

	for len2 > 0 && seq1[len1-1] == seq2[len2-1] {
		len1--
		len2--
	}
	return seq1[:len1], seq2[:len2]
}

// orderByLength returns (a, b) ordered so that len(a) >= len(b), and reports
// whether a swap was performed relative to the caller's (seq1, seq2) order.
// Several metrics are swap-invariant in their result but need the longer
// sequence first for the one-column recurrence.
func orderByLength(seq1, seq2 []rune) (longer, shorter []rune, swapped bool) {
	if len(seq1) < len(seq2) {
		return seq2, seq1, true
	}
	return seq1, seq2, false
}

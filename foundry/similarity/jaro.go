package similarity

// JaroDistance computes the Jaro distance between seq1 and seq2: 0.0 means
// identical, 1.0 means maximally dissimilar under the Jaro match/transposition
// measure. A zero match count — which includes the case of one or both
// sequences being empty, not just wholly disjoint codepoints — short-circuits
// to 0.0 directly, following the original metric's own (counterintuitive but
// deliberate) short-circuit rather than routing through a similarity
// inversion.
//
// Two codepoints are considered "matching" if they are equal and within a
// window of floor(max(len1, len2)/2) - 1 positions of each other. The
// window is clamped to 0 for very short inputs rather than going negative,
// so single-codepoint sequences can still match.
func JaroDistance(seq1, seq2 []rune) float64 {
	recordUsage(AlgorithmJaro, len(seq1), len(seq2))
	return jaro0(seq1, seq2)
}

// jaro0 returns the Jaro metric as a distance in [0, 1] directly (not a
// similarity needing inversion), matching fc_jaro0's own return convention.
func jaro0(seq1, seq2 []rune) float64 {
	len1, len2 := len(seq1), len(seq2)

	window := maxInt(len1, len2)/2 - 1
	if window < 0 {
		window = 0
	}

	seq1Matched := make([]bool, len1)
	seq2Matched := make([]bool, len2)

	matches := 0
	for i := 0; i < len1; i++ {
		lo := maxInt(0, i-window)
		hi := minInt(len2-1, i+window)
		for j := lo; j <= hi; j++ {
			if seq2Matched[j] || seq1[i] != seq2[j] {
				continue
			}
			seq1Matched[i] = true
			seq2Matched[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0.0
	}

	transpositions := 0
	k := 0
	for i := 0; i < len1; i++ {
		if !seq1Matched[i] {
			continue
		}
		for !seq2Matched[k] {
			k++
		}
		if seq1[i] != seq2[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	t := float64(transpositions / 2)

	return 1.0 - (m/float64(len1)+m/float64(len2)+(m-t)/m)/3.0
}

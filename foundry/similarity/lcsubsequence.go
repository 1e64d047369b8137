package similarity

// LCSubsequence computes the length of the longest common subsequence of
// seq1 and seq2: the longest run of codepoints that appears, in order but
// not necessarily contiguously, in both.
func LCSubsequence(seq1, seq2 []rune) int {
	longer, shorter, _ := orderByLength(seq1, seq2)
	recordUsage(AlgorithmSubsequence, len(seq1), len(seq2))
	return lcsubsequence0(longer, shorter)
}

// lcsubsequence0 requires len(seq1) >= len(seq2). Unlike Levenshtein and
// Damerau, affixes are not stripped: a shared prefix or suffix still
// contributes to the subsequence length exactly as any other shared run
// would, so stripping would only cost a constant amount of work without
// changing correctness — skipped here to keep this metric's code path
// independent of the edit-distance affix convention.
func lcsubsequence0(seq1, seq2 []rune) int {
	len1, len2 := len(seq1), len(seq2)
	if len2 == 0 {
		return 0
	}

	var small [defaultColumnLen]int32
	column := scratchRows(small[:], 1, len2+1)[0]
	for j := range column {
		column[j] = 0
	}

	for i := 1; i <= len1; i++ {
		diag := int32(0)
		for j := 1; j <= len2; j++ {
			old := column[j]
			if seq1[i-1] == seq2[j-1] {
				column[j] = diag + 1
			} else if column[j-1] > column[j] {
				column[j] = column[j-1]
			}
			diag = old
		}
	}

	return int(column[len2])
}

// NormalizedLCSubsequence scales LCSubsequence into the same [0, 1]
// normalized-distance convention as every other metric in this package: 0.0
// means the two sequences are identical (the longest common subsequence
// spans both in full), 1.0 means they share no codepoint at all. The
// empty/empty pair is the one exception, reporting 1.0 rather than 0.0,
// matching fc_nlcsubseq's own edge case.
func NormalizedLCSubsequence(seq1, seq2 []rune) float64 {
	len1, len2 := len(seq1), len(seq2)
	if len1 == 0 && len2 == 0 {
		return 1.0
	}

	longer, shorter, _ := orderByLength(seq1, seq2)
	recordUsage(AlgorithmSubsequence, len1, len2)

	lcs := lcsubsequence0(longer, shorter)
	return 1.0 - (2.0*float64(lcs))/float64(len1+len2)
}

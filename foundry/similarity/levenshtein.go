package similarity

// NormMethod selects how a normalized distance is scaled into [0, 1].
type NormMethod int

const (
	// NormLSeq normalizes by the length of the longer of the two sequences.
	NormLSeq NormMethod = iota

	// NormLAlign normalizes by the length of the longest alignment path
	// attaining the optimal distance (Heeringa, "Measuring Dialect
	// Pronunciation Differences using Levenshtein Distance"). More
	// expensive in both space and time than NormLSeq, because it tracks a
	// parallel alignment-length matrix.
	NormLAlign
)

// Distance computes the absolute Levenshtein edit distance between seq1 and
// seq2: the minimum number of single-codepoint insertions, deletions, and
// substitutions needed to turn one into the other.
//
// Uses the Wagner-Fischer recurrence compressed to a single rolling column
// plus a scalar holding the upper-left cell, after stripping any common
// prefix and suffix (§4.2, §4.3).
func Distance(seq1, seq2 []rune) int {
	longer, shorter, _ := orderByLength(seq1, seq2)
	recordUsage(AlgorithmLevenshtein, len(seq1), len(seq2))
	return int(levenshtein0(longer, shorter))
}

// levenshtein0 requires len(seq1) >= len(seq2).
func levenshtein0(seq1, seq2 []rune) int32 {
	seq1, seq2 = stripAffixes(seq1, seq2)
	len1, len2 := len(seq1), len(seq2)

	if len2 == 0 {
		return int32(len1)
	}

	var small [defaultColumnLen]int32
	column := scratchRows(small[:], 1, len2+1)[0]

	for j := 0; j <= len2; j++ {
		column[j] = int32(j)
	}

	for i := 1; i <= len1; i++ {
		column[0] = int32(i)
		last := int32(i - 1)

		for j := 1; j <= len2; j++ {
			old := column[j]
			if seq1[i-1] == seq2[j-1] {
				column[j] = last
			} else {
				ic := column[j-1] + 1
				dc := column[j] + 1
				rc := last + 1
				column[j] = min3(ic, dc, rc)
			}
			last = old
		}
	}

	return column[len2]
}

// NormalizedDistance computes a Levenshtein distance normalized to [0, 1]
// using the given method. The empty/empty pair returns 0.0 (identical);
// empty-vs-nonempty returns 1.0.
func NormalizedDistance(method NormMethod, seq1, seq2 []rune) float64 {
	longer, shorter, _ := orderByLength(seq1, seq2)
	recordUsage(AlgorithmLevenshtein, len(seq1), len(seq2))
	return normalizedLevenshtein0(method, longer, shorter)
}

// normalizedLevenshtein0 requires len(seq1) >= len(seq2).
func normalizedLevenshtein0(method NormMethod, seq1, seq2 []rune) float64 {
	if len(seq2) == 0 {
		if len(seq1) == 0 {
			return 0.0
		}
		return 1.0
	}

	if method == NormLSeq {
		return float64(levenshtein0(seq1, seq2)) / float64(len(seq1))
	}

	// NormLAlign never strips affixes: stripping would change which
	// alignment path is longest.
	len1, len2 := len(seq1), len(seq2)

	var small [2 * defaultColumnLen]int32
	rows := scratchRows(small[:], 2, len2+1)
	column, length := rows[0], rows[1]

	for j := 0; j <= len2; j++ {
		column[j] = int32(j)
		length[j] = int32(j)
	}

	for i := 1; i <= len1; i++ {
		column[0] = int32(i)
		length[0] = int32(i)
		last, llast := int32(i-1), int32(i-1)

		for j := 1; j <= len2; j++ {
			old := column[j]
			ic := column[j-1] + 1
			dc := column[j] + 1
			cost := int32(0)
			if seq1[i-1] != seq2[j-1] {
				cost = 1
			}
			rc := last + cost
			column[j] = min3(ic, dc, rc)
			last = old

			lold := length[j]
			lic, ldc, lrc := int32(0), int32(0), int32(0)
			if ic == column[j] {
				lic = length[j-1] + 1
			}
			if dc == column[j] {
				ldc = length[j] + 1
			}
			if rc == column[j] {
				lrc = llast + 1
			}
			length[j] = max3(lic, ldc, lrc)
			llast = lold
		}
	}

	return float64(column[len2]) / float64(length[len2])
}

package similarity

// DamerauDistance computes the absolute Damerau-Levenshtein distance: the
// minimum number of insertions, deletions, substitutions, and adjacent
// transpositions needed to turn seq1 into seq2.
//
// Requires three rolling rows rather than Levenshtein's one, because the
// transposition term reads cell (i-2, j-2). Affixes are stripped first
// (§4.2), same as Distance.
func DamerauDistance(seq1, seq2 []rune) int {
	longer, shorter, _ := orderByLength(seq1, seq2)
	recordUsage(AlgorithmDamerau, len(seq1), len(seq2))
	return int(damerau0(longer, shorter))
}

// damerau0 requires len(seq1) >= len(seq2).
func damerau0(seq1, seq2 []rune) int32 {
	seq1, seq2 = stripAffixes(seq1, seq2)
	len1, len2 := len(seq1), len(seq2)

	if len2 == 0 {
		return int32(len1)
	}

	var small [3 * defaultColumnLen]int32
	rows := scratchRows(small[:], 3, len2+1)
	transpos, previous, current := rows[0], rows[1], rows[2]

	for j := 0; j <= len2; j++ {
		previous[j] = int32(j)
	}

	for i := 1; i <= len1; i++ {
		current[0] = int32(i)

		for j := 1; j <= len2; j++ {
			if seq1[i-1] == seq2[j-1] {
				current[j] = previous[j-1]
			} else {
				ic := current[j-1] + 1
				dc := previous[j] + 1
				rc := previous[j-1] + 1
				current[j] = min3(ic, dc, rc)

				if transposed(seq1, seq2, i, j) {
					tc := transpos[j-2] + 1
					if tc < current[j] {
						current[j] = tc
					}
				}
			}
		}
		transpos, previous, current = previous, current, transpos
	}

	return previous[len2]
}

// transposed reports whether an adjacent transposition explains cell (i,j):
// seq1[i-2..i) read backwards equals seq2[j-2..j).
func transposed(seq1, seq2 []rune, i, j int) bool {
	return i > 1 && j > 1 && seq1[i-2] == seq2[j-1] && seq1[i-1] == seq2[j-2]
}

// NormalizedDamerau mirrors NormalizedDistance but for Damerau-Levenshtein.
// Under NormLAlign it tracks six rolling rows: three for distances, three
// for alignment lengths.
func NormalizedDamerau(method NormMethod, seq1, seq2 []rune) float64 {
	longer, shorter, _ := orderByLength(seq1, seq2)
	recordUsage(AlgorithmDamerau, len(seq1), len(seq2))
	return normalizedDamerau0(method, longer, shorter)
}

// normalizedDamerau0 requires len(seq1) >= len(seq2).
func normalizedDamerau0(method NormMethod, seq1, seq2 []rune) float64 {
	if len(seq2) == 0 {
		if len(seq1) == 0 {
			return 0.0
		}
		return 1.0
	}

	if method == NormLSeq {
		return float64(damerau0(seq1, seq2)) / float64(len(seq1))
	}

	len1, len2 := len(seq1), len(seq2)

	var small [6 * defaultColumnLen]int32
	rows := scratchRows(small[:], 6, len2+1)
	ltranspos, lprevious, lcurrent := rows[0], rows[1], rows[2]
	transpos, previous, current := rows[3], rows[4], rows[5]

	for j := 0; j <= len2; j++ {
		previous[j] = int32(j)
		lprevious[j] = int32(j)
	}

	for i := 1; i <= len1; i++ {
		current[0] = int32(i)
		lcurrent[0] = int32(i)

		for j := 1; j <= len2; j++ {
			isTransposed := transposed(seq1, seq2, i, j)

			ic := current[j-1] + 1
			dc := previous[j] + 1
			cost := int32(0)
			if seq1[i-1] != seq2[j-1] {
				cost = 1
			}
			rc := previous[j-1] + cost
			current[j] = min3(ic, dc, rc)

			var tc int32
			if isTransposed {
				tc = transpos[j-2] + 1
				if tc < current[j] {
					current[j] = tc
				}
			}

			lic, ldc, lrc := int32(0), int32(0), int32(0)
			if ic == current[j] {
				lic = lcurrent[j-1] + 1
			}
			if dc == current[j] {
				ldc = lprevious[j] + 1
			}
			if rc == current[j] {
				lrc = lprevious[j-1] + 1
			}
			lcurrent[j] = max3(lic, ldc, lrc)

			if isTransposed {
				ltc := int32(0)
				if tc == current[j] {
					ltc = ltranspos[j-2] + 1
				}
				if ltc > lcurrent[j] {
					lcurrent[j] = ltc
				}
			}
		}

		transpos, previous, current = previous, current, transpos
		ltranspos, lprevious, lcurrent = lprevious, lcurrent, ltranspos
	}

	return float64(previous[len2]) / float64(lprevious[len2])
}

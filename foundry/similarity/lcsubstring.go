package similarity

// LCSubstring computes the length of the longest common contiguous run of
// codepoints appearing in both seq1 and seq2.
func LCSubstring(seq1, seq2 []rune) int {
	length, _ := LCSubstringExtract(seq1, seq2)
	return length
}

// LCSubstringExtract is like LCSubstring, but also reports the leftmost
// occurrence of a longest common substring within seq1 as a half-open
// (offset, length) pair: seq1[offset:offset+length] is the match. When the
// longest common substring has length 0, offset is len(seq1) (an
// end-of-sequence sentinel, matching the original's pointer-past-the-end
// convention) and length is 0.
//
// The substring is located within seq1 specifically, which precludes the
// length-ordering swap used by the other metrics: swapping would report a
// position in the wrong sequence. The swap is deliberately suppressed here
// even though it may require a larger allocation.
func LCSubstringExtract(seq1, seq2 []rune) (offset, length int) {
	recordUsage(AlgorithmSubstring, len(seq1), len(seq2))

	len1, len2 := len(seq1), len(seq2)
	if len2 == 0 {
		return len1, 0
	}

	var small [defaultColumnLen]int32
	column := scratchRows(small[:], 1, len2)[0]
	for j := range column {
		column[j] = 0
	}

	maxLen := int32(0)
	myPos := -1

	for i := 0; i < len1; i++ {
		last := int32(0)
		for j := 0; j < len2; j++ {
			old := column[j]
			if seq1[i] == seq2[j] {
				column[j] = last + 1
				if column[j] > maxLen {
					maxLen = column[j]
					myPos = i
				}
			} else {
				column[j] = 0
			}
			last = old
		}
	}

	if maxLen == 0 {
		return len1, 0
	}
	return myPos - int(maxLen) + 1, int(maxLen)
}

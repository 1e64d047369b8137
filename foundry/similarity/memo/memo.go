// Package memo implements a memoized string comparator: an object that
// holds one reference sequence and repeatedly compares it against a
// stream of query sequences, reusing the dynamic-programming matrix and
// detecting a shared prefix with the previous query to avoid recomputing
// columns that can't have changed.
//
// This is the shape a spell-checker or a fuzzy lexicon lookup wants: the
// reference (the misspelled word, or the user's partial input) is fixed
// for a whole pass over a dictionary, while the query (each dictionary
// entry) changes on every call — and adjacent dictionary entries in a
// sorted lexicon very often share a long prefix with each other, which is
// exactly the case the skip-detection optimizes.
package memo

import (
	"math"

	"github.com/fulmenhq/gofaconde/errors"
)

// Metric selects which comparator a Memoizer computes. Unbounded is only
// meaningful for Levenshtein and Damerau.
type Metric int

const (
	Levenshtein Metric = iota
	Damerau
	LongestCommonSubstring
	LongestCommonSubsequence
)

// Unbounded is returned by Compute in place of a Levenshtein/Damerau
// distance once it is known to exceed the configured max_dist — computing
// the exact value would cost more than the caller said it was willing to
// pay for.
const Unbounded = math.MaxInt32

// Memoizer holds the comparison matrix and bookkeeping for one metric.
// Not safe for concurrent use: a single Memoizer serializes a whole
// reference-then-queries pass.
type Memoizer struct {
	metric  Metric
	maxLen  int
	maxDist int
	matrix  [][]int32

	seq1     []rune
	len1     int
	hasRef   bool

	// prev holds the previous query sequence, reused in place so that
	// Compute can detect how much of it is shared with the next query.
	prev []rune
	len2 int
}

// New constructs a Memoizer for the given metric. maxLen bounds the length
// of every sequence ever passed to SetReference or Compute — the matrix is
// allocated once, to this size, and never grows. maxDist drives the
// Levenshtein and Damerau early rejects that return Unbounded (see
// Compute); it is ignored by the two LCS metrics.
func New(metric Metric, maxLen, maxDist int) *Memoizer {
	if maxLen < 0 {
		errors.Fatal("memo.precondition", "maxLen must be non-negative, got %d", maxLen)
	}

	m := &Memoizer{
		metric:  metric,
		maxLen:  maxLen,
		maxDist: maxDist,
		prev:    make([]rune, maxLen),
	}

	mdim := maxLen + 1
	switch metric {
	case Levenshtein, Damerau:
		m.matrix = newMatrix(mdim, mdim)
		for i := 0; i < mdim; i++ {
			m.matrix[i][0] = int32(i)
		}
		for j := 1; j < mdim; j++ {
			m.matrix[0][j] = int32(j)
		}

	case LongestCommonSubstring:
		// One extra row past the matrix proper holds, per column already
		// scanned, the longest match length found up to that column — the
		// last row of the matrix itself doesn't necessarily hold it, since
		// the best match may have ended partway through.
		m.matrix = newMatrix(mdim+1, mdim)

	case LongestCommonSubsequence:
		m.matrix = newMatrix(mdim, mdim)

	default:
		errors.Fatal("memo.precondition", "invalid metric %v", metric)
	}

	return m
}

func newMatrix(rows, cols int) [][]int32 {
	flat := make([]int32, rows*cols)
	rowsOut := make([][]int32, rows)
	for i := range rowsOut {
		rowsOut[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return rowsOut
}

// Metric reports the metric this Memoizer was constructed for.
func (m *Memoizer) Metric() Metric {
	return m.metric
}

// SetReference installs seq1 as the sequence every subsequent Compute call
// is measured against. It can be called more than once on the same
// Memoizer to move on to a new reference sequence; doing so forgets the
// shared-prefix bookkeeping from whatever query was compared last.
func (m *Memoizer) SetReference(seq1 []rune) {
	if len(seq1) > m.maxLen {
		errors.Fatal("memo.precondition", "reference sequence length %d exceeds configured maximum %d", len(seq1), m.maxLen)
	}
	m.seq1 = seq1
	m.len1 = len(seq1)
	m.hasRef = true
	m.len2 = 0
}

// Compute compares the current reference sequence (see SetReference)
// against seq2, returning the configured metric. For Levenshtein and
// Damerau this is an edit distance, or Unbounded when the length gap, or
// the smallest value in the column resumed from the previous query,
// already exceeds max_dist; when neither early reject fires, the exact
// distance is returned even if it exceeds max_dist. For the two LCS
// metrics it is a match length.
func (m *Memoizer) Compute(seq2 []rune) int {
	if !m.hasRef {
		errors.Fatal("memo.precondition", "SetReference must be called before Compute")
	}
	if len(seq2) > m.maxLen {
		errors.Fatal("memo.precondition", "query sequence length %d exceeds configured maximum %d", len(seq2), m.maxLen)
	}

	switch m.metric {
	case Levenshtein:
		return m.distance(seq2, false)
	case Damerau:
		return m.distance(seq2, true)
	case LongestCommonSubstring:
		return m.lcsubstr(seq2)
	case LongestCommonSubsequence:
		return m.lcsubseq(seq2)
	default:
		errors.Fatal("memo.precondition", "invalid metric %v", m.metric)
		return 0
	}
}

// sharedPrefix reports how many leading runes of seq2 are identical to the
// previous query, which bounds how many matrix columns need recomputing:
// anything at or before this column is unaffected by the new query.
func (m *Memoizer) sharedPrefix(seq2 []rune) int {
	limit := m.len2
	if len(seq2) < limit {
		limit = len(seq2)
	}
	skip := 0
	for skip < limit && m.prev[skip] == seq2[skip] {
		skip++
	}
	return skip
}

func (m *Memoizer) distance(seq2 []rune, transpositions bool) int {
	len1, len2 := m.len1, len(seq2)
	if absInt(len1-len2) > m.maxDist {
		return Unbounded
	}

	skip := m.sharedPrefix(seq2)
	matrix := m.matrix

	if skip > 0 {
		// The distance can't be smaller than the smallest value anywhere in
		// the column we're about to resume from; if even that exceeds the
		// bound, every downstream cell will too.
		least := int32(math.MaxInt32)
		for i := 0; i <= len1; i++ {
			if v := matrix[i][skip]; v < least {
				least = v
			}
		}
		if int(least) > m.maxDist {
			return Unbounded
		}
	}

	copy(m.prev[skip:len2], seq2[skip:])
	m.len2 = len2

	seq1 := m.seq1
	for i := 1; i <= len1; i++ {
		for j := skip + 1; j <= len2; j++ {
			if seq1[i-1] == seq2[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}

			ic := matrix[i][j-1] + 1
			dc := matrix[i-1][j] + 1
			rc := matrix[i-1][j-1] + 1
			val := min3(ic, dc, rc)

			if transpositions && i > 1 && j > 1 &&
				seq1[i-2] == seq2[j-1] && seq1[i-1] == seq2[j-2] {
				if tc := matrix[i-2][j-2] + 1; tc < val {
					val = tc
				}
			}
			matrix[i][j] = val
		}
	}

	return int(matrix[len1][len2])
}

// lcsubstr indexes the matrix by (query position, reference position) —
// the opposite of every other metric here — so that the trailing extra
// row can track, per query column scanned so far, the best match length
// found: the final answer isn't always in the bottom-right cell, since the
// longest run may end partway through the query.
func (m *Memoizer) lcsubstr(seq2 []rune) int {
	len1, len2 := m.len1, len(seq2)
	maxRow := m.maxLen + 1 // index of the running-max row

	skip := m.sharedPrefix(seq2)
	copy(m.prev[skip:len2], seq2[skip:])
	m.len2 = len2

	seq1 := m.seq1
	matrix := m.matrix

	maxLen := matrix[maxRow][skip]
	for i := skip + 1; i <= len2; i++ {
		for j := 1; j <= len1; j++ {
			if seq1[j-1] == seq2[i-1] {
				upLeft := matrix[i-1][j-1] + 1
				matrix[i][j] = upLeft
				if upLeft > maxLen {
					maxLen = upLeft
				}
			} else {
				matrix[i][j] = 0
			}
		}
		matrix[maxRow][i] = maxLen
	}

	return int(maxLen)
}

func (m *Memoizer) lcsubseq(seq2 []rune) int {
	len1, len2 := m.len1, len(seq2)
	skip := m.sharedPrefix(seq2)

	copy(m.prev[skip:len2], seq2[skip:])
	m.len2 = len2

	seq1 := m.seq1
	matrix := m.matrix

	for i := 1; i <= len1; i++ {
		for j := skip + 1; j <= len2; j++ {
			if seq1[i-1] == seq2[j-1] {
				matrix[i][j] = matrix[i-1][j-1] + 1
				continue
			}
			fst, snd := matrix[i][j-1], matrix[i-1][j]
			if fst > snd {
				matrix[i][j] = fst
			} else {
				matrix[i][j] = snd
			}
		}
	}

	return int(matrix[len1][len2])
}

func min3(a, b, c int32) int32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

package similarity

import "math"

// MaxSeqLen is the largest sequence length the core accepts. It is a design
// invariant, not a defensive runtime check: callers guarantee it, the same
// way FC_MAX_SEQ_LEN is documented but never checked in the original
// faconde inner loops.
const MaxSeqLen = 4096

// MaxDistance is the out-of-band sentinel returned by the bounded metrics
// when the length difference alone exceeds the caller's bound (see
// BoundedDispatch); the memoizer's max-dist early reject returns the same
// value as memo.Unbounded. It mirrors INT32_MAX in the original C API.
const MaxDistance = math.MaxInt32

// Version is the semantic version of this library's public surface.
const Version = "0.1.0"

// defaultColumnLen is the size of the on-stack scratch array each one-shot
// metric reaches for before falling back to a heap allocation. 256 covers
// the vast majority of real-world comparisons (names, paths, short
// sentences) without ever touching the allocator.
const defaultColumnLen = 256

// scratchRows splits small (a caller-supplied, fixed-size on-stack array
// slice) into k rows of length n each when it is big enough, or makes a
// single fresh heap allocation otherwise. This is the scratch-buffer policy
// of §4.1: each metric declares its own fixed array sized for k rows of the
// "typical" default column length, and falls back to the heap only when a
// query exceeds it. The heap buffer is never retained past the call that
// allocated it.
func scratchRows(small []int32, k, n int) [][]int32 {
	need := k * n
	buf := small
	if need > len(small) {
		buf = make([]int32, need)
	}
	rows := make([][]int32, k)
	for i := range rows {
		rows[i] = buf[i*n : (i+1)*n : (i+1)*n]
	}
	return rows
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

func max3(a, b, c int32) int32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

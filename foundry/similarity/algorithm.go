package similarity

import (
	"errors"
	"fmt"

	"github.com/antzucaro/matchr"
)

// Algorithm names one of the metrics this package exposes through the
// runtime-selectable DistanceWithAlgorithm/ScoreWithAlgorithm entry points.
type Algorithm string

const (
	// AlgorithmLevenshtein is classic edit distance: insertions, deletions,
	// substitutions.
	AlgorithmLevenshtein Algorithm = "levenshtein"

	// AlgorithmDamerau is this package's native Damerau-Levenshtein distance
	// (unrestricted transpositions; see damerau.go).
	AlgorithmDamerau Algorithm = "damerau"

	// AlgorithmDamerauOSA is matchr's optimal-string-alignment variant,
	// wired in for cross-checking against the unrestricted native
	// implementation: OSA forbids editing the same substring twice, so it
	// can report a strictly larger distance than AlgorithmDamerau on inputs
	// with overlapping transpositions.
	AlgorithmDamerauOSA Algorithm = "damerau_osa"

	// AlgorithmSubstring finds the longest common contiguous run (see
	// lcsubstring.go).
	AlgorithmSubstring Algorithm = "substring"

	// AlgorithmSubsequence finds the longest common (non-contiguous, order
	// preserving) run (see lcsubsequence.go).
	AlgorithmSubsequence Algorithm = "subsequence"

	// AlgorithmJaro is this package's native Jaro distance (see jaro.go).
	AlgorithmJaro Algorithm = "jaro"

	// AlgorithmJaroWinkler delegates to matchr.JaroWinkler, which applies a
	// common-prefix bonus on top of Jaro similarity. ScoreWithAlgorithm only;
	// it has no distance form.
	AlgorithmJaroWinkler Algorithm = "jaro_winkler"
)

// DistanceWithAlgorithm computes an edit distance using the named algorithm.
// Jaro, Jaro-Winkler, substring, and subsequence are similarity metrics
// rather than edit distances; calling this with one of them returns an
// error directing the caller to ScoreWithAlgorithm instead.
func DistanceWithAlgorithm(algorithm Algorithm, seq1, seq2 []rune) (int, error) {
	switch algorithm {
	case AlgorithmLevenshtein:
		return Distance(seq1, seq2), nil
	case AlgorithmDamerau:
		return DamerauDistance(seq1, seq2), nil
	case AlgorithmDamerauOSA:
		return matchr.DamerauLevenshtein(string(seq1), string(seq2)), nil
	case AlgorithmJaro, AlgorithmJaroWinkler, AlgorithmSubstring, AlgorithmSubsequence:
		return 0, fmt.Errorf("similarity: %s is a similarity score, not a distance; use ScoreWithAlgorithm", algorithm)
	default:
		return 0, fmt.Errorf("similarity: unknown algorithm %q", algorithm)
	}
}

// ScoreWithAlgorithm computes a normalized similarity score in [0, 1] using
// the named algorithm, where 1.0 means identical and 0.0 means maximally
// dissimilar. norm selects the normalization method for the distance-based
// algorithms; it is ignored by the similarity-native algorithms (Jaro,
// Jaro-Winkler, substring, subsequence), which have their own [0, 1] scale.
// Two edge cases carry over from the underlying metrics: under AlgorithmJaro
// a pair with no matching codepoints scores 1.0 (JaroDistance returns 0.0
// for a zero match count), and under AlgorithmSubsequence two empty
// sequences score 0.0 (NormalizedLCSubsequence returns 1.0 for them).
func ScoreWithAlgorithm(algorithm Algorithm, norm NormMethod, seq1, seq2 []rune) (float64, error) {
	switch algorithm {
	case AlgorithmLevenshtein:
		return 1.0 - NormalizedDistance(norm, seq1, seq2), nil
	case AlgorithmDamerau:
		return 1.0 - NormalizedDamerau(norm, seq1, seq2), nil
	case AlgorithmDamerauOSA:
		longer := maxInt(len(seq1), len(seq2))
		if longer == 0 {
			return 1.0, nil
		}
		return 1.0 - float64(matchr.DamerauLevenshtein(string(seq1), string(seq2)))/float64(longer), nil
	case AlgorithmJaro:
		return 1.0 - JaroDistance(seq1, seq2), nil
	case AlgorithmJaroWinkler:
		return matchr.JaroWinkler(string(seq1), string(seq2), false), nil
	case AlgorithmSubstring:
		longer := maxInt(len(seq1), len(seq2))
		if longer == 0 {
			return 1.0, nil
		}
		return float64(LCSubstring(seq1, seq2)) / float64(longer), nil
	case AlgorithmSubsequence:
		return 1.0 - NormalizedLCSubsequence(seq1, seq2), nil
	default:
		return 0, fmt.Errorf("similarity: unknown algorithm %q", algorithm)
	}
}

// ErrUnsupportedAlgorithm is returned by callers composing their own
// dispatch on top of Algorithm values outside this package's switch
// statements.
var ErrUnsupportedAlgorithm = errors.New("similarity: unsupported algorithm")

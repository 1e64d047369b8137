/*
Package similarity implements the gofaconde approximate-string-matching
core: edit-distance metrics (Levenshtein, Damerau), subsequence/substring
metrics (longest common substring, longest common subsequence), and a
Jaro distance, all operating on sequences of Unicode codepoints
([]rune) rather than raw UTF-8 bytes.

# Conformance

This package is a Go port of the metrics engine of michaelnmmeyer/faconde
(the "fc_*" family in faconde.h), following the allocation discipline,
prefix/suffix stripping, and normalization strategies of that C library,
and the Go idiom (rune slices, two-value returns, no raw pointer
arithmetic) of the Fulmen Foundry Similarity Standard.

# One-shot metrics

Distance and DamerauDistance return absolute edit distances. NormalizedDistance
and NormalizedDamerau return a value in [0, 1] using one of two
strategies (NormMethod): NormLSeq divides by the longer sequence's
length; NormLAlign divides by the length of the optimal alignment path
instead (Heeringa).

	d := similarity.Distance([]rune("kitten"), []rune("sitting")) // 3

BoundedLevenshtein dispatches through BoundedDispatch, a 3-entry table
of bound-specific implementations (exact at bound 0, 1, and 2) that
return a value greater than the requested bound when the true distance
exceeds it: MaxDistance when the length difference alone rules the bound
out, otherwise a small over-bound value.

# Substring and subsequence

LCSubstring and LCSubstringExtract compute the longest common
substring, the latter also returning the leftmost occurrence in the
first sequence as an (offset, length) pair. LCSubsequence and
NormalizedLCSubsequence compute the longest common subsequence.

# Jaro

JaroDistance returns the Jaro metric as a *distance* (0 identical, 1
disjoint), inverted from the canonical similarity definition for
consistency with every other metric in this package. A zero match count —
including the case of one or both sequences being empty — short-circuits
to 0.0 directly rather than through the usual inversion, a quirk carried
over unchanged from the underlying metric.

# Algorithm dispatch

DistanceWithAlgorithm and ScoreWithAlgorithm expose a runtime-selectable
Algorithm enum over the metrics above, plus two matchr-backed reference
implementations (unrestricted Damerau, Jaro-Winkler) for cross-checking
and for callers who specifically want Winkler's prefix bonus.

# Telemetry

Counter-only instrumentation (algorithm usage, string-length buckets,
empty-input edge cases, bounded rejects) can be enabled with EnableTelemetry; disabled by
default, zero overhead when disabled.
*/
package similarity

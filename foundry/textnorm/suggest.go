package textnorm

import (
	"sort"

	"github.com/zeebo/xxh3"

	"github.com/fulmenhq/gofaconde/foundry/similarity"
)

// Suggestion is one ranked fuzzy match result from Suggest.
type Suggestion struct {
	// Value is the original (not normalized) candidate string.
	Value string

	// Score is a similarity score in [0.0, 1.0], 1.0 meaning identical.
	Score float64
}

// SuggestOptions configures Suggest.
type SuggestOptions struct {
	// MinScore filters out candidates scoring below it; 0 keeps every
	// candidate. DefaultSuggestOptions sets 0.6.
	MinScore float64

	// MaxSuggestions caps the number of results returned. Default 3.
	MaxSuggestions int

	// Normalize applies Options{} (simple case folding) to both input and
	// candidates before scoring. Default true.
	Normalize bool

	// Algorithm selects the scoring metric; see
	// foundry/similarity.ScoreWithAlgorithm. Default AlgorithmLevenshtein.
	Algorithm similarity.Algorithm

	// NormMethod is passed through to ScoreWithAlgorithm for the
	// distance-based algorithms. Default similarity.NormLSeq.
	NormMethod similarity.NormMethod
}

// DefaultSuggestOptions returns the recommended defaults: a 0.6 score
// floor, at most 3 results, case-insensitive Levenshtein scoring.
func DefaultSuggestOptions() SuggestOptions {
	return SuggestOptions{
		MinScore:       0.6,
		MaxSuggestions: 3,
		Normalize:      true,
		Algorithm:      similarity.AlgorithmLevenshtein,
		NormMethod:     similarity.NormLSeq,
	}
}

type scoredCandidate struct {
	value string
	score float64
}

// Suggest ranks candidates by similarity to input, keeping only those
// scoring at least opts.MinScore and returning at most
// opts.MaxSuggestions, highest score first (ties broken alphabetically).
//
// Candidates that normalize identically to one already seen are scored
// once: the normalized form is hashed with xxh3 into a seen-set, which
// matters for large candidate lists carrying many near-duplicate entries
// (e.g. a lexicon with several casings of the same word).
func Suggest(input string, candidates []string, opts SuggestOptions) []Suggestion {
	if opts.MaxSuggestions == 0 {
		opts.MaxSuggestions = 3
	}
	if opts.Algorithm == "" {
		opts.Algorithm = similarity.AlgorithmLevenshtein
	}

	if len(candidates) == 0 {
		return []Suggestion{}
	}

	normalizedInput := input
	if opts.Normalize {
		normalizedInput = Normalize(input, Options{})
	}
	inputRunes := []rune(normalizedInput)

	seen := make(map[uint64]struct{}, len(candidates))
	scored := make([]scoredCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		normalized := candidate
		if opts.Normalize {
			normalized = Normalize(candidate, Options{})
		}

		key := xxh3.HashString(normalized)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		score, err := similarity.ScoreWithAlgorithm(opts.Algorithm, opts.NormMethod, inputRunes, []rune(normalized))
		if err != nil {
			continue
		}
		if score >= opts.MinScore {
			scored = append(scored, scoredCandidate{value: candidate, score: score})
		}
	}

	if len(scored) == 0 {
		return []Suggestion{}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].value < scored[j].value
	})

	limit := opts.MaxSuggestions
	if limit > len(scored) {
		limit = len(scored)
	}

	results := make([]Suggestion, limit)
	for i := 0; i < limit; i++ {
		results[i] = Suggestion{Value: scored[i].value, Score: scored[i].score}
	}
	return results
}

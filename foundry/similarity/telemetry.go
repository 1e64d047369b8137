package similarity

import (
	"github.com/fulmenhq/gofaconde/telemetry"
	"github.com/fulmenhq/gofaconde/telemetry/metrics"
)

// telemetrySystem holds the optional telemetry system for similarity
// operations. nil if telemetry is disabled (default).
var telemetrySystem *telemetry.System

// EnableTelemetry turns on counter-only telemetry for every operation in
// this package: algorithm usage, input-length buckets, empty-input edge
// cases, and bounded-Levenshtein rejects. It deliberately does not emit histograms or traces —
// those carry too much overhead for code meant to run inside a comparison
// loop.
func EnableTelemetry(sys *telemetry.System) {
	telemetrySystem = sys
}

// DisableTelemetry turns telemetry back off.
func DisableTelemetry() {
	telemetrySystem = nil
}

func isTelemetryEnabled() bool {
	return telemetrySystem != nil
}

func emitCounter(name string, value float64, tags map[string]string) {
	if !isTelemetryEnabled() {
		return
	}
	_ = telemetrySystem.Counter(name, value, tags)
}

// lengthBucket categorizes a sequence length for counter cardinality
// control; buckets are chosen to separate the fast affix-stripped cases
// from inputs large enough to matter for allocation.
func lengthBucket(n int) string {
	switch {
	case n == 0:
		return "empty"
	case n <= 10:
		return "tiny"
	case n <= 50:
		return "short"
	case n <= 200:
		return "medium"
	case n <= 1000:
		return "long"
	default:
		return "very_long"
	}
}

// recordUsage is the single call site every public metric routes through:
// it tags the call by algorithm and by the length bucket of the longer of
// the two inputs, which stands in for the worst-case cost of the
// comparison.
func recordUsage(algorithm Algorithm, len1, len2 int) {
	if !isTelemetryEnabled() {
		return
	}

	longer := len1
	if len2 > longer {
		longer = len2
	}

	emitCounter(metrics.SimilarityDistanceCalls, 1, map[string]string{
		"algorithm": string(algorithm),
	})
	emitCounter(metrics.SimilarityStringLength, 1, map[string]string{
		"algorithm": string(algorithm),
		"bucket":    lengthBucket(longer),
	})
	if len1 == 0 || len2 == 0 {
		emitCounter(metrics.SimilarityEdgeCases, 1, map[string]string{
			"case": "empty_input",
		})
	}
}

// recordBoundedReject records that a bounded comparison returned a value
// above its bound (MaxDistance or a smaller over-bound value; see
// BoundedDispatch), distinct from the ordinary recordUsage call bounded.go
// also makes.
func recordBoundedReject(bound int) {
	if !isTelemetryEnabled() {
		return
	}
	emitCounter(metrics.SimilarityBoundedRejects, 1, map[string]string{
		"bound": lengthBucket(bound),
	})
}

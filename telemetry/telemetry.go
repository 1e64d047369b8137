// Package telemetry provides counter-only metrics emission for gofaconde
// libraries, following the counter-only discipline (no histograms, no
// tracing) appropriate for code that runs in hot comparison loops.
package telemetry

import "sync"

// MetricsEmitter is the interface a metrics backend must satisfy to receive
// counters from a System. Applications wire in their own emitter (a
// Prometheus registry, a StatsD client, a test double); gofaconde itself
// ships none.
type MetricsEmitter interface {
	Counter(name string, value float64, tags map[string]string) error
}

// Config holds configuration for a telemetry System.
type Config struct {
	Enabled bool
	Emitter MetricsEmitter
}

// DefaultConfig returns telemetry enabled with no emitter attached. Callers
// almost always want to set Emitter themselves.
func DefaultConfig() *Config {
	return &Config{Enabled: true}
}

// System manages counter emission, tracking a small amount of internal
// health state (emission errors) separately from the counters it forwards.
type System struct {
	config *Config

	mu             sync.Mutex
	emissionErrors int64
}

// NewSystem constructs a System from the given config, or DefaultConfig if
// nil.
func NewSystem(config *Config) (*System, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return &System{config: config}, nil
}

// Counter emits a named counter increment with the given tags. It is a
// no-op (returning nil) when telemetry is disabled or no emitter is
// attached, so callers do not need to guard every call site.
func (s *System) Counter(name string, value float64, tags map[string]string) error {
	if s == nil || s.config == nil || !s.config.Enabled || s.config.Emitter == nil {
		return nil
	}
	if err := s.config.Emitter.Counter(name, value, tags); err != nil {
		s.mu.Lock()
		s.emissionErrors++
		s.mu.Unlock()
		return err
	}
	return nil
}

// EmissionErrors reports how many Counter calls have failed since the
// System was created.
func (s *System) EmissionErrors() int64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emissionErrors
}

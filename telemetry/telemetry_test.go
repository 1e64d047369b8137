package telemetry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmitter struct {
	calls int
	fail  bool
}

func (f *fakeEmitter) Counter(name string, value float64, tags map[string]string) error {
	f.calls++
	if f.fail {
		return errors.New("boom")
	}
	return nil
}

func TestNewSystem(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{"nil config defaults", nil},
		{"explicit default config", DefaultConfig()},
		{"disabled system", &Config{Enabled: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, err := NewSystem(tt.config)
			require.NoError(t, err)
			assert.NotNil(t, sys)
		})
	}
}

func TestSystem_CounterNoopWithoutEmitter(t *testing.T) {
	sys, err := NewSystem(DefaultConfig())
	require.NoError(t, err)
	assert.NoError(t, sys.Counter("x", 1, nil))
}

func TestSystem_CounterForwardsToEmitter(t *testing.T) {
	emitter := &fakeEmitter{}
	sys, err := NewSystem(&Config{Enabled: true, Emitter: emitter})
	require.NoError(t, err)

	require.NoError(t, sys.Counter("similarity_distance_calls", 1, map[string]string{"algorithm": "levenshtein"}))
	assert.Equal(t, 1, emitter.calls)
}

func TestSystem_CounterDisabledIsNoop(t *testing.T) {
	emitter := &fakeEmitter{}
	sys, err := NewSystem(&Config{Enabled: false, Emitter: emitter})
	require.NoError(t, err)

	sys.Counter("x", 1, nil)
	assert.Equal(t, 0, emitter.calls)
}

func TestSystem_EmissionErrorsTracked(t *testing.T) {
	emitter := &fakeEmitter{fail: true}
	sys, err := NewSystem(&Config{Enabled: true, Emitter: emitter})
	require.NoError(t, err)

	sys.Counter("x", 1, nil)
	sys.Counter("y", 1, nil)
	assert.EqualValues(t, 2, sys.EmissionErrors())
}

func TestSystem_NilSystemIsSafe(t *testing.T) {
	var sys *System
	assert.EqualValues(t, 0, sys.EmissionErrors())
	assert.NoError(t, sys.Counter("x", 1, nil))
}

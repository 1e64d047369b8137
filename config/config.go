// Package config loads gofaconde's runtime configuration: default
// comparison bounds, telemetry, and logging settings, from a YAML file
// with environment-variable overrides layered on top.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is gofaconde's full runtime configuration.
type Config struct {
	Similarity SimilarityConfig `yaml:"similarity"`
	Logging    LoggingConfig    `yaml:"logging"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// SimilarityConfig holds similarity defaults loaded from the config file
// and environment. cmd/gofaconde does not apply them: it always scores with
// NormLSeq and does not use MaxSeqLen or DefaultBound.
type SimilarityConfig struct {
	// MaxSeqLen caps how long an input sequence may be; see
	// foundry/similarity.MaxSeqLen for the library-wide ceiling this must
	// not exceed.
	MaxSeqLen int `yaml:"max_seq_len"`

	// DefaultBound is the bound passed to bounded Levenshtein when the
	// caller doesn't name one explicitly.
	DefaultBound int `yaml:"default_bound"`

	// NormMethod selects "lseq" or "lalign" normalization by default.
	NormMethod string `yaml:"norm_method"`
}

// LoggingConfig holds logging settings. cmd/gofaconde builds its
// logging.Logger from Level only; it always enables the development encoder
// and does not apply Development or FilePath.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	FilePath    string `yaml:"file_path"`
}

// TelemetryConfig toggles counter emission.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns gofaconde's built-in defaults, used when no config file
// is present.
func Default() *Config {
	return &Config{
		Similarity: SimilarityConfig{
			MaxSeqLen:    4096,
			DefaultBound: 2,
			NormMethod:   "lseq",
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
		Telemetry: TelemetryConfig{
			Enabled: false,
		},
	}
}

// Load reads a YAML config file at path, starting from Default() so any
// field the file omits keeps its default value, then applies environment
// overrides (see env.go).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvVarType describes how to parse an environment variable's value.
type EnvVarType int

const (
	EnvString EnvVarType = iota
	EnvInt
	EnvBool
)

// EnvVarSpec maps an environment variable onto a setter applied when that
// variable is present.
type EnvVarSpec struct {
	Name string
	Type EnvVarType
	Set  func(cfg *Config, value any)
}

// envSpecs enumerates every environment override gofaconde recognizes.
// Unlike a generic nested-map override (the shape a multi-tenant config
// layer needs), gofaconde's config is small and flat enough that each
// variable can just write straight into its Config field.
var envSpecs = []EnvVarSpec{
	{Name: "GOFACONDE_MAX_SEQ_LEN", Type: EnvInt, Set: func(c *Config, v any) { c.Similarity.MaxSeqLen = v.(int) }},
	{Name: "GOFACONDE_DEFAULT_BOUND", Type: EnvInt, Set: func(c *Config, v any) { c.Similarity.DefaultBound = v.(int) }},
	{Name: "GOFACONDE_NORM_METHOD", Type: EnvString, Set: func(c *Config, v any) { c.Similarity.NormMethod = v.(string) }},
	{Name: "GOFACONDE_LOG_LEVEL", Type: EnvString, Set: func(c *Config, v any) { c.Logging.Level = v.(string) }},
	{Name: "GOFACONDE_LOG_DEV", Type: EnvBool, Set: func(c *Config, v any) { c.Logging.Development = v.(bool) }},
	{Name: "GOFACONDE_TELEMETRY_ENABLED", Type: EnvBool, Set: func(c *Config, v any) { c.Telemetry.Enabled = v.(bool) }},
}

// ApplyEnvOverrides applies every set environment variable in envSpecs to
// cfg, in place.
func ApplyEnvOverrides(cfg *Config) error {
	for _, spec := range envSpecs {
		value, ok := os.LookupEnv(spec.Name)
		if !ok {
			continue
		}
		parsed, err := parseEnvValue(value, spec.Type)
		if err != nil {
			return fmt.Errorf("config: environment variable %s: %w", spec.Name, err)
		}
		spec.Set(cfg, parsed)
	}
	return nil
}

func parseEnvValue(value string, t EnvVarType) (any, error) {
	switch t {
	case EnvInt:
		v, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", value)
		}
		return v, nil
	case EnvBool:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "t", "true", "yes", "y":
			return true, nil
		case "0", "f", "false", "no", "n":
			return false, nil
		default:
			return nil, fmt.Errorf("invalid boolean %q", value)
		}
	default:
		return value, nil
	}
}

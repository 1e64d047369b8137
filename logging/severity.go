package logging

import "go.uber.org/zap/zapcore"

// Severity is a logging level name, ordered coarser than zap's own levels
// so gofaconde's config files can name a level without importing zap.
type Severity string

const (
	TRACE Severity = "TRACE"
	DEBUG Severity = "DEBUG"
	INFO  Severity = "INFO"
	WARN  Severity = "WARN"
	ERROR Severity = "ERROR"
	FATAL Severity = "FATAL"
	NONE  Severity = "NONE"
)

// Level returns a numeric ordinal for comparison; higher is more severe.
func (s Severity) Level() int {
	switch s {
	case TRACE:
		return 0
	case DEBUG:
		return 10
	case INFO:
		return 20
	case WARN:
		return 30
	case ERROR:
		return 40
	case FATAL:
		return 50
	case NONE:
		return 60
	default:
		return 20
	}
}

// ToZapLevel converts to the nearest zapcore.Level. TRACE collapses into
// zap's DebugLevel, since zap has no finer level below it; NONE maps to
// InvalidLevel, which filters every entry out.
func (s Severity) ToZapLevel() zapcore.Level {
	switch s {
	case TRACE, DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.FatalLevel
	case NONE:
		return zapcore.InvalidLevel
	default:
		return zapcore.InfoLevel
	}
}

func (s Severity) String() string {
	return string(s)
}

// ParseSeverity parses a severity name, defaulting to INFO for anything
// unrecognized.
func ParseSeverity(s string) Severity {
	switch s {
	case "TRACE":
		return TRACE
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	case "NONE":
		return NONE
	default:
		return INFO
	}
}

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSeverity_LevelOrdering(t *testing.T) {
	levels := []Severity{TRACE, DEBUG, INFO, WARN, ERROR, FATAL, NONE}
	for i := 1; i < len(levels); i++ {
		if levels[i-1].Level() >= levels[i].Level() {
			t.Errorf("%s.Level()=%d should be < %s.Level()=%d", levels[i-1], levels[i-1].Level(), levels[i], levels[i].Level())
		}
	}
}

func TestSeverity_ToZapLevel(t *testing.T) {
	tests := []struct {
		severity Severity
		want     zapcore.Level
	}{
		{TRACE, zapcore.DebugLevel},
		{DEBUG, zapcore.DebugLevel},
		{INFO, zapcore.InfoLevel},
		{WARN, zapcore.WarnLevel},
		{ERROR, zapcore.ErrorLevel},
		{FATAL, zapcore.FatalLevel},
		{NONE, zapcore.InvalidLevel},
	}
	for _, tt := range tests {
		if got := tt.severity.ToZapLevel(); got != tt.want {
			t.Errorf("%s.ToZapLevel() = %v, want %v", tt.severity, got, tt.want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	if got := ParseSeverity("WARN"); got != WARN {
		t.Errorf("ParseSeverity(WARN) = %v, want WARN", got)
	}
	if got := ParseSeverity("bogus"); got != INFO {
		t.Errorf("ParseSeverity(bogus) = %v, want INFO (default)", got)
	}
}

func TestSeverity_String(t *testing.T) {
	if ERROR.String() != "ERROR" {
		t.Errorf("ERROR.String() = %q, want ERROR", ERROR.String())
	}
}

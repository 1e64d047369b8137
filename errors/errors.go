// Package errors provides a structured error envelope for gofaconde's
// outer surfaces (the CLI, any future service wrapper) and the single
// abort path, Fatal, used by the hot comparison paths themselves when a
// caller violates a precondition (swapping sequence order backwards, an
// out-of-range bound). A precondition violation isn't a recoverable
// error: Fatal logs one structured line and panics, the same way the
// library this package's conventions are ported from treats a contract
// violation as a programmer bug rather than a condition to propagate.
package errors

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fulmenhq/gofaconde/logging"
)

// Severity classifies how serious an error is, independent of its cause.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityLevel maps each Severity to a numeric ordinal for comparison.
var SeverityLevel = map[Severity]int{
	SeverityInfo:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Envelope is a structured, JSON-serializable error carrying enough
// context to correlate a CLI failure back to a specific invocation.
type Envelope struct {
	Code          string                 `json:"code"`
	Message       string                 `json:"message"`
	Severity      Severity               `json:"severity,omitempty"`
	SeverityLevel int                    `json:"severity_level,omitempty"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
	Context       map[string]interface{} `json:"context,omitempty"`
	Timestamp     string                 `json:"timestamp"`

	original error
}

// New creates an Envelope with a fresh correlation ID and info severity.
func New(code, message string) *Envelope {
	return &Envelope{
		Code:          code,
		Message:       message,
		Severity:      SeverityInfo,
		SeverityLevel: SeverityLevel[SeverityInfo],
		CorrelationID: uuid.New().String(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
}

// WithSeverity sets the envelope's severity, rejecting unknown values by
// falling back to SeverityInfo and reporting the rejection.
func (e *Envelope) WithSeverity(severity Severity) (*Envelope, error) {
	level, ok := SeverityLevel[severity]
	if !ok {
		e.Severity = SeverityInfo
		e.SeverityLevel = SeverityLevel[SeverityInfo]
		return e, fmt.Errorf("errors: invalid severity %q", severity)
	}
	e.Severity = severity
	e.SeverityLevel = level
	return e, nil
}

// WithContext attaches structured, JSON-serializable context fields.
func (e *Envelope) WithContext(context map[string]interface{}) *Envelope {
	e.Context = context
	return e
}

// Error implements the error interface.
func (e *Envelope) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Severity, e.Message)
}

// Unwrap returns the error Wrap attached, or nil for an Envelope created
// with New, so errors.Is/errors.As see through to the original cause.
func (e *Envelope) Unwrap() error {
	return e.original
}

// Wrap creates an Envelope around an existing recoverable error (a config
// parse failure, a logger construction failure), preserving it for
// errors.Unwrap while giving it a code and correlation ID like any other
// Envelope. Never used for the core metrics' precondition violations,
// which have no recoverable error path and go through Fatal instead.
func Wrap(code string, err error) *Envelope {
	e := New(code, err.Error())
	e.original = err
	return e
}

// MarshalJSON ensures Envelope's Error() method doesn't shadow its fields
// during serialization.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	type alias Envelope
	return json.Marshal((*alias)(e))
}

var (
	fatalLoggerMu sync.Mutex
	fatalLogger   *logging.Logger
)

// SetLogger installs the *logging.Logger that Fatal writes its diagnostic
// line through. Applications wire in the same Logger they use everywhere
// else; without a call to SetLogger, Fatal lazily builds one from
// logging.New(nil) on first use.
func SetLogger(l *logging.Logger) {
	fatalLoggerMu.Lock()
	defer fatalLoggerMu.Unlock()
	fatalLogger = l
}

func activeLogger() *logging.Logger {
	fatalLoggerMu.Lock()
	defer fatalLoggerMu.Unlock()
	if fatalLogger == nil {
		// New(nil) never returns an error; see logging.New.
		fatalLogger, _ = logging.New(nil)
	}
	return fatalLogger
}

// Fatal builds a critical-severity Envelope from code and a formatted
// message, logs a single structured line through the active Logger, and
// panics with the Envelope attached. This is the abort path for
// precondition violations inside the core comparison paths: a single formatted line prefixed with the library
// name, then abort, with no recoverable error to return instead. A
// recover() at a process boundary (cmd/gofaconde's entry point) is the
// caller's concern, not this package's.
func Fatal(code, format string, args ...interface{}) {
	env := New(code, fmt.Sprintf(format, args...))
	env.Severity = SeverityCritical
	env.SeverityLevel = SeverityLevel[SeverityCritical]

	if l := activeLogger(); l != nil {
		l.Error("gofaconde: fatal: "+env.Message,
			zap.String("code", env.Code),
			zap.String("correlation_id", env.CorrelationID),
		)
	}
	panic(env)
}

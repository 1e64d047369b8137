package logging

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_DefaultsWhenConfigNil(t *testing.T) {
	l, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) error: %v", err)
	}
	if l == nil {
		t.Fatal("New(nil) returned a nil Logger")
	}
	l.Info("hello")
}

func TestNew_DevelopmentEncoder(t *testing.T) {
	l, err := New(&Config{DefaultLevel: "DEBUG", Development: true})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	l.Debug("debug message", zap.String("key", "value"))
}

func TestLogger_SetLevel(t *testing.T) {
	l, err := New(&Config{DefaultLevel: "ERROR"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	l.SetLevel(DEBUG)
	l.Debug("now visible after lowering the level")
}

func TestLogger_With(t *testing.T) {
	l, err := New(&Config{DefaultLevel: "INFO"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	child := l.With(zap.String("component", "test"))
	if child == nil {
		t.Fatal("With returned nil")
	}
	child.Info("child logger message")
}

func TestLogger_FatalPanics(t *testing.T) {
	l, err := New(&Config{DefaultLevel: "INFO"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Fatal should panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "boom") {
			t.Errorf("panic value = %v, want a string containing %q", r, "boom")
		}
	}()
	l.Fatal("boom")
}

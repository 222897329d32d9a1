package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewLoggerBuildsForKnownLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "unknown"} {
		l, err := NewLogger(level)
		if err != nil {
			t.Errorf("NewLogger(%q): %v", level, err)
			continue
		}
		if l == nil {
			t.Errorf("NewLogger(%q) returned a nil logger", level)
		}
	}
}

func TestOrNopReturnsNopForNil(t *testing.T) {
	l := OrNop(nil)
	if l == nil {
		t.Fatal("OrNop(nil) must never return nil")
	}
	// Should not panic.
	l.Info("ok")
}

func TestOrNopPassesThroughNonNil(t *testing.T) {
	real := zap.NewNop()
	if OrNop(real) != real {
		t.Error("OrNop should return the given logger unchanged when non-nil")
	}
}

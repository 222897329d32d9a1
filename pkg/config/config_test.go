package config

import "testing"

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.LimitOrder != 20 {
		t.Errorf("LimitOrder default: want 20, got %d", c.LimitOrder)
	}
	if c.NSums != 1_000_000 {
		t.Errorf("NSums default: want 1000000, got %d", c.NSums)
	}
	if !c.ComputeImportance {
		t.Error("ComputeImportance should default to true")
	}
	if c.RareEvent {
		t.Error("RareEvent should default to false")
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	c := New(WithLimitOrder(5), WithCutOff(0.01), WithSeed(99))
	if c.LimitOrder != 5 {
		t.Errorf("WithLimitOrder: want 5, got %d", c.LimitOrder)
	}
	if c.CutOff != 0.01 {
		t.Errorf("WithCutOff: want 0.01, got %v", c.CutOff)
	}
	if c.Seed != 99 {
		t.Errorf("WithSeed: want 99, got %d", c.Seed)
	}
}

func TestEffectiveRareEventDisabledByMonteCarlo(t *testing.T) {
	c := New(WithRareEvent(true), WithNSimulations(100))
	effective, warning := c.EffectiveRareEvent()
	if effective {
		t.Error("rare_event should be disabled when n_simulations > 0")
	}
	if warning == "" {
		t.Error("disabling rare_event should produce a warning explaining why")
	}
}

func TestEffectiveRareEventPassthroughWhenNoMonteCarlo(t *testing.T) {
	c := New(WithRareEvent(true))
	effective, warning := c.EffectiveRareEvent()
	if !effective {
		t.Error("rare_event should pass through unchanged when no Monte Carlo run is requested")
	}
	if warning != "" {
		t.Errorf("no override should mean no warning, got %q", warning)
	}
}

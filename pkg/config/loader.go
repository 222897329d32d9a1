package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// raw mirrors the on-disk JSON shape; fields are pointers so Loader can
// tell "absent" from "explicitly zero" and fall back to New's defaults.
type raw struct {
	LimitOrder        *int     `json:"limit_order"`
	CutOff            *float64 `json:"cutoff"`
	NSums             *int     `json:"n_sums"`
	RareEvent         *bool    `json:"rare_event"`
	NSimulations      *int     `json:"n_simulations"`
	Seed              *uint64  `json:"seed"`
	ComputeImportance *bool    `json:"compute_importance"`
}

// Loader reads a Config from a JSON file on disk.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and validates the config file, collecting every violation
// into one error rather than stopping at the first.
func (l *Loader) Load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg := New()
	if r.LimitOrder != nil {
		cfg.LimitOrder = *r.LimitOrder
	}
	if r.CutOff != nil {
		cfg.CutOff = *r.CutOff
	}
	if r.NSums != nil {
		cfg.NSums = *r.NSums
	}
	if r.RareEvent != nil {
		cfg.RareEvent = *r.RareEvent
	}
	if r.NSimulations != nil {
		cfg.NSimulations = *r.NSimulations
	}
	if r.Seed != nil {
		cfg.Seed = *r.Seed
	}
	if r.ComputeImportance != nil {
		cfg.ComputeImportance = *r.ComputeImportance
	}

	if violations := validate(cfg); len(violations) > 0 {
		msg := "invalid config:"
		for _, v := range violations {
			msg += "\n  - " + v
		}
		return nil, errors.New(msg)
	}

	return cfg, nil
}

func validate(c *Config) []string {
	var violations []string
	if c.LimitOrder < 0 {
		violations = append(violations, "limit_order must be >= 0")
	}
	if c.CutOff < 0 || c.CutOff > 1 {
		violations = append(violations, "cutoff must be in [0, 1]")
	}
	if c.NSums < 1 {
		violations = append(violations, "n_sums must be >= 1")
	}
	if c.NSimulations < 0 {
		violations = append(violations, "n_simulations must be >= 0")
	}
	return violations
}

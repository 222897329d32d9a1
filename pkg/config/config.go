// Package config carries the tunables that shape one analysis run: MCS
// order limiting, inclusion-exclusion truncation, rare-event mode, and
// Monte Carlo sizing.
package config

// Config holds every analysis tunable. Zero value is not valid on its
// own; use New, which applies the documented defaults before options run.
type Config struct {
	LimitOrder        int
	CutOff            float64
	NSums             int
	RareEvent         bool
	NSimulations      int
	Seed              uint64
	ComputeImportance bool
}

// Option mutates a Config under construction.
type Option func(*Config)

// New builds a Config from the documented defaults plus any options.
func New(opts ...Option) *Config {
	c := &Config{
		LimitOrder:        20,
		CutOff:            0,
		NSums:             1_000_000,
		RareEvent:         false,
		NSimulations:      0,
		Seed:              0,
		ComputeImportance: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithLimitOrder(n int) Option        { return func(c *Config) { c.LimitOrder = n } }
func WithCutOff(v float64) Option        { return func(c *Config) { c.CutOff = v } }
func WithNSums(n int) Option             { return func(c *Config) { c.NSums = n } }
func WithRareEvent(b bool) Option        { return func(c *Config) { c.RareEvent = b } }
func WithNSimulations(n int) Option      { return func(c *Config) { c.NSimulations = n } }
func WithSeed(seed uint64) Option        { return func(c *Config) { c.Seed = seed } }
func WithComputeImportance(b bool) Option { return func(c *Config) { c.ComputeImportance = b } }

// EffectiveRareEvent resolves spec.md's open question: rare-event mode is
// disabled whenever a Monte Carlo run is also requested, since the two
// are mutually exclusive evaluation strategies for the same top
// probability. Returns the resolved flag and a warning when the caller's
// RareEvent request was overridden.
func (c *Config) EffectiveRareEvent() (bool, string) {
	if c.RareEvent && c.NSimulations > 0 {
		return false, "rare_event disabled: n_simulations > 0 selects Monte Carlo evaluation instead"
	}
	return c.RareEvent, ""
}

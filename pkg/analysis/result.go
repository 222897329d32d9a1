package analysis

import (
	"faulttree/pkg/mcs"
	"faulttree/pkg/montecarlo"
)

// Result is the structured outcome of one Analyze call: ordered minimal
// cut sets, per-cut-set probability, top-event probability, per-basic-
// event importance, and any warnings accumulated along the way.
type Result struct {
	RunID       string
	TreeName    string
	CutSets     []mcs.CutSet
	CutSetProbs []float64 // parallel to CutSets
	TopProb     float64
	RareEvent   bool
	Importance  []EventImportance
	Warnings    []string
}

// EventImportance names a basic event by its original identifier rather
// than its dense index, for reporting.
type EventImportance struct {
	EventID string
	Value   float64
}

// MonteCarloResult is the structured outcome of one Simulate call.
type MonteCarloResult struct {
	RunID    string
	TreeName string
	Stats    montecarlo.Stats
	Warnings []string
}

// Package analysis orchestrates the validated model, MCS generator,
// probability kernel, and Monte Carlo driver into the two operations a
// caller actually wants: Analyze and Simulate.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"faulttree/pkg/config"
	"faulttree/pkg/fterrors"
	"faulttree/pkg/logging"
	"faulttree/pkg/mcs"
	"faulttree/pkg/model"
	"faulttree/pkg/montecarlo"
	"faulttree/pkg/probability"
	"faulttree/pkg/telemetry"
)

// Analyzer wires a sealed fault tree and a config together. It owns no
// state the model doesn't already own.
type Analyzer struct {
	tree   *model.FaultTree
	cfg    *config.Config
	logger *zap.Logger
}

// NewAnalyzer requires a sealed tree; an unsealed tree is a caller bug,
// not a data problem, so it is reported as a LogicError.
func NewAnalyzer(tree *model.FaultTree, cfg *config.Config, logger *zap.Logger) (*Analyzer, error) {
	if tree == nil {
		return nil, fterrors.NewLogicError("analyzer: nil fault tree")
	}
	if !tree.Sealed() {
		return nil, fterrors.NewLogicError("analyzer: fault tree must be sealed before analysis")
	}
	if cfg == nil {
		cfg = config.New()
	}
	return &Analyzer{tree: tree, cfg: cfg, logger: logging.OrNop(logger)}, nil
}

// Analyze runs MCS generation, minimization, and probability evaluation,
// returning a structured Result.
func (a *Analyzer) Analyze(ctx context.Context) (*Result, error) {
	runID := uuid.New().String()
	start := time.Now()
	defer func() {
		telemetry.AnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	idx, cutSets, warnings, err := a.generateMCS(ctx)
	if err != nil {
		telemetry.AnalysisRunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	prob := func(i int) float64 { return idx.Event(i).Probability() }

	rareEvent, rareWarning := a.cfg.EffectiveRareEvent()
	if rareWarning != "" {
		warnings = append(warnings, rareWarning)
	}

	var topProb float64
	if rareEvent {
		var rw []string
		topProb, rw = probability.RareEvent(cutSets, prob)
		warnings = append(warnings, rw...)
	} else {
		topProb = probability.Exact(cutSets, prob, a.cfg.NSums)
	}

	cutSetProbs := make([]float64, len(cutSets))
	for i, cs := range cutSets {
		cutSetProbs[i] = probability.CutSetProb(cs, prob)
	}

	var importance []EventImportance
	if a.cfg.ComputeImportance {
		for _, imp := range probability.FussellVesely(cutSets, prob, topProb) {
			importance = append(importance, EventImportance{
				EventID: idx.Event(imp.EventIndex).OrigID,
				Value:   imp.Value,
			})
		}
	}

	reportedCutSets, reportedProbs := applyCutOff(cutSets, cutSetProbs, a.cfg.CutOff)

	a.logger.Info("analysis complete",
		zap.String("run_id", runID),
		zap.String("tree", a.tree.Name),
		zap.Int("cut_sets", len(reportedCutSets)),
		zap.Float64("top_probability", topProb),
	)
	telemetry.AnalysisRunsTotal.WithLabelValues("ok").Inc()

	return &Result{
		RunID:       runID,
		TreeName:    a.tree.Name,
		CutSets:     reportedCutSets,
		CutSetProbs: reportedProbs,
		TopProb:     topProb,
		RareEvent:   rareEvent,
		Importance:  importance,
		Warnings:    warnings,
	}, nil
}

// Simulate runs the Monte Carlo driver over the tree's minimal cut sets,
// sequentially by default (spec-mandated reproducible default).
func (a *Analyzer) Simulate(ctx context.Context) (*MonteCarloResult, error) {
	runID := uuid.New().String()
	start := time.Now()
	defer func() {
		telemetry.MonteCarloDuration.Observe(time.Since(start).Seconds())
	}()

	idx, cutSets, warnings, err := a.generateMCS(ctx)
	if err != nil {
		return nil, err
	}

	driver := montecarlo.NewDriver(idx, cutSets, montecarlo.Config{
		NSimulations: a.cfg.NSimulations,
		NSums:        a.cfg.NSums,
		Seed:         a.cfg.Seed,
	})

	stats, err := driver.Run(ctx)
	if err != nil {
		return nil, err
	}
	telemetry.MonteCarloSimulationsTotal.Add(float64(a.cfg.NSimulations))

	a.logger.Info("simulation complete",
		zap.String("run_id", runID),
		zap.String("tree", a.tree.Name),
		zap.Int("n_simulations", a.cfg.NSimulations),
		zap.Float64("mean", stats.Mean),
	)

	return &MonteCarloResult{
		RunID:    runID,
		TreeName: a.tree.Name,
		Stats:    stats,
		Warnings: warnings,
	}, nil
}

// applyCutOff discards cut sets whose computed probability falls below
// cutoff, keeping CutSets and CutSetProbs parallel. Top probability and
// importance are computed before this filter runs, over the full set.
func applyCutOff(cutSets []mcs.CutSet, probs []float64, cutoff float64) ([]mcs.CutSet, []float64) {
	if cutoff <= 0 {
		return cutSets, probs
	}
	keptSets := cutSets[:0]
	keptProbs := probs[:0]
	for i, p := range probs {
		if p >= cutoff {
			keptSets = append(keptSets, cutSets[i])
			keptProbs = append(keptProbs, p)
		}
	}
	return keptSets, keptProbs
}

// generateMCS is shared by Analyze and Simulate: build the basic-event
// index, expand candidate cut sets, and minimize.
func (a *Analyzer) generateMCS(ctx context.Context) (*mcs.Index, []mcs.CutSet, []string, error) {
	idx := mcs.BuildIndex(a.tree)
	candidates, pruned, err := mcs.Generate(ctx, a.tree, idx, mcs.Options{LimitOrder: a.cfg.LimitOrder})
	if err != nil {
		return nil, nil, nil, err
	}
	telemetry.MCSGeneratedTotal.Add(float64(len(candidates)))
	telemetry.MCSPrunedByOrderTotal.Add(float64(pruned))

	minimal := mcs.Minimize(candidates)
	return idx, minimal, nil, nil
}

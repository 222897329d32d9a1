// Package montecarlo implements the Monte Carlo driver (spec.md C6): it
// wraps the probability kernel, drawing a fresh sample epoch per
// iteration and aggregating the resulting top-event probabilities into
// summary statistics.
package montecarlo

import (
	"context"

	"golang.org/x/sync/errgroup"

	"faulttree/pkg/fterrors"
	"faulttree/pkg/mcs"
	"faulttree/pkg/probability"
)

// Config controls one Monte Carlo run.
type Config struct {
	NSimulations int
	NSums        int // inclusion-exclusion truncation applied per iteration
	Seed         uint64
}

// Driver repeatedly re-evaluates a fixed cut-set collection under fresh
// sampled basic-event probabilities.
type Driver struct {
	idx     *mcs.Index
	cutSets []mcs.CutSet
	cfg     Config
}

func NewDriver(idx *mcs.Index, cutSets []mcs.CutSet, cfg Config) *Driver {
	return &Driver{idx: idx, cutSets: cutSets, cfg: cfg}
}

// Run draws cfg.NSimulations samples sequentially, deterministic for a
// given seed. This is the spec-mandated default.
func (d *Driver) Run(ctx context.Context) (Stats, error) {
	sm := newSplitMix64(d.cfg.Seed)
	samples := make([]float64, 0, d.cfg.NSimulations)

	for i := 0; i < d.cfg.NSimulations; i++ {
		select {
		case <-ctx.Done():
			return Stats{}, fterrors.NewCancelled("montecarlo")
		default:
		}
		epoch := sm.next()
		samples = append(samples, d.evaluate(epoch))
	}

	return summarize(samples), nil
}

// RunParallel partitions the iteration range across workers, each with
// an independently derived seed (master seed split via splitmix64), then
// sorts the collected samples before computing statistics so the report
// order is stable regardless of worker scheduling.
func (d *Driver) RunParallel(ctx context.Context, workers int) (Stats, error) {
	if workers < 1 {
		workers = 1
	}
	if d.cfg.NSimulations == 0 {
		return Stats{}, nil
	}

	workerSeeds := split(d.cfg.Seed, workers)
	perWorker := make([][]float64, workers)

	g, gctx := errgroup.WithContext(ctx)
	base := d.cfg.NSimulations / workers
	rem := d.cfg.NSimulations % workers

	for w := 0; w < workers; w++ {
		count := base
		if w < rem {
			count++
		}
		w, count, seed := w, count, workerSeeds[w]
		g.Go(func() error {
			sm := newSplitMix64(seed)
			out := make([]float64, 0, count)
			for i := 0; i < count; i++ {
				select {
				case <-gctx.Done():
					return fterrors.NewCancelled("montecarlo")
				default:
				}
				epoch := sm.next()
				out = append(out, d.evaluate(epoch))
			}
			perWorker[w] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	var all []float64
	for _, out := range perWorker {
		all = append(all, out...)
	}
	return summarize(all), nil
}

func (d *Driver) evaluate(epoch uint64) float64 {
	prob := func(idx int) float64 {
		e := d.idx.Event(idx)
		if e == nil {
			return 0
		}
		return e.SampleProbability(epoch)
	}
	return probability.Exact(d.cutSets, prob, d.cfg.NSums)
}

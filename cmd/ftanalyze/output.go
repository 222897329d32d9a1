package main

import (
	"fmt"

	"faulttree/pkg/analysis"
)

func printResultTable(r *analysis.Result) {
	fmt.Printf("tree: %s\n", r.TreeName)
	fmt.Printf("top probability: %.6g (rare_event=%v)\n\n", r.TopProb, r.RareEvent)

	fmt.Println("minimal cut sets:")
	for i, cs := range r.CutSets {
		fmt.Printf("  %2d. %v  p=%.6g\n", i+1, cs, r.CutSetProbs[i])
	}

	if len(r.Importance) > 0 {
		fmt.Println("\nimportance (Fussell-Vesely):")
		for _, imp := range r.Importance {
			fmt.Printf("  %-20s %.6g\n", imp.EventID, imp.Value)
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Println("\nwarnings:")
		for _, w := range r.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}

func printStatsTable(r *analysis.MonteCarloResult) {
	s := r.Stats
	fmt.Printf("tree: %s\n", r.TreeName)
	fmt.Printf("n=%d mean=%.6g stddev=%.6g p05=%.6g p50=%.6g p95=%.6g\n",
		s.N, s.Mean, s.StdDev, s.P05, s.P50, s.P95)

	if len(r.Warnings) > 0 {
		fmt.Println("warnings:")
		for _, w := range r.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}

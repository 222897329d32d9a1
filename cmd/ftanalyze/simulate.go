package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"faulttree/pkg/analysis"
	"faulttree/pkg/ftjson"
	"faulttree/pkg/logging"
)

var (
	simulateN        int
	simulateSeed     uint64
	simulateJSONOut  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <tree.json>",
	Short: "Run a Monte Carlo simulation over a fault tree's minimal cut sets",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "path to a JSON analysis config file")
	simulateCmd.Flags().IntVar(&simulateN, "n", 10000, "number of simulations")
	simulateCmd.Flags().Uint64Var(&simulateSeed, "seed", 0, "random seed")
	simulateCmd.Flags().BoolVar(&simulateJSONOut, "json", false, "print the result as JSON instead of a table")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, err := logging.NewLogger(flagLogLevel)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.NSimulations = simulateN
	cfg.Seed = simulateSeed

	tree, _, err := ftjson.LoadFile(args[0])
	if err != nil {
		return err
	}

	analyzer, err := analysis.NewAnalyzer(tree, cfg, logger)
	if err != nil {
		return err
	}

	result, err := analyzer.Simulate(context.Background())
	if err != nil {
		return err
	}

	if simulateJSONOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printStatsTable(result)
	return nil
}

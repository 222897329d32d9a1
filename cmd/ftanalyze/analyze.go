package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"faulttree/pkg/analysis"
	"faulttree/pkg/config"
	"faulttree/pkg/ftjson"
	"faulttree/pkg/logging"
)

var (
	analyzeConfigPath string
	analyzeJSONOut    bool
	analyzeLimitOrder int
	analyzeCutOff     float64
	analyzeRareEvent  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <tree.json>",
	Short: "Load a fault tree and compute its minimal cut sets and top probability",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "path to a JSON analysis config file")
	analyzeCmd.Flags().BoolVar(&analyzeJSONOut, "json", false, "print the result as JSON instead of a table")
	analyzeCmd.Flags().IntVar(&analyzeLimitOrder, "limit-order", 20, "maximum cut-set size")
	analyzeCmd.Flags().Float64Var(&analyzeCutOff, "cutoff", 0, "discard cut sets with probability below this threshold")
	analyzeCmd.Flags().BoolVar(&analyzeRareEvent, "rare-event", false, "use the first-order rare-event approximation")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger, err := logging.NewLogger(flagLogLevel)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.LimitOrder = analyzeLimitOrder
	cfg.CutOff = analyzeCutOff
	cfg.RareEvent = analyzeRareEvent

	tree, diags, err := ftjson.LoadFile(args[0])
	if err != nil {
		return err
	}
	for _, d := range diags {
		logger.Warn(d.Message)
	}

	analyzer, err := analysis.NewAnalyzer(tree, cfg, logger)
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(context.Background())
	if err != nil {
		return err
	}

	if analyzeJSONOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printResultTable(result)
	return nil
}

func loadConfig() (*config.Config, error) {
	if analyzeConfigPath == "" {
		return config.New(), nil
	}
	return config.NewLoader(analyzeConfigPath).Load()
}

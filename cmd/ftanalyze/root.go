package main

import (
	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "ftanalyze",
	Short: "Fault tree analyzer: minimal cut sets, top probability, importance",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(simulateCmd)
}

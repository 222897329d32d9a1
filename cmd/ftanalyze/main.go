// Command ftanalyze is the operator front end for the fault tree
// analysis core: load a tree from a JSON file, run the analysis or
// Monte Carlo pipeline, and print the result.
package main

import (
	"errors"
	"fmt"
	"os"

	"faulttree/pkg/fterrors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var verr *fterrors.ValidationError
	var derr *fterrors.DomainError
	var cerr *fterrors.Cancelled
	switch {
	case errors.As(err, &verr):
		return 2
	case errors.As(err, &derr):
		return 3
	case errors.As(err, &cerr):
		return 4
	default:
		return 1
	}
}

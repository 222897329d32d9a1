// Package validate implements fault-tree sealing: cycle detection with
// implicit-gate discovery, completeness, gate arity checking, and basic
// event probability completeness — the ordered sequence spec.md calls
// C3.
package validate

import (
	"fmt"
	"strings"

	"faulttree/pkg/fterrors"
	"faulttree/pkg/model"
)

// Severity distinguishes a diagnostic that blocks probability analysis
// from one that is merely informational.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "ERROR"
	}
	return "WARNING"
}

// Diagnostic is one item in the list Seal returns alongside the sealed
// tree, replacing the legacy global warnings buffer with an explicit,
// caller-owned collection.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// Options configures how strictly Seal treats recoverable issues.
type Options struct {
	// ComputeProbability, when true, promotes "basic event missing an
	// expression" from a warning to a ValidationError, since probability
	// analysis cannot proceed without it.
	ComputeProbability bool
}

const (
	white = iota
	gray
	black
)

// Seal validates a builder's declared fault tree and returns the sealed,
// read-only FaultTree plus a diagnostic list. err is non-nil only for
// structural violations (cycles, arity, undefined leaves) and, when
// opts.ComputeProbability is set, for basic events missing an expression
// — see spec.md §7's "collected together, unless catastrophic" policy.
func Seal(b *model.Builder, opts Options) (*model.FaultTree, []Diagnostic, error) {
	tree, topLevel, err := b.Build()
	if err != nil {
		return nil, nil, err
	}

	color := make(map[string]int)
	var path []string // original identifiers, current DFS path

	var visit func(g *model.Gate) error
	visit = func(g *model.Gate) error {
		color[g.ID] = gray
		path = append(path, g.OrigID)
		defer func() { path = path[:len(path)-1] }()

		for _, child := range g.Children() {
			if child.IsGate() {
				cg := child.Gate
				switch color[cg.ID] {
				case gray:
					msg := cycleMessage(path, cg.OrigID)
					return fterrors.NewValidationError(tree.Name, msg)
				case black:
					continue
				default: // white
					if !topLevel[cg.ID] {
						tree.InterEvents[cg.ID] = cg
						tree.ImplicitGates[cg.ID] = cg
					}
					if err := visit(cg); err != nil {
						return err
					}
				}
			} else {
				e := child.Event
				if e.IsBasic {
					tree.BasicEvents[e.ID] = e
				} else {
					tree.HouseEvents[e.ID] = e
				}
			}
		}
		color[g.ID] = black
		return nil
	}

	if err := visit(tree.Top); err != nil {
		return nil, nil, err
	}

	var diags []Diagnostic

	// Gate arity: collected across every reachable gate, top included.
	var arityMsgs []string
	arityMsgs = append(arityMsgs, tree.Top.CheckArity()...)
	for _, id := range tree.SortedGateIDs() {
		arityMsgs = append(arityMsgs, tree.InterEvents[id].CheckArity()...)
	}
	if len(arityMsgs) > 0 {
		ve := fterrors.NewValidationError(tree.Name, arityMsgs[0])
		for _, m := range arityMsgs[1:] {
			ve.Add(m)
		}
		return nil, nil, ve
	}

	// Basic-event probability completeness.
	var missing []string
	for _, id := range tree.SortedBasicEventIDs() {
		if tree.BasicEvents[id].Expr == nil {
			missing = append(missing, tree.BasicEvents[id].OrigID)
		}
	}
	if len(missing) > 0 {
		msg := fmt.Sprintf("basic events missing a probability expression: %s", strings.Join(missing, ", "))
		if opts.ComputeProbability {
			return nil, nil, fterrors.NewValidationError(tree.Name, msg)
		}
		diags = append(diags, Diagnostic{Severity: Warning, Message: msg})
	}

	tree.SetSealed()
	return tree, diags, nil
}

// cycleMessage renders the path from the first occurrence of repeated to
// the repeat, using original identifiers, e.g. "G1->G2->G1".
func cycleMessage(path []string, repeated string) string {
	idx := -1
	for i, id := range path {
		if id == repeated {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = 0
	}
	segment := append(append([]string(nil), path[idx:]...), repeated)
	return "cyclicity detected: " + strings.Join(segment, "->")
}

package mcs

import (
	"context"
	"sort"

	"faulttree/pkg/fterrors"
	"faulttree/pkg/model"
)

// CutSet is a sorted set of literals: a positive value i means basic
// event i must occur, a negative value -i means it must not. Coherent
// trees (AND/OR/K-of-N only) produce cut sets with positive literals
// only, matching spec.md's "sorted set of positive indices"; negative
// literals survive only when the tree uses NOT/XOR/NAND/NOR directly on
// a basic event, which spec.md leaves as an implementation choice (see
// DESIGN.md).
type CutSet []int

// Options configures the expansion.
type Options struct {
	LimitOrder int // spec.md default 20; 0 means unlimited
}

// Generate expands tree into its (unminimized) candidate cut sets using
// the index's basic-event numbering, honoring ctx cancellation between
// supersets as spec.md §5 requires.
// Generate returns the candidate cut sets plus the count of supersets
// abandoned for exceeding opts.LimitOrder, for callers that want to
// report pruning volume.
func Generate(ctx context.Context, tree *model.FaultTree, idx *Index, opts Options) ([]CutSet, int, error) {
	worklist := []*superset{newSuperset(tree.Top)}
	var candidates []CutSet
	pruned := 0

	for len(worklist) > 0 {
		select {
		case <-ctx.Done():
			return nil, pruned, fterrors.NewCancelled("mcs expansion")
		default:
		}

		n := len(worklist) - 1
		s := worklist[n]
		worklist = worklist[:n]

		if s.dead {
			continue
		}
		if s.exceedsOrder(opts.LimitOrder) {
			pruned++
			continue
		}

		if len(s.pending) == 0 {
			if cs, ok := finalize(s); ok {
				candidates = append(candidates, cs)
			}
			continue
		}

		item := s.pending[0]
		rest := s.pending[1:]
		next := expand(s, item, rest, idx)
		worklist = append(worklist, next...)
	}

	return candidates, pruned, nil
}

// finalize converts a fully-expanded superset into a cut set, rejecting
// it if a basic event appears with both polarities.
func finalize(s *superset) (CutSet, bool) {
	for i := range s.positives {
		if s.negatives[i] {
			return nil, false
		}
	}
	cs := make(CutSet, 0, len(s.positives)+len(s.negatives))
	for i := range s.positives {
		cs = append(cs, i)
	}
	for i := range s.negatives {
		cs = append(cs, -i)
	}
	sort.Ints(cs)
	return cs, true
}

// expand applies one gate's expansion rule, returning the successor
// supersets to push back onto the worklist. Child order is always the
// gate's identifier sort order (model.Gate.Children already sorts).
func expand(s *superset, item pendingItem, rest []pendingItem, idx *Index) []*superset {
	g := item.gate
	kind, negated := effectiveKind(g.Kind, item.negated)

	switch kind {
	case model.GateAND, model.GateNULL:
		// NOT(AND(children)) De Morgans into OR(NOT children): the same
		// branching rule as OR, just with every child's polarity flipped.
		if negated {
			return expandOR(s, g, true, rest, idx)
		}
		return []*superset{expandAND(s, g, false, rest, idx)}
	case model.GateOR:
		// NOT(OR(children)) De Morgans into AND(NOT children).
		if negated {
			return []*superset{expandAND(s, g, true, rest, idx)}
		}
		return expandOR(s, g, false, rest, idx)
	case model.GateNOT:
		return []*superset{expandNOT(s, g, negated, rest, idx)}
	case model.GateXOR:
		return expandXOR(s, g, negated, rest, idx)
	case model.GateATLEAST:
		return expandATLEAST(s, g, negated, rest, idx)
	default:
		return []*superset{expandAND(s, g, negated, rest, idx)}
	}
}

// effectiveKind folds NAND/NOR into their base kind plus an extra
// negation, since NAND = NOT(AND) and NOR = NOT(OR).
func effectiveKind(kind model.GateKind, negated bool) (model.GateKind, bool) {
	switch kind {
	case model.GateNAND:
		return model.GateAND, !negated
	case model.GateNOR:
		return model.GateOR, !negated
	default:
		return kind, negated
	}
}

// pushChild adds one child to a superset in place: a gate becomes a new
// pending item, a primary event is resolved immediately as a literal.
func pushChild(s *superset, c model.Child, negated bool, idx *Index) {
	if c.IsGate() {
		s.pending = append(s.pending, pendingItem{gate: c.Gate, negated: negated})
		return
	}
	i, _ := idx.IndexOf(c.Event.ID)
	s.addLiteral(c.Event, i, negated)
}

// expandAND merges every child into the same superset, each taking on
// the same polarity: called with negated=false for a plain AND, and
// with negated=true as the branch produced by De Morgan on a negated OR.
func expandAND(s *superset, g *model.Gate, negated bool, rest []pendingItem, idx *Index) *superset {
	next := s.clone()
	next.pending = append([]pendingItem(nil), rest...)
	for _, c := range g.Children() {
		pushChild(next, c, negated, idx)
	}
	return next
}

// expandOR fans out one successor superset per child.
func expandOR(s *superset, g *model.Gate, negated bool, rest []pendingItem, idx *Index) []*superset {
	children := g.Children()
	out := make([]*superset, 0, len(children))
	for _, c := range children {
		next := s.clone()
		next.pending = append([]pendingItem(nil), rest...)
		pushChild(next, c, negated, idx)
		out = append(out, next)
	}
	return out
}

// expandNOT flips the polarity of its single child's subtree.
func expandNOT(s *superset, g *model.Gate, negated bool, rest []pendingItem, idx *Index) *superset {
	next := s.clone()
	next.pending = append([]pendingItem(nil), rest...)
	child := g.Children()[0]
	pushChild(next, child, !negated, idx)
	return next
}

// expandXOR produces {a & !b} and {!a & b} for XOR(a,b), or their
// complements {a & b} and {!a & !b} when negated (NOT(XOR) == equality).
func expandXOR(s *superset, g *model.Gate, negated bool, rest []pendingItem, idx *Index) []*superset {
	children := g.Children()
	a, b := children[0], children[1]

	first := s.clone()
	first.pending = append([]pendingItem(nil), rest...)
	second := s.clone()
	second.pending = append([]pendingItem(nil), rest...)

	if !negated {
		pushChild(first, a, false, idx)
		pushChild(first, b, true, idx)
		pushChild(second, a, true, idx)
		pushChild(second, b, false, idx)
	} else {
		pushChild(first, a, false, idx)
		pushChild(first, b, false, idx)
		pushChild(second, a, true, idx)
		pushChild(second, b, true, idx)
	}
	return []*superset{first, second}
}

// expandATLEAST enumerates N-choose-K combinations (lexicographic
// bitmask order) for a positive K-of-N gate, or N-choose-(N-K+1)
// combinations of negated children for its complement.
func expandATLEAST(s *superset, g *model.Gate, negated bool, rest []pendingItem, idx *Index) []*superset {
	children := g.Children()
	n := len(children)
	k := g.K
	pick := k
	pickNegated := false
	if negated {
		pick = n - k + 1
		pickNegated = true
	}

	var out []*superset
	combinations(n, pick, func(combo []int) {
		next := s.clone()
		next.pending = append([]pendingItem(nil), rest...)
		for _, ci := range combo {
			pushChild(next, children[ci], pickNegated, idx)
		}
		out = append(out, next)
	})
	return out
}

// combinations enumerates every k-subset of {0,...,n-1} in lexicographic
// bitmask order, invoking visit with each subset's indices.
func combinations(n, k int, visit func(combo []int)) {
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		visit(nil)
		return
	}
	combo := make([]int, k)
	for i := range combo {
		combo[i] = i
	}
	for {
		visit(append([]int(nil), combo...))
		i := k - 1
		for i >= 0 && combo[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		combo[i]++
		for j := i + 1; j < k; j++ {
			combo[j] = combo[j-1] + 1
		}
	}
}

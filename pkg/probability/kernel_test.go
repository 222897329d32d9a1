package probability

import (
	"math"
	"testing"

	"faulttree/pkg/mcs"
)

func constProb(values map[int]float64) EventProb {
	return func(idx int) float64 { return values[idx] }
}

func TestCutSetProb(t *testing.T) {
	p := constProb(map[int]float64{1: 0.1, 2: 0.2})
	got := CutSetProb(mcs.CutSet{1, 2}, p)
	want := 0.1 * 0.2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CutSetProb: want %v, got %v", want, got)
	}
}

func TestCutSetProbNegativeLiteralUsesComplement(t *testing.T) {
	p := constProb(map[int]float64{1: 0.1, 2: 0.2})
	got := CutSetProb(mcs.CutSet{1, -2}, p)
	want := 0.1 * (1 - 0.2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CutSetProb with negative literal: want %v, got %v", want, got)
	}
}

func TestExactSingleCutSet(t *testing.T) {
	p := constProb(map[int]float64{1: 0.1, 2: 0.2})
	got := Exact([]mcs.CutSet{{1, 2}}, p, 1000)
	want := 0.02
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Exact with one cut set: want %v, got %v", want, got)
	}
}

func TestExactDisjointCutSetsMatchesUnionFormula(t *testing.T) {
	// Two disjoint singleton cut sets: P(A or B) = p1 + p2 - p1*p2.
	p := constProb(map[int]float64{1: 0.1, 2: 0.3})
	got := Exact([]mcs.CutSet{{1}, {2}}, p, 1000)
	want := 0.1 + 0.3 - 0.1*0.3
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Exact union of two independent events: want %v, got %v", want, got)
	}
}

func TestExactEmptyCutSets(t *testing.T) {
	if got := Exact(nil, constProb(nil), 1000); got != 0 {
		t.Errorf("Exact with no cut sets should be 0, got %v", got)
	}
}

func TestExactClampsToOne(t *testing.T) {
	p := constProb(map[int]float64{1: 0.9, 2: 0.9, 3: 0.9})
	got := Exact([]mcs.CutSet{{1}, {2}, {3}}, p, 1)
	if got < 0 || got > 1 {
		t.Errorf("Exact must always clamp into [0,1], got %v", got)
	}
}

func TestRareEventIsUpperBoundAndWarns(t *testing.T) {
	p := constProb(map[int]float64{1: 0.2, 2: 0.05})
	exact := Exact([]mcs.CutSet{{1}, {2}}, p, 1000)
	rare, warnings := RareEvent([]mcs.CutSet{{1}, {2}}, p)

	if rare < exact {
		t.Errorf("rare-event first-order sum (%v) should be >= exact probability (%v)", rare, exact)
	}
	if len(warnings) != 1 {
		t.Errorf("cut set with p=0.2 > threshold should produce exactly one warning, got %v", warnings)
	}
}

func TestNSumsTruncatesHigherOrderTerms(t *testing.T) {
	p := constProb(map[int]float64{1: 0.5, 2: 0.5, 3: 0.5})
	full := Exact([]mcs.CutSet{{1}, {2}, {3}}, p, 1000)
	truncated := Exact([]mcs.CutSet{{1}, {2}, {3}}, p, 3)
	if truncated < full {
		t.Errorf("truncating to first-order terms only should overestimate, got truncated=%v full=%v", truncated, full)
	}
}

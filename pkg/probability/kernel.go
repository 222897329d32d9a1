// Package probability implements the probability kernel (spec.md C5):
// exact top-event probability via truncated inclusion-exclusion, the
// rare-event first-order approximation, and Fussell-Vesely importance.
package probability

import (
	"sort"
	"strconv"

	"faulttree/pkg/mcs"
)

// EventProb resolves a basic event's occurrence probability by its
// mcs.Index number.
type EventProb func(idx int) float64

// CutSetProb is the probability of one minimal cut set: the product of
// its positive literals' probabilities and its negative literals'
// complements.
func CutSetProb(cs mcs.CutSet, prob EventProb) float64 {
	p := 1.0
	for _, lit := range cs {
		if lit > 0 {
			p *= prob(lit)
		} else {
			p *= 1 - prob(-lit)
		}
	}
	return p
}

// term is one summand of the inclusion-exclusion expansion: the union of
// literals contributed by the cut sets combined to produce it, plus the
// highest cut-set index used so combine only ever extends with a higher
// index and each combination of cut sets is generated exactly once.
type term struct {
	literals map[int]bool // raw CutSet values, signed
	lastIdx  int
	dead     bool // a literal and its negation both appear: probability 0
}

func newTerm(cs mcs.CutSet, idx int) term {
	lits := make(map[int]bool, len(cs))
	for _, l := range cs {
		lits[l] = true
	}
	return term{literals: lits, lastIdx: idx}
}

// combine unions t's literals with the cut set at idx, producing the
// next-level term. It is dead if a literal and its negation collide.
func combine(t term, cs mcs.CutSet, idx int) term {
	lits := make(map[int]bool, len(t.literals)+len(cs))
	for l := range t.literals {
		lits[l] = true
	}
	dead := t.dead
	for _, l := range cs {
		if lits[-l] {
			dead = true
		}
		lits[l] = true
	}
	return term{literals: lits, lastIdx: idx, dead: dead}
}

func (t term) key() string {
	keys := make([]int, 0, len(t.literals))
	for l := range t.literals {
		keys = append(keys, l)
	}
	sort.Ints(keys)
	var b []byte
	for _, k := range keys {
		b = append(b, strconv.Itoa(k)...)
		b = append(b, ',')
	}
	return string(b)
}

func (t term) prob(prob EventProb) float64 {
	if t.dead {
		return 0
	}
	p := 1.0
	for l := range t.literals {
		if l > 0 {
			p *= prob(l)
		} else {
			p *= 1 - prob(-l)
		}
	}
	return p
}

// Exact computes top-event probability via inclusion-exclusion,
// truncated at nSums terms and stopping early if a full level adds
// nothing new. Term order k contributes with sign (-1)^(k+1).
func Exact(cutSets []mcs.CutSet, prob EventProb, nSums int) float64 {
	if len(cutSets) == 0 {
		return 0
	}
	if nSums <= 0 {
		nSums = 1
	}

	level := make([]term, len(cutSets))
	for i, cs := range cutSets {
		level[i] = newTerm(cs, i)
	}

	total := sumLevel(level, prob, 1)
	termsUsed := len(level)

	for k := 2; termsUsed < nSums && len(level) > 0; k++ {
		next := nextLevel(level, cutSets, nSums-termsUsed)
		if len(next) == 0 {
			break
		}
		sign := 1.0
		if k%2 == 0 {
			sign = -1.0
		}
		total += sign * sumLevel(next, prob, 1)
		termsUsed += len(next)
		level = next
	}

	return clamp01(total)
}

func sumLevel(level []term, prob EventProb, sign float64) float64 {
	sum := 0.0
	for _, t := range level {
		sum += t.prob(prob)
	}
	return sign * sum
}

// nextLevel applies CombineElAndSet: every term in level is combined with
// every cut set indexed above the term's own highest source, so each
// combination of cut sets yields exactly one term, capped at budget new
// terms. Terms whose literal sets coincide are kept apart: each is its
// own summand of the inclusion-exclusion expansion.
func nextLevel(level []term, cutSets []mcs.CutSet, budget int) []term {
	var out []term
	for _, t := range level {
		for j := t.lastIdx + 1; j < len(cutSets); j++ {
			out = append(out, combine(t, cutSets[j], j))
			if len(out) >= budget {
				return out
			}
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RareEventWarningThreshold is the per-cut-set probability above which
// the first-order rare-event sum is flagged as a loose upper bound.
const RareEventWarningThreshold = 0.1

// RareEvent computes the first-order sum Sum P(c), an upper bound on the
// exact probability when every P(c) is small. It also reports, for each
// cut set whose probability exceeds RareEventWarningThreshold, a warning
// message (the caller decides whether to surface these).
func RareEvent(cutSets []mcs.CutSet, prob EventProb) (float64, []string) {
	var sum float64
	var warnings []string
	for i, cs := range cutSets {
		p := CutSetProb(cs, prob)
		sum += p
		if p > RareEventWarningThreshold {
			warnings = append(warnings, "cut set "+strconv.Itoa(i)+" has probability "+
				strconv.FormatFloat(p, 'f', 4, 64)+" > 0.1: rare-event bound is loose")
		}
	}
	return clamp01(sum), warnings
}

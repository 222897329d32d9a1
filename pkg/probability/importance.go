package probability

import (
	"sort"

	"faulttree/pkg/mcs"
)

// Importance is one basic event's Fussell-Vesely contribution to the top
// event's probability.
type Importance struct {
	EventIndex int
	Value      float64
}

// FussellVesely computes, for every basic event appearing positively in
// at least one cut set, Sum_{c containing i} P(c) / P(top), sorted
// descending by value. A zero top probability yields zero importance for
// every event rather than dividing by zero.
func FussellVesely(cutSets []mcs.CutSet, prob EventProb, topProb float64) []Importance {
	contrib := make(map[int]float64)
	for _, cs := range cutSets {
		p := CutSetProb(cs, prob)
		for _, lit := range cs {
			if lit > 0 {
				contrib[lit] += p
			}
		}
	}

	out := make([]Importance, 0, len(contrib))
	for idx, sum := range contrib {
		v := 0.0
		if topProb > 0 {
			v = sum / topProb
		}
		out = append(out, Importance{EventIndex: idx, Value: v})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].EventIndex < out[j].EventIndex
	})
	return out
}

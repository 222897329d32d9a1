package mcs

import "faulttree/pkg/model"

// pendingItem is a gate still awaiting expansion, tagged with whether it
// is currently negated (pushed there by an enclosing NOT/XOR/NAND/NOR
// branch).
type pendingItem struct {
	gate    *model.Gate
	negated bool
}

// superset is the private worklist entry the generator's expansion loop
// mutates: positive and negative literal sets (by basic-event index) and
// the gates still pending expansion. It plays the role the source
// engine's Superset class played, minus the "friend class" C++ idiom:
// here it is simply unexported to pkg/mcs, which is the only package
// that ever constructs one.
type superset struct {
	positives map[int]bool
	negatives map[int]bool
	pending   []pendingItem
	dead      bool // an incompatible house event made this branch impossible
}

func newSuperset(top *model.Gate) *superset {
	return &superset{
		positives: make(map[int]bool),
		negatives: make(map[int]bool),
		pending:   []pendingItem{{gate: top, negated: false}},
	}
}

// clone deep-copies the mutable state so branching gate rules (OR, XOR,
// K-of-N, negated-AND) can fan out into independent successor supersets.
func (s *superset) clone() *superset {
	c := &superset{
		positives: make(map[int]bool, len(s.positives)),
		negatives: make(map[int]bool, len(s.negatives)),
		pending:   append([]pendingItem(nil), s.pending...),
		dead:      s.dead,
	}
	for k := range s.positives {
		c.positives[k] = true
	}
	for k := range s.negatives {
		c.negatives[k] = true
	}
	return c
}

// addLiteral records a basic-event literal under the given polarity,
// after resolving a house event in place: a satisfied house event
// removes the term, an unsatisfiable one kills the whole branch.
func (s *superset) addLiteral(e *model.PrimaryEvent, idx int, negated bool) {
	if !e.IsBasic {
		want := !negated
		if e.HouseState == want {
			return // term always true: removed
		}
		s.dead = true // term always false: branch impossible
		return
	}
	if negated {
		s.negatives[idx] = true
	} else {
		s.positives[idx] = true
	}
}

// exceedsOrder reports whether this superset's positive literal count
// already exceeds limitOrder. AND only grows the positive set, so once
// exceeded a branch can be pruned safely.
func (s *superset) exceedsOrder(limitOrder int) bool {
	return limitOrder > 0 && len(s.positives) > limitOrder
}

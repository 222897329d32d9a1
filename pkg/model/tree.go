package model

import "sort"

// FaultTree is the sealed, read-only (post-validation) structure the
// rest of the analysis pipeline consumes: a name, the top gate, an index
// of all reachable gates, and an index of discovered primary events
// partitioned into basic/house.
type FaultTree struct {
	Name string

	Top *Gate

	// InterEvents indexes the gates other than Top, keyed by normalized
	// identifier: every pre-declared gate plus the implicit gates Seal
	// discovers. Top itself is held only in the Top field.
	InterEvents map[string]*Gate

	// ImplicitGates holds gates discovered via DFS that were not
	// pre-registered with the builder before sealing.
	ImplicitGates map[string]*Gate

	BasicEvents map[string]*PrimaryEvent
	HouseEvents map[string]*PrimaryEvent

	sealed bool
}

func newFaultTree(name string) *FaultTree {
	return &FaultTree{
		Name:          name,
		InterEvents:   make(map[string]*Gate),
		ImplicitGates: make(map[string]*Gate),
		BasicEvents:   make(map[string]*PrimaryEvent),
		HouseEvents:   make(map[string]*PrimaryEvent),
	}
}

// Sealed reports whether Seal has completed validation on this tree.
func (t *FaultTree) Sealed() bool { return t.sealed }

// SetSealed marks the tree as sealed. Only pkg/validate should call this.
func (t *FaultTree) SetSealed() { t.sealed = true }

// PrimaryEvent looks up a primary event by normalized or original
// identifier across both basic and house events.
func (t *FaultTree) PrimaryEvent(id string) (*PrimaryEvent, bool) {
	norm := Normalize(id)
	if e, ok := t.BasicEvents[norm]; ok {
		return e, true
	}
	if e, ok := t.HouseEvents[norm]; ok {
		return e, true
	}
	return nil, false
}

// Gate looks up a gate by normalized or original identifier, including
// the top gate.
func (t *FaultTree) Gate(id string) (*Gate, bool) {
	norm := Normalize(id)
	if t.Top != nil && t.Top.ID == norm {
		return t.Top, true
	}
	g, ok := t.InterEvents[norm]
	return g, ok
}

// SortedGateIDs returns every inter-event gate's normalized identifier,
// sorted, for deterministic traversal and reporting.
func (t *FaultTree) SortedGateIDs() []string {
	ids := make([]string, 0, len(t.InterEvents))
	for id := range t.InterEvents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SortedBasicEventIDs returns every basic event's normalized identifier,
// sorted.
func (t *FaultTree) SortedBasicEventIDs() []string {
	ids := make([]string, 0, len(t.BasicEvents))
	for id := range t.BasicEvents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

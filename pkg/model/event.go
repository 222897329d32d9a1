// Package model implements the fault-tree data model: gates, primary
// events (basic and house), and the fault tree itself. Events are shared
// nodes in a DAG; a gate does not own its children, the tree does.
// Parent back-references are weak, kept only for traversal.
package model

import (
	"sort"
	"strings"
)

// Normalize canonicalizes an identifier for use as a map key: lower-cased.
// The original spelling is preserved separately for diagnostics.
func Normalize(id string) string {
	return strings.ToLower(id)
}

// Event is the common attribute set shared by gates and primary events:
// a normalized identifier, the original user-supplied spelling, and the
// set of parent gates that reference this event, keyed by their
// normalized identifiers.
type Event struct {
	ID      string // normalized
	OrigID  string // as the user spelled it
	Parents map[string]*Gate
}

func newEvent(id string) Event {
	norm := Normalize(id)
	return Event{ID: norm, OrigID: id, Parents: make(map[string]*Gate)}
}

// addParent registers g as a parent of this event. Called by Gate.AddChild.
func (e *Event) addParent(g *Gate) {
	e.Parents[g.ID] = g
}

// ParentIDs returns the normalized identifiers of this event's parents,
// sorted for deterministic diagnostics.
func (e *Event) ParentIDs() []string {
	ids := make([]string, 0, len(e.Parents))
	for id := range e.Parents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

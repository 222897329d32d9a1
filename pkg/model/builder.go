package model

import (
	"fmt"

	"faulttree/pkg/expression"
	"faulttree/pkg/fterrors"
)

// gateDecl is a raw, unresolved gate declaration collected by the
// builder before Seal wires up the DAG.
type gateDecl struct {
	id, origID string
	kind       GateKind
	childIDs   []string
	k          int
	topLevel   bool // registered via AddGate (pre-declared), vs AddInlineGate
}

// Builder is the inbound construction API external parsers use to
// populate a fault tree before sealing it: NewFaultTree, AddGate,
// AddBasicEvent, AddHouseEvent, AddExpression, Seal.
type Builder struct {
	name string

	topID   string
	gates   map[string]*gateDecl
	basics  map[string]*PrimaryEvent
	houses  map[string]*PrimaryEvent
	exprs   map[string]expression.Expression
	order   []string // gate declaration order, first is the default top
}

// NewFaultTree creates a builder handle for a fault tree named name.
func NewFaultTree(name string) *Builder {
	return &Builder{
		name:   name,
		gates:  make(map[string]*gateDecl),
		basics: make(map[string]*PrimaryEvent),
		houses: make(map[string]*PrimaryEvent),
		exprs:  make(map[string]expression.Expression),
	}
}

// AddGate registers a top-level (pre-declared) gate. The first gate
// added becomes the tree's top event unless SetTop overrides it.
func (b *Builder) AddGate(id string, kind GateKind, childIDs []string, k int) error {
	return b.addGateDecl(id, kind, childIDs, k, true)
}

// AddInlineGate registers a gate that is defined but not pre-declared
// top-down: it exists only because some other gate's child list
// references it. Such gates are discovered by the validator's DFS and
// recorded as "implicit gates", mirroring a fault tree format that
// allows nesting a gate's full definition inside another gate's body.
func (b *Builder) AddInlineGate(id string, kind GateKind, childIDs []string, k int) error {
	return b.addGateDecl(id, kind, childIDs, k, false)
}

func (b *Builder) addGateDecl(id string, kind GateKind, childIDs []string, k int, topLevel bool) error {
	norm := Normalize(id)
	if _, dup := b.gates[norm]; dup {
		return fterrors.NewValidationError(b.name, fmt.Sprintf("gate '%s' doubly defined", id))
	}
	b.gates[norm] = &gateDecl{
		id: norm, origID: id, kind: kind, childIDs: append([]string(nil), childIDs...), k: k, topLevel: topLevel,
	}
	b.order = append(b.order, norm)
	if topLevel && b.topID == "" {
		b.topID = norm
	}
	return nil
}

// SetTop overrides which pre-declared gate is the tree's top event.
func (b *Builder) SetTop(id string) error {
	norm := Normalize(id)
	decl, ok := b.gates[norm]
	if !ok || !decl.topLevel {
		return fterrors.NewValidationError(b.name, fmt.Sprintf("'%s' is not a pre-declared gate", id))
	}
	b.topID = norm
	return nil
}

// AddBasicEvent registers a basic event with its probability expression.
// expr may be nil; the validator reports a warning (or, when probability
// analysis is requested, an error) for basic events missing one.
func (b *Builder) AddBasicEvent(id string, expr expression.Expression) error {
	norm := Normalize(id)
	if b.isDefined(norm) {
		return fterrors.NewValidationError(b.name, fmt.Sprintf("event '%s' doubly defined", id))
	}
	b.basics[norm] = NewBasicEvent(id, expr)
	return nil
}

// AddHouseEvent registers a house event with a fixed boolean state.
func (b *Builder) AddHouseEvent(id string, state bool) error {
	norm := Normalize(id)
	if b.isDefined(norm) {
		return fterrors.NewValidationError(b.name, fmt.Sprintf("event '%s' doubly defined", id))
	}
	b.houses[norm] = NewHouseEvent(id, state)
	return nil
}

// AddExpression registers a named expression node so later AddBasicEvent
// (or AddExpression for composite nodes) calls can reference it.
func (b *Builder) AddExpression(id string, expr expression.Expression) {
	b.exprs[Normalize(id)] = expr
}

// Expression resolves a previously registered expression by identifier.
func (b *Builder) Expression(id string) (expression.Expression, bool) {
	e, ok := b.exprs[Normalize(id)]
	return e, ok
}

func (b *Builder) isDefined(norm string) bool {
	if _, ok := b.gates[norm]; ok {
		return true
	}
	if _, ok := b.basics[norm]; ok {
		return true
	}
	if _, ok := b.houses[norm]; ok {
		return true
	}
	return false
}

// Build resolves every declared gate's children into a DAG and returns
// the raw (unvalidated) tree plus the set of gate identifiers that were
// pre-declared top-level, for the validator's implicit-gate discovery.
// It is exported for use by pkg/validate and should not be called
// directly by parsers; use Seal from that package instead.
func (b *Builder) Build() (*FaultTree, map[string]bool, error) {
	if b.topID == "" {
		return nil, nil, fterrors.NewValidationError(b.name, "no top gate declared")
	}

	gateObjs := make(map[string]*Gate, len(b.gates))
	for id, decl := range b.gates {
		gateObjs[id] = NewGate(decl.origID, decl.kind)
		gateObjs[id].K = decl.k
	}

	resolveChild := func(id string) (Child, error) {
		norm := Normalize(id)
		if g, ok := gateObjs[norm]; ok {
			return Child{Gate: g}, nil
		}
		if e, ok := b.basics[norm]; ok {
			return Child{Event: e}, nil
		}
		if e, ok := b.houses[norm]; ok {
			return Child{Event: e}, nil
		}
		return Child{}, fterrors.NewValidationError(b.name, fmt.Sprintf("undefined identifier '%s'", id))
	}

	for id, decl := range b.gates {
		g := gateObjs[id]
		for _, childID := range decl.childIDs {
			child, err := resolveChild(childID)
			if err != nil {
				return nil, nil, err
			}
			if err := g.AddChild(child); err != nil {
				return nil, nil, err
			}
		}
	}

	// A pre-declared gate other than the top must be reachable from
	// somewhere in the tree once every child list is wired: one with no
	// parent at all was never referenced by anything and is a dangling
	// gate, mirroring original_source/src/fault_tree.cc's AddGate check.
	// This is a construction-time defect distinct from the DFS-time
	// reachability/cycle checks pkg/validate.Seal performs afterward.
	for id, decl := range b.gates {
		if !decl.topLevel || id == b.topID {
			continue
		}
		if len(gateObjs[id].Parents) == 0 {
			return nil, nil, fterrors.NewLogicError(fmt.Sprintf(
				"gate '%s' is a dangling gate: no pre-declared parent references it in '%s'", decl.origID, b.name))
		}
	}

	tree := newFaultTree(b.name)
	tree.Top = gateObjs[b.topID]

	topLevel := make(map[string]bool, len(b.gates))
	for id, decl := range b.gates {
		if decl.topLevel && id != b.topID {
			tree.InterEvents[id] = gateObjs[id]
		}
		topLevel[id] = decl.topLevel
	}

	// BasicEvents/HouseEvents are populated by the validator's traversal
	// (GatherPrimaryEvents), not here: only primary events actually
	// reachable from the top gate belong in the sealed tree's index.

	return tree, topLevel, nil
}

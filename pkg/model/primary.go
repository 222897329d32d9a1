package model

import "faulttree/pkg/expression"

// PrimaryEvent is a leaf of the fault tree: either a basic event (an
// expression yielding a probability) or a house event (a fixed boolean
// state). IsBasic distinguishes the two without a type assertion at
// every call site.
type PrimaryEvent struct {
	Event
	IsBasic    bool
	Expr       expression.Expression // set when IsBasic
	HouseState bool                  // set when !IsBasic
}

// NewBasicEvent creates a primary event carrying a probability
// expression. expr may be nil until later resolved by the builder; the
// validator rejects basic events with no expression when probability
// analysis is requested.
func NewBasicEvent(id string, expr expression.Expression) *PrimaryEvent {
	return &PrimaryEvent{Event: newEvent(id), IsBasic: true, Expr: expr}
}

// NewHouseEvent creates a primary event with a fixed boolean state: true
// is probability 1, false is probability 0.
func NewHouseEvent(id string, state bool) *PrimaryEvent {
	return &PrimaryEvent{Event: newEvent(id), IsBasic: false, HouseState: state}
}

// Probability returns the event's probability at its expression's mean,
// or 1/0 for a house event.
func (p *PrimaryEvent) Probability() float64 {
	if !p.IsBasic {
		if p.HouseState {
			return 1
		}
		return 0
	}
	if p.Expr == nil {
		return 0
	}
	return p.Expr.Mean()
}

// SampleProbability is Probability's Monte Carlo counterpart: it draws
// from the expression at the given sample epoch instead of reading its
// mean. House events are epoch-invariant.
func (p *PrimaryEvent) SampleProbability(epoch uint64) float64 {
	if !p.IsBasic {
		if p.HouseState {
			return 1
		}
		return 0
	}
	if p.Expr == nil {
		return 0
	}
	return p.Expr.Sample(epoch)
}

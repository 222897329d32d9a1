// Package expression implements the deterministic/stochastic numeric
// expression graph used by basic events: constants, parameter references,
// and the reliability distributions (exponential, GLM, Weibull, periodic
// test) that yield a probability in [0, 1].
package expression

import (
	"fmt"
	"math"

	"faulttree/pkg/fterrors"
)

// Expression is a node in the expression DAG. Mean/Min/Max are pure,
// deterministic descriptors used for interval propagation; Sample draws a
// value consistent with the distribution for the given epoch. Nodes must
// be stateless except for memoization keyed on epoch.
type Expression interface {
	Mean() float64
	Min() float64
	Max() float64
	Sample(epoch uint64) float64
	Validate() error
}

// Const is a fixed value with Mean == Min == Max.
type Const struct {
	Value float64
}

func NewConst(v float64) *Const { return &Const{Value: v} }

func (c *Const) Mean() float64            { return c.Value }
func (c *Const) Min() float64             { return c.Value }
func (c *Const) Max() float64             { return c.Value }
func (c *Const) Sample(_ uint64) float64  { return c.Value }
func (c *Const) Validate() error          { return nil }

// Param is a named reference to another expression, resolved by the
// builder at construction time. It forwards every query to its target.
type Param struct {
	Name   string
	Target Expression
}

func NewParam(name string, target Expression) *Param {
	return &Param{Name: name, Target: target}
}

func (p *Param) Mean() float64           { return p.Target.Mean() }
func (p *Param) Min() float64            { return p.Target.Min() }
func (p *Param) Max() float64            { return p.Target.Max() }
func (p *Param) Sample(e uint64) float64 { return p.Target.Sample(e) }

func (p *Param) Validate() error {
	if p.Target == nil {
		return fterrors.NewDomainError("param:"+p.Name, "unresolved parameter reference")
	}
	return p.Target.Validate()
}

// Add sums its operands. Used to compose Const/Param graphs from the
// builder API (spec kind "Add").
type Add struct {
	Terms []Expression
}

func NewAdd(terms ...Expression) *Add { return &Add{Terms: terms} }

func (a *Add) Mean() float64 { return reduce(a.Terms, Expression.Mean) }
func (a *Add) Min() float64  { return reduce(a.Terms, Expression.Min) }
func (a *Add) Max() float64  { return reduce(a.Terms, Expression.Max) }

func (a *Add) Sample(epoch uint64) float64 {
	var sum float64
	for _, t := range a.Terms {
		sum += t.Sample(epoch)
	}
	return sum
}

func (a *Add) Validate() error {
	for _, t := range a.Terms {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func reduce(terms []Expression, f func(Expression) float64) float64 {
	var sum float64
	for _, t := range terms {
		sum += f(t)
	}
	return sum
}

// Mul multiplies its operands. Used to compose Const/Param graphs from
// the builder API (spec kind "Mul").
type Mul struct {
	Factors []Expression
}

func NewMul(factors ...Expression) *Mul { return &Mul{Factors: factors} }

func (m *Mul) Mean() float64 { return product(m.Factors, Expression.Mean) }
func (m *Mul) Min() float64  { return product(m.Factors, Expression.Min) }
func (m *Mul) Max() float64  { return product(m.Factors, Expression.Max) }

func (m *Mul) Sample(epoch uint64) float64 {
	prod := 1.0
	for _, f := range m.Factors {
		prod *= f.Sample(epoch)
	}
	return prod
}

func (m *Mul) Validate() error {
	for _, f := range m.Factors {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func product(factors []Expression, f func(Expression) float64) float64 {
	prod := 1.0
	for _, x := range factors {
		prod *= f(x)
	}
	return prod
}

// clampProbability collapses numerical underflow to 0 and overflow of the
// exponent to 1; both are acceptable outcomes and must never panic.
func clampProbability(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func negativeParam(name string, v float64) error {
	if v < 0 {
		return fterrors.NewDomainError(name, fmt.Sprintf("must be >= 0, got %g", v))
	}
	return nil
}

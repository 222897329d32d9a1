package expression

import (
	"fmt"
	"math"

	"faulttree/pkg/fterrors"
)

// PeriodicTest models a component that functions normally, is tested
// every tau hours starting at theta, and is returned to service on a
// passed test. It has two flavors, selected by constructor arity:
//
//   - NewPeriodicTestInstantRepair(lambda, tau, theta, time): tests and
//     repairs are instantaneous and always successful.
//   - NewPeriodicTestInstantTest(lambda, mu, tau, theta, time): tests are
//     instantaneous and always successful, but repair takes an average
//     of 1/mu hours.
type PeriodicTest struct {
	flavor periodicTestFlavor
}

type periodicTestFlavor interface {
	mean() float64
	sample(epoch uint64) float64
	validate() error
}

func NewPeriodicTestInstantRepair(lambda, tau, theta, time Expression) *PeriodicTest {
	return &PeriodicTest{flavor: &instantRepair{lambda: lambda, tau: tau, theta: theta, time: time}}
}

func NewPeriodicTestInstantTest(lambda, mu, tau, theta, time Expression) *PeriodicTest {
	return &PeriodicTest{flavor: &instantTest{
		instantRepair: instantRepair{lambda: lambda, tau: tau, theta: theta, time: time},
		mu:            mu,
	}}
}

func (p *PeriodicTest) Mean() float64           { return p.flavor.mean() }
func (p *PeriodicTest) Max() float64            { return 1 }
func (p *PeriodicTest) Min() float64            { return 0 }
func (p *PeriodicTest) Sample(e uint64) float64 { return p.flavor.sample(e) }
func (p *PeriodicTest) Validate() error         { return p.flavor.validate() }

// instantRepair is the flavor where tests and repairs are instantaneous
// and always successful: the component fails and stays failed only for
// the remainder of the current test interval.
type instantRepair struct {
	lambda, tau, theta, time Expression
}

// sinceLastTest returns hours elapsed since the last test boundary (or
// since deployment, before the first test at theta).
func sinceLastTest(theta, tau, t float64) float64 {
	if t <= theta {
		return t
	}
	if tau <= 0 {
		return t - theta
	}
	return math.Mod(t-theta, tau)
}

func (f *instantRepair) compute(lambda, tau, theta, t float64) float64 {
	elapsed := sinceLastTest(theta, tau, t)
	return clampProbability(1 - math.Exp(-lambda*elapsed))
}

func (f *instantRepair) mean() float64 {
	return f.compute(f.lambda.Mean(), f.tau.Mean(), f.theta.Mean(), f.time.Mean())
}

func (f *instantRepair) sample(epoch uint64) float64 {
	return f.compute(f.lambda.Sample(epoch), f.tau.Sample(epoch), f.theta.Sample(epoch), f.time.Sample(epoch))
}

func (f *instantRepair) validate() error {
	if v := f.lambda.Mean(); v < 0 {
		return fterrors.NewDomainError("periodic_test.lambda", fmt.Sprintf("must be >= 0, got %g", v))
	}
	if v := f.tau.Mean(); v <= 0 {
		return fterrors.NewDomainError("periodic_test.tau", fmt.Sprintf("must be > 0, got %g", v))
	}
	if v := f.theta.Mean(); v < 0 {
		return fterrors.NewDomainError("periodic_test.theta", fmt.Sprintf("must be >= 0, got %g", v))
	}
	return nil
}

// instantTest is the flavor where tests are instantaneous and always
// successful, but a detected failure is repaired at a finite hourly rate
// mu. The expected downtime fraction of a repair cycle, lambda/(lambda+
// mu), is blended into the in-service failure probability.
type instantTest struct {
	instantRepair
	mu Expression
}

func (f *instantTest) computeFull(lambda, mu, tau, theta, t float64) float64 {
	base := f.compute(lambda, tau, theta, t)
	if mu <= 0 {
		return base
	}
	repairFraction := lambda / (lambda + mu)
	return clampProbability(base + (1-base)*repairFraction)
}

func (f *instantTest) mean() float64 {
	return f.computeFull(f.lambda.Mean(), f.mu.Mean(), f.tau.Mean(), f.theta.Mean(), f.time.Mean())
}

func (f *instantTest) sample(epoch uint64) float64 {
	return f.computeFull(f.lambda.Sample(epoch), f.mu.Sample(epoch), f.tau.Sample(epoch), f.theta.Sample(epoch), f.time.Sample(epoch))
}

func (f *instantTest) validate() error {
	if err := f.instantRepair.validate(); err != nil {
		return err
	}
	if v := f.mu.Mean(); v < 0 {
		return fterrors.NewDomainError("periodic_test.mu", fmt.Sprintf("must be >= 0, got %g", v))
	}
	return nil
}

package expression

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestConst(t *testing.T) {
	c := NewConst(0.25)
	if c.Mean() != 0.25 || c.Min() != 0.25 || c.Max() != 0.25 {
		t.Errorf("const should report the same value everywhere, got mean=%v min=%v max=%v", c.Mean(), c.Min(), c.Max())
	}
	if c.Sample(42) != 0.25 {
		t.Errorf("const sample should ignore epoch, got %v", c.Sample(42))
	}
	if err := c.Validate(); err != nil {
		t.Errorf("const should always validate, got %v", err)
	}
}

func TestParamForwardsToTarget(t *testing.T) {
	target := NewConst(0.5)
	p := NewParam("x", target)
	if p.Mean() != 0.5 {
		t.Errorf("param should forward Mean to target, got %v", p.Mean())
	}
	if err := p.Validate(); err != nil {
		t.Errorf("param with resolved target should validate, got %v", err)
	}

	unresolved := &Param{Name: "y"}
	if err := unresolved.Validate(); err == nil {
		t.Error("unresolved param should fail validation")
	}
}

func TestAddAndMul(t *testing.T) {
	a := NewAdd(NewConst(0.1), NewConst(0.2), NewConst(0.3))
	if !approxEqual(a.Mean(), 0.6) {
		t.Errorf("add mean: want 0.6, got %v", a.Mean())
	}

	m := NewMul(NewConst(0.5), NewConst(0.5))
	if !approxEqual(m.Mean(), 0.25) {
		t.Errorf("mul mean: want 0.25, got %v", m.Mean())
	}
}

func TestExponential(t *testing.T) {
	e := NewExponential(NewConst(0.001), NewConst(1000))
	want := 1 - math.Exp(-1)
	if !approxEqual(e.Mean(), want) {
		t.Errorf("exponential mean: want %v, got %v", want, e.Mean())
	}
	if err := e.Validate(); err != nil {
		t.Errorf("valid exponential should not error, got %v", err)
	}

	bad := NewExponential(NewConst(-1), NewConst(10))
	if err := bad.Validate(); err == nil {
		t.Error("negative lambda should fail validation")
	}
}

func TestGLMSteadyState(t *testing.T) {
	g := NewGLM(NewConst(0), NewConst(1), NewConst(1), NewConst(100))
	got := g.Mean()
	if got <= 0 || got >= 1 {
		t.Errorf("GLM mean should settle strictly between 0 and 1 for large t, got %v", got)
	}
	if g.Min() != 0 || g.Max() != 1 {
		t.Errorf("GLM bounds are stubbed to [0,1], got min=%v max=%v", g.Min(), g.Max())
	}

	zeroRates := NewGLM(NewConst(0.3), NewConst(0), NewConst(0), NewConst(10))
	if zeroRates.Mean() != 0.3 {
		t.Errorf("with no failure/repair process, GLM mean should equal gamma, got %v", zeroRates.Mean())
	}

	bad := NewGLM(NewConst(1.5), NewConst(1), NewConst(1), NewConst(10))
	if err := bad.Validate(); err == nil {
		t.Error("gamma outside [0,1] should fail validation")
	}
}

func TestWeibull(t *testing.T) {
	w := NewWeibull(NewConst(1000), NewConst(2), NewConst(0), NewConst(1000))
	want := 1 - math.Exp(-1)
	if !approxEqual(w.Mean(), want) {
		t.Errorf("weibull mean at t=alpha: want %v, got %v", want, w.Mean())
	}

	before := NewWeibull(NewConst(1000), NewConst(2), NewConst(500), NewConst(100))
	if before.Mean() != 0 {
		t.Errorf("weibull before t0 should be 0, got %v", before.Mean())
	}

	bad := NewWeibull(NewConst(-1), NewConst(2), NewConst(0), NewConst(10))
	if err := bad.Validate(); err == nil {
		t.Error("non-positive alpha should fail validation")
	}
}

func TestPeriodicTestInstantRepair(t *testing.T) {
	pt := NewPeriodicTestInstantRepair(NewConst(0.01), NewConst(100), NewConst(0), NewConst(50))
	want := 1 - math.Exp(-0.01*50)
	if !approxEqual(pt.Mean(), want) {
		t.Errorf("instant repair before first test: want %v, got %v", want, pt.Mean())
	}

	// After two full test intervals plus a partial one, only the partial
	// remainder since the last test boundary should count.
	pt2 := NewPeriodicTestInstantRepair(NewConst(0.01), NewConst(100), NewConst(0), NewConst(250))
	want2 := 1 - math.Exp(-0.01*50)
	if !approxEqual(pt2.Mean(), want2) {
		t.Errorf("instant repair after two full intervals: want %v, got %v", want2, pt2.Mean())
	}

	if err := pt.Validate(); err != nil {
		t.Errorf("valid periodic test should not error, got %v", err)
	}
}

func TestPeriodicTestInstantTestBlendsRepairFraction(t *testing.T) {
	pt := NewPeriodicTestInstantTest(NewConst(0.01), NewConst(0.1), NewConst(100), NewConst(0), NewConst(0))
	// At t=0, base failure probability is 0, so the result should equal
	// the steady repair-cycle downtime fraction lambda/(lambda+mu).
	want := 0.01 / 0.11
	if !approxEqual(pt.Mean(), want) {
		t.Errorf("instant test at t=0: want repair fraction %v, got %v", want, pt.Mean())
	}
}

func TestSampleIsDeterministicAcrossEpochs(t *testing.T) {
	e := NewExponential(NewConst(0.001), NewConst(1000))
	if e.Sample(1) != e.Sample(2) {
		t.Error("no currently defined expression kind carries genuine epoch-dependent randomness; Sample must be a pure function of its parameters")
	}
}

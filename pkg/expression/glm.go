package expression

import (
	"fmt"
	"math"

	"faulttree/pkg/fterrors"
)

// GLM is the standard two-state Markov availability model: probability
// on demand gamma, hourly failure rate lambda, hourly repair rate mu, and
// mission time t.
//
// Min/Max are stubbed to {0, 1}: conservative but loose, per the source
// engine this was distilled from. Tightening them is possible but must
// preserve the public contract (see design notes).
type GLM struct {
	Gamma  Expression
	Lambda Expression
	Mu     Expression
	Time   Expression
}

func NewGLM(gamma, lambda, mu, t Expression) *GLM {
	return &GLM{Gamma: gamma, Lambda: lambda, Mu: mu, Time: t}
}

func (g *GLM) Mean() float64 {
	return compute(g.Gamma.Mean(), g.Lambda.Mean(), g.Mu.Mean(), g.Time.Mean())
}

func (g *GLM) Max() float64 { return 1 }
func (g *GLM) Min() float64 { return 0 }

func (g *GLM) Sample(epoch uint64) float64 {
	return compute(g.Gamma.Sample(epoch), g.Lambda.Sample(epoch), g.Mu.Sample(epoch), g.Time.Sample(epoch))
}

// compute evaluates Q(t) = gamma + lambda/(lambda+mu) * (1-gamma) * (1 -
// e^-((lambda+mu)*t)), the standard two-state Markov unavailability with
// an added on-demand failure probability gamma.
func compute(gamma, lambda, mu, t float64) float64 {
	denom := lambda + mu
	if denom == 0 {
		// No failure and no repair process; only the on-demand term applies.
		return clampProbability(gamma)
	}
	steady := lambda / denom
	return clampProbability(gamma + steady*(1-gamma)*(1-math.Exp(-denom*t)))
}

func (g *GLM) Validate() error {
	if err := negativeParam("glm.lambda", g.Lambda.Mean()); err != nil {
		return err
	}
	if err := negativeParam("glm.mu", g.Mu.Mean()); err != nil {
		return err
	}
	if err := negativeParam("glm.time", g.Time.Mean()); err != nil {
		return err
	}
	if g.Lambda.Mean()+g.Mu.Mean() == 0 {
		return fterrors.NewDomainError("glm", "lambda + mu must be > 0")
	}
	gamma := g.Gamma.Mean()
	if gamma < 0 || gamma > 1 {
		return fterrors.NewDomainError("glm.gamma", fmt.Sprintf("must be in [0,1], got %g", gamma))
	}
	return nil
}

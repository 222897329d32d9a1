package expression

import (
	"fmt"
	"math"

	"faulttree/pkg/fterrors"
)

// Weibull is the Weibull distribution with scale alpha, shape beta, time
// shift t0, and mission time t:
//
//	P = 1 - e^(-((t-t0)/alpha)^beta), valid for t >= t0.
type Weibull struct {
	Alpha Expression
	Beta  Expression
	T0    Expression
	Time  Expression
}

func NewWeibull(alpha, beta, t0, t Expression) *Weibull {
	return &Weibull{Alpha: alpha, Beta: beta, T0: t0, Time: t}
}

func (w *Weibull) Mean() float64 {
	return compute3(w.Alpha.Mean(), w.Beta.Mean(), w.T0.Mean(), w.Time.Mean())
}

// Max extremizes the non-monotonic Weibull shape by pairing the
// arguments that grow P: the smallest scale, largest shape, smallest
// time shift, and largest mission time.
func (w *Weibull) Max() float64 {
	return compute3(w.Alpha.Min(), w.Beta.Max(), w.T0.Min(), w.Time.Max())
}

// Min pairs the arguments that shrink P.
func (w *Weibull) Min() float64 {
	return compute3(w.Alpha.Max(), w.Beta.Min(), w.T0.Max(), w.Time.Min())
}

func (w *Weibull) Sample(epoch uint64) float64 {
	return compute3(w.Alpha.Sample(epoch), w.Beta.Sample(epoch), w.T0.Sample(epoch), w.Time.Sample(epoch))
}

func compute3(alpha, beta, t0, t float64) float64 {
	if t < t0 {
		return 0
	}
	if alpha <= 0 {
		return 0
	}
	exponent := math.Pow((t-t0)/alpha, beta)
	return clampProbability(1 - math.Exp(-exponent))
}

func (w *Weibull) Validate() error {
	alpha := w.Alpha.Mean()
	if alpha <= 0 {
		return fterrors.NewDomainError("weibull.alpha", fmt.Sprintf("must be > 0, got %g", alpha))
	}
	beta := w.Beta.Mean()
	if beta <= 0 {
		return fterrors.NewDomainError("weibull.beta", fmt.Sprintf("must be > 0, got %g", beta))
	}
	if w.Time.Mean() < w.T0.Mean() {
		return fterrors.NewDomainError("weibull.time", "mission time must be >= t0")
	}
	return nil
}

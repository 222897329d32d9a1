package expression

import "math"

// Exponential is the negative exponential distribution with hourly
// failure rate lambda and mission time t: P = 1 - e^(-lambda*t).
type Exponential struct {
	Lambda Expression
	Time   Expression
}

func NewExponential(lambda, t Expression) *Exponential {
	return &Exponential{Lambda: lambda, Time: t}
}

func (e *Exponential) Mean() float64 {
	return clampProbability(1 - math.Exp(-(e.Lambda.Mean() * e.Time.Mean())))
}

func (e *Exponential) Max() float64 {
	return clampProbability(1 - math.Exp(-(e.Lambda.Max() * e.Time.Max())))
}

func (e *Exponential) Min() float64 {
	return clampProbability(1 - math.Exp(-(e.Lambda.Min() * e.Time.Min())))
}

func (e *Exponential) Sample(epoch uint64) float64 {
	return clampProbability(1 - math.Exp(-(e.Lambda.Sample(epoch) * e.Time.Sample(epoch))))
}

func (e *Exponential) Validate() error {
	if err := negativeParam("exponential.lambda", e.Lambda.Mean()); err != nil {
		return err
	}
	return negativeParam("exponential.time", e.Time.Mean())
}

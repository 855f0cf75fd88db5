package kernel

import (
	"math"
)

// Matern evaluates the Matérn covariance function for a fixed parameter
// set. Values are immutable after construction, so a Matern may be shared
// by concurrent callers.
type Matern struct {
	params Parameters
}

// NewMatern validates params and returns the corresponding kernel.
func NewMatern(params Parameters) (*Matern, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Matern{params: params}, nil
}

// Params returns the kernel's parameter set.
func (m *Matern) Params() Parameters { return m.params }

// Covariance returns k(d) for a non-negative distance d.
//
// k(0) is the sill; the nugget models measurement error and is added by
// the covariance builder, not here. For d > 0,
//
//	k(d) = sill · 2^(1−κ)/Γ(κ) · (√(2κ)·d/ρ)^κ · K_κ(√(2κ)·d/ρ)
//
// with K_κ the modified Bessel function of the second kind. The
// half-integer smoothnesses 1/2, 3/2 and 5/2 use their exact closed
// forms; other orders go through the numerical K_κ evaluation.
func (m *Matern) Covariance(d float64) float64 {
	p := m.params
	if d == 0 {
		return p.Sill
	}

	switch p.Smoothness {
	case 0.5:
		return p.Sill * math.Exp(-d/p.Range)
	case 1.5:
		a := math.Sqrt(3) * d / p.Range
		return p.Sill * (1 + a) * math.Exp(-a)
	case 2.5:
		a := math.Sqrt(5) * d / p.Range
		return p.Sill * (1 + a + a*a/3) * math.Exp(-a)
	}

	kappa := p.Smoothness
	a := math.Sqrt(2*kappa) * d / p.Range
	c := math.Pow(2, 1-kappa) / math.Gamma(kappa)
	return p.Sill * c * math.Pow(a, kappa) * besselK(kappa, a)
}

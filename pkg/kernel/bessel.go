package kernel

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// besselK returns the modified Bessel function of the second kind K_ν(x)
// for ν ≥ 0 and x > 0, via Gauss-Legendre quadrature of the integral
// representation
//
//	K_ν(x) = ∫₀^∞ exp(−x·cosh t)·cosh(νt) dt.
//
// The integrand is analytic, so fixed-order Legendre quadrature over the
// truncated interval converges to machine precision for the orders the
// Matérn family uses in practice (ν below roughly 30).
func besselK(nu, x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	// Truncate where exp(−x·cosh t)·cosh(νt) has decayed below the
	// smallest normal float64. cosh(νt) ≤ exp(νt), so it suffices that
	// x·cosh(t) − ν·t exceeds ~745; two fixpoint rounds on t are enough.
	t := math.Acosh(745/x + 1)
	t = math.Acosh((745+nu*t+20)/x + 1)

	const nodes = 220
	return quad.Fixed(func(u float64) float64 {
		return math.Exp(-x*math.Cosh(u)) * math.Cosh(nu*u)
	}, 0, t, nodes, nil, 0)
}

package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() Parameters {
	return Parameters{Sill: 2.0, Range: 0.5, Smoothness: 0.5, Nugget: 0.1}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validParams().Validate())

	cases := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"zero sill", func(p *Parameters) { p.Sill = 0 }},
		{"negative sill", func(p *Parameters) { p.Sill = -1 }},
		{"zero range", func(p *Parameters) { p.Range = 0 }},
		{"negative range", func(p *Parameters) { p.Range = -0.5 }},
		{"zero smoothness", func(p *Parameters) { p.Smoothness = 0 }},
		{"negative nugget", func(p *Parameters) { p.Nugget = -0.01 }},
		{"NaN sill", func(p *Parameters) { p.Sill = math.NaN() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestNewMaternRejectsInvalid(t *testing.T) {
	_, err := NewMatern(Parameters{Sill: -1, Range: 1, Smoothness: 0.5})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestCovarianceAtZeroIsSill(t *testing.T) {
	for _, kappa := range []float64{0.5, 1.5, 2.5, 1.0, 3.7} {
		p := validParams()
		p.Smoothness = kappa
		m, err := NewMatern(p)
		require.NoError(t, err)
		// Nugget is the builder's concern; the kernel returns the pure
		// process variance at distance zero.
		assert.Equal(t, p.Sill, m.Covariance(0), "kappa=%v", kappa)
	}
}

func TestCovarianceMonotoneDecreasing(t *testing.T) {
	for _, kappa := range []float64{0.5, 1.5, 2.5, 1.0, 3.7} {
		p := validParams()
		p.Smoothness = kappa
		m, err := NewMatern(p)
		require.NoError(t, err)

		prev := m.Covariance(0)
		for d := 0.01; d < 10; d += 0.07 {
			cur := m.Covariance(d)
			assert.LessOrEqual(t, cur, prev+1e-9, "kappa=%v d=%v", kappa, d)
			assert.GreaterOrEqual(t, cur, 0.0)
			prev = cur
		}
	}
}

func TestCovarianceVanishesAtLargeDistance(t *testing.T) {
	p := validParams()
	m, err := NewMatern(p)
	require.NoError(t, err)
	assert.Less(t, m.Covariance(100*p.Range), 1e-10)
}

func TestExponentialClosedForm(t *testing.T) {
	p := Parameters{Sill: 5.0, Range: 0.25, Smoothness: 0.5}
	m, err := NewMatern(p)
	require.NoError(t, err)

	for _, d := range []float64{0.01, 0.1, 0.25, 0.5, 1, 2} {
		want := p.Sill * math.Exp(-d/p.Range)
		assert.InEpsilon(t, want, m.Covariance(d), 1e-12, "d=%v", d)

		// The general Bessel-based evaluation must agree with the closed
		// form to within 1e-10 relative error.
		a := math.Sqrt(2*p.Smoothness) * d / p.Range
		general := p.Sill * math.Pow(2, 1-p.Smoothness) / math.Gamma(p.Smoothness) *
			math.Pow(a, p.Smoothness) * besselK(p.Smoothness, a)
		assert.InEpsilon(t, want, general, 1e-10, "d=%v", d)
	}
}

func TestHalfIntegerClosedFormsMatchGeneralPath(t *testing.T) {
	for _, kappa := range []float64{1.5, 2.5} {
		p := Parameters{Sill: 1.3, Range: 0.7, Smoothness: kappa}
		m, err := NewMatern(p)
		require.NoError(t, err)

		for _, d := range []float64{0.05, 0.3, 0.7, 1.5, 3} {
			a := math.Sqrt(2*kappa) * d / p.Range
			general := p.Sill * math.Pow(2, 1-kappa) / math.Gamma(kappa) *
				math.Pow(a, kappa) * besselK(kappa, a)
			assert.InEpsilon(t, m.Covariance(d), general, 1e-9, "kappa=%v d=%v", kappa, d)
		}
	}
}

func TestBesselKReferenceValues(t *testing.T) {
	// Abramowitz & Stegun reference values.
	cases := []struct {
		nu, x, want float64
	}{
		{0, 1, 0.42102443824070834},
		{1, 1, 0.6019072301972346},
		{0.5, 1, math.Sqrt(math.Pi/2) * math.Exp(-1)},
		{0.5, 2.5, math.Sqrt(math.Pi/(2*2.5)) * math.Exp(-2.5)},
	}
	for _, tc := range cases {
		assert.InEpsilon(t, tc.want, besselK(tc.nu, tc.x), 1e-9, "nu=%v x=%v", tc.nu, tc.x)
	}

	assert.True(t, math.IsNaN(besselK(0.5, 0)))
	assert.True(t, math.IsNaN(besselK(0.5, -1)))
}

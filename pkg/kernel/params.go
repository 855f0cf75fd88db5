// Package kernel implements the Matérn family of stationary spatial
// covariance functions used by the kriging engine.
package kernel

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter reports a covariance parameter outside its valid
// domain. Parameters are never silently clamped.
var ErrInvalidParameter = errors.New("kernel: invalid covariance parameter")

// Parameters holds the Matérn covariance parameters.
type Parameters struct {
	// Sill is the process marginal variance, the covariance at distance
	// zero excluding the nugget. Strictly positive.
	Sill float64 `yaml:"sill"`

	// Range is the distance scale at which correlation decays.
	// Strictly positive.
	Range float64 `yaml:"range"`

	// Smoothness controls the differentiability of the field; 0.5 gives
	// the exponential covariance. Strictly positive.
	Smoothness float64 `yaml:"smoothness"`

	// Nugget is the variance of the independent observation noise, added
	// only to the diagonal of the observation covariance matrix.
	// Non-negative.
	Nugget float64 `yaml:"nugget"`
}

// Validate checks the parameter domain: sill > 0, range > 0,
// smoothness > 0, nugget >= 0.
func (p Parameters) Validate() error {
	if !(p.Sill > 0) {
		return fmt.Errorf("%w: sill %v must be > 0", ErrInvalidParameter, p.Sill)
	}
	if !(p.Range > 0) {
		return fmt.Errorf("%w: range %v must be > 0", ErrInvalidParameter, p.Range)
	}
	if !(p.Smoothness > 0) {
		return fmt.Errorf("%w: smoothness %v must be > 0", ErrInvalidParameter, p.Smoothness)
	}
	if !(p.Nugget >= 0) {
		return fmt.Errorf("%w: nugget %v must be >= 0", ErrInvalidParameter, p.Nugget)
	}
	return nil
}

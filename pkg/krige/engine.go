// Package krige implements the simple-kriging computation engine:
// covariance assembly from a Matérn kernel, a Cholesky-factorized linear
// solve for the kriging weights, and the predictor and MSPE formulas.
//
// Every prediction is a fresh, request-scoped computation over immutable
// inputs, so a single Engine may be used from concurrent goroutines.
package krige

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"simplekrige/internal/models"
	"simplekrige/pkg/kernel"
	"simplekrige/pkg/spatial"
)

var (
	// ErrEmptyInput reports a prediction request with zero observations.
	ErrEmptyInput = errors.New("krige: no observations supplied")

	// ErrShapeMismatch reports location and value sequences of unequal
	// length.
	ErrShapeMismatch = errors.New("krige: locations and values differ in length")

	// ErrSingularCovariance reports an observation covariance matrix that
	// failed the positive-definiteness check during the solve, typically
	// caused by duplicate observation locations with zero nugget.
	ErrSingularCovariance = errors.New("krige: singular covariance matrix")
)

// Engine is the entry point for simple-kriging predictions. It carries
// the known constant mean of the process and a validated Matérn kernel.
type Engine struct {
	mean float64
	kern *kernel.Matern
}

// New validates params and returns an engine for a process with the
// given known constant mean.
func New(mean float64, params kernel.Parameters) (*Engine, error) {
	kern, err := kernel.NewMatern(params)
	if err != nil {
		return nil, fmt.Errorf("krige: %w", err)
	}
	return &Engine{mean: mean, kern: kern}, nil
}

// Kernel returns the engine's covariance kernel.
func (e *Engine) Kernel() *kernel.Matern { return e.kern }

// Mean returns the engine's known constant process mean.
func (e *Engine) Mean() float64 { return e.mean }

// Predict computes the simple-kriging predictor and its MSPE at target
// from the given observations. Requires at least one observation; with a
// single observation the formulas degenerate to a mean-shrunk weighted
// average of that value.
func (e *Engine) Predict(obs []spatial.Observation, target spatial.Location) (models.Result, error) {
	locs, values := spatial.Split(obs)
	return e.PredictValues(locs, values, target)
}

// PredictValues is Predict for callers holding index-aligned location
// and value slices, the form external data suppliers provide.
func (e *Engine) PredictValues(locs spatial.Locations, values []float64, target spatial.Location) (models.Result, error) {
	if len(locs) == 0 {
		return models.Result{}, ErrEmptyInput
	}
	if len(locs) != len(values) {
		return models.Result{}, fmt.Errorf("%w: %d locations, %d values", ErrShapeMismatch, len(locs), len(values))
	}

	dist := spatial.DistanceMatrix(locs)
	sigma := Covariance(dist, e.kern)
	c := CrossCovariance(spatial.CrossDistances(target, locs), e.kern)
	z := mat.NewVecDense(len(values), values)

	return solve(sigma, c, z, e.mean, e.kern.Params().Sill)
}

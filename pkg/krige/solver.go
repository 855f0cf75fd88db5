package krige

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"simplekrige/internal/models"
)

// mspeTolerance bounds how negative a computed MSPE may go, relative to
// the sill, before the solve is flagged as unstable.
const mspeTolerance = 1e-8

// solve factorizes Σ_Z, solves Σ_Z w = c for the kriging weights, and
// evaluates the simple-kriging predictor and its MSPE:
//
//	ŷ    = μ + wᵀ(z − μ·1)
//	MSPE = sill − cᵀw
//
// The MSPE formula divides information against the marginal variance at
// the target, which for a stationary kernel is the sill.
func solve(sigma *mat.SymDense, c, z *mat.VecDense, mean, sill float64) (models.Result, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(sigma); !ok {
		return models.Result{}, fmt.Errorf("%w: covariance matrix is not positive definite (coincident observation locations with zero nugget?)", ErrSingularCovariance)
	}

	n := c.Len()
	w := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(w, c); err != nil {
		return models.Result{}, fmt.Errorf("%w: %v", ErrSingularCovariance, err)
	}

	pred := mean
	for i := 0; i < n; i++ {
		pred += w.AtVec(i) * (z.AtVec(i) - mean)
	}

	res := models.Result{Prediction: pred, MSPE: sill - mat.Dot(c, w)}
	if res.MSPE < 0 {
		if res.MSPE < -mspeTolerance*sill {
			res.Unstable = true
		}
		res.MSPE = 0
	}
	return res, nil
}

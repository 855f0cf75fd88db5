package krige

import (
	"gonum.org/v1/gonum/mat"

	"simplekrige/pkg/kernel"
)

// Covariance assembles the observation covariance matrix Σ_Z from the
// pairwise distance matrix: the kernel applied elementwise, with the
// nugget added to every diagonal entry. Pure function of its inputs.
func Covariance(dist *mat.SymDense, k *kernel.Matern) *mat.SymDense {
	n := dist.SymmetricDim()
	p := k.Params()

	sigma := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		sigma.SetSym(i, i, p.Sill+p.Nugget)
		for j := i + 1; j < n; j++ {
			sigma.SetSym(i, j, k.Covariance(dist.At(i, j)))
		}
	}
	return sigma
}

// CrossCovariance assembles the covariance vector c between the target
// and each observation location from the target-to-observation distances.
// No nugget is added: the nugget models observation error, which is
// absent at the unobserved target.
func CrossCovariance(dists *mat.VecDense, k *kernel.Matern) *mat.VecDense {
	n := dists.Len()
	c := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		c.SetVec(i, k.Covariance(dists.AtVec(i)))
	}
	return c
}

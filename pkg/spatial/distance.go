package spatial

import (
	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix returns the m×m matrix of pairwise Euclidean distances
// among locs. Each pair is computed exactly once and stored symmetrically,
// so D[i][j] and D[j][i] are bit-for-bit identical; the diagonal is
// exactly zero. Duplicate locations are not rejected here: they yield a
// zero off-diagonal distance and surface later as a singular covariance.
func DistanceMatrix(locs Locations) *mat.SymDense {
	m := len(locs)
	d := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			d.SetSym(i, j, locs[i].DistanceTo(locs[j]))
		}
	}
	return d
}

// CrossDistances returns the vector of Euclidean distances from target
// to each location in locs, in order.
func CrossDistances(target Location, locs Locations) *mat.VecDense {
	v := mat.NewVecDense(len(locs), nil)
	for i, l := range locs {
		v.SetVec(i, target.DistanceTo(l))
	}
	return v
}

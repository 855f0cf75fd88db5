// Package simulation generates synthetic observations of a Gaussian
// random field with a Matérn covariance, serving as the data supplier
// for the kriging engine. A realization is drawn exactly: the Cholesky
// factor of the process covariance at the sampled locations is applied
// to a vector of iid standard normals, then independent observation
// noise with the nugget variance is added per location.
package simulation

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"simplekrige/pkg/kernel"
	"simplekrige/pkg/krige"
	"simplekrige/pkg/spatial"
)

// ErrPlacement reports that the sampler could not place the requested
// number of locations while honoring the minimum-separation rule.
var ErrPlacement = errors.New("simulation: unable to place locations with required separation")

// placementAttempts bounds rejection sampling per requested location.
const placementAttempts = 1000

// Box is the axis-aligned rectangle locations are sampled from.
type Box struct {
	MinX float64 `yaml:"minX"`
	MaxX float64 `yaml:"maxX"`
	MinY float64 `yaml:"minY"`
	MaxY float64 `yaml:"maxY"`
}

// Params configures a synthetic observation draw.
type Params struct {
	// Count is the number of observations to generate.
	Count int

	// Seed seeds the random source; a fixed seed reproduces the draw.
	Seed uint64

	// MinSeparation is the smallest allowed distance between two sampled
	// locations. A positive value upholds the engine's no-duplicate
	// precondition; zero disables the check.
	MinSeparation float64

	// Domain is the sampling region.
	Domain Box
}

// Generate draws Count noisy observations of a Gaussian random field
// with the given constant mean and Matérn covariance parameters.
func Generate(p Params, mean float64, cov kernel.Parameters) ([]spatial.Observation, error) {
	if p.Count < 1 {
		return nil, fmt.Errorf("simulation: count %d must be >= 1", p.Count)
	}
	if err := cov.Validate(); err != nil {
		return nil, err
	}

	src := rand.NewSource(p.Seed)
	locs, err := sampleLocations(p, src)
	if err != nil {
		return nil, err
	}

	// Process covariance only: the nugget is observation noise, drawn
	// separately below, not part of the field.
	process := cov
	process.Nugget = 0
	kern, err := kernel.NewMatern(process)
	if err != nil {
		return nil, err
	}
	sigma := krige.Covariance(spatial.DistanceMatrix(locs), kern)

	var chol mat.Cholesky
	if ok := chol.Factorize(sigma); !ok {
		return nil, fmt.Errorf("simulation: %w at sampled locations", krige.ErrSingularCovariance)
	}
	var lower mat.TriDense
	chol.LTo(&lower)

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	n := p.Count
	white := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		white.SetVec(i, normal.Rand())
	}
	field := mat.NewVecDense(n, nil)
	field.MulVec(&lower, white)

	noiseSigma := math.Sqrt(cov.Nugget)

	obs := make([]spatial.Observation, n)
	for i := 0; i < n; i++ {
		value := mean + field.AtVec(i)
		if noiseSigma > 0 {
			value += noiseSigma * normal.Rand()
		}
		obs[i] = spatial.Observation{Loc: locs[i], Value: value}
	}
	return obs, nil
}

// sampleLocations rejection-samples Count locations uniformly over the
// domain box, screening each candidate against the locations accepted so
// far through a KD-tree separation index.
func sampleLocations(p Params, src rand.Source) (spatial.Locations, error) {
	ux := distuv.Uniform{Min: p.Domain.MinX, Max: p.Domain.MaxX, Src: src}
	uy := distuv.Uniform{Min: p.Domain.MinY, Max: p.Domain.MaxY, Src: src}

	index := spatial.NewSeparationIndex()
	locs := make(spatial.Locations, 0, p.Count)
	for len(locs) < p.Count {
		placed := false
		for attempt := 0; attempt < placementAttempts; attempt++ {
			cand := spatial.Location{X: ux.Rand(), Y: uy.Rand()}
			if p.MinSeparation > 0 && index.NearestDistance(cand) < p.MinSeparation {
				continue
			}
			index.Add(cand)
			locs = append(locs, cand)
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf("%w: placed %d of %d", ErrPlacement, len(locs), p.Count)
		}
	}
	return locs, nil
}

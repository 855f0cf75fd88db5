// Package spatial provides the geometric primitives of the kriging engine:
// 2-D locations, observations tied to locations, pairwise distance matrices,
// and KD-tree backed separation queries over location sets.
package spatial

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// Location is a point in 2-D Euclidean space.
type Location struct {
	X, Y float64
}

// Observation pairs a location with a noisy measurement of the
// underlying process at that location.
type Observation struct {
	Loc   Location
	Value float64
}

// DistanceTo returns the Euclidean distance between l and other.
func (l Location) DistanceTo(other Location) float64 {
	dx := l.X - other.X
	dy := l.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Compare implements the kdtree.Comparable interface.
func (l Location) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(Location)
	switch d {
	case 0:
		return l.X - q.X
	case 1:
		return l.Y - q.Y
	default:
		panic("illegal dimension")
	}
}

// Dims returns the number of dimensions for the KD-tree.
func (l Location) Dims() int { return 2 }

// Distance returns the squared Euclidean distance between two locations.
// Squared distances are what the KD-tree operates on; DistanceTo gives
// the metric distance.
func (l Location) Distance(c kdtree.Comparable) float64 {
	q := c.(Location)
	dx := l.X - q.X
	dy := l.Y - q.Y
	return dx*dx + dy*dy
}

// Locations is an ordered collection of Location that satisfies
// kdtree.Interface. Order is significant: it defines matrix row/column
// correspondence throughout the engine.
type Locations []Location

func (p Locations) Index(i int) kdtree.Comparable         { return p[i] }
func (p Locations) Len() int                              { return len(p) }
func (p Locations) Slice(start, end int) kdtree.Interface { return p[start:end] }

// Pivot implements the kdtree.Interface method.
func (p Locations) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(locationPlane{Locations: p, Dim: d}, kdtree.MedianOfRandoms(locationPlane{Locations: p, Dim: d}, 100))
}

// locationPlane implements sort.Interface and kdtree.SortSlicer for Locations.
type locationPlane struct {
	Locations
	kdtree.Dim
}

func (p locationPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.Locations[i].X < p.Locations[j].X
	case 1:
		return p.Locations[i].Y < p.Locations[j].Y
	default:
		panic("illegal dimension")
	}
}

func (p locationPlane) Slice(start, end int) kdtree.SortSlicer {
	return locationPlane{Locations: p.Locations[start:end], Dim: p.Dim}
}

func (p locationPlane) Swap(i, j int) {
	p.Locations[i], p.Locations[j] = p.Locations[j], p.Locations[i]
}

// Split separates a sequence of observations into its index-aligned
// location and value slices.
func Split(obs []Observation) (Locations, []float64) {
	locs := make(Locations, len(obs))
	values := make([]float64, len(obs))
	for i, o := range obs {
		locs[i] = o.Loc
		values[i] = o.Value
	}
	return locs, values
}

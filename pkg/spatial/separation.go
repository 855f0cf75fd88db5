package spatial

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// MinSeparation returns the smallest Euclidean distance between any two
// distinct indices in locs, using a KD-tree nearest-neighbor query per
// location. Returns +Inf for fewer than two locations. A zero return
// means locs contains a duplicated location.
func MinSeparation(locs Locations) float64 {
	if len(locs) < 2 {
		return math.Inf(1)
	}

	// kdtree.New reorders its input while building, so index the tree
	// over a copy to preserve caller ordering.
	pts := make(Locations, len(locs))
	copy(pts, locs)
	tree := kdtree.New(pts, false)

	minSq := math.Inf(1)
	for _, l := range locs {
		keeper := kdtree.NewNKeeper(2)
		tree.NearestSet(keeper, l)

		// The query point itself is in the tree at distance zero, so the
		// nearest distinct index is the larger of the two kept distances.
		var kept [2]float64
		n := 0
		for _, item := range keeper.Heap {
			if item.Comparable == nil {
				continue
			}
			if n < 2 {
				kept[n] = item.Dist
			}
			n++
		}
		if n == 2 {
			if other := math.Max(kept[0], kept[1]); other < minSq {
				minSq = other
			}
		}
	}
	return math.Sqrt(minSq)
}

// SeparationIndex incrementally indexes accepted locations so candidates
// can be screened against a minimum-separation rule. Used by the field
// simulator to uphold the engine's no-duplicate-locations precondition.
type SeparationIndex struct {
	tree *kdtree.Tree
	n    int
}

// NewSeparationIndex returns an empty index.
func NewSeparationIndex() *SeparationIndex {
	return &SeparationIndex{tree: kdtree.New(Locations{}, false)}
}

// NearestDistance returns the Euclidean distance from loc to the closest
// indexed location, or +Inf if the index is empty.
func (s *SeparationIndex) NearestDistance(loc Location) float64 {
	if s.n == 0 {
		return math.Inf(1)
	}
	_, distSq := s.tree.Nearest(loc)
	return math.Sqrt(distSq)
}

// Add indexes loc.
func (s *SeparationIndex) Add(loc Location) {
	s.tree.Insert(loc, false)
	s.n++
}

// Len returns the number of indexed locations.
func (s *SeparationIndex) Len() int { return s.n }

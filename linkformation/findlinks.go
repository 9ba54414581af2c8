package linkformation

import (
	"math"
	"math/rand"

	"github.com/qrouting/qrsim/ppp"
)

// FindLinks derives the candidate undirected-pair edge set from coords
// (every pair within threshold Euclidean distance), then retains each
// direction of each candidate independently with probability
// linkProbability, seeded deterministically from seed.
//
// Each direction is an independent Bernoulli trial — a candidate pair may
// end up contributing (u,v) only, (v,u) only, both, or neither. This
// matches the original's per-direction independence in findLinks and the
// teacher's own RandomSparse trial-per-candidate structure.
func FindLinks(coords []ppp.Coordinate, threshold, linkProbability float64, seed uint64) []Edge {
	rng := rand.New(rand.NewSource(int64(seed)))
	n := len(coords)

	var edges []Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if distance(coords[i], coords[j]) > threshold {
				continue
			}
			if rng.Float64() < linkProbability {
				edges = append(edges, Edge{From: i, To: j})
			}
			if rng.Float64() < linkProbability {
				edges = append(edges, Edge{From: j, To: i})
			}
		}
	}
	return edges
}

func distance(a, b ppp.Coordinate) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

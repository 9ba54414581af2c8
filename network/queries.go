package network

import "fmt"

// NumNodes returns |V| (spec §4.6).
func (g *Graph) NumNodes() int { return g.numNodes }

// NumEdges returns |E|, equal to the number of triples returned by
// Weights (spec §8 invariant). An edge drained to exactly zero residual
// capacity is no longer counted — it has nothing left to offer any
// future admission and behaves as removed from the multigraph.
func (g *Graph) NumEdges() int {
	n := 0
	for _, e := range g.edges {
		if e.weight > 0 {
			n++
		}
	}
	return n
}

// TotalCapacity returns the sum of every edge's residual capacity.
// Always >= 0 (spec §8 invariant).
func (g *Graph) TotalCapacity() float64 {
	var total float64
	for _, e := range g.edges {
		total += e.weight
	}
	return total
}

// NodeCapacities returns, for each node id, the sum of its outgoing
// residual capacities (spec §4.6).
func (g *Graph) NodeCapacities() []float64 {
	out := make([]float64, g.numNodes)
	for _, e := range g.edges {
		out[e.from] += e.weight
	}
	return out
}

// InDegree returns (min, max) in-degree across all nodes, counting only
// edges with residual capacity remaining.
func (g *Graph) InDegree() (min, max int) {
	inDeg := make([]int, g.numNodes)
	for _, e := range g.edges {
		if e.weight > 0 {
			inDeg[e.to]++
		}
	}
	return minMax(inDeg)
}

// OutDegree returns (min, max) out-degree across all nodes, counting
// only edges with residual capacity remaining.
func (g *Graph) OutDegree() (min, max int) {
	outDeg := make([]int, g.numNodes)
	for u, eids := range g.adjOut {
		for _, eid := range eids {
			if g.edges[eid].weight > 0 {
				outDeg[u]++
			}
		}
	}
	return minMax(outDeg)
}

func minMax(vals []int) (min, max int) {
	if len(vals) == 0 {
		return 0, 0
	}
	min, max = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// MeasurementProbability returns the current per-hop measurement success
// probability p (default 1).
func (g *Graph) MeasurementProbability() float64 { return g.measurementProbability }

// SetMeasurementProbability sets p. p must lie in (0,1]; otherwise the
// call fails with ErrInvalidArgument and p is left unchanged (spec §3, §7).
func (g *Graph) SetMeasurementProbability(p float64) error {
	if p <= 0 || p > 1 {
		return fmt.Errorf("%w: measurement probability %g not in (0,1]", ErrInvalidArgument, p)
	}
	g.measurementProbability = p
	return nil
}

// Weights returns the current residual capacities as (u,v,w) triples, in
// edge-insertion order (spec §4.5). Edges drained to zero are omitted —
// NumEdges is exactly len(Weights()).
func (g *Graph) Weights() []WeightedEdge {
	out := make([]WeightedEdge, 0, len(g.edges))
	for _, e := range g.edges {
		if e.weight > 0 {
			out = append(out, WeightedEdge{From: e.from, To: e.to, Weight: e.weight})
		}
	}
	return out
}

// validNode reports whether id is a valid node identifier.
func (g *Graph) validNode(id int) bool {
	return id >= 0 && id < g.numNodes
}

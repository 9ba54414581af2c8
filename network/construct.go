package network

import "github.com/qrouting/qrsim/sampler"

// Edge is an unweighted directed (u, v) pair, the construction input for
// NewFromEdges.
type Edge struct {
	From, To int
}

// WeightedEdge is an explicit (u, v, w) triple, the construction input for
// NewFromWeightedEdges and the return shape of (*Graph).Weights.
type WeightedEdge struct {
	From, To int
	Weight   float64
}

// NewFromEdges builds a Graph from an unweighted directed edge list,
// drawing each edge's initial residual capacity from rv. If bidirectional
// is true, the reverse of every (u,v) edge is also inserted, with an
// independent sample from rv — not a mirrored weight (spec §4.5, §9).
//
// Node ids referenced by edges must be dense from 0; numNodes is the
// caller-declared node count (every edge endpoint must be < numNodes).
func NewFromEdges(numNodes int, edges []Edge, rv sampler.RealRv, bidirectional bool, opts ...Option) *Graph {
	g := newGraph(numNodes, opts...)
	for _, e := range edges {
		g.appendEdge(e.From, e.To, rv())
		if bidirectional {
			g.appendEdge(e.To, e.From, rv())
		}
	}
	return g
}

// NewFromWeightedEdges builds a Graph from an explicit weighted edge list;
// no reverse edges are inserted (spec §4.5).
func NewFromWeightedEdges(numNodes int, edges []WeightedEdge, opts ...Option) *Graph {
	g := newGraph(numNodes, opts...)
	for _, e := range edges {
		g.appendEdge(e.From, e.To, e.Weight)
	}
	return g
}

func newGraph(numNodes int, opts ...Option) *Graph {
	g := &Graph{
		numNodes:               numNodes,
		adjOut:                 make([][]int, numNodes),
		measurementProbability: 1,
		logger:                 defaultLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// appendEdge inserts a new edge (from, to, weight) into the multigraph.
// Construction-time only: no validation of from/to against numNodes, since
// the caller-supplied edge lists are trusted inputs at construction (the
// public surface validates node ids on every post-construction query and
// mutation instead, per spec §3's invariant on Graph IDs).
func (g *Graph) appendEdge(from, to int, weight float64) {
	id := len(g.edges)
	g.edges = append(g.edges, edge{from: from, to: to, weight: weight})
	g.adjOut[from] = append(g.adjOut[from], id)
}

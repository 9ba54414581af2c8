package network

import (
	"fmt"
	"math"
)

// RouteFlows admits each flow in flows, in input order, against the
// current residual capacities (spec §4.8). State mutations from flow i
// are visible to flow i+1 within the same call.
//
// Validation runs for every flow before any admission work begins: if any
// flow has src == dst, an out-of-range src/dst, or a non-positive
// NetRate, the entire call fails and the graph is left unchanged.
//
// constraint, if non-nil, is evaluated against each flow's candidate
// Path/GrossRate before it is committed; returning false rejects that
// flow without mutating the graph (rejection is not an error — the flow
// simply keeps an empty Path).
func (g *Graph) RouteFlows(flows []*FlowDescriptor, constraint func(*FlowDescriptor) bool) error {
	for _, f := range flows {
		if f.Src == f.Dst {
			return fmt.Errorf("%w: flow src == dst (%d)", ErrInvalidArgument, f.Src)
		}
		if !g.validNode(f.Src) {
			return fmt.Errorf("%w: flow src %d out of range", ErrInvalidArgument, f.Src)
		}
		if !g.validNode(f.Dst) {
			return fmt.Errorf("%w: flow dst %d out of range", ErrInvalidArgument, f.Dst)
		}
		if f.NetRate <= 0 {
			return fmt.Errorf("%w: flow net rate %g must be > 0", ErrInvalidArgument, f.NetRate)
		}
	}

	p := g.measurementProbability
	for _, f := range flows {
		path, gross, invocations := g.admitOneFlow(f.Src, f.Dst, f.NetRate, p)
		f.DijkstraInvocations = invocations

		if path == nil {
			f.Path = nil
			f.GrossRate = 0
			g.logger.WithFields(loggerFields(f)).Trace("flow rejected: no feasible path")
			continue
		}

		f.Path = path
		f.GrossRate = gross
		if constraint != nil && !constraint(f) {
			f.Path = nil
			f.GrossRate = 0
			g.logger.WithFields(loggerFields(f)).Trace("flow rejected: constraint predicate")
			continue
		}

		g.consumePath(f.Src, path, gross)
		g.logger.WithFields(loggerFields(f)).Trace("flow admitted")
	}
	return nil
}

// admitOneFlow runs the gross-rate fixed-point search of spec §4.8 step
// 1-3: start from the L=1 gross-rate guess, search the subgraph admissible
// at that threshold, recompute gross from the path length found, and
// re-search if the path's actual edges don't clear the recomputed
// threshold. Bounded by the number of distinct path lengths (<= V-1).
func (g *Graph) admitOneFlow(src, dst int, netRate, p float64) (path []int, gross float64, invocations int) {
	gross = netRate // L=1 assumption: p^(1-1) == 1
	for {
		invocations++
		path = g.shortestFeasiblePath(src, dst, gross)
		if path == nil {
			return nil, 0, invocations
		}
		l := len(path)
		newGross := netRate / math.Pow(p, float64(l-1))
		if g.pathSatisfies(src, path, newGross) {
			return path, newGross, invocations
		}
		gross = newGross
	}
}

// pathSatisfies reports whether every edge along src -> path[0] -> ... ->
// path[len-1] currently has residual capacity >= minGross.
func (g *Graph) pathSatisfies(src int, path []int, minGross float64) bool {
	u := src
	for _, v := range path {
		e, ok := g.findEdge(u, v)
		if !ok || g.edges[e].weight < minGross {
			return false
		}
		u = v
	}
	return true
}

// pathBottleneck returns the smallest residual weight across every edge
// along src -> path[0] -> ... -> path[len-1], or 0 if any hop has no
// edge. Used by RouteApps to admit a partial quantum when the full gross
// rate isn't available everywhere on the path.
func (g *Graph) pathBottleneck(src int, path []int) float64 {
	u := src
	bottleneck := math.Inf(1)
	for _, v := range path {
		e, ok := g.findEdge(u, v)
		if !ok {
			return 0
		}
		if g.edges[e].weight < bottleneck {
			bottleneck = g.edges[e].weight
		}
		u = v
	}
	return bottleneck
}

// consumePath subtracts gross from every edge along src -> path... ->
// path[len-1]. Callers must have already verified feasibility; this never
// fails.
func (g *Graph) consumePath(src int, path []int, gross float64) {
	u := src
	for _, v := range path {
		e, _ := g.findEdge(u, v)
		g.edges[e].weight -= gross
		u = v
	}
}

// findEdge returns the first (insertion order) edge id with the given
// (from, to), per the FIFO parallel-edge resolution convention (spec
// SPEC_FULL.md Open Question O3).
func (g *Graph) findEdge(from, to int) (id int, ok bool) {
	for _, eid := range g.adjOut[from] {
		if g.edges[eid].to == to {
			return eid, true
		}
	}
	return 0, false
}

func loggerFields(f *FlowDescriptor) map[string]interface{} {
	return map[string]interface{}{
		"request_id": f.RequestID,
		"src":        f.Src,
		"dst":        f.Dst,
		"net_rate":   f.NetRate,
	}
}

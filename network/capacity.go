package network

import "fmt"

// AddCapacityToPath adjusts the residual capacity of every edge along
// src -> hops[0] -> ... -> hops[len-1] by delta (spec §4.10). delta may
// be negative to remove capacity (e.g. the inverse of a prior
// admission).
//
// The call is atomic: every edge on the path is validated to exist, and
// every resulting residual is validated to be >= 0, before any edge is
// mutated. A missing edge fails with ErrEdgeNotFound (the error also
// matches ErrInvalidArgument); a negative result fails with
// ErrInvalidArgument. Either failure leaves the graph unchanged.
func (g *Graph) AddCapacityToPath(src int, hops []int, delta float64) error {
	if !g.validNode(src) {
		return fmt.Errorf("%w: src %d out of range", ErrInvalidArgument, src)
	}

	eids := make([]int, 0, len(hops))
	u := src
	for _, v := range hops {
		if !g.validNode(v) {
			return fmt.Errorf("%w: hop %d out of range", ErrInvalidArgument, v)
		}
		eid, ok := g.findEdge(u, v)
		if !ok {
			return fmt.Errorf("%w: %w: no edge %d -> %d", ErrEdgeNotFound, ErrInvalidArgument, u, v)
		}
		if g.edges[eid].weight+delta < 0 {
			return fmt.Errorf("%w: delta %g would drive edge %d -> %d negative", ErrInvalidArgument, delta, u, v)
		}
		eids = append(eids, eid)
		u = v
	}

	for _, eid := range eids {
		g.edges[eid].weight += delta
	}
	return nil
}

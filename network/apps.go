package network

import (
	"fmt"
	"math"
	"sort"
)

// RouteApps admits a set of multi-peer requests against the current
// residual capacities (spec §4.9).
//
// Each visit to a candidate path admits min(gross, bottleneck) where
// bottleneck is the smallest residual weight across the path's edges: a
// candidate that can't clear the full gross quantum still gets whatever
// the tightest edge has left, rather than being dropped outright. Only a
// fully drained bottleneck (residual <= 0) drops the candidate for good.
//
// Validation runs for every app before any admission work begins: a
// non-positive quantum or k, or any app with no peers, a peer equal to
// src, an out-of-range peer/src, or a non-positive priority fails the
// entire call atomically.
func (g *Graph) RouteApps(apps []*AppDescriptor, quantum float64, k int) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: quantum %g must be > 0", ErrInvalidArgument, quantum)
	}
	if k < 1 {
		return fmt.Errorf("%w: k %d must be >= 1", ErrInvalidArgument, k)
	}
	for _, a := range apps {
		if !g.validNode(a.Src) {
			return fmt.Errorf("%w: app src %d out of range", ErrInvalidArgument, a.Src)
		}
		if len(a.Peers) == 0 {
			return fmt.Errorf("%w: app has no peers", ErrInvalidArgument)
		}
		if a.Priority <= 0 {
			return fmt.Errorf("%w: app priority %g must be > 0", ErrInvalidArgument, a.Priority)
		}
		for _, peer := range a.Peers {
			if peer == a.Src {
				return fmt.Errorf("%w: app peer %d equals src", ErrInvalidArgument, peer)
			}
			if !g.validNode(peer) {
				return fmt.Errorf("%w: app peer %d out of range", ErrInvalidArgument, peer)
			}
		}
	}

	p := g.measurementProbability
	for _, a := range apps {
		a.measurementProbability = p
		a.RemainingPaths = nil
		a.Visits = 0
		if a.Allocated == nil {
			a.Allocated = make(map[int][]Allocation)
		}
		for _, peer := range a.Peers {
			for _, path := range g.kShortestPaths(a.Src, peer, k) {
				a.RemainingPaths = append(a.RemainingPaths, candidatePath{peer: peer, path: path})
			}
		}
	}

	ordered := append([]*AppDescriptor(nil), apps...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Priority > ordered[j].Priority })

	for {
		progressed := false
		for _, a := range ordered {
			if len(a.RemainingPaths) == 0 {
				continue
			}
			progressed = true
			a.Visits++

			cand := a.RemainingPaths[0]
			a.RemainingPaths = a.RemainingPaths[1:]

			l := len(cand.path)
			gross := quantum / math.Pow(p, float64(l-1))

			bottleneck := g.pathBottleneck(a.Src, cand.path)
			if bottleneck <= 0 {
				g.logger.WithField("request_id", a.RequestID).Trace("app candidate dropped: exhausted")
				continue
			}
			admitted := gross
			if bottleneck < admitted {
				admitted = bottleneck
			}

			g.consumePath(a.Src, cand.path, admitted)
			a.Allocated[cand.peer] = append(a.Allocated[cand.peer], Allocation{
				Hops:      append([]int(nil), cand.path...),
				GrossRate: admitted,
			})
			a.RemainingPaths = append(a.RemainingPaths, cand)
			g.logger.WithField("request_id", a.RequestID).Trace("app quantum admitted")
		}
		if !progressed {
			break
		}
	}
	return nil
}

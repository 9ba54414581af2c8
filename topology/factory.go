package topology

import (
	"errors"
	"fmt"

	"github.com/qrouting/qrsim/linkformation"
	"github.com/qrouting/qrsim/network"
	"github.com/qrouting/qrsim/ppp"
	"github.com/qrouting/qrsim/sampler"
)

// manyTries bounds the retry loop in MakeCapacityNetworkPpp (spec §6:
// "retry cap (hard-coded 10^6) in the topology factory").
const manyTries = 1_000_000

// ErrExhausted is returned when no connected topology could be found
// within manyTries attempts, or when externally supplied edges yield a
// disconnected graph (spec §7).
var ErrExhausted = errors.New("topology: exhausted")

// ErrInvalidArgument is returned when a factory's own parameters (as
// opposed to the network it builds) are malformed.
var ErrInvalidArgument = errors.New("topology: invalid argument")

// MakeCapacityNetworkPpp scatters nodes over a gridLength x gridLength
// square via a Poisson point process, forms links by independent
// Bernoulli trial on proximity, and retries with a fresh point-process
// draw until the resulting graph is connected (spec §4.1).
//
// The link-formation seed stays fixed at seed across every retry; only
// the point-process seed advances, by 1,000,000 per retry — this is the
// PRNG-reuse contract of the source factory (spec §9) and must be
// preserved for reproducibility.
func MakeCapacityNetworkPpp(
	rv sampler.RealRv,
	seed uint64,
	mu, gridLength, threshold, linkProbability float64,
	bidirectional bool,
	opts ...network.Option,
) (*network.Graph, []ppp.Coordinate, error) {
	if gridLength <= 0 {
		return nil, nil, fmt.Errorf("%w: gridLength %g must be positive", ErrInvalidArgument, gridLength)
	}
	if mu < 0 {
		return nil, nil, fmt.Errorf("%w: mu %g must be non-negative", ErrInvalidArgument, mu)
	}

	pppSeed := seed

	for try := 0; try < manyTries; try++ {
		grid, err := ppp.NewGrid(mu, pppSeed, gridLength, gridLength)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		coords := grid.Draw()
		edges := linkformation.FindLinks(coords, threshold, linkProbability, seed)

		if linkformation.Connected(edges) {
			g := network.NewFromEdges(len(coords), toNetworkEdges(edges), rv, bidirectional, opts...)
			return g, coords, nil
		}
		pppSeed += 1_000_000
	}

	return nil, nil, fmt.Errorf("%w: no connected topology after %d tries", ErrExhausted, manyTries)
}

// MakeCapacityNetworkFromSource builds a graph from an externally
// supplied edge list (e.g. GraphML ingestion, spec §6), failing with
// ErrExhausted if the result is disconnected. Unlike the point-process
// factory, a disconnected source is not retried — there is no second
// draw to take.
func MakeCapacityNetworkFromSource(
	source linkformation.EdgeListSource,
	rv sampler.RealRv,
	bidirectional bool,
	opts ...network.Option,
) (*network.Graph, []ppp.Coordinate, error) {
	coords, edges, err := source.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrExhausted, err)
	}
	if !linkformation.Connected(edges) {
		return nil, nil, fmt.Errorf("%w: source network is not fully connected", ErrExhausted)
	}
	g := network.NewFromEdges(len(coords), toNetworkEdges(edges), rv, bidirectional, opts...)
	return g, coords, nil
}

func toNetworkEdges(edges []linkformation.Edge) []network.Edge {
	out := make([]network.Edge, len(edges))
	for i, e := range edges {
		out[i] = network.Edge{From: e.From, To: e.To}
	}
	return out
}

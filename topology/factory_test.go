package topology

import (
	"errors"
	"testing"

	"github.com/qrouting/qrsim/linkformation"
	"github.com/qrouting/qrsim/ppp"
	"github.com/qrouting/qrsim/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMakeCapacityNetworkPppDegenerateEmptyTopology exercises the mu=0
// corner of the point process: every draw is the empty point set, which
// Connected treats as trivially connected (no nodes are referenced by any
// edge), so the factory must succeed on its very first try without ever
// touching the retry loop.
func TestMakeCapacityNetworkPppDegenerateEmptyTopology(t *testing.T) {
	rv, err := sampler.Constant(0)
	require.NoError(t, err)

	g, coords, err := MakeCapacityNetworkPpp(rv, 1, 0, 1, 1, 1, false)
	require.NoError(t, err)
	assert.Empty(t, coords)
	assert.Equal(t, 0, g.NumNodes())
}

func TestMakeCapacityNetworkPppRejectsInvalidArguments(t *testing.T) {
	rv, err := sampler.Constant(0)
	require.NoError(t, err)

	_, _, err = MakeCapacityNetworkPpp(rv, 1, 0, 0, 1, 1, false)
	require.ErrorIs(t, err, ErrInvalidArgument, "non-positive gridLength")

	_, _, err = MakeCapacityNetworkPpp(rv, 1, -1, 1, 1, 1, false)
	require.ErrorIs(t, err, ErrInvalidArgument, "negative mu")
}

type fakeSource struct {
	coords []ppp.Coordinate
	edges  []linkformation.Edge
	err    error
}

func (f fakeSource) Read() ([]ppp.Coordinate, []linkformation.Edge, error) {
	return f.coords, f.edges, f.err
}

func TestMakeCapacityNetworkFromSourceConnected(t *testing.T) {
	src := fakeSource{
		coords: []ppp.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}},
		edges:  []linkformation.Edge{{From: 0, To: 1}, {From: 1, To: 0}},
	}
	rv5, err := sampler.Constant(5)
	require.NoError(t, err)

	g, coords, err := MakeCapacityNetworkFromSource(src, rv5, false)
	require.NoError(t, err)
	assert.Len(t, coords, 2)
	assert.Equal(t, 2, g.NumNodes())
	assert.InDelta(t, 10, g.TotalCapacity(), 1e-9)
}

// TestMakeCapacityNetworkFromSourceDisconnectedIsNotRetried uses two
// genuinely disjoint referenced components (0-1 and 2-3); node 2 and node
// 3 are each referenced by an edge, so spec §4.3's unreferenced-node
// carve-out does not apply here and the source is correctly disconnected.
func TestMakeCapacityNetworkFromSourceDisconnectedIsNotRetried(t *testing.T) {
	src := fakeSource{
		coords: []ppp.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
		edges:  []linkformation.Edge{{From: 0, To: 1}, {From: 2, To: 3}},
	}
	rv1, err := sampler.Constant(1)
	require.NoError(t, err)

	_, _, err = MakeCapacityNetworkFromSource(src, rv1, false)
	require.ErrorIs(t, err, ErrExhausted)
}

func TestMakeCapacityNetworkFromSourcePropagatesReadError(t *testing.T) {
	boom := errors.New("boom")
	rv1, err := sampler.Constant(1)
	require.NoError(t, err)

	_, _, err = MakeCapacityNetworkFromSource(fakeSource{err: boom}, rv1, false)
	require.ErrorIs(t, err, ErrExhausted)
	assert.ErrorIs(t, err, boom)
}

package linkformation

import (
	"testing"

	"github.com/qrouting/qrsim/ppp"
	"github.com/stretchr/testify/assert"
)

func TestFindLinksOnlyWithinThreshold(t *testing.T) {
	coords := []ppp.Coordinate{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 100, Y: 100},
	}
	edges := FindLinks(coords, 1.5, 1.0, 1)
	for _, e := range edges {
		assert.True(t, e.From == 0 || e.To == 0 || e.From == 1 || e.To == 1)
		assert.False(t, (e.From == 2 || e.To == 2))
	}
}

func TestFindLinksDeterministicForSeed(t *testing.T) {
	coords := []ppp.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	a := FindLinks(coords, 5, 0.5, 99)
	b := FindLinks(coords, 5, 0.5, 99)
	assert.Equal(t, a, b)
}

func TestFindLinksProbabilityZeroOrOne(t *testing.T) {
	coords := []ppp.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}
	assert.Empty(t, FindLinks(coords, 5, 0, 1))
	assert.Len(t, FindLinks(coords, 5, 1, 1), 2)
}

func TestConnected(t *testing.T) {
	assert.True(t, Connected(nil), "no referenced nodes at all is vacuously connected")
	assert.True(t, Connected([]Edge{{From: 0, To: 1}, {From: 1, To: 2}}))
	assert.False(t, Connected([]Edge{{From: 0, To: 1}, {From: 2, To: 3}}), "two disjoint components among the referenced nodes")
	assert.True(t, Connected([]Edge{{From: 0, To: 0}}), "a single self-looped node is its own connected component")
}

// TestConnectedExcludesUnreferencedNodes pins down spec §4.3's explicit
// carve-out: a node that never appears as either endpoint of any edge
// takes no part in the check at all, so it can never be the reason a
// connected point set is reported disconnected. A coordinate-generation
// draw with one isolated, unlinked point is exactly this case.
func TestConnectedExcludesUnreferencedNodes(t *testing.T) {
	// Only nodes 0 and 1 are referenced; any other node in the underlying
	// point set (e.g. a 3rd coordinate with no link at all) is simply
	// absent from edges and cannot make this false.
	assert.True(t, Connected([]Edge{{From: 0, To: 1}}))
}

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKShortestPathsOrderedByLengthThenLex(t *testing.T) {
	g := newScenarioAGraph(t)

	paths := g.kShortestPaths(0, 3, 99)
	assert.Equal(t, [][]int{{4, 3}, {1, 2, 3}}, paths, "shorter path first; only two simple paths exist 0->3")
}

func TestKShortestPathsCapsAtK(t *testing.T) {
	g := newScenarioAGraph(t)
	paths := g.kShortestPaths(0, 3, 1)
	assert.Equal(t, [][]int{{4, 3}}, paths)
}

func TestKShortestPathsUnreachableIsEmpty(t *testing.T) {
	g := newScenarioAGraph(t)
	assert.Nil(t, g.kShortestPaths(3, 0, 5), "no outgoing edges from node 3")
}

func TestKShortestPathsSingleCandidate(t *testing.T) {
	g := newScenarioAGraph(t)
	paths := g.kShortestPaths(1, 3, 99)
	assert.Equal(t, [][]int{{2, 3}}, paths, "only one simple path exists from 1 to 3")
}

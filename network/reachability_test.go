package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scenarioDGraph builds the seven-node fixture from spec §8 Scenario D:
// (0,1),(0,2),(1,3),(2,3),(3,1),(3,2),(3,4),(3,5),(4,3),(4,6),(5,3),(5,6).
func scenarioDGraph() *Graph {
	edges := []Edge{
		{From: 0, To: 1}, {From: 0, To: 2},
		{From: 1, To: 3},
		{From: 2, To: 3},
		{From: 3, To: 1}, {From: 3, To: 2}, {From: 3, To: 4}, {From: 3, To: 5},
		{From: 4, To: 3}, {From: 4, To: 6},
		{From: 5, To: 3}, {From: 5, To: 6},
	}
	return NewFromEdges(7, edges, constantRv(1), false)
}

func constantRv(v float64) func() float64 {
	return func() float64 { return v }
}

func TestScenarioD_ReachabilityWindows(t *testing.T) {
	g := scenarioDGraph()

	all, diameter := g.ReachableNodes(0, 99)
	assert.Equal(t, 4, diameter)
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 3: {}, 4: {}, 5: {}, 6: {}}, all[0])
	assert.Empty(t, all[6])

	exact, _ := g.ReachableNodes(2, 2)
	assert.Equal(t, map[int]struct{}{3: {}}, exact[0])
}

func TestReachableNodesMonotoneInWindow(t *testing.T) {
	g := scenarioDGraph()
	narrow, _ := g.ReachableNodes(0, 2)
	wide, _ := g.ReachableNodes(0, 3)
	for v := range narrow[0] {
		_, ok := wide[0][v]
		assert.True(t, ok, "reachableNodes(0,2) must be a subset of reachableNodes(0,3)")
	}
}

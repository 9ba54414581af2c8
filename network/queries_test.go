package network

import (
	"testing"

	"github.com/qrouting/qrsim/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleWeightedEdges is the five-node fixture used throughout spec §8's
// scenarios: (0,1,4),(1,2,4),(2,3,4),(0,4,1),(4,3,4).
func exampleWeightedEdges() []WeightedEdge {
	return []WeightedEdge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 4},
		{From: 2, To: 3, Weight: 4},
		{From: 0, To: 4, Weight: 1},
		{From: 4, To: 3, Weight: 4},
	}
}

func TestScenarioA_GraphProperties(t *testing.T) {
	g := NewFromWeightedEdges(5, exampleWeightedEdges())

	assert.Equal(t, 5, g.NumNodes())
	assert.Equal(t, 5, g.NumEdges())
	assert.InDelta(t, 17, g.TotalCapacity(), 1e-9)

	inLo, inHi := g.InDegree()
	assert.Equal(t, 0, inLo)
	assert.Equal(t, 2, inHi)

	outLo, outHi := g.OutDegree()
	assert.Equal(t, 0, outLo)
	assert.Equal(t, 2, outHi)

	assert.Equal(t, []float64{5, 4, 4, 0, 4}, g.NodeCapacities())
	assert.InDelta(t, 1, g.MeasurementProbability(), 1e-9)
}

func TestNewFromEdgesSamplesEachDirectionIndependently(t *testing.T) {
	calls := 0
	rv := sampler.RealRv(func() float64 {
		calls++
		return float64(calls)
	})
	g := NewFromEdges(2, []Edge{{From: 0, To: 1}}, rv, true)
	require.Equal(t, 2, g.NumEdges())
	w := g.Weights()
	assert.NotEqual(t, w[0].Weight, w[1].Weight)
}

func TestSetMeasurementProbabilityValidation(t *testing.T) {
	g := NewFromWeightedEdges(2, []WeightedEdge{{From: 0, To: 1, Weight: 1}})
	require.NoError(t, g.SetMeasurementProbability(0.5))
	assert.InDelta(t, 0.5, g.MeasurementProbability(), 1e-9)

	require.ErrorIs(t, g.SetMeasurementProbability(0), ErrInvalidArgument)
	require.ErrorIs(t, g.SetMeasurementProbability(1.5), ErrInvalidArgument)
	assert.InDelta(t, 0.5, g.MeasurementProbability(), 1e-9, "rejected update must not mutate state")
}

func TestWeightsOmitsExhaustedEdges(t *testing.T) {
	g := NewFromWeightedEdges(2, []WeightedEdge{{From: 0, To: 1, Weight: 0}, {From: 1, To: 0, Weight: 3}})
	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, []WeightedEdge{{From: 1, To: 0, Weight: 3}}, g.Weights())
}

package sampler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantAlwaysReturnsValue(t *testing.T) {
	rv, err := Constant(3.5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		assert.InDelta(t, 3.5, rv(), 1e-9)
	}
}

func TestConstantRejectsNegative(t *testing.T) {
	_, err := Constant(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUniformStaysWithinBounds(t *testing.T) {
	rv, err := Uniform(2, 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		v := rv()
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 5.0)
	}
}

func TestUniformDegenerateSpan(t *testing.T) {
	rv, err := Uniform(4, 4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.InDelta(t, 4, rv(), 1e-9)
}

func TestUniformRejectsInvalidInput(t *testing.T) {
	_, err := Uniform(1, 0, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Uniform(-1, 1, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Uniform(0, 1, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

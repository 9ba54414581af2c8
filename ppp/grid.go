package ppp

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidArgument is returned by NewGrid; ppp never panics at runtime
// (teacher contract, builder/impl_random_sparse.go).
var ErrInvalidArgument = errors.New("ppp: invalid argument")

// Grid draws successive realizations of a homogeneous Poisson point
// process over a Width x Height rectangle with expected point count Mu.
//
// A Grid is stateful: each Draw advances the internal PRNG, so two calls on
// the same instance never repeat the same point set (barring the
// astronomically unlikely coincidence of identical samples).
type Grid struct {
	mu     float64
	width  float64
	height float64
	rng    *rand.Rand
	count  distuv.Poisson
}

// NewGrid constructs a Grid seeded deterministically from seed.
// mu is the expected number of points per draw (not an areal density);
// width and height must be positive.
func NewGrid(mu float64, seed uint64, width, height float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width and height must be positive", ErrInvalidArgument)
	}
	if mu < 0 {
		return nil, fmt.Errorf("%w: mu must be non-negative", ErrInvalidArgument)
	}
	rng := rand.New(rand.NewSource(seed))
	return &Grid{
		mu:     mu,
		width:  width,
		height: height,
		rng:    rng,
		count:  distuv.Poisson{Lambda: mu, Src: rng},
	}, nil
}

// Draw samples a fresh point count from Poisson(Mu) and returns that many
// coordinates, each independently uniform over [0,Width] x [0,Height].
// The empty draw (count == 0) is a valid outcome; callers that require a
// non-empty topology (the topology factory) are responsible for retrying.
func (g *Grid) Draw() []Coordinate {
	n := int(g.count.Rand())
	out := make([]Coordinate, n)
	for i := 0; i < n; i++ {
		out[i] = Coordinate{
			X: g.rng.Float64() * g.width,
			Y: g.rng.Float64() * g.height,
		}
	}
	return out
}

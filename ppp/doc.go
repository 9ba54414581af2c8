// Package ppp implements a homogeneous 2-D Poisson point process over a
// rectangular grid, the leaf-level geometry component of the topology
// factory (spec §4.1).
//
// Each Draw samples a point count from a Poisson distribution with mean Mu
// (gonum.org/v1/gonum/stat/distuv.Poisson), then places that many points
// uniformly at random within [0, Width] x [0, Height]. Repeated calls on the
// same Grid advance its internal *rand.Rand, so successive draws differ.
//
// Mu is the expected point count directly, not an areal density — fixed
// empirically by the μ=10, W=1000, H=1 fixture (first draw has 9 points;
// 100 draws produce 18 distinct sizes), carried forward from the original
// C++ test suite.
package ppp

// Package linkformation derives a candidate edge set from a coordinate set
// and a distance threshold, retains candidates probabilistically, and
// offers the connectivity oracle used by the topology factory (spec
// §4.2, §4.3).
//
// FindLinks mirrors the teacher's builder.RandomSparse trial structure
// (stable, seeded, Bernoulli trial per candidate pair) adapted from an
// index-count model to a distance-threshold model. Connected mirrors
// gridgraph's BFS-component scan, implemented here with the teacher's
// union-find (see prim_kruskal/kruskal.go) since the test is a pure
// "how many components" question with no need to materialize the
// components themselves.
package linkformation

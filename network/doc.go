// Package network implements CapacityNetwork, the capacity-constrained
// directed multigraph at the heart of the routing simulator (spec §4.5 –
// §4.10).
//
// A Graph owns a fixed set of densely-numbered nodes (0..NumNodes()-1) and
// a directed multigraph of residual-capacity edges. It is mutated by two
// greedy admission algorithms — RouteFlows (single-destination,
// shortest-feasible-path) and RouteApps (multi-peer, quantum-incremental,
// priority-weighted) — plus AddCapacityToPath, which restores capacity
// along a previously-used route.
//
// Design notes, carried from the teacher (core.Graph):
//
//   - Adjacency is an index-based out-list per node, built once at
//     construction and never resized after; every mutation touches
//     existing edge weights in place (no edge insertion/removal after
//     construction), so no locking or atomic-ID machinery is needed —
//     unlike core.Graph, CapacityNetwork is explicitly not safe for
//     concurrent mutation (spec §5) and carries no internal mutex.
//   - Edge identity for AddCapacityToPath is (from, to); when more than
//     one parallel edge shares an ordered pair, operations resolve to the
//     first such edge in insertion order (FIFO), matching the teacher's
//     adjacency-list iteration order.
//   - Every public mutation either commits entirely or leaves state
//     unchanged (spec §5 atomicity): validation happens before any write.
//
// Error handling follows the teacher's sentinel-error idiom
// (errors.New + fmt.Errorf("%w: ...", ...)); rejection of a flow or app
// (empty path / empty allocation) is a normal return value, never an
// error.
package network

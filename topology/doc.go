// Package topology builds network.Graph instances from a point-process
// topology, retrying the draw until the result is connected, or from an
// externally supplied edge list, which is rejected rather than retried
// when disconnected (spec §4.1, §6).
package topology

package linkformation

import "github.com/qrouting/qrsim/ppp"

// Edge is a directed (u, v) pair of densely-numbered node ids, the
// undecorated edge-list entry of spec §3.
type Edge struct {
	From int
	To   int
}

// EdgeListSource is the narrow external interface through which an opaque
// topology reader (GraphML or otherwise) hands coordinates and an edge list
// to the topology factory. Only the shape of the output matters here —
// spec §6 deliberately treats GraphML parsing as out of scope.
type EdgeListSource interface {
	Read() (coords []ppp.Coordinate, edges []Edge, err error)
}

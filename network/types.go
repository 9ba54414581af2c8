package network

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Sentinel errors for CapacityNetwork operations (spec §7).
var (
	// ErrInvalidArgument covers every input-validation failure: out-of-range
	// node id, non-positive rate/quantum/k, src==dst, a peer equal to src,
	// a measurement probability outside (0,1], or a delta that would drive
	// a residual capacity negative.
	ErrInvalidArgument = errors.New("network: invalid argument")

	// ErrEdgeNotFound is returned by AddCapacityToPath when a hop in the
	// requested path has no corresponding edge. That error wraps
	// ErrInvalidArgument as well, so errors.Is matches either sentinel.
	ErrEdgeNotFound = errors.New("network: edge not found")

	// ErrIOFailure is returned when ToDot cannot open its output file.
	ErrIOFailure = errors.New("network: I/O failure")
)

// edge is one directed, weighted connection in the multigraph.
type edge struct {
	from, to int
	weight   float64
}

// Graph is the capacity-constrained directed multigraph described by spec
// §3. Node identifiers are dense integers in [0, NumNodes()).
//
// Graph is not safe for concurrent mutation (spec §5); callers serialize
// externally. Construction is independent per instance.
type Graph struct {
	numNodes int
	edges    []edge  // edge id = slice index; stable for the lifetime of the Graph
	adjOut   [][]int // adjOut[u] = edge ids e with edges[e].from == u, insertion order

	measurementProbability float64

	logger *logrus.Logger
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithLogger overrides the logger used for admission tracing. Defaults to
// a package-wide logger built once by qrlog.New (see defaultLogger);
// library code never forces a global logger configuration on its caller.
func WithLogger(l *logrus.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMeasurementProbability sets the initial measurement probability
// (default 1). Invalid values (outside (0,1]) are silently ignored here —
// use SetMeasurementProbability post-construction to observe the
// validation error.
func WithMeasurementProbability(p float64) Option {
	return func(g *Graph) {
		if p > 0 && p <= 1 {
			g.measurementProbability = p
		}
	}
}

// FlowDescriptor is a single-destination rate request (spec §3).
// Route via (*Graph).RouteFlows populates Path, GrossRate, and
// DijkstraInvocations in place.
type FlowDescriptor struct {
	RequestID string // uuid v4, ambient — not load-bearing for any invariant

	Src     int
	Dst     int
	NetRate float64

	Path                []int // node ids after Src, up to and including Dst; empty if rejected
	GrossRate           float64
	DijkstraInvocations int
}

// NewFlowDescriptor constructs a FlowDescriptor with a fresh RequestID.
func NewFlowDescriptor(src, dst int, netRate float64) *FlowDescriptor {
	return &FlowDescriptor{RequestID: uuid.NewString(), Src: src, Dst: dst, NetRate: netRate}
}

// Allocation is one admitted (path, rate) grant within an AppDescriptor.
type Allocation struct {
	Hops      []int // intermediate/destination nodes, in order, Src excluded
	GrossRate float64
}

// AppDescriptor is a multi-peer request admitted iteratively in rate
// quanta (spec §3, §4.9).
type AppDescriptor struct {
	RequestID string

	Src      int
	Peers    []int
	Priority float64

	Allocated      map[int][]Allocation // peer -> allocations
	RemainingPaths []candidatePath      // precomputed k-shortest candidates still feasible
	Visits         int

	// measurementProbability is the network's p at the time this app was
	// routed; NetRate needs it to attenuate GrossRate by p^(L-1) per
	// allocation, and spec's netRate() takes no argument.
	measurementProbability float64
}

// NewAppDescriptor constructs an AppDescriptor with a fresh RequestID.
func NewAppDescriptor(src int, peers []int, priority float64) *AppDescriptor {
	return &AppDescriptor{
		RequestID: uuid.NewString(),
		Src:       src,
		Peers:     append([]int(nil), peers...),
		Priority:  priority,
		Allocated: make(map[int][]Allocation),
	}
}

// GrossRate returns the sum of GrossRate over every allocation across
// every peer (spec §4.9).
func (a *AppDescriptor) GrossRate() float64 {
	var total float64
	for _, allocs := range a.Allocated {
		for _, al := range allocs {
			total += al.GrossRate
		}
	}
	return total
}

// NetRate returns the sum of GrossRate * p^(L-1) over every allocation,
// where L is the hop count of that allocation's path and p is the
// network's measurement probability at the time this app was routed
// (spec §4.9).
func (a *AppDescriptor) NetRate() float64 {
	var total float64
	for _, allocs := range a.Allocated {
		for _, al := range allocs {
			l := len(al.Hops)
			total += al.GrossRate * math.Pow(a.measurementProbability, float64(l-1))
		}
	}
	return total
}

// candidatePath is one precomputed k-shortest-paths entry kept in an
// AppDescriptor's RemainingPaths until it becomes infeasible.
type candidatePath struct {
	peer int
	path []int // node ids after Src, up to and including peer
}

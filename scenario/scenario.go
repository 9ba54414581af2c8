package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/qrouting/qrsim/network"
	"github.com/qrouting/qrsim/ppp"
	"github.com/qrouting/qrsim/sampler"
	"github.com/qrouting/qrsim/topology"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate (and by Load, which calls it) when a
// scenario file is structurally present but describes an inadmissible run.
var ErrInvalid = errors.New("scenario: invalid")

// Topology holds the point-process and link-formation parameters consumed
// by topology.MakeCapacityNetworkPpp (spec §4.1-§4.4).
type Topology struct {
	Seed                   uint64  `yaml:"seed"`
	Mu                     float64 `yaml:"mu"`
	GridLength             float64 `yaml:"gridLength"`
	Threshold              float64 `yaml:"threshold"`
	LinkProbability        float64 `yaml:"linkProbability"`
	Bidirectional          bool    `yaml:"bidirectional"`
	MeasurementProbability float64 `yaml:"measurementProbability"`
}

// FlowSpec is the YAML shape of a single network.FlowDescriptor request.
type FlowSpec struct {
	Src     int     `yaml:"src"`
	Dst     int     `yaml:"dst"`
	NetRate float64 `yaml:"netRate"`
}

// AppSpec is the YAML shape of a single network.AppDescriptor request.
type AppSpec struct {
	Src      int     `yaml:"src"`
	Peers    []int   `yaml:"peers"`
	Priority float64 `yaml:"priority"`
}

// Scenario is a complete, YAML-decodable description of one simulator run.
type Scenario struct {
	Topology Topology   `yaml:"topology"`
	Flows    []FlowSpec `yaml:"flows"`
	Apps     []AppSpec  `yaml:"apps"`
	Quantum  float64    `yaml:"quantum"`
	K        int        `yaml:"k"`
}

// Load reads and decodes a Scenario from path, validating it before return.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scenario's shape independent of any built network —
// node-id bounds of flows and apps are not checked here, since they depend
// on the resulting node count, which Validate doesn't have; RouteFlows and
// RouteApps reject out-of-range ids when the descriptors are routed.
func (s *Scenario) Validate() error {
	if s.Topology.Mu < 0 {
		return fmt.Errorf("%w: topology.mu must be non-negative", ErrInvalid)
	}
	if s.Topology.GridLength <= 0 {
		return fmt.Errorf("%w: topology.gridLength must be positive", ErrInvalid)
	}
	if s.Topology.MeasurementProbability < 0 || s.Topology.MeasurementProbability > 1 {
		return fmt.Errorf("%w: topology.measurementProbability must be in [0,1]", ErrInvalid)
	}
	if s.Quantum < 0 {
		return fmt.Errorf("%w: quantum must be non-negative", ErrInvalid)
	}
	if len(s.Apps) > 0 && s.K < 1 {
		return fmt.Errorf("%w: k must be >= 1 when apps are present", ErrInvalid)
	}
	return nil
}

// Build constructs the topology described by s.Topology, drawing residual
// edge capacities from rv (spec §4.1-§4.5). The measurement probability
// from the scenario is applied via network.WithMeasurementProbability.
func (s *Scenario) Build(rv sampler.RealRv, opts ...network.Option) (*network.Graph, []ppp.Coordinate, error) {
	t := s.Topology
	allOpts := append([]network.Option{network.WithMeasurementProbability(t.MeasurementProbability)}, opts...)
	return topology.MakeCapacityNetworkPpp(rv, t.Seed, t.Mu, t.GridLength, t.Threshold, t.LinkProbability, t.Bidirectional, allOpts...)
}

// ToFlows materializes s.Flows as fresh network.FlowDescriptor values,
// each with its own RequestID, ready to pass to (*network.Graph).RouteFlows.
func (s *Scenario) ToFlows() []*network.FlowDescriptor {
	out := make([]*network.FlowDescriptor, len(s.Flows))
	for i, f := range s.Flows {
		out[i] = network.NewFlowDescriptor(f.Src, f.Dst, f.NetRate)
	}
	return out
}

// ToApps materializes s.Apps as fresh network.AppDescriptor values, ready
// to pass to (*network.Graph).RouteApps.
func (s *Scenario) ToApps() []*network.AppDescriptor {
	out := make([]*network.AppDescriptor, len(s.Apps))
	for i, a := range s.Apps {
		out[i] = network.NewAppDescriptor(a.Src, a.Peers, a.Priority)
	}
	return out
}

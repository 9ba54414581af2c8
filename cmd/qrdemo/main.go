// Command qrdemo is a playground binary, not a product CLI (spec's
// non-goals explicitly exclude a command-line front end as a shipped
// surface). It loads a scenario file, builds the topology it describes,
// routes the flows and apps it lists, and prints what happened — the same
// role lvlath's examples/ directory plays for that library, just as a
// single runnable entry point instead of a directory of playground files.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/qrouting/qrsim/qrlog"
	"github.com/qrouting/qrsim/sampler"
	"github.com/qrouting/qrsim/scenario"
)

func main() {
	path := flag.String("scenario", "", "path to a scenario YAML file (required)")
	level := flag.String("log-level", "info", "logrus level: trace, debug, info, warn, error")
	dot := flag.String("dot", "", "if set, write the routed topology to this Graphviz file")
	capacitySeed := flag.Int64("capacity-seed", 1, "seed for the residual-capacity sampler")
	capacityLo := flag.Float64("capacity-lo", 1, "lower bound of the uniform residual-capacity draw")
	capacityHi := flag.Float64("capacity-hi", 10, "upper bound of the uniform residual-capacity draw")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "qrdemo: -scenario is required")
		flag.Usage()
		os.Exit(2)
	}

	logger := qrlog.New()
	if err := qrlog.ParseLevel(logger, *level); err != nil {
		log.Fatalf("qrdemo: %v", err)
	}

	s, err := scenario.Load(*path)
	if err != nil {
		log.Fatalf("qrdemo: loading scenario: %v", err)
	}

	rng := rand.New(rand.NewSource(*capacitySeed))
	rv, err := sampler.Uniform(*capacityLo, *capacityHi, rng)
	if err != nil {
		log.Fatalf("qrdemo: %v", err)
	}

	g, coords, err := s.Build(rv)
	if err != nil {
		log.Fatalf("qrdemo: building topology: %v", err)
	}
	logger.WithFields(map[string]interface{}{
		"nodes": g.NumNodes(),
		"edges": g.NumEdges(),
	}).Info("topology built")
	for i, c := range coords {
		logger.WithFields(map[string]interface{}{"node": i, "x": c.X, "y": c.Y}).Debug("node placed")
	}

	flows := s.ToFlows()
	if len(flows) > 0 {
		if err := g.RouteFlows(flows, nil); err != nil {
			log.Fatalf("qrdemo: routing flows: %v", err)
		}
		for _, f := range flows {
			if len(f.Path) == 0 {
				fmt.Printf("flow %d -> %d rejected\n", f.Src, f.Dst)
				continue
			}
			fmt.Printf("flow %d -> %d via %v, gross=%.3f, dijkstra=%d\n", f.Src, f.Dst, f.Path, f.GrossRate, f.DijkstraInvocations)
		}
	}

	apps := s.ToApps()
	if len(apps) > 0 {
		if err := g.RouteApps(apps, s.Quantum, s.K); err != nil {
			log.Fatalf("qrdemo: routing apps: %v", err)
		}
		for i, a := range apps {
			fmt.Printf("app %d: gross=%.3f net=%.3f visits=%d peers=%v\n", i, a.GrossRate(), a.NetRate(), a.Visits, a.Peers)
		}
	}

	fmt.Printf("remaining capacity: %.3f\n", g.TotalCapacity())

	if *dot != "" {
		if err := g.ToDot(*dot); err != nil {
			log.Fatalf("qrdemo: writing dot file: %v", err)
		}
	}
}

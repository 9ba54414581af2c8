// Package qrsim simulates entanglement-distribution routing over a
// capacity-constrained quantum network: geometry and link formation
// (ppp, linkformation), topology construction with retry-until-connected
// semantics (topology), and the capacity network core that admits flows
// and multi-peer apps against residual edge capacity (network).
//
//	ppp/           — Poisson point process node placement
//	linkformation/ — candidate-edge derivation and connectivity oracle
//	topology/      — retry-until-connected topology factories
//	network/       — the capacity network: admission, reachability, DOT export
//	sampler/       — the random-variate interface for residual capacities
//	scenario/      — YAML-decodable run description for cmd/qrdemo
//	qrlog/         — logrus wiring shared by the library packages
//	cmd/qrdemo/    — a playground binary that runs a scenario end to end
//
// Everything here is single-threaded (spec's concurrency model explicitly
// leaves parallel admission and Graph mutation to the caller). The only
// package-level state is network's fallback logger, built once and used by
// any Graph not given network.WithLogger; no global logrus logger is
// configured.
package qrsim

// Package scenario decodes a full simulator run — topology parameters
// plus the flows and apps to admit against it — from a YAML file, so
// cmd/qrdemo can load a run instead of hard-coding literals.
//
// A Scenario only describes intent; building the actual network and
// descriptor slices is a separate step (Build, ToFlows, ToApps), mirroring
// the builder package's split between BuilderOption configuration and the
// constructors that consume it.
package scenario

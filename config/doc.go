// Package config loads simulation scenarios from YAML.
//
// A Scenario names a topology generator with its shape parameters, the
// infection model and the run parameters. Parse applies defaults, checks
// struct tags with go-playground/validator and then the cross-field rules
// of the selected generator. Build turns a valid Scenario into a ready
// simulation.Engine.
//
//	seed: 42
//	topology:
//	  kind: small-world
//	  vertices: 200
//	  degree: 6
//	  rewire: 0.1
//	infection:
//	  behavior: seir
//	  baseChance: 0.3
//	run:
//	  maxTime: 100
//	  duration: 3
//	  incubation: 1
//	  seeds: [0]
package config

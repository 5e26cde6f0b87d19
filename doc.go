// Package contagion simulates epidemics spreading over contact networks.
//
// A run takes a directed contact graph, marks a few seed vertices
// infected and advances time in fixed ticks. Infectious vertices push
// viral load onto susceptible neighbours, and each exposed neighbour
// draws once against a threshold built from its base infection chance.
// Every state change is recorded in a time-ordered event log.
//
// Layout:
//
//	core/        — Graph: contiguous vertex ids, sorted out/in adjacency, R/W locks
//	bfs/         — breadth-first depths and (weak) connectivity checks
//	builder/     — topology generators: random, small-world, scale-free,
//	               community, spatial, random-regular, plus complete/cycle/path/star/wheel/grid fixtures
//	compartment/ — node state machines: SIR, SEIR, SEIR with superspreading
//	simulation/  — Engine, EventLog, Snapshot, observers, batch runs
//	edgelist/    — "from:to" edge-list files, optionally snappy-compressed
//	config/      — YAML scenarios validated with go-playground/validator
//	metrics/     — Prometheus registry and a simulation observer
//	cmd/contagion — scenario runner
//
// Quick example:
//
//	topo, _ := builder.Build(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithBaseInfectChance(0.1)},
//		builder.SmallWorld(1000, 6, 0.05),
//	)
//	e, _ := simulation.NewEngine(topo, simulation.WithBehavior(compartment.SEIR{}))
//	_, _ = e.Run(100, []int{0}, 7, 3)
//	fmt.Println(e.Snapshot().AttackRate())
//
//	go get github.com/katalvlaran/contagion
package contagion

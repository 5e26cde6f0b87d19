// Package builder synthesises contact networks for the epidemic engine.
//
// Every topology is a Constructor closure applied by Build to a fresh
// Topology (a core.Graph plus per-vertex parameters and generator-specific
// annotations). The package offers:
//
//   - Stochastic generators:
//     – Random:     density-targeted Erdős–Rényi-style graph, optionally connected.
//     – SmallWorld: Watts–Strogatz ring lattice with probability-p rewiring.
//     – ScaleFree:  hierarchical k-pyramids whose leaves are joined by one cycle.
//     – Community:  overlapping communities carved out of a random baseline.
//     – Spatial:    2-D positions with distance-decay Bernoulli edges.
//     – RandomRegular: every vertex gets exactly d contacts.
//   - Deterministic fixtures: Complete, Cycle, Path, Star, Wheel, Grid, FromEdges.
//   - Configuration primitives:
//     – BuilderOption: functional option mutating builderConfig.
//     – WithSeed / WithRand: the random stream (required by stochastic generators).
//     – WithBaseInfectChance / WithInfectChanceFn: per-vertex base infection chance.
//   - Helpers: EdgeDensity converts an average degree into a density.
//
// Guarantees:
//
//   - No generated graph contains a self-loop or a parallel edge.
//   - Every generator except Random with Symmetric(false) and FromEdges is
//     symmetric: u→v is present iff v→u is present.
//   - All parameters are validated before any random draw; failures return
//     sentinel errors (errors.Is) wrapped with the offending value.
//   - Same seed, same options, same constructor order ⇒ identical edge lists.
package builder

package config

import (
	"fmt"

	"github.com/katalvlaran/contagion/builder"
	"github.com/katalvlaran/contagion/compartment"
	"github.com/katalvlaran/contagion/edgelist"
	"github.com/katalvlaran/contagion/simulation"
)

// density resolves the configured density for random and community kinds.
func (t Topology) density() (float64, error) {
	if t.Density != nil {
		return *t.Density, nil
	}

	return builder.EdgeDensity(t.Vertices, *t.AvgDegree)
}

// Constructor maps the topology section onto a builder constructor. The
// file kind has no constructor; use BuildTopology.
func (t Topology) Constructor() (builder.Constructor, error) {
	switch builder.Kind(t.Kind) {
	case builder.KindRandom:
		d, err := t.density()
		if err != nil {
			return nil, err
		}
		var opts []builder.RandomOption
		if t.Connected != nil {
			opts = append(opts, builder.RequireConnected(*t.Connected))
		}
		if t.Symmetric != nil {
			opts = append(opts, builder.Symmetric(*t.Symmetric))
		}

		return builder.Random(t.Vertices, d, opts...), nil
	case builder.KindSmallWorld:
		return builder.SmallWorld(t.Vertices, t.Degree, t.Rewire), nil
	case builder.KindScaleFree:
		return builder.ScaleFree(t.Vertices, t.Degree), nil
	case builder.KindCommunity:
		d, err := t.density()
		if err != nil {
			return nil, err
		}

		return builder.Community(t.Vertices, t.CommunitySize, t.Overlap, d, t.Internal), nil
	case builder.KindSpatial:
		return builder.SpatialRandom(t.Vertices, builder.UniformSquare(t.Side), builder.ExpKernel(t.Scale, t.Length)), nil
	case builder.KindRegular:
		return builder.RandomRegular(t.Vertices, t.Degree), nil
	case builder.KindComplete:
		return builder.Complete(t.Vertices), nil
	case builder.KindCycle:
		return builder.Cycle(t.Vertices), nil
	case builder.KindPath:
		return builder.Path(t.Vertices), nil
	case builder.KindStar:
		return builder.Star(t.Vertices), nil
	case builder.KindWheel:
		return builder.Wheel(t.Vertices), nil
	case builder.KindGrid:
		return builder.Grid(t.Rows, t.Vertices/t.Rows), nil
	default:
		return nil, fmt.Errorf("%w: topology.kind %q has no generator", ErrInvalidConfig, t.Kind)
	}
}

// BuildTopology generates (or loads) the scenario topology. Scenarios
// assembled in code get defaults and validation here.
func (s *Scenario) BuildTopology() (*builder.Topology, error) {
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	bopts := []builder.BuilderOption{
		builder.WithSeed(*s.Seed),
		builder.WithBaseInfectChance(s.Infection.BaseChance),
	}
	if s.Topology.Kind == KindFile {
		topo, err := edgelist.LoadTopology(s.Topology.Path, bopts...)
		if err != nil {
			return nil, fmt.Errorf("BuildTopology: %w", err)
		}

		return topo, nil
	}

	cons, err := s.Topology.Constructor()
	if err != nil {
		return nil, fmt.Errorf("BuildTopology: %w", err)
	}
	topo, err := builder.Build(bopts, cons)
	if err != nil {
		return nil, fmt.Errorf("BuildTopology: %w", err)
	}

	return topo, nil
}

// Build generates the topology and returns an engine configured from the
// infection section. Extra options are applied last.
func (s *Scenario) Build(opts ...simulation.Option) (*simulation.Engine, error) {
	topo, err := s.BuildTopology()
	if err != nil {
		return nil, err
	}
	behavior, err := compartment.ParseBehavior(s.Infection.Behavior)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	base := []simulation.Option{
		simulation.WithBehavior(behavior),
		simulation.WithTimeStep(*s.Infection.TimeStep),
		simulation.WithBaseViralLoad(*s.Infection.BaseViralLoad),
		simulation.WithSeed(*s.Seed),
	}
	e, err := simulation.NewEngine(topo, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return e, nil
}

// Execute runs the scenario on e: Run.Runs repetitions with the configured
// seeds, or with one random seed per run when none are configured.
func (s *Scenario) Execute(e *simulation.Engine) ([]*simulation.Snapshot, error) {
	r := s.Run
	if len(r.Seeds) == 0 {
		return e.RunForRandomSeed(r.MaxTime, r.Runs, r.Duration, r.Incubation)
	}

	return e.RunForSeeds(r.MaxTime, r.Seeds, r.Runs, r.Duration, r.Incubation)
}

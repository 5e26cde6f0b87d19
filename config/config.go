package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/contagion/builder"
	"github.com/katalvlaran/contagion/compartment"
	"github.com/katalvlaran/contagion/simulation"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid scenario")

// KindFile loads the topology from an edge-list file.
const KindFile = "file"

// Defaults applied by Parse.
const (
	DefaultBehavior = compartment.NameSIR
	DefaultRuns     = 1
)

// validate is shared; validator.Validate caches struct metadata and is
// safe for concurrent use.
var validate = validator.New()

// Scenario is the root YAML document.
type Scenario struct {
	Name      string    `yaml:"name"`
	Seed      *int64    `yaml:"seed"`
	Topology  Topology  `yaml:"topology"`
	Infection Infection `yaml:"infection"`
	Run       Run       `yaml:"run"`
}

// Topology selects a generator and its shape parameters. Only the fields
// of the selected kind are read.
type Topology struct {
	Kind     string `yaml:"kind" validate:"required,oneof=random small-world scale-free community spatial regular complete cycle path star wheel grid file"`
	Vertices int    `yaml:"vertices" validate:"min=0"`

	// random, community: target density, or avgDegree converted through
	// builder.EdgeDensity.
	Density   *float64 `yaml:"density" validate:"omitempty,min=0,max=1"`
	AvgDegree *float64 `yaml:"avgDegree" validate:"omitempty,min=0"`
	Connected *bool    `yaml:"connected"`
	Symmetric *bool    `yaml:"symmetric"`

	// small-world: lattice degree k; scale-free: branching factor k;
	// regular: contacts per vertex.
	Degree int     `yaml:"degree" validate:"min=0"`
	Rewire float64 `yaml:"rewire" validate:"min=0,max=1"`

	// community.
	CommunitySize int     `yaml:"communitySize" validate:"min=0"`
	Overlap       float64 `yaml:"overlap" validate:"min=0,lt=1"`
	Internal      float64 `yaml:"internal" validate:"min=0,max=1"`

	// spatial: uniform square of Side, kernel Scale·exp(−d/Length).
	Side   float64 `yaml:"side" validate:"min=0"`
	Scale  float64 `yaml:"scale" validate:"min=0,max=1"`
	Length float64 `yaml:"length" validate:"min=0"`

	// grid: number of rows; vertices must be a multiple of it.
	Rows int `yaml:"rows" validate:"min=0"`

	// file: edge list to load.
	Path string `yaml:"path" validate:"required_if=Kind file"`
}

// Infection configures the node behavior and transmission.
type Infection struct {
	Behavior      string   `yaml:"behavior" validate:"omitempty,oneof=sir seir seir-ss"`
	BaseChance    float64  `yaml:"baseChance" validate:"min=0,max=1"`
	BaseViralLoad *float64 `yaml:"baseViralLoad" validate:"omitempty,min=0"`
	TimeStep      *float64 `yaml:"timeStep" validate:"omitempty,gt=0"`
}

// Run configures Engine.Run. Without seeds each run infects one random
// vertex.
type Run struct {
	MaxTime    float64 `yaml:"maxTime" validate:"gt=0"`
	Duration   float64 `yaml:"duration" validate:"min=0"`
	Incubation float64 `yaml:"incubation" validate:"min=0"`
	Seeds      []int   `yaml:"seeds" validate:"omitempty,dive,min=0"`
	Runs       int     `yaml:"runs" validate:"min=0"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes YAML strictly (unknown fields are errors), applies
// defaults and validates.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("Parse: %w: %v", ErrInvalidConfig, err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Scenario) applyDefaults() {
	if s.Infection.Behavior == "" {
		s.Infection.Behavior = DefaultBehavior
	}
	if s.Infection.TimeStep == nil {
		dt := simulation.DefaultTimeStep
		s.Infection.TimeStep = &dt
	}
	if s.Infection.BaseViralLoad == nil {
		v := simulation.DefaultBaseViralLoad
		s.Infection.BaseViralLoad = &v
	}
	if s.Run.Runs == 0 {
		s.Run.Runs = DefaultRuns
	}
	if s.Seed == nil {
		seed := time.Now().UnixNano()
		s.Seed = &seed
	}
}

// Validate checks struct tags and generator-specific rules.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}

	t := s.Topology
	if t.Kind != KindFile && t.Vertices < 1 {
		return fmt.Errorf("%w: topology.vertices: must be at least 1", ErrInvalidConfig)
	}
	switch t.Kind {
	case string(builder.KindRandom), string(builder.KindCommunity):
		if (t.Density == nil) == (t.AvgDegree == nil) {
			return fmt.Errorf("%w: topology.%s: exactly one of density, avgDegree is required", ErrInvalidConfig, t.Kind)
		}
		if t.Kind == string(builder.KindCommunity) && t.CommunitySize < 1 {
			return fmt.Errorf("%w: topology.communitySize: must be at least 1", ErrInvalidConfig)
		}
	case string(builder.KindSmallWorld), string(builder.KindScaleFree):
		if t.Degree < 1 {
			return fmt.Errorf("%w: topology.degree: required for %s", ErrInvalidConfig, t.Kind)
		}
	case string(builder.KindRegular):
		if t.Degree >= t.Vertices || (t.Vertices*t.Degree)%2 != 0 {
			return fmt.Errorf("%w: topology.degree: need degree < vertices and vertices·degree even", ErrInvalidConfig)
		}
	case string(builder.KindGrid):
		if t.Rows < 1 || t.Vertices%t.Rows != 0 {
			return fmt.Errorf("%w: topology.rows: must divide vertices=%d", ErrInvalidConfig, t.Vertices)
		}
	case string(builder.KindSpatial):
		if t.Side <= 0 || t.Length <= 0 {
			return fmt.Errorf("%w: topology: spatial needs side > 0 and length > 0", ErrInvalidConfig)
		}
	}
	for _, seed := range s.Run.Seeds {
		if t.Kind != KindFile && seed >= t.Vertices {
			return fmt.Errorf("%w: run.seeds: %d not below vertices=%d", ErrInvalidConfig, seed, t.Vertices)
		}
	}

	return nil
}

// formatValidationError reports the first failing field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	e := verrs[0]
	switch e.Tag() {
	case "required", "required_if":
		return fmt.Errorf("%w: %s: field is required", ErrInvalidConfig, e.Namespace())
	case "min", "gt":
		return fmt.Errorf("%w: %s: must be %s %s", ErrInvalidConfig, e.Namespace(), tagWord(e.Tag()), e.Param())
	case "max", "lt":
		return fmt.Errorf("%w: %s: must be %s %s", ErrInvalidConfig, e.Namespace(), tagWord(e.Tag()), e.Param())
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s]", ErrInvalidConfig, e.Namespace(), e.Param())
	default:
		return fmt.Errorf("%w: %s: failed %q", ErrInvalidConfig, e.Namespace(), e.Tag())
	}
}

func tagWord(tag string) string {
	switch tag {
	case "min":
		return "at least"
	case "gt":
		return "greater than"
	case "max":
		return "at most"
	default:
		return "less than"
	}
}

package compartment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBehavior is returned by ParseBehavior for unrecognised names.
var ErrUnknownBehavior = errors.New("compartment: unknown behavior")

// Behavior drives Records through the compartments of one epidemic model.
type Behavior interface {
	// Name is the stable token used in snapshot names and configuration.
	Name() string

	// Advance moves r to the next compartment of the model. It is a no-op
	// on terminal records.
	Advance(r *Record)

	// Update runs one tick of length timeStep and returns the resulting
	// state. Timers count down and a timer reaching zero advances the
	// record. Susceptible and Removed records are left untouched.
	Update(r *Record, timeStep float64) State

	// Infect moves a susceptible record into the first infected
	// compartment and arms its timers. Non-susceptible records are left
	// untouched.
	Infect(r *Record, duration, incubation, viralLoad float64)

	// TransferViralLoad returns the load handed to a vertex infected with
	// the given threshold and random draw.
	TransferViralLoad(threshold, draw, baseViralLoad float64) float64
}

// Behavior names.
const (
	NameSIR                = "sir"
	NameSEIR               = "seir"
	NameSEIRSuperspreading = "seir-ss"
)

// ParseBehavior returns the behavior registered under name.
func ParseBehavior(name string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameSIR:
		return SIR{}, nil
	case NameSEIR:
		return SEIR{}, nil
	case NameSEIRSuperspreading:
		return SEIRSuperspreading{}, nil
	default:
		return nil, fmt.Errorf("ParseBehavior: %q: %w", name, ErrUnknownBehavior)
	}
}

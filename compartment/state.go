package compartment

import (
	"fmt"
	"strings"
)

// State is an epidemic compartment.
type State uint8

// Compartments in transition order.
const (
	Susceptible State = iota
	Exposed
	Infectious
	Removed
)

var stateNames = [...]string{
	Susceptible: "susceptible",
	Exposed:     "exposed",
	Infectious:  "infectious",
	Removed:     "removed",
}

// String returns the lower-case compartment name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return fmt.Sprintf("state(%d)", uint8(s))
}

// Valid reports whether s is one of the four compartments.
func (s State) Valid() bool { return s <= Removed }

// MarshalText encodes the compartment name.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("compartment: invalid state %d", uint8(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText parses a compartment name, case-insensitively.
func (s *State) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range stateNames {
		if n == name {
			*s = State(i)
			return nil
		}
	}

	return fmt.Errorf("compartment: unknown state %q", name)
}

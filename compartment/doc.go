// Package compartment implements the per-vertex infection state machine.
//
// A Record holds the mutable state of one vertex: its compartment, the
// compartment it left last, timers and viral load. A Behavior decides how a
// Record moves between compartments:
//
//	SIR                  Susceptible → Infectious → Removed
//	SEIR                 Susceptible → Exposed → Infectious → Removed
//	SEIRSuperspreading   SEIR, with amplified viral load for low-threshold
//	                     infections
//
// Transitions only move forward along that order and Removed is terminal.
// Every transition sets Record.Changed, which the simulation engine consumes
// to log state-change events.
//
// Behaviors are stateless values and safe for concurrent use; Records are
// owned by a single engine and are not synchronised.
package compartment

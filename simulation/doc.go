// Package simulation runs discrete-time epidemics over a built contact
// topology.
//
// An Engine owns one compartment.Record per vertex and shares the
// topology read-only. Run resets every record, infects the seed vertices at
// time 0 and then advances in fixed ticks:
//
//  1. every tracked (infected) vertex is updated in ascending id order;
//  2. infectious vertices push their viral load onto susceptible
//     out-neighbours, which become infection candidates;
//  3. each candidate, in ascending id order, draws once against
//     baseInfectChance × accumulated load; a failed draw clears the load.
//
// The loop ends at maxTime or as soon as no vertex is infected. Every state
// change is appended to a time-ordered EventLog and reported to the
// Observer. Snapshot freezes a finished run for collaborators.
//
// An Engine is not safe for concurrent use. Independent engines (see
// Branch) may run in parallel over the same topology.
package simulation

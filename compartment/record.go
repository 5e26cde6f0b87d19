package compartment

// Record is the mutable per-vertex state used during a run.
type Record struct {
	// State is the current compartment; PrevState the one left last.
	State     State
	PrevState State

	// ViralLoad is accumulated exposure while susceptible and the assigned
	// load once infected.
	ViralLoad float64

	// BaseInfectChance scales ViralLoad into an infection threshold.
	BaseInfectChance float64

	// InfectionTime is the remaining infectious duration; Delay the
	// remaining incubation. Both are clamped at zero.
	InfectionTime float64
	Delay         float64

	// MarkedInfected is engine bookkeeping: the vertex is in the infected set.
	MarkedInfected bool

	// Changed is set by every transition and cleared by the consumer.
	Changed bool
}

// NewRecord returns a susceptible record with the given base chance.
func NewRecord(baseInfectChance float64) Record {
	return Record{BaseInfectChance: baseInfectChance}
}

// IsAlive reports whether the vertex has not been removed.
func (r *Record) IsAlive() bool { return r.State != Removed }

// Threshold returns BaseInfectChance × ViralLoad.
func (r *Record) Threshold() float64 { return r.BaseInfectChance * r.ViralLoad }

// Reset returns the record to Susceptible and clears run state. The base
// infection chance is kept.
func (r *Record) Reset() {
	*r = Record{BaseInfectChance: r.BaseInfectChance}
}

// advance moves the record one step along order and flags the change.
func (r *Record) advance(next State) {
	r.Changed = true
	r.PrevState = r.State
	r.State = next
}

package compartment

// SEIR adds an incubating Exposed compartment: the incubation delay is
// spent first, then the record becomes Infectious for the infection
// duration.
type SEIR struct{}

// Name implements Behavior.
func (SEIR) Name() string { return NameSEIR }

// Advance implements Behavior.
func (SEIR) Advance(r *Record) {
	switch r.State {
	case Susceptible:
		r.advance(Exposed)
	case Exposed:
		r.advance(Infectious)
	case Infectious:
		r.advance(Removed)
	}
}

// Update implements Behavior. While incubating only the delay moves. Once
// it is spent, an Exposed record becomes Infectious on the next tick and
// the infection timer starts; a spent infection timer removes the record.
func (b SEIR) Update(r *Record, timeStep float64) State {
	if r.State != Exposed && r.State != Infectious {
		return r.State
	}
	if r.Delay > 0 {
		r.Delay -= timeStep
		if r.Delay <= 0 {
			r.Delay = 0
		}

		return r.State
	}
	if r.InfectionTime <= 0 {
		r.InfectionTime = 0
		b.Advance(r)

		return r.State
	}
	if r.State == Exposed {
		b.Advance(r)
	}
	r.InfectionTime -= timeStep
	if r.InfectionTime <= 0 {
		r.InfectionTime = 0
	}

	return r.State
}

// Infect implements Behavior.
func (b SEIR) Infect(r *Record, duration, incubation, viralLoad float64) {
	infect(b, r, duration, incubation, viralLoad)
}

// TransferViralLoad returns baseViralLoad.
func (SEIR) TransferViralLoad(_, _, baseViralLoad float64) float64 { return baseViralLoad }

// SuperspreadingCutoff is the infection threshold below which
// SEIRSuperspreading amplifies the transferred load.
const SuperspreadingCutoff = 0.2

// SuperspreadingFactor multiplies the load of low-threshold infections.
const SuperspreadingFactor = 3.0

// SEIRSuperspreading is SEIR whose infections with a threshold under
// SuperspreadingCutoff carry SuperspreadingFactor times the base load.
type SEIRSuperspreading struct{ SEIR }

// Name implements Behavior.
func (SEIRSuperspreading) Name() string { return NameSEIRSuperspreading }

// Infect implements Behavior.
func (b SEIRSuperspreading) Infect(r *Record, duration, incubation, viralLoad float64) {
	infect(b, r, duration, incubation, viralLoad)
}

// TransferViralLoad implements Behavior.
func (SEIRSuperspreading) TransferViralLoad(threshold, _, baseViralLoad float64) float64 {
	if threshold < SuperspreadingCutoff {
		return SuperspreadingFactor * baseViralLoad
	}

	return baseViralLoad
}

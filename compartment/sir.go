package compartment

// SIR is Susceptible → Infectious → Removed with a constant viral load.
type SIR struct{}

// Name implements Behavior.
func (SIR) Name() string { return NameSIR }

// Advance implements Behavior.
func (SIR) Advance(r *Record) {
	switch r.State {
	case Susceptible:
		r.advance(Infectious)
	case Infectious:
		r.advance(Removed)
	}
}

// Update counts the infectious timer down and removes the record when it
// reaches zero. A record infected with zero duration is removed on its
// first tick.
func (b SIR) Update(r *Record, timeStep float64) State {
	if r.State != Infectious {
		return r.State
	}
	r.InfectionTime -= timeStep
	if r.InfectionTime <= 0 {
		r.InfectionTime = 0
		b.Advance(r)
	}

	return r.State
}

// Infect implements Behavior. The incubation delay is stored but unused.
func (b SIR) Infect(r *Record, duration, incubation, viralLoad float64) {
	infect(b, r, duration, incubation, viralLoad)
}

// TransferViralLoad returns baseViralLoad.
func (SIR) TransferViralLoad(_, _, baseViralLoad float64) float64 { return baseViralLoad }

func infect(b Behavior, r *Record, duration, incubation, viralLoad float64) {
	if r.State != Susceptible {
		return
	}
	b.Advance(r)
	r.InfectionTime = clamp(duration)
	r.Delay = clamp(incubation)
	r.ViralLoad = viralLoad
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}

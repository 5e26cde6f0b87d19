package compartment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contagion/compartment"
)

func TestState_TextRoundTrip(t *testing.T) {
	for _, s := range []compartment.State{compartment.Susceptible, compartment.Exposed, compartment.Infectious, compartment.Removed} {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var got compartment.State
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "state(9)", compartment.State(9).String())
	_, err := compartment.State(9).MarshalText()
	assert.Error(t, err)
	var s compartment.State
	assert.Error(t, s.UnmarshalText([]byte("dead")))
}

func TestRecord_IsAliveAndReset(t *testing.T) {
	r := compartment.NewRecord(0.4)
	assert.True(t, r.IsAlive())

	compartment.SIR{}.Infect(&r, 2, 0, 1.5)
	assert.Equal(t, compartment.Infectious, r.State)
	assert.True(t, r.IsAlive())
	assert.InDelta(t, 0.6, r.Threshold(), 1e-12)

	r.State = compartment.Removed
	assert.False(t, r.IsAlive())

	r.MarkedInfected = true
	r.Reset()
	assert.Equal(t, compartment.NewRecord(0.4), r)
}

func TestSIR_Lifecycle(t *testing.T) {
	b := compartment.SIR{}
	r := compartment.NewRecord(1)

	// Susceptible records do not tick.
	assert.Equal(t, compartment.Susceptible, b.Update(&r, 1))
	assert.False(t, r.Changed)

	b.Infect(&r, 2.5, 7, 1)
	assert.True(t, r.Changed)
	assert.Equal(t, compartment.Susceptible, r.PrevState)
	r.Changed = false

	assert.Equal(t, compartment.Infectious, b.Update(&r, 1))
	assert.Equal(t, compartment.Infectious, b.Update(&r, 1))
	assert.False(t, r.Changed)
	assert.Equal(t, compartment.Removed, b.Update(&r, 1))
	assert.True(t, r.Changed)
	assert.Equal(t, compartment.Infectious, r.PrevState)
	assert.Zero(t, r.InfectionTime, "timer clamps at zero")

	// Removed is a fixed point.
	before := r
	assert.Equal(t, compartment.Removed, b.Update(&r, 1))
	assert.Equal(t, before, r)

	// Infect is ignored once infected.
	b.Infect(&r, 5, 0, 9)
	assert.Equal(t, before, r)
}

func TestSIR_ZeroDuration(t *testing.T) {
	b := compartment.SIR{}
	r := compartment.NewRecord(1)
	b.Infect(&r, 0, 0, 1)
	assert.Equal(t, compartment.Removed, b.Update(&r, 0.5))
}

func TestSEIR_Lifecycle(t *testing.T) {
	b := compartment.SEIR{}
	r := compartment.NewRecord(1)

	b.Infect(&r, 2, 2, 1)
	require.Equal(t, compartment.Exposed, r.State)

	states := make([]compartment.State, 0, 8)
	for i := 0; i < 8; i++ {
		states = append(states, b.Update(&r, 1))
	}
	assert.Equal(t, []compartment.State{
		compartment.Exposed,    // delay 2 → 1
		compartment.Exposed,    // delay 1 → 0
		compartment.Infectious, // exposed → infectious, timer 2 → 1
		compartment.Infectious, // timer 1 → 0
		compartment.Removed,    // spent timer
		compartment.Removed,
		compartment.Removed,
		compartment.Removed,
	}, states)
	assert.Zero(t, r.Delay)
	assert.Zero(t, r.InfectionTime)
}

func TestSEIR_TimersClamp(t *testing.T) {
	b := compartment.SEIR{}
	r := compartment.NewRecord(1)
	b.Infect(&r, 1, 0.5, 1)

	b.Update(&r, 2)
	assert.Zero(t, r.Delay)
	b.Update(&r, 2)
	assert.Equal(t, compartment.Infectious, r.State)
	assert.Zero(t, r.InfectionTime)
}

func TestTransferViralLoad(t *testing.T) {
	assert.Equal(t, 2.0, compartment.SIR{}.TransferViralLoad(0.01, 0.5, 2))
	assert.Equal(t, 2.0, compartment.SEIR{}.TransferViralLoad(0.01, 0.5, 2))

	ss := compartment.SEIRSuperspreading{}
	assert.Equal(t, 6.0, ss.TransferViralLoad(0.1, 0.05, 2))
	assert.Equal(t, 2.0, ss.TransferViralLoad(0.2, 0.05, 2))
}

func TestParseBehavior(t *testing.T) {
	for _, name := range []string{"sir", "SEIR", " seir-ss "} {
		b, err := compartment.ParseBehavior(name)
		require.NoError(t, err)
		assert.NotEmpty(t, b.Name())
	}

	b, _ := compartment.ParseBehavior("seir-ss")
	r := compartment.NewRecord(1)
	b.Infect(&r, 1, 1, 1)
	assert.Equal(t, compartment.Exposed, r.State, "superspreading keeps the SEIR lifecycle")

	_, err := compartment.ParseBehavior("sis")
	assert.ErrorIs(t, err, compartment.ErrUnknownBehavior)
}

package simulation

import (
	"fmt"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/contagion/compartment"
)

// Event is one recorded state change.
type Event struct {
	Time   float64
	Vertex int
	From   compartment.State
	To     compartment.State
	Alive  bool
}

// String renders "t=<time> v=<vertex> from→to".
func (e Event) String() string {
	return fmt.Sprintf("t=%g v=%d %s→%s", e.Time, e.Vertex, e.From, e.To)
}

// tick groups the events recorded at one simulation time, in recording
// order.
type tick struct {
	time   float64
	events []Event
}

func tickLess(a, b *tick) bool { return a.time < b.time }

// EventLog maps simulation time to the events recorded at that time,
// iterated in ascending time. It is append-only between Clear calls.
type EventLog struct {
	tree  *btree.BTreeG[*tick]
	count int
}

// NewEventLog returns an empty log.
func NewEventLog() *EventLog {
	return &EventLog{tree: btree.NewBTreeG[*tick](tickLess)}
}

// Record appends e under e.Time.
func (l *EventLog) Record(e Event) {
	t, ok := l.tree.Get(&tick{time: e.Time})
	if !ok {
		t = &tick{time: e.Time}
		l.tree.Set(t)
	}
	t.events = append(t.events, e)
	l.count++
}

// Len returns the number of events.
func (l *EventLog) Len() int { return l.count }

// Ticks returns the number of distinct times with events.
func (l *EventLog) Ticks() int { return l.tree.Len() }

// Times returns the recorded times in ascending order.
func (l *EventLog) Times() []float64 {
	out := make([]float64, 0, l.tree.Len())
	l.tree.Scan(func(t *tick) bool {
		out = append(out, t.time)
		return true
	})

	return out
}

// At returns a copy of the events recorded at time, or nil.
func (l *EventLog) At(time float64) []Event {
	t, ok := l.tree.Get(&tick{time: time})
	if !ok {
		return nil
	}

	return append([]Event(nil), t.events...)
}

// Ascend calls fn for each time in ascending order until fn returns false.
// The events slice must not be retained or modified.
func (l *EventLog) Ascend(fn func(time float64, events []Event) bool) {
	l.tree.Scan(func(t *tick) bool {
		return fn(t.time, t.events)
	})
}

// Events returns every event in time order, recording order within a time.
func (l *EventLog) Events() []Event {
	out := make([]Event, 0, l.count)
	l.Ascend(func(_ float64, events []Event) bool {
		out = append(out, events...)
		return true
	})

	return out
}

// Clear drops every event.
func (l *EventLog) Clear() {
	l.tree.Clear()
	l.count = 0
}

// Clone returns an independent deep copy.
func (l *EventLog) Clone() *EventLog {
	c := NewEventLog()
	l.tree.Scan(func(t *tick) bool {
		c.tree.Set(&tick{time: t.time, events: append([]Event(nil), t.events...)})
		return true
	})
	c.count = l.count

	return c
}

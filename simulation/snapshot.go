package simulation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/contagion/bfs"
	"github.com/katalvlaran/contagion/builder"
	"github.com/katalvlaran/contagion/compartment"
)

// timestampLayout renders yyyyMMddHHmmss.
const timestampLayout = "20060102150405"

// Snapshot is the read-only result of one run handed to collaborators
// (statistics, plotting, persistence). It shares the topology and owns a
// copy of the event log.
type Snapshot struct {
	RunID     uuid.UUID
	Topology  *builder.Topology
	Behavior  string
	Events    *EventLog
	Stats     RunStats
	CreatedAt time.Time
}

// Snapshot freezes the state of the last run.
func (e *Engine) Snapshot() *Snapshot {
	return &Snapshot{
		RunID:     e.lastRun.RunID,
		Topology:  e.topo,
		Behavior:  e.behavior.Name(),
		Events:    e.log.Clone(),
		Stats:     e.lastRun,
		CreatedAt: time.Now(),
	}
}

// Vertices returns the vertex ids [0,n).
func (s *Snapshot) Vertices() []int { return s.Topology.Graph.Vertices() }

// Name returns "<prefix>-<n>-<generator>-<behavior>", with
// "-yyyyMMddHHmmss" of CreatedAt appended when withTimestamp is set.
func (s *Snapshot) Name(prefix string, withTimestamp bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s-%d-%s-%s", prefix, s.Topology.VertexCount(), s.Topology.Kind, s.Behavior)
	if withTimestamp {
		b.WriteString("-")
		b.WriteString(s.CreatedAt.Format(timestampLayout))
	}

	return b.String()
}

// Tally counts vertices per compartment at one time.
type Tally struct {
	Time   float64
	Counts [compartment.Removed + 1]int
}

// Totals replays the event log and returns the compartment counts after
// each recorded time. Every vertex starts susceptible.
func (s *Snapshot) Totals() []Tally {
	var cur Tally
	cur.Counts[compartment.Susceptible] = s.Topology.VertexCount()

	out := make([]Tally, 0, s.Events.Ticks())
	s.Events.Ascend(func(t float64, events []Event) bool {
		for _, ev := range events {
			cur.Counts[ev.From]--
			cur.Counts[ev.To]++
		}
		cur.Time = t
		out = append(out, cur)
		return true
	})

	return out
}

// AttackRate returns the fraction of vertices that left Susceptible.
func (s *Snapshot) AttackRate() float64 {
	n := s.Topology.VertexCount()
	if n == 0 {
		return 0
	}
	totals := s.Totals()
	if len(totals) == 0 {
		return 0
	}

	return 1 - float64(totals[len(totals)-1].Counts[compartment.Susceptible])/float64(n)
}

// SeedDistances returns, for every vertex, the fewest contact hops along
// out-edges from any seed of the run, or -1 when no seed reaches it. Only
// vertices at a non-negative distance can ever be infected.
// Complexity: O(|seeds|·(V+E)).
func (s *Snapshot) SeedDistances(ctx context.Context) ([]int, error) {
	dist := make([]int, s.Topology.VertexCount())
	for v := range dist {
		dist[v] = -1
	}
	for _, seed := range s.Stats.Seeds {
		res, err := bfs.BFS(s.Topology.Graph, seed, bfs.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("SeedDistances: seed %d: %w", seed, err)
		}
		for _, v := range res.Order {
			if d := res.Depth[v]; dist[v] < 0 || d < dist[v] {
				dist[v] = d
			}
		}
	}

	return dist, nil
}

// Reach summarises SeedDistances: the number of vertices any seed can
// reach and the largest hop count among them.
func (s *Snapshot) Reach(ctx context.Context) (reachable, maxHops int, err error) {
	dist, err := s.SeedDistances(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, d := range dist {
		if d < 0 {
			continue
		}
		reachable++
		if d > maxHops {
			maxHops = d
		}
	}

	return reachable, maxHops, nil
}

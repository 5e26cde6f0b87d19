package simulation

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// RunInfo describes a run as it starts.
type RunInfo struct {
	RunID    uuid.UUID
	Vertices int
	Seeds    []int
	MaxTime  float64
	TimeStep float64
	Behavior string
	Topology string
}

// RunStats summarises a finished run. It repeats the identifying fields
// of RunInfo so that observers shared between engines need no per-run
// state.
type RunStats struct {
	RunID      uuid.UUID
	Behavior   string
	Topology   string
	Seeds      []int
	Ticks      int
	EndTime    float64
	BurnedOut  bool
	Infections int
	Events     int
	Elapsed    time.Duration
}

// Observer receives run lifecycle notifications. Implementations must not
// call back into the Engine.
type Observer interface {
	RunStarted(info RunInfo)
	Transition(e Event)
	RunFinished(stats RunStats)
}

// NopObserver ignores everything.
type NopObserver struct{}

// RunStarted implements Observer.
func (NopObserver) RunStarted(RunInfo) {}

// Transition implements Observer.
func (NopObserver) Transition(Event) {}

// RunFinished implements Observer.
func (NopObserver) RunFinished(RunStats) {}

// Observers fans notifications out to several observers in order.
type Observers []Observer

// RunStarted forwards info to every observer.
func (os Observers) RunStarted(info RunInfo) {
	for _, o := range os {
		o.RunStarted(info)
	}
}

// Transition forwards e to every observer.
func (os Observers) Transition(e Event) {
	for _, o := range os {
		o.Transition(e)
	}
}

// RunFinished forwards stats to every observer.
func (os Observers) RunFinished(stats RunStats) {
	for _, o := range os {
		o.RunFinished(stats)
	}
}

// LogObserver writes run lifecycle records to a slog.Logger. Transitions
// are logged at debug level. It holds no per-run state, so one instance
// may serve engines running concurrently.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver returns an observer writing to logger, or to
// slog.Default() when logger is nil.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogObserver{logger: logger.With("component", "simulation")}
}

// RunStarted logs the run parameters at info level.
func (o *LogObserver) RunStarted(info RunInfo) {
	o.logger.Info("Run started.",
		"run", info.RunID,
		"topology", info.Topology,
		"behavior", info.Behavior,
		"vertices", info.Vertices,
		"seeds", info.Seeds,
		"maxTime", info.MaxTime,
		"timeStep", info.TimeStep)
}

// Transition logs one state change at debug level.
func (o *LogObserver) Transition(e Event) {
	o.logger.Debug("State changed.",
		"time", e.Time, "vertex", e.Vertex, "from", e.From, "to", e.To, "alive", e.Alive)
}

// RunFinished logs the burn-out, if any, and the run summary.
func (o *LogObserver) RunFinished(stats RunStats) {
	if stats.BurnedOut {
		o.logger.Info("Epidemic burned out.", "run", stats.RunID, "time", stats.EndTime)
	}
	o.logger.Info("Run finished.",
		"run", stats.RunID,
		"ticks", stats.Ticks,
		"infections", stats.Infections,
		"events", stats.Events,
		"elapsed", stats.Elapsed)
}

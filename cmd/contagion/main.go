// Command contagion runs an epidemic scenario described by a YAML file and
// writes each run's topology to disk as an edge list.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/contagion/config"
	"github.com/katalvlaran/contagion/edgelist"
	"github.com/katalvlaran/contagion/metrics"
	"github.com/katalvlaran/contagion/simulation"
)

func main() {
	scenarioPath := flag.String("scenario", "scenario.yaml", "Scenario file")
	outDir := flag.String("out", "", "Directory for edge lists (empty disables output)")
	compress := flag.Bool("compress", false, "Write snappy-compressed edge lists")
	timestamp := flag.Bool("timestamp", true, "Append a timestamp to output names")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address after the runs")
	verbose := flag.Bool("v", false, "Log every state change")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, logger, *scenarioPath, *outDir, *compress, *timestamp, *metricsAddr)
	stop()
	if err != nil {
		logger.Error("contagion failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, scenarioPath, outDir string, compress, timestamp bool, metricsAddr string) error {
	sc, err := config.Load(scenarioPath)
	if err != nil {
		return err
	}
	logger.Info("scenario loaded",
		"name", sc.Name,
		"topology", sc.Topology.Kind,
		"behavior", sc.Infection.Behavior,
		"seed", *sc.Seed,
	)

	reg := metrics.DefaultRegistry()
	e, err := sc.Build(simulation.WithObserver(simulation.Observers{
		simulation.NewLogObserver(logger),
		metrics.NewObserver(reg),
	}))
	if err != nil {
		return err
	}
	logger.Info("topology built",
		"vertices", e.VertexCount(),
		"edges", e.Topology().Graph.EdgeCount(),
		"components", len(e.Topology().Components()),
	)

	snaps, err := sc.Execute(e)
	if err != nil {
		return err
	}

	var saveOpts []edgelist.SaveOption
	if compress {
		saveOpts = append(saveOpts, edgelist.WithCompression())
	}
	for i, s := range snaps {
		reachable, maxHops, err := s.Reach(ctx)
		if err != nil {
			return err
		}
		logger.Info("run summary",
			"run", i,
			"run_id", s.RunID,
			"attack_rate", fmt.Sprintf("%.3f", s.AttackRate()),
			"end_time", s.Stats.EndTime,
			"reachable", reachable,
			"max_hops", maxHops,
		)
		if outDir == "" {
			continue
		}
		path, err := edgelist.SaveSnapshot(outDir, s, timestamp, saveOpts...)
		if err != nil {
			return err
		}
		logger.Info("edge list written", "path", path)
	}

	if metricsAddr == "" {
		return nil
	}

	return serveMetrics(ctx, logger, reg, metricsAddr)
}

// serveMetrics blocks until ctx is cancelled.
func serveMetrics(ctx context.Context, logger *slog.Logger, reg *metrics.Registry, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down metrics server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

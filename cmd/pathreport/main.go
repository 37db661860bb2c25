package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"gridtactics/internal/config"
	"gridtactics/internal/pathfinding"
	"gridtactics/internal/sim"
	"gridtactics/internal/threading/core"
	"gridtactics/internal/threading/monitoring"
)

type reportOptions struct {
	runs    int
	frames  int
	agents  int
	workers int
	budget  int
	stagger int
}

type runResult struct {
	index   int
	stagger int
	report  sim.Report
	metrics monitoring.SearchMetrics
	alerts  []monitoring.SearchAlert
}

func main() {
	var configPath, mapPath string
	var opts reportOptions

	flag.StringVar(&configPath, "config", "config.yaml", "path to config.yaml")
	flag.StringVar(&mapPath, "map", "", "map to run instead of the configured one (.map or .tmx)")
	flag.IntVar(&opts.runs, "runs", 0, "number of simulation runs (0 = config)")
	flag.IntVar(&opts.frames, "frames", 0, "frames per run (0 = config)")
	flag.IntVar(&opts.agents, "agents", 0, "agents per run (0 = config)")
	flag.IntVar(&opts.workers, "workers", 0, "parallel runs (0 = config, then one per CPU)")
	flag.IntVar(&opts.budget, "budget", 0, "searches per frame (0 = config)")
	flag.IntVar(&opts.stagger, "stagger", 1, "extra first-search delay per agent added on each successive run")
	flag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if mapPath != "" {
		cfg.World.Map = mapPath
	}

	if err := run(context.Background(), cfg, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func (o reportOptions) withDefaults(cfg *config.Config) reportOptions {
	if o.runs <= 0 {
		o.runs = cfg.GetReportRuns()
	}
	if o.frames <= 0 {
		o.frames = cfg.GetReportFrames()
	}
	if o.agents <= 0 {
		o.agents = cfg.GetReportAgents()
	}
	if o.workers <= 0 {
		o.workers = cfg.GetReportWorkers()
	}
	if o.budget <= 0 {
		o.budget = cfg.GetMaxPathfindsPerFrame()
	}
	if o.stagger < 0 {
		o.stagger = 0
	}
	return o
}

// run executes every simulation on the worker pool. Each run owns its
// budget and monitor, so runs never compete for searches.
func run(ctx context.Context, cfg *config.Config, opts reportOptions, w io.Writer) error {
	opts = opts.withDefaults(cfg)

	sc, err := sim.LoadScenario(cfg)
	if err != nil {
		return err
	}

	pool := core.NewWorkerPool(opts.workers)
	pool.Start()
	defer pool.Stop()

	results, err := core.MapWithContext(ctx, pool, opts.runs, func(ctx context.Context, i int) (runResult, error) {
		monitor := monitoring.NewSearchMonitor()
		nav, err := sc.NewNavigator(pathfinding.NewBudget(opts.budget), monitor)
		if err != nil {
			return runResult{}, err
		}
		stagger := i * opts.stagger
		s := sc.NewSimulation(nav, opts.agents, stagger)
		for f := 0; f < opts.frames; f++ {
			if f%60 == 0 && ctx.Err() != nil {
				return runResult{}, ctx.Err()
			}
			s.Step()
		}
		return runResult{
			index:   i + 1,
			stagger: stagger,
			report:  s.Summary(opts.frames),
			metrics: monitor.GetCurrentMetrics(),
			alerts:  monitor.CheckSearchAlerts(),
		}, nil
	})
	if err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })

	fmt.Fprintf(w, "=== Pathfinding Report ===\n")
	fmt.Fprintf(w, "map=%s size=%dx%d runs=%d frames=%d agents=%d budget=%d workers=%d\n\n",
		sc.Map.Name, sc.Map.Tiles.Cols(), sc.Map.Tiles.Rows(), opts.runs, opts.frames, opts.agents, opts.budget, pool.GetNumWorkers())

	var total sim.Report
	var nodes uint64
	peak := 0
	for _, r := range results {
		printRun(w, r)
		total.Add(r.report)
		nodes += r.metrics.NodesExpanded
		peak = max(peak, r.metrics.PeakNodes)
	}

	fmt.Fprintf(w, "\n--- Aggregate ---\n")
	fmt.Fprintf(w, "%s\n", total)
	fmt.Fprintf(w, "nodes expanded=%d peak=%d\n", nodes, peak)

	routes, err := spawnRoutes(ctx, pool, sc)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n--- Spawn Routes ---\n")
	for i, s := range sc.Map.Enemies() {
		if routes[i] == 0 {
			fmt.Fprintf(w, "spawn (%d,%d): no route\n", s.Col, s.Row)
			continue
		}
		fmt.Fprintf(w, "spawn (%d,%d): %d waypoints\n", s.Col, s.Row, routes[i])
	}
	fmt.Fprintf(w, "pool jobs=%d\n", pool.Completed())
	return nil
}

// spawnRoutes searches from every enemy spawn to the start in parallel and
// returns the waypoint counts in spawn order. The navigator's budget covers
// every spawn, so no search is refused.
func spawnRoutes(ctx context.Context, pool *core.WorkerPool, sc *sim.Scenario) ([]int, error) {
	spawns := sc.Map.Enemies()
	nav, err := sc.NewNavigator(pathfinding.NewBudget(max(1, len(spawns))), nil)
	if err != nil {
		return nil, err
	}

	goal := nav.TileToPixel(sc.StartTile())
	avoid := sc.Config.GetAvoidHazards()
	eight := sc.Config.GetEightDirectional()
	lengths := make([]int, len(spawns))
	pool.ParallelForWithContext(ctx, 0, len(spawns), func(i int) {
		from := nav.TileToPixel(pathfinding.TileCoord{Col: spawns[i].Col, Row: spawns[i].Row})
		lengths[i] = nav.FindPath(from.X, from.Y, goal.X, goal.Y,
			pathfinding.WithAvoidHazards(avoid),
			pathfinding.WithEightDirectional(eight),
		).Len()
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return lengths, nil
}

func printRun(w io.Writer, r runResult) {
	m := r.metrics
	fmt.Fprintf(w, "run %d (stagger %d): %s\n", r.index, r.stagger, r.report)
	fmt.Fprintf(w, "  found=%d same_tile=%d too_far=%d no_substitute=%d capped=%d unreachable=%d ring=%d avg=%v\n",
		m.Found, m.SameTile, m.TooFar, m.NoSubstitute, m.Capped, m.Unreachable, m.RingSearches, m.AverageSearch)
	for _, a := range r.alerts {
		fmt.Fprintf(w, "  alert %s: %s (%.2f > %.2f)\n", a.Type, a.Message, a.Value, a.Threshold)
	}
}

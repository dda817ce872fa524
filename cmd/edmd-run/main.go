// Command edmd-run drives a single maze-diffusion simulation from the
// command line: generate or import a maze and initial state, step the
// event-driven integrator for a configured event budget, and optionally
// render PNG snapshots and a winning-disk trace.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/maze-md/edmd"
	"github.com/maze-md/edmd/render"
)

func main() {
	mazeDefaults := edmd.DefaultMazeOptions()

	var (
		n         = flag.Int("n", 10, "number of disks")
		rows      = flag.Int("rows", 10, "maze rows")
		cols      = flag.Int("cols", 10, "maze cols")
		events    = flag.Int("events", 100000, "event budget (outer ticks)")
		dt        = flag.Float64("dt", 5e-5, "outer step size")
		stepsize  = flag.Int("stepsize", 2000, "frames-per-log-boundary divisor")
		logPath   = flag.String("log", "simulation.log", "trajectory log file")
		snapDir   = flag.String("snapdir", "", "snapshot output directory (empty disables rendering)")
		tracePath = flag.String("trace", "", "winning-disk trace PNG path (empty disables tracing)")
		arrows    = flag.Bool("arrows", false, "draw velocity arrows in snapshots")
		pressure  = flag.Float64("pressure", 0, "pressure factor; >0 enables the entry-chamber shower")
		debug     = flag.Bool("debug", false, "enable debug logging")
		seed      = flag.Int64("seed", 0, "random seed (0 picks a time-based seed)")
		posFile   = flag.String("pos", "", "import initial positions from this file")
		velFile   = flag.String("vel", "", "import initial velocities from this file")
		mazeFile  = flag.String("maze", "", "import a maze from this file")

		stuckThreshold   = flag.Int("stuck-threshold", 100, "inner-iteration count past which a step is treated as oscillating")
		progressDivisor  = flag.Int("progress-divisor", 10, "stepsize divisor controlling progress-beacon cadence")
		pathContinueProb = flag.Float64("path-continue-prob", mazeDefaults.PathContinueProb, "maze path builder's per-step continuation probability")
		mazeSafetyCap    = flag.Int("maze-safety-cap", mazeDefaults.SafetyCap, "maze path builder's per-attempt iteration cap")
		mazeMaxRestarts  = flag.Int("maze-max-restarts", mazeDefaults.MaxRestarts, "maze generator's restart attempts before giving up")
	)
	flag.Parse()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	log := edmd.NewDefaultLogger("edmd-run", *debug)

	cfg := edmd.NewConfig(
		edmd.WithN(*n),
		edmd.WithDims(*rows, *cols),
		edmd.WithDuration(*events),
		edmd.WithStepsize(*stepsize),
		edmd.WithDt(*dt),
		edmd.WithLogFile(*logPath),
		edmd.WithArrows(*arrows),
		edmd.WithPressureFactor(*pressure),
		edmd.WithDebug(*debug),
		edmd.WithImportPaths(*posFile, *velFile, *mazeFile),
		edmd.WithStuckThreshold(*stuckThreshold),
		edmd.WithProgressDivisor(*progressDivisor),
		edmd.WithPathContinueProb(*pathContinueProb),
		edmd.WithMazeSafetyCap(*mazeSafetyCap),
		edmd.WithMazeMaxRestarts(*mazeMaxRestarts),
	)

	orch, err := edmd.NewOrchestrator(cfg, log, rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, "edmd-run: setup:", err)
		os.Exit(1)
	}
	log.Infof("run %s:\n%s", orch.RunID, orch.Summary())

	if *snapDir != "" {
		if err := render.ResetSnapshotDir(*snapDir); err != nil {
			fmt.Fprintln(os.Stderr, "edmd-run: snapshot dir:", err)
			os.Exit(1)
		}
	}

	sink, err := edmd.NewFileLogSink(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "edmd-run: log file:", err)
		os.Exit(1)
	}
	defer sink.Close()

	if err := orch.Simulate(cfg.Duration, sink); err != nil {
		fmt.Fprintln(os.Stderr, "edmd-run: simulate:", err)
		os.Exit(1)
	}
	log.Infof("finished: simulated %.5fs, indicator=%d", orch.Duration, orch.Indicator)

	if *snapDir != "" {
		backends := render.SelectRaster(32)
		frame := edmd.LogRecord{Pos: orch.State.Pos, Vel: orch.State.Vel}
		if err := render.RenderAll(backends.Snapshot, []edmd.LogRecord{frame}, orch.State.Radius, orch.Maze, *arrows, *snapDir, 4); err != nil {
			fmt.Fprintln(os.Stderr, "edmd-run: render:", err)
		}
	}

	if *tracePath != "" {
		idx, ok := edmd.WinningDisk(edmd.LogRecord{Pos: orch.State.Pos, Vel: orch.State.Vel}, orch.Maze.MaxX())
		if !ok {
			log.Warnf("no disk reached the exit window; skipping trace")
			return
		}
		backends := render.SelectRaster(32)
		trace := edmd.TracePositions([]edmd.LogRecord{{Pos: orch.State.Pos, Vel: orch.State.Vel}}, idx)
		if err := backends.Tracer.TracePath([][]edmd.Vec2{trace}, cfg.Width, orch.State.Radius, orch.Maze, *tracePath); err != nil {
			fmt.Fprintln(os.Stderr, "edmd-run: trace:", err)
			os.Exit(1)
		}
	}
}

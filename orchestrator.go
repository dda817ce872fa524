package edmd

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// Orchestrator owns the persistent state triple (positions, velocities,
// maze), the configuration, and wires the initialiser and driver together
// the way wrapper.py's MazeDiffusion class does — minus the filesystem and
// plotting calls, which here are explicit calls to external collaborators
// (io.go, render.SnapshotRenderer) instead of methods the orchestrator invokes
// itself.
type Orchestrator struct {
	RunID  uuid.UUID
	Config Config
	State  State
	Maze   *Maze

	OrigN     int
	Indicator int
	Duration  float64

	Logger Logger
	Rand   RandSource
	Init   Initializer
}

// NewOrchestrator builds an Orchestrator: derives the radius, imports or
// generates positions/velocities/maze, and records the original particle
// count (needed by the fan variant even after the population grows).
func NewOrchestrator(cfg Config, logger Logger, rng *rand.Rand) (*Orchestrator, error) {
	if logger == nil {
		logger = NewNopLogger()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	o := &Orchestrator{
		RunID:  uuid.New(),
		Config: cfg,
		Logger: logger,
		Rand:   rng,
		Init:   DefaultInitializer{},
		OrigN:  cfg.N,
	}
	o.State.Radius = cfg.Radius()
	if r := o.State.Radius; !(r > 0 && 2*r < 1) {
		logger.Errorf("invalid derived radius %v for n=%d", r, cfg.N)
		return nil, ErrInvalidRadius
	}

	logger.Infof("initializing system...")

	if cfg.PosFile != "" {
		pos, err := ImportPositions(cfg.PosFile)
		if err != nil {
			return nil, fmt.Errorf("edmd: importing positions: %w", err)
		}
		if cfg.N != 0 && len(pos) != cfg.N {
			logger.Errorf("failed to import positions: got %d, configured for %d", len(pos), cfg.N)
			return nil, ErrParticleCountMismatch
		}
		o.State.Pos = pos
		o.OrigN = len(pos)
	} else {
		pos, err := o.Init.InitialPositions(cfg.N, o.State.Radius, rng)
		if err != nil {
			return nil, err
		}
		for i := range pos {
			pos[i] = Vec2{pos[i].X(), pos[i].Y() + float64(cfg.Height)}
		}
		o.State.Pos = pos
	}

	if cfg.VelFile != "" {
		vel, err := ImportVelocities(cfg.VelFile)
		if err != nil {
			return nil, fmt.Errorf("edmd: importing velocities: %w", err)
		}
		if len(o.State.Pos) != 0 && len(vel) != len(o.State.Pos) {
			logger.Errorf("failed to import velocities: got %d, expected %d", len(vel), len(o.State.Pos))
			return nil, ErrParticleCountMismatch
		}
		o.State.Vel = vel
	} else {
		vel, err := o.Init.InitialVelocities(len(o.State.Pos), rng)
		if err != nil {
			return nil, err
		}
		o.State.Vel = vel
	}

	if cfg.MazeFile != "" {
		m, err := ImportMaze(cfg.MazeFile)
		if err != nil {
			return nil, fmt.Errorf("edmd: importing maze: %w", err)
		}
		o.Maze = m
	} else {
		m, err := GenerateMaze(cfg.Height, cfg.Width, MazeOptions{
			PathContinueProb: cfg.PathContinueProb,
			SafetyCap:        cfg.MazeSafetyCap,
			MaxRestarts:      cfg.MazeMaxRestarts,
			Rand:             rng,
		}, logger)
		if err != nil {
			return nil, err
		}
		o.Maze = m
	}

	logger.Infof("initializing system...done")
	return o, nil
}

// Simulate runs numSteps outer event ticks against the orchestrator's live
// state, appending log records to sink (may be nil to disable logging).
func (o *Orchestrator) Simulate(numSteps int, sink LogSink) error {
	if o.State.Radius == 0 {
		return fmt.Errorf("edmd: orchestrator not initialized")
	}
	driverCfg := DriverConfig{
		Dt:              o.Config.Dt,
		EventBudget:     numSteps,
		Stepsize:        o.Config.Stepsize,
		StuckThreshold:  o.Config.StuckThreshold,
		ProgressDivisor: o.Config.ProgressDivisor,
	}

	var fan *FanConfig
	if o.Config.Fan() {
		fan = &FanConfig{Speed: o.Config.PressureFactor, OrigN: o.OrigN, Rand: o.Rand}
	}

	walls := o.Maze.Walls
	result, err := Run(&o.State, walls, o.Maze, driverCfg, fan, sink, o.Logger)
	if err != nil {
		return err
	}
	o.Duration += result.Time
	o.Indicator = result.Indicator
	return nil
}

// Summary returns a human-readable status string, grounded on wrapper.py's
// __repr__.
func (o *Orchestrator) Summary() string {
	mode := "No"
	if o.Config.Fan() {
		mode = fmt.Sprintf("Yes (pressure factor: %v)", o.Config.PressureFactor)
	}
	rms := 0.0
	if n := o.State.N(); n > 0 {
		var sum float64
		for _, v := range o.State.Vel {
			sum += math.Hypot(v.X(), v.Y())
		}
		rms = sum / float64(n)
	}
	return fmt.Sprintf(
		"MazeDiffusion run %s\n    Maze size: %d x %d\n    Contains %d particles (from %d input)\n    Pressurized entry point: %s\n    Simulated for %.5f seconds\n    Mean particle speed: %v",
		o.RunID, o.Config.Height, o.Config.Width, o.State.N(), o.OrigN, mode, o.Duration, rms,
	)
}

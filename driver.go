package edmd

import "math"

// DriverConfig configures the outer simulation loop. All fields are
// explicit per spec.md §4.5 — no hidden global state.
type DriverConfig struct {
	Dt              float64
	EventBudget     int
	Stepsize        int
	StuckThreshold  int // inner-iteration count past which simulate_step treats the system as oscillating; spec.md §9 Open Question (b)
	ProgressDivisor int // progress beacon fires every Stepsize/ProgressDivisor events
}

// LogRecord is one emitted frame: simulated time, the stepsize-scaled frame
// index, and a snapshot of every disk's position and velocity.
type LogRecord struct {
	Time  float64
	Index int
	Pos   []Vec2
	Vel   []Vec2
}

// LogSink receives LogRecords. The driver never touches the filesystem
// itself (spec.md §5); concrete sinks live in io.go.
type LogSink interface {
	WriteRecord(rec LogRecord) error
}

// RunResult is the outcome of a Run call.
type RunResult struct {
	Time      float64
	Indicator int // 1 if a disk reached the exit aperture, 0 if the event budget ran out
}

// FanConfig enables the particle-shower variant: at every log boundary, with
// probability Speed/10, Shower is invoked against the live state.
type FanConfig struct {
	Speed float64
	OrigN int
	Rand  RandSource
}

// Run drives the simulation for cfg.EventBudget outer ticks. fan may be nil
// to disable particle injection. sink receives one record before the first
// tick and one every Stepsize ticks thereafter.
func Run(s *State, walls *WallIndex, maze *Maze, cfg DriverConfig, fan *FanConfig, sink LogSink, log Logger) (RunResult, error) {
	if log == nil {
		log = NewNopLogger()
	}
	if cfg.StuckThreshold <= 0 {
		cfg.StuckThreshold = 100
	}
	if cfg.ProgressDivisor <= 0 {
		cfg.ProgressDivisor = 10
	}
	maxX := maze.MaxX()

	nextEvent := NextEvent(s, walls)
	t := 0.0
	i := 0
	if sink != nil {
		if err := sink.WriteRecord(snapshot(t, 0, s)); err != nil {
			return RunResult{}, err
		}
	}
	i++

	for step := 0; step < cfg.EventBudget; step++ {
		t, nextEvent = simulateStep(s, walls, cfg.Dt, t, nextEvent, cfg.StuckThreshold)

		if cfg.Stepsize > 0 && i%cfg.Stepsize == 0 {
			if sink != nil {
				if err := sink.WriteRecord(snapshot(t, i/cfg.Stepsize, s)); err != nil {
					return RunResult{}, err
				}
			}
			if fan != nil && fan.Rand.Float64() < fan.Speed/10 {
				if Shower(s, fan.Rand, float64(maze.Rows), fan.OrigN) {
					nextEvent = NextEvent(s, walls)
				}
			}
		}
		i++

		if div := cfg.Stepsize / cfg.ProgressDivisor; div > 0 && i%div == 0 {
			log.Infof("simulating timestep %.5f s (%d particles)", t, s.N())
		}

		for _, pos := range s.Pos {
			if maxX-2 < pos.X() && pos.X() < maxX+1 && pos.Y()+s.Radius < 0 {
				log.Infof("timestep %.5f: a particle solved the maze", t)
				return RunResult{Time: t, Indicator: 1}, nil
			}
		}
	}
	log.Infof("finished simulation after %.5f simulated seconds", t)
	return RunResult{Time: t, Indicator: 0}, nil
}

func snapshot(t float64, idx int, s *State) LogRecord {
	pos := make([]Vec2, len(s.Pos))
	vel := make([]Vec2, len(s.Vel))
	copy(pos, s.Pos)
	copy(vel, s.Vel)
	return LogRecord{Time: t, Index: idx, Pos: pos, Vel: vel}
}

// simulateStep integrates one wall-clock slice [t, t+dt], interleaving
// events as they occur within the slice and consuming the remainder with a
// final repair-then-advance pass. nextEvent is the event predicted before
// this call (computed either by the prior simulateStep call or, for the
// first call, by NextEvent against the initial state).
func simulateStep(s *State, walls *WallIndex, dt float64, t float64, nextEvent Event, stuckThreshold int) (float64, Event) {
	nextT := t + dt
	q := 0
	wallSlots := s.WallPairs()
	velOld := cloneVel(s.Vel)

	for t+nextEvent.Time <= nextT {
		var step float64
		if q > stuckThreshold && sameAbsVelocities(s.Vel, velOld, wallSlots) {
			step = math.Max(dt, nextEvent.Time)
		} else {
			step = math.Min(dt, nextEvent.Time)
		}
		q++
		t += step

		for _, wp := range wallSlots {
			k, l := wp[0], Axis(wp[1])
			fixDelta(s, walls, k, l)
			advanceComponent(&s.Pos[k], l, component(s.Vel[k], l)*step)
		}

		ApplyEvent(s, nextEvent)
		nextEvent = NextEvent(s, walls)
		if nextEvent.Time < 0 && nextEvent.Kind == EventPair {
			pullApart(s, nextEvent.A, nextEvent.B)
		}
		velOld = cloneVel(s.Vel)
	}

	remainT := nextT - t
	for _, wp := range wallSlots {
		k, l := wp[0], Axis(wp[1])
		fixDelta(s, walls, k, l)
		advanceComponent(&s.Pos[k], l, component(s.Vel[k], l)*remainT)
	}
	t = nextT
	nextEvent.Time -= remainT
	return t, nextEvent
}

func advanceComponent(v *Vec2, l Axis, delta float64) {
	if l == AxisX {
		*v = Vec2{v.X() + delta, v.Y()}
	} else {
		*v = Vec2{v.X(), v.Y() + delta}
	}
}

func cloneVel(v []Vec2) []Vec2 {
	out := make([]Vec2, len(v))
	copy(out, v)
	return out
}

// sameAbsVelocities reports whether every wall-slot velocity component has
// the same magnitude in both snapshots — the oscillation signature
// simulate_step watches for once q exceeds the stuck threshold.
func sameAbsVelocities(cur, old []Vec2, slots [][2]int) bool {
	for _, wp := range slots {
		k, l := wp[0], Axis(wp[1])
		if math.Abs(component(cur[k], l)) != math.Abs(component(old[k], l)) {
			return false
		}
	}
	return true
}

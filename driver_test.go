package edmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a single disk bouncing inside a closed 1x1 box with no other disks and a
// generous event budget must exhaust its budget (indicator 0) rather than
// ever reaching an exit that doesn't exist on a fully closed box.
func TestRun_ClosedBoxNeverExits(t *testing.T) {
	s := &State{Pos: []Vec2{{0.5, 0.5}}, Vel: []Vec2{{0.3, 0.4}}, Radius: 0.05}
	walls := closedMaze(1, 1)
	maze := &Maze{Rows: 1, Cols: 1, Walls: walls}

	cfg := DriverConfig{Dt: 0.01, EventBudget: 50, Stepsize: 10, StuckThreshold: 100, ProgressDivisor: 10}
	result, err := Run(s, walls, maze, cfg, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Indicator)
	assert.Greater(t, result.Time, 0.0)
}

// a disk heading straight down through an open bottom aperture must be
// reported as having solved the maze (spec §8 scenario S5).
func TestRun_DiskReachesExit(t *testing.T) {
	walls := closedMaze(1, 1)
	walls.Remove(Point{0, 0}, Point{1, 0}) // open the bottom border

	s := &State{Pos: []Vec2{{0.5, 0.3}}, Vel: []Vec2{{0, -5}}, Radius: 0.05}
	maze := &Maze{Rows: 1, Cols: 1, Walls: walls}

	cfg := DriverConfig{Dt: 0.1, EventBudget: 5, Stepsize: 10, StuckThreshold: 100, ProgressDivisor: 10}
	result, err := Run(s, walls, maze, cfg, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Indicator)
	assert.Less(t, s.Pos[0].Y()+s.Radius, 0.0)
}

// a slice with no event inside it (the first wall hit is 0.45s away) must
// still advance simulated time by one full Dt.
func TestSimulateStep_AdvancesAtLeastOneDt(t *testing.T) {
	s := &State{Pos: []Vec2{{0.5, 0.5}}, Vel: []Vec2{{1, 0}}, Radius: 0.05}
	walls := closedMaze(1, 1)
	ev := NextEvent(s, walls)

	newT, _ := simulateStep(s, walls, 0.01, 0, ev, 100)
	assert.InDelta(t, 0.01, newT, 1e-12)
}

// a disk bouncing wall-to-wall inside a 1x1 box recurs every 0.1-0.2s, well
// inside a dt=1 slice, driving q past a low stuckThreshold mid-slice; the
// escape branch then takes a full dt step and overshoots the box, while a
// threshold the loop never reaches keeps every bounce landing on a wall.
func TestSimulateStep_StuckOscillationEscapesSubDtLoop(t *testing.T) {
	walls := closedMaze(1, 1)

	stuck := &State{Pos: []Vec2{{0.5, 0.5}}, Vel: []Vec2{{4, 0}}, Radius: 0.1}
	stuckEv := NextEvent(stuck, walls)
	newT, _ := simulateStep(stuck, walls, 1.0, 0, stuckEv, 2)
	assert.InDelta(t, 1.0, newT, 1e-9)
	assert.Less(t, stuck.Pos[0].X(), 0.0)

	steady := &State{Pos: []Vec2{{0.5, 0.5}}, Vel: []Vec2{{4, 0}}, Radius: 0.1}
	steadyEv := NextEvent(steady, walls)
	newT2, _ := simulateStep(steady, walls, 1.0, 0, steadyEv, 1000000)
	assert.InDelta(t, 1.0, newT2, 1e-9)
	assert.GreaterOrEqual(t, steady.Pos[0].X(), 0.0)
	assert.LessOrEqual(t, steady.Pos[0].X(), 1.0)
}

func TestSnapshot_CopiesNotAliases(t *testing.T) {
	s := &State{Pos: []Vec2{{1, 2}}, Vel: []Vec2{{3, 4}}}
	rec := snapshot(0, 0, s)
	s.Pos[0] = Vec2{99, 99}
	assert.Equal(t, 1.0, rec.Pos[0].X())
}

package edmd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func closedMaze(rows, cols int) *WallIndex {
	w := NewWallIndex()
	for j := 0; j < rows; j++ {
		w.Add(Point{0, j}, Point{0, j + 1})
		w.Add(Point{cols, j}, Point{cols, j + 1})
	}
	for i := 0; i < cols; i++ {
		w.Add(Point{i, 0}, Point{i + 1, 0})
		w.Add(Point{i, rows}, Point{i + 1, rows})
	}
	return w
}

func TestWallTime_InfiniteWhenNoWall(t *testing.T) {
	s := &State{
		Pos:    []Vec2{{0.5, 0.5}},
		Vel:    []Vec2{{1, 0}},
		Radius: 0.1,
	}
	open := NewWallIndex() // no walls anywhere
	got := wallTime(s, open, 0, AxisX)
	assert.True(t, math.IsInf(got, 1))
}

func TestWallTime_InfiniteWhenStationary(t *testing.T) {
	s := &State{Pos: []Vec2{{0.5, 0.5}}, Vel: []Vec2{{0, 0}}, Radius: 0.1}
	w := closedMaze(1, 1)
	assert.True(t, math.IsInf(wallTime(s, w, 0, AxisX), 1))
}

func TestWallTime_HitsRightWall(t *testing.T) {
	s := &State{Pos: []Vec2{{0.5, 0.5}}, Vel: []Vec2{{1, 0}}, Radius: 0.1}
	w := closedMaze(1, 1)
	got := wallTime(s, w, 0, AxisX)
	want := math.Abs((1.0 - 0.5 - 0.1) / 1.0)
	assert.InDelta(t, want, got, 1e-9)
}

// pair time must be symmetric: swapping a and b must not change the result.
func TestPairTime_Symmetric(t *testing.T) {
	s := &State{
		Pos:    []Vec2{{0.2, 0.5}, {0.8, 0.5}},
		Vel:    []Vec2{{1, 0}, {-1, 0}},
		Radius: 0.1,
	}
	ab := pairTime(s, 0, 1)
	ba := pairTime(s, 1, 0)
	assert.InDelta(t, ab, ba, 1e-9)
	assert.False(t, math.IsInf(ab, 1))
}

func TestPairTime_InfiniteWhenSeparating(t *testing.T) {
	s := &State{
		Pos:    []Vec2{{0.2, 0.5}, {0.8, 0.5}},
		Vel:    []Vec2{{-1, 0}, {1, 0}},
		Radius: 0.1,
	}
	assert.True(t, math.IsInf(pairTime(s, 0, 1), 1))
}

func TestNextEvent_PicksEarliest(t *testing.T) {
	s := &State{
		Pos:    []Vec2{{0.1, 0.5}, {0.9, 0.5}},
		Vel:    []Vec2{{1, 0}, {0, 0}},
		Radius: 0.05,
	}
	w := closedMaze(1, 1)
	// disk 0 reaches disk 1 at t=0.7, before its right wall at t=0.85
	ev := NextEvent(s, w)
	assert.Equal(t, EventPair, ev.Kind)
	assert.Equal(t, 0, ev.A)
	assert.Equal(t, 1, ev.B)
}

package edmd

import "math"

// EventKind is the closed sum of wall and pair events (spec.md §9 "Dynamic
// typing in event handling": a real sum type, not the raw integer index the
// original prototype used — the index survives only as an encoding detail
// for Event.Index).
type EventKind int

const (
	EventWall EventKind = iota
	EventPair
)

// Event is the next physical event: a time and a decoded (disk/axis) or
// (a/b) descriptor.
type Event struct {
	Time float64
	Kind EventKind
	Disk int  // valid when Kind == EventWall
	Axis Axis // valid when Kind == EventWall
	A, B int  // valid when Kind == EventPair

	// Index is the flat encoding: disk events occupy [0, 2n), pair events
	// occupy [2n, 2n+n(n-1)/2) in lexicographic (a,b) order; -1 when no
	// event is pending.
	Index int
}

// wallTime returns the time until disk k's axis-l coordinate reaches the
// nearest wall in its direction of travel, or +Inf if that side is an
// opening or the disk isn't moving along that axis.
func wallTime(s *State, walls *WallIndex, k int, l Axis) float64 {
	x := component(s.Pos[k], l)
	vel := component(s.Vel[k], l)
	i, j := CellOf(s.Pos[k])

	if vel == 0 {
		return math.Inf(1)
	}

	cw := cellWalls(i, j)
	var candidate WallEdge
	switch {
	case l == AxisX && vel > 0:
		candidate = cw[wallRight]
	case l == AxisX && vel < 0:
		candidate = cw[wallLeft]
	case l == AxisY && vel > 0:
		candidate = cw[wallTop]
	default: // AxisY && vel < 0
		candidate = cw[wallBottom]
	}
	if !walls.HasEdge(candidate) {
		return math.Inf(1)
	}

	if vel > 0 {
		return math.Abs((float64(i+1) - x - s.Radius) / vel)
	}
	return math.Abs((x - float64(i) - s.Radius) / -vel)
}

func component(v Vec2, l Axis) float64 {
	if l == AxisX {
		return v.X()
	}
	return v.Y()
}

// pairTime returns the time until disks a and b touch, or +Inf if they are
// separating or never meet (discriminant non-positive).
func pairTime(s *State, a, b int) float64 {
	dx := s.Pos[b].Sub(s.Pos[a])
	dv := s.Vel[b].Sub(s.Vel[a])
	beta := dv.Dot(dx)
	dx2 := dx.Dot(dx)
	dv2 := dv.Dot(dv)
	if dv2 == 0 {
		return math.Inf(1)
	}
	upsilon := beta*beta - dv2*(dx2-4*s.Radius*s.Radius)
	if beta < 0 && upsilon > 0 {
		return -(beta + math.Sqrt(upsilon)) / dv2
	}
	return math.Inf(1)
}

// NextEvent scans every wall slot and every disk pair and returns the
// earliest event, ties broken by enumeration order (walls before pairs,
// lexicographic within each): a later candidate replaces the current best
// only if its time is strictly smaller.
func NextEvent(s *State, walls *WallIndex) Event {
	n := s.N()
	best := Event{Time: math.Inf(1), Index: -1}

	idx := 0
	for k := 0; k < n; k++ {
		for _, axis := range []Axis{AxisX, AxisY} {
			t := wallTime(s, walls, k, axis)
			if t < best.Time {
				best = Event{Time: t, Kind: EventWall, Disk: k, Axis: axis, Index: idx}
			}
			idx++
		}
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			t := pairTime(s, a, b)
			if t < best.Time {
				best = Event{Time: t, Kind: EventPair, A: a, B: b, Index: idx}
			}
			idx++
		}
	}
	return best
}

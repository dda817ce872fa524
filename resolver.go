package edmd

import "math"

// ApplyEvent mutates State in place to resolve the given event: a wall
// event flips the struck velocity component; a pair event applies the
// equal-mass elastic collision along the line of centres.
func ApplyEvent(s *State, ev Event) {
	switch ev.Kind {
	case EventWall:
		flipComponent(&s.Vel[ev.Disk], ev.Axis)
	case EventPair:
		resolvePair(s, ev.A, ev.B)
	}
}

func flipComponent(v *Vec2, l Axis) {
	if l == AxisX {
		*v = Vec2{-v.X(), v.Y()}
	} else {
		*v = Vec2{v.X(), -v.Y()}
	}
}

// resolvePair resolves the elastic collision of two equal-mass disks a, b:
// the relative approach velocity along the unit contact vector is removed
// from one disk and added to the other, preserving total momentum exactly.
func resolvePair(s *State, a, b int) {
	dx := s.Pos[b].Sub(s.Pos[a])
	dist := math.Hypot(dx.X(), dx.Y())
	if dist == 0 {
		return // degenerate: disks exactly coincident, nothing sane to resolve
	}
	xhat := Vec2{dx.X() / dist, dx.Y() / dist}

	dv := s.Vel[b].Sub(s.Vel[a])
	beta := dv.Dot(xhat)

	s.Vel[a] = Vec2{s.Vel[a].X() + beta*xhat.X(), s.Vel[a].Y() + beta*xhat.Y()}
	s.Vel[b] = Vec2{s.Vel[b].X() - beta*xhat.X(), s.Vel[b].Y() - beta*xhat.Y()}
}

package edmd

// fixDelta is the wall-overlap repair heuristic: it runs once per (disk,
// axis) slot, every inner iteration of simulate_step, before the free-flight
// position update. Two independent checks:
//
//  1. If the disk centre is within r of the wall its own axis-l velocity
//     component is driving it into, flip that component — this catches
//     disks that slipped past the predictor's exact-time resolution due to
//     accumulated round-off.
//  2. If the *other* axis's velocity component is exactly zero while the
//     position already overlaps a wall on that axis, nudge the position by
//     r away from the wall — an unsticking correction for degenerate
//     axis-aligned trajectories that would otherwise never trigger a wall
//     event on that axis.
func fixDelta(s *State, walls *WallIndex, k int, l Axis) {
	pos := s.Pos[k]
	x, y := pos.X(), pos.Y()
	i, j := CellOf(pos)
	fi, fj := float64(i), float64(j)
	cw := cellWalls(i, j)
	r := s.Radius

	if l == AxisX {
		vx := s.Vel[k].X()
		switch {
		case x < fi+1 && fi+1 < x+r && vx > 0:
			if walls.HasEdge(cw[wallRight]) {
				s.Vel[k] = Vec2{-vx, s.Vel[k].Y()}
			}
		case x-r < fi && fi < x && vx < 0:
			if walls.HasEdge(cw[wallLeft]) {
				s.Vel[k] = Vec2{-vx, s.Vel[k].Y()}
			}
		}
		vy := s.Vel[k].Y()
		switch {
		case y < fj+1 && fj+1 < y+r && vy == 0:
			if walls.HasEdge(cw[wallTop]) {
				s.Pos[k] = Vec2{s.Pos[k].X(), s.Pos[k].Y() - r}
			}
		case y-r < fj && fj < y && vy == 0:
			if walls.HasEdge(cw[wallBottom]) {
				s.Pos[k] = Vec2{s.Pos[k].X(), s.Pos[k].Y() + r}
			}
		}
	} else {
		vy := s.Vel[k].Y()
		switch {
		case y < fj+1 && fj+1 < y+r && vy > 0:
			if walls.HasEdge(cw[wallTop]) {
				s.Vel[k] = Vec2{s.Vel[k].X(), -vy}
			}
		case y-r < fj && fj < y && vy < 0:
			if walls.HasEdge(cw[wallBottom]) {
				s.Vel[k] = Vec2{s.Vel[k].X(), -vy}
			}
		}
		vx := s.Vel[k].X()
		switch {
		case x < fi+1 && fi+1 < x+r && vx == 0:
			if walls.HasEdge(cw[wallRight]) {
				s.Pos[k] = Vec2{s.Pos[k].X() - r, s.Pos[k].Y()}
			}
		case x-r < fi && fi < x && vx == 0:
			if walls.HasEdge(cw[wallLeft]) {
				s.Pos[k] = Vec2{s.Pos[k].X() + r, s.Pos[k].Y()}
			}
		}
	}
}

// pullApart separates overlapping disks a and b along both axes: whichever
// disk is ahead on a given axis is pushed further ahead by r, the other
// pushed back by r. A heuristic — the next NextEvent call re-resolves the
// pair correctly once they're no longer overlapping.
func pullApart(s *State, a, b int) {
	r := s.Radius
	pa, pb := s.Pos[a], s.Pos[b]
	if pa.X() > pb.X() {
		pa = Vec2{pa.X() + r, pa.Y()}
		pb = Vec2{pb.X() - r, pb.Y()}
	} else {
		pa = Vec2{pa.X() - r, pa.Y()}
		pb = Vec2{pb.X() + r, pb.Y()}
	}
	if pa.Y() > pb.Y() {
		pa = Vec2{pa.X(), pa.Y() + r}
		pb = Vec2{pb.X(), pb.Y() - r}
	} else {
		pa = Vec2{pa.X(), pa.Y() - r}
		pb = Vec2{pb.X(), pb.Y() + r}
	}
	s.Pos[a], s.Pos[b] = pa, pb
}

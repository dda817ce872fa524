package edmd

import "math"

// RandSource is the minimal random-number surface the maze generator,
// initializer, and shower need. *math/rand.Rand satisfies it, letting tests
// inject a seeded, deterministic source.
type RandSource interface {
	Float64() float64
	Intn(n int) int
	NormFloat64() float64
}

// Shower implements the fan variant's rate-controlled particle injection at
// the entry chamber (spec.md §4.6). It either appends a new disk or gives an
// existing entry-chamber occupant a downward push, and reports whether the
// population changed (the caller must re-derive the next event if so).
func Shower(s *State, rng RandSource, yEntry float64, origN int) bool {
	entryRow := int(math.Floor(yEntry))
	var occupants []int
	for k, p := range s.Pos {
		if int(math.Floor(p.Y())) == entryRow {
			occupants = append(occupants, k)
		}
	}

	probNew := rng.Float64() < 2*(float64(origN)/float64(s.N())-0.5)
	if len(occupants) == 0 {
		probNew = true
	}

	if probNew {
		r := s.Radius
		pad := 1.05 * r
		var np Vec2
		for {
			x := pad + rng.Float64()*(1-2*pad)
			y := yEntry + (1 - 2*pad) + rng.Float64()*(pad)
			np = Vec2{x, y}
			ok := true
			for _, p := range s.Pos {
				dx, dy := np.X()-p.X(), np.Y()-p.Y()
				if math.Hypot(dx, dy) <= 2*r {
					ok = false
					break
				}
			}
			if ok {
				break
			}
		}
		nv := Vec2{-0.1 + rng.Float64()*0.2, -math.Abs(rng.NormFloat64())}
		s.Pos = append(s.Pos, np)
		s.Vel = append(s.Vel, nv)
		return true
	}

	pick := occupants[rng.Intn(len(occupants))]
	s.Vel[pick] = Vec2{s.Vel[pick].X(), s.Vel[pick].Y() - math.Abs(rng.Float64())}
	return false
}

package edmd

import "math"

// Initializer is the external collaborator spec.md §1 explicitly scopes out
// of the core: producing the initial disk positions and velocities. The
// core only consumes its output ([]Vec2 pairs); DefaultInitializer is a
// reference implementation grounded directly on the original prototype's
// initial_pos (random sequential deposition) and initial_vel (Maxwell-
// Boltzmann sampling).
type Initializer interface {
	InitialPositions(n int, r float64, rng RandSource) ([]Vec2, error)
	InitialVelocities(n int, rng RandSource) ([]Vec2, error)
}

// DefaultInitializer implements Initializer via rejection sampling for
// positions and a normal-distribution draw for velocities.
type DefaultInitializer struct{}

// InitialPositions places n disks of radius r inside the unit square
// [r, 1-r]^2 one at a time, retrying each draw until it clears 2r from
// every previously placed disk (random sequential deposition).
func (DefaultInitializer) InitialPositions(n int, r float64, rng RandSource) ([]Vec2, error) {
	if n <= 0 {
		return nil, ErrEmptyState
	}
	box := make([]Vec2, 0, n)
	box = append(box, Vec2{r + rng.Float64()*(1-2*r), r + rng.Float64()*(1-2*r)})
	for len(box) < n {
		var candidate Vec2
		for {
			candidate = Vec2{r + rng.Float64()*(1-2*r), r + rng.Float64()*(1-2*r)}
			clear := true
			for _, b := range box {
				dx, dy := candidate.X()-b.X(), candidate.Y()-b.Y()
				if math.Hypot(dx, dy) <= 2*r {
					clear = false
					break
				}
			}
			if clear {
				break
			}
		}
		box = append(box, candidate)
	}
	return box, nil
}

// InitialVelocities draws each component of every disk's velocity from a
// standard normal distribution, approximating the Maxwell-Boltzmann speed
// distribution of an ideal gas.
func (DefaultInitializer) InitialVelocities(n int, rng RandSource) ([]Vec2, error) {
	if n <= 0 {
		return nil, ErrEmptyState
	}
	vel := make([]Vec2, n)
	for i := range vel {
		vel[i] = Vec2{rng.NormFloat64(), rng.NormFloat64()}
	}
	return vel, nil
}

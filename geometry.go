// Package edmd implements an event-driven hard-disk molecular-dynamics
// simulator of gas diffusion through a randomly generated rectangular maze.
//
// What:
//
//   - Maze: a randomised spanning-tree-like path builder over an m×n grid,
//     with an entry chamber above and an exit aperture below.
//   - Driver: the event predictor, collision resolver, and overlap-correction
//     heuristics that advance a population of equal-radius disks in fixed
//     wall-clock slices until one of them reaches the exit or the event
//     budget runs out.
//   - Shower: an optional rate-controlled particle injector for the
//     "pressurised" fan variant.
//
// Why:
//
//   - Visualising diffusion through disordered 2D media without the cost of
//     a general rigid-body physics engine: every collision here is resolved
//     exactly from closed-form time-to-contact formulas, not integrated.
//
// Non-goals: this package does not render, encode video, or persist state on
// its own — see the render subpackage and the io.go import/export helpers
// for those collaborators.
package edmd

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D real vector: disk position or velocity components.
type Vec2 = mgl64.Vec2

// Point is an integer lattice point of the maze grid.
type Point struct {
	X, Y int
}

// Axis selects a coordinate axis for wall events.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// CellOf returns the grid cell (i, j) containing position p, by integer
// floor of each coordinate.
func CellOf(p Vec2) (i, j int) {
	return int(math.Floor(p.X())), int(math.Floor(p.Y()))
}

// WallEdge is an unordered unit segment between two adjacent lattice points.
// CanonicalEdge puts A and B in a fixed order so both orientations of the
// same physical edge compare equal and hash identically.
type WallEdge struct {
	A, B Point
}

// CanonicalEdge orders a and b so that the resulting WallEdge is independent
// of which endpoint the caller calls "first" or "second".
func CanonicalEdge(a, b Point) WallEdge {
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		a, b = b, a
	}
	return WallEdge{A: a, B: b}
}

// cellWalls returns the four unit edges bounding cell (i, j) in a fixed
// order: right, left, top, bottom — matching the wall lookup order the
// event predictor and correction heuristics expect.
func cellWalls(i, j int) [4]WallEdge {
	return [4]WallEdge{
		CanonicalEdge(Point{i + 1, j}, Point{i + 1, j + 1}), // right
		CanonicalEdge(Point{i, j}, Point{i, j + 1}),         // left
		CanonicalEdge(Point{i, j + 1}, Point{i + 1, j + 1}), // top
		CanonicalEdge(Point{i, j}, Point{i + 1, j}),         // bottom
	}
}

const (
	wallRight  = 0
	wallLeft   = 1
	wallTop    = 2
	wallBottom = 3
)

package edmd

import "errors"

// Sentinel errors for the edmd package. Call sites wrap these with
// fmt.Errorf("edmd: doing X: %w", err) to add context while preserving
// errors.Is matchability.
var (
	// ErrInvalidRadius indicates a disk radius outside (0, 0.5).
	ErrInvalidRadius = errors.New("edmd: radius must satisfy 0 < 2r < 1")

	// ErrInvalidDims indicates a maze with a non-positive row or column count.
	ErrInvalidDims = errors.New("edmd: maze dimensions must be positive")

	// ErrMazeGenerationFailed indicates the path builder exceeded its safety
	// cap on every restart attempt.
	ErrMazeGenerationFailed = errors.New("edmd: maze generation exceeded safety cap")

	// ErrParticleCountMismatch indicates an imported position/velocity file
	// disagrees with the configured particle count.
	ErrParticleCountMismatch = errors.New("edmd: imported particle count does not match configuration")

	// ErrEmptyState indicates an operation was attempted on a simulation with
	// zero disks.
	ErrEmptyState = errors.New("edmd: no particles in state")

	// ErrMalformedRecord indicates a log, maze, or position/velocity file
	// could not be parsed.
	ErrMalformedRecord = errors.New("edmd: malformed record")
)

package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/maze-md/edmd"
)

// SnapshotRenderer draws one simulated frame (disk positions/velocities
// against the maze) to a numbered file under a snapshot directory.
type SnapshotRenderer interface {
	RenderFrame(index int, rec edmd.LogRecord, radius float64, maze *edmd.Maze, withArrows bool, dir string) error
}

// VideoEncoder assembles a snapshot directory's frames into a single video.
// Grounded on the teacher's optional-dependency posture (renderer_select.go
// picks exactly one installed backend): if no encoder is wired, the
// orchestrator simply skips this step (spec.md §7 "Missing optional
// dependency").
type VideoEncoder interface {
	Encode(snapDir, outPath string) error
}

// PathTracer plots the trace of the disk that solved the maze across every
// recorded frame.
type PathTracer interface {
	TracePath(frames [][]edmd.Vec2, width int, radius float64, maze *edmd.Maze, outPath string) error
}

// NullEncoder is the "missing optional dependency" stand-in: Encode is a
// no-op that reports nothing went wrong. Used when video assembly wasn't
// configured.
type NullEncoder struct{}

func (NullEncoder) Encode(snapDir, outPath string) error { return nil }

// ResetSnapshotDir removes and recreates dir, mirroring run_simulation's
// "output directory already exists, deleting any files within it" behavior
// — but as an explicit call the command-line front end makes before a run,
// not something the filesystem-free driver does itself.
func ResetSnapshotDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("render: clearing snapshot dir %q: %w", dir, err)
		}
	}
	return os.MkdirAll(dir, 0o755)
}

// RenderAll fans frame rendering out across a pool of workers goroutines
// (4 when workers <= 0), the way the original's make_snaps used a
// multiprocessing.Pool — spec.md §5 explicitly allows this even though the
// simulator itself stays single-threaded.
func RenderAll(r SnapshotRenderer, frames []edmd.LogRecord, radius float64, maze *edmd.Maze, withArrows bool, dir string, workers int) error {
	if workers <= 0 {
		workers = 4
	}
	jobs := make(chan int)
	errs := make(chan error, len(frames))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := r.RenderFrame(idx, frames[idx], radius, maze, withArrows, dir); err != nil {
					errs <- err
				}
			}
		}()
	}
	for i := range frames {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// snapshotPath builds the numbered file path for frame index within dir.
func snapshotPath(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%06d.png", index))
}

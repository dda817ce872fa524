package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/maze-md/edmd"
)

// RasterPathTracer draws the maze walls and, when frames holds exactly one
// trajectory, a filled circle at each of its positions, grounded on
// plot.py's plot_trace_path. The positions are not joined by lines, and
// with any other number of trajectories only the walls are drawn.
type RasterPathTracer struct {
	PixelsPerCell int
}

func (t *RasterPathTracer) TracePath(frames [][]edmd.Vec2, width int, radius float64, maze *edmd.Maze, outPath string) error {
	ppc := t.PixelsPerCell
	if ppc <= 0 {
		ppc = 32
	}
	w := (maze.Cols + 2) * ppc
	h := (maze.Rows + 2) * ppc
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	for _, e := range maze.Walls.Edges() {
		drawLine(img, toPixel(e.A, ppc, h), toPixel(e.B, ppc, h), color.Black)
	}

	if len(frames) == 1 {
		for _, v := range frames[0] {
			center := toPixelF(v, ppc, h)
			drawCircle(img, center, int(radius*float64(ppc)), color.RGBA{R: 20, G: 150, B: 60, A: 255})
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("render: trace output dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("render: creating trace file: %w", err)
	}
	defer f.Close()
	return png.Encode(f, img)
}

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/maze-md/edmd"
)

// RasterRenderer is the reference SnapshotRenderer: it rasterises disks as
// filled circles and walls as straight lines onto a canvas of
// PixelsPerCell pixels per maze cell, with no rescaling;
// golang.org/x/image/draw (the teacher pulls this package directly for its
// own texture/voxel image manipulation) fills the white background.
type RasterRenderer struct {
	// PixelsPerCell sets the canvas resolution; the maze is PixelsPerCell *
	// (maze.Cols+2) pixels wide.
	PixelsPerCell int
}

// NewRasterRenderer returns a RasterRenderer with a sensible default
// resolution.
func NewRasterRenderer() *RasterRenderer {
	return &RasterRenderer{PixelsPerCell: 32}
}

func (r *RasterRenderer) RenderFrame(index int, rec edmd.LogRecord, radius float64, maze *edmd.Maze, withArrows bool, dir string) error {
	ppc := r.PixelsPerCell
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
	for i, p := range rec.Pos {
		center := toPixelF(p, ppc, h)
		drawCircle(img, center, int(radius*float64(ppc)), color.RGBA{R: 30, G: 90, B: 200, A: 255})
		if withArrows && i < len(rec.Vel) {
			tip := image.Point{
				X: center.X + int(rec.Vel[i].X()*float64(ppc)*0.05),
				Y: center.Y - int(rec.Vel[i].Y()*float64(ppc)*0.05),
			}
			drawLine(img, center, tip, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("render: snapshot dir %q: %w", dir, err)
	}
	f, err := os.Create(snapshotPath(dir, index))
	if err != nil {
		return fmt.Errorf("render: creating snapshot file: %w", err)
	}
	defer f.Close()
	return png.Encode(f, img)
}

func toPixel(p edmd.Point, ppc, height int) image.Point {
	return image.Point{X: p.X * ppc, Y: height - p.Y*ppc}
}

func toPixelF(v edmd.Vec2, ppc, height int) image.Point {
	return image.Point{X: int(v.X() * float64(ppc)), Y: height - int(v.Y()*float64(ppc))}
}

func drawLine(img *image.RGBA, a, b image.Point, c color.Color) {
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	err := dx + dy
	x, y := a.X, a.Y
	for {
		img.Set(x, y, c)
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func drawCircle(img *image.RGBA, center image.Point, radius int, c color.Color) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.Set(center.X+dx, center.Y+dy, c)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

package edmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FileLogSink appends LogRecords to an on-disk log file in the plain-text
// format of spec.md §6: "time: <float> i: <int>" followed by one "pos x y"
// line per disk and one "vel vx vy" line per disk, records concatenated
// without separators. The file is opened once and held open for the
// lifetime of a run (spec.md §5: "append-only with exclusive writer").
type FileLogSink struct {
	f *os.File
	w *bufio.Writer
}

// NewFileLogSink truncates (or creates) path and returns a sink appending
// to it.
func NewFileLogSink(path string) (*FileLogSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("edmd: opening log file %q: %w", path, err)
	}
	return &FileLogSink{f: f, w: bufio.NewWriter(f)}, nil
}

func (s *FileLogSink) WriteRecord(rec LogRecord) error {
	fmt.Fprintf(s.w, "time: %v i: %d\n", rec.Time, rec.Index)
	for _, p := range rec.Pos {
		fmt.Fprintf(s.w, "pos %v %v\n", p.X(), p.Y())
	}
	for _, v := range rec.Vel {
		fmt.Fprintf(s.w, "vel %v %v\n", v.X(), v.Y())
	}
	return s.w.Flush()
}

// Close flushes and closes the underlying file.
func (s *FileLogSink) Close() error {
	if err := s.w.Flush(); err != nil {
		return err
	}
	return s.f.Close()
}

// ImportPositions parses the position-file format of spec.md §6: a header
// line followed by one "<x> <y>" tuple per disk.
func ImportPositions(path string) ([]Vec2, error) {
	return importTuples(path)
}

// ImportVelocities parses the velocity-file format of spec.md §6 (identical
// shape to the position file).
func ImportVelocities(path string) ([]Vec2, error) {
	return importTuples(path)
}

func importTuples(path string) ([]Vec2, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edmd: opening %q: %w", path, err)
	}
	defer f.Close()

	var out []Vec2
	sc := bufio.NewScanner(f)
	first := true
	for sc.Scan() {
		if first {
			first = false
			continue // header line
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedRecord, line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedRecord, line, err)
		}
		out = append(out, Vec2{x, y})
	}
	return out, sc.Err()
}

// ExportPositions writes pos to path in the spec.md §6 position-file format.
func ExportPositions(path string, pos []Vec2) error {
	return exportTuples(path, "Particle positions", pos)
}

// ExportVelocities writes vel to path in the spec.md §6 velocity-file
// format.
func ExportVelocities(path string, vel []Vec2) error {
	return exportTuples(path, "Particle velocities", vel)
}

func exportTuples(path, header string, vecs []Vec2) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edmd: creating %q: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, header)
	for _, v := range vecs {
		fmt.Fprintf(w, "%v %v\n", v.X(), v.Y())
	}
	return w.Flush()
}

// ExportMaze writes m's wall edges to path in the spec.md §6 maze-file
// format: a header line, then one "(x0 y0) -> (x1 y1)" line per edge.
func ExportMaze(path string, m *Maze) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edmd: creating %q: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "Maze wall coordinates")
	for _, e := range m.Walls.Edges() {
		fmt.Fprintf(w, "(%d %d) -> (%d %d)\n", e.A.X, e.A.Y, e.B.X, e.B.Y)
	}
	return w.Flush()
}

// ImportMaze parses the spec.md §6 maze-file format. Rows and Cols are
// inferred from the wall set: the border always reaches x=Cols, and the
// entry chamber always extends one cell past y=Rows.
func ImportMaze(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edmd: opening %q: %w", path, err)
	}
	defer f.Close()

	w := NewWallIndex()
	sc := bufio.NewScanner(f)
	first := true
	maxX, maxY := 0, 0
	for sc.Scan() {
		if first {
			first = false
			continue
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		a, b, err := parseEdgeLine(line)
		if err != nil {
			return nil, err
		}
		w.Add(a, b)
		for _, p := range [2]Point{a, b} {
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Maze{Rows: maxY - 1, Cols: maxX, Walls: w}, nil
}

func parseEdgeLine(line string) (Point, Point, error) {
	parts := strings.SplitN(line, " -> ", 2)
	if len(parts) != 2 {
		return Point{}, Point{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	a, err := parsePoint(parts[0])
	if err != nil {
		return Point{}, Point{}, err
	}
	b, err := parsePoint(parts[1])
	if err != nil {
		return Point{}, Point{}, err
	}
	return a, b, nil
}

func parsePoint(s string) (Point, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedRecord, s)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrMalformedRecord, s, err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrMalformedRecord, s, err)
	}
	return Point{x, y}, nil
}

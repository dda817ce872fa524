package edmd

import (
	"math/rand"

	"github.com/google/uuid"
)

// maze generation tunables, exposed on Config rather than hard-coded, per
// the teacher's preference for injectable resources over magic constants
// (mod_spatialgrid.go's cell size, mod_time.go's fixed tick) and directly
// answering spec.md §9 Open Question (b).
const (
	defaultPathContinueProb = 0.99
	defaultSafetyCap        = 10000
	defaultMazeRestarts     = 8
)

// Maze is the immutable wall set for an m-row by n-column grid, plus the
// entry chamber above column 0 and the exit aperture below column n-1.
type Maze struct {
	Rows, Cols int
	Walls      *WallIndex

	// ID tags this maze instance for reproducible-regeneration bookkeeping
	// (the teacher tags entities and assets with google/uuid for the same
	// reason: a stable handle that isn't a raw pointer or a reused integer).
	ID uuid.UUID
}

// MazeOptions configures GenerateMaze as a plain struct of tunables;
// DefaultMazeOptions supplies the defaults, and GenerateMaze substitutes a
// default for any non-positive field.
type MazeOptions struct {
	PathContinueProb float64
	SafetyCap        int
	MaxRestarts      int
	Rand             *rand.Rand
}

// DefaultMazeOptions returns the spec's defaults: a 0.99 per-step
// continuation probability, a 10,000 iteration safety cap per attempt, and
// up to 8 restart attempts before giving up.
func DefaultMazeOptions() MazeOptions {
	return MazeOptions{
		PathContinueProb: defaultPathContinueProb,
		SafetyCap:        defaultSafetyCap,
		MaxRestarts:      defaultMazeRestarts,
		Rand:             rand.New(rand.NewSource(1)),
	}
}

// GenerateMaze builds a guaranteed-solvable rows×cols maze: a randomised
// depth-first path with backtracking bias, stray-cell repair, wall
// derivation from the resulting connectivity graph, and the entry/exit
// openings. It restarts internally up to opts.MaxRestarts times if the path
// builder exceeds its safety cap, and only then returns
// ErrMazeGenerationFailed.
func GenerateMaze(rows, cols int, opts MazeOptions, log Logger) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDims
	}
	if log == nil {
		log = NewNopLogger()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.PathContinueProb <= 0 {
		opts.PathContinueProb = defaultPathContinueProb
	}
	if opts.SafetyCap <= 0 {
		opts.SafetyCap = defaultSafetyCap
	}
	if opts.MaxRestarts <= 0 {
		opts.MaxRestarts = defaultMazeRestarts
	}

	for attempt := 0; attempt < opts.MaxRestarts; attempt++ {
		conns, ok := buildPath(rows, cols, opts)
		if !ok {
			log.Debugf("maze: path builder exceeded safety cap on attempt %d, restarting", attempt)
			continue
		}
		repairStrays(rows, cols, conns, opts.Rand)
		walls := deriveWalls(rows, cols, conns)
		log.Infof("maze: generated %dx%d maze with %d wall edges", rows, cols, walls.Len())
		return &Maze{Rows: rows, Cols: cols, Walls: walls, ID: uuid.New()}, nil
	}
	return nil, ErrMazeGenerationFailed
}

// MaxX returns the largest x-coordinate among all wall edges — the column
// the exit aperture sits at the bottom of, and the reference x-coordinate
// the driver's exit check measures disk positions against.
func (m *Maze) MaxX() float64 {
	max := 0.0
	for _, e := range m.Walls.Edges() {
		if f := float64(e.A.X); f > max {
			max = f
		}
		if f := float64(e.B.X); f > max {
			max = f
		}
	}
	return max
}

// cellRowCol returns the 1-indexed (row, col) of cell b in an m×n grid,
// row-major: cell b has row ⌈b/n⌉, column ((b−1) mod n) + 1.
func cellRowCol(b, n int) (row, col int) {
	row = (b-1)/n + 1
	col = (b-1)%n + 1
	return
}

// cellIJ converts 1-indexed cell b to the 0-indexed grid coordinates (i, j)
// used everywhere else in this package: i is the column index (0..n-1,
// matching the x floor), j is the row index (0..m-1, matching the y floor,
// with row 1 (top of the enumeration) landing at j = m-1, the topmost row).
func cellIJ(b, rows, cols int) (i, j int) {
	r, c := cellRowCol(b, cols)
	return c - 1, rows - r
}

// buildPath runs the randomised DFS-with-backtracking-bias path construction
// of spec.md §4.1 step 2. Returns (connectivity, false) if the safety cap of
// opts.SafetyCap iterations was exceeded (caller should restart).
func buildPath(rows, cols int, opts MazeOptions) (conns map[int][]int, ok bool) {
	n := cols
	total := rows * cols
	inPath := make([]bool, total+1)
	conns = make(map[int][]int, total)
	for b := 1; b <= total; b++ {
		conns[b] = nil
	}
	inPath[1] = true
	stack := []int{1}
	check := 0

	for len(stack) > 0 {
		check++
		if check > opts.SafetyCap {
			return conns, false
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nbrs := validNeighbors(cur, rows, n)
		for opts.Rand.Float64() < opts.PathContinueProb && len(nbrs) > 0 {
			idx := opts.Rand.Intn(len(nbrs))
			nxt := nbrs[idx]
			nbrs = append(nbrs[:idx], nbrs[idx+1:]...)
			if !inPath[nxt] {
				conns[cur] = append(conns[cur], nxt)
				conns[nxt] = append(conns[nxt], cur)
				inPath[nxt] = true
				inPath[cur] = true
				stack = append(stack, nxt)
			}
		}
	}
	return conns, true
}

// validNeighbors returns the up-to-4 grid neighbors of cell cur, dropping
// off-grid candidates: cur+1 is dropped at the right border (cur mod n==0),
// cur-1 at the left border (cur mod n==1), cur-n below row 1, cur+n above
// the last row.
func validNeighbors(cur, rows, n int) []int {
	total := rows * n
	candidates := []int{cur + 1, cur - 1, cur + n, cur - n}
	out := make([]int, 0, 4)
	for _, x := range candidates {
		if x == cur+1 && cur%n == 0 {
			continue
		}
		if x == cur-1 && cur%n == 1 {
			continue
		}
		if x < 1 || x > total {
			continue
		}
		out = append(out, x)
	}
	return out
}

// repairStrays attaches any cell the main path missed: each round, every
// stray picks a random neighbor and is linked to it only if that neighbor
// is already in the path, so every stray joins the tree rooted at cell 1.
// Rounds repeat until no stray is left.
func repairStrays(rows, cols int, conns map[int][]int, rng *rand.Rand) {
	total := rows * cols
	inPath := make([]bool, total+1)
	for b := 1; b <= total; b++ {
		if len(conns[b]) > 0 || b == 1 {
			inPath[b] = true
		}
	}
	allIn := func() bool {
		for b := 1; b <= total; b++ {
			if !inPath[b] {
				return false
			}
		}
		return true
	}

	for !allIn() {
		var strays []int
		for b := 1; b <= total; b++ {
			if !inPath[b] {
				strays = append(strays, b)
			}
		}
		for _, cur := range strays {
			if inPath[cur] {
				continue
			}
			nbrs := validNeighbors(cur, rows, cols)
			if len(nbrs) == 0 {
				continue
			}
			pick := nbrs[rng.Intn(len(nbrs))]
			if !inPath[pick] {
				continue
			}
			conns[cur] = append(conns[cur], pick)
			conns[pick] = append(conns[pick], cur)
			inPath[cur] = true
		}
	}
}

// hasConn reports whether b and nbr are connected in the path graph.
func hasConn(conns map[int][]int, b, nbr int) bool {
	for _, x := range conns[b] {
		if x == nbr {
			return true
		}
	}
	return false
}

// deriveWalls builds the wall set from the connectivity graph: border edges,
// then interior walls wherever two adjacent cells are not connected, then
// the entry chamber and exit aperture.
func deriveWalls(rows, cols int, conns map[int][]int) *WallIndex {
	w := NewWallIndex()

	// Border: left column, right column, bottom row, top row.
	for j := 0; j < rows; j++ {
		w.Add(Point{0, j}, Point{0, j + 1})
		w.Add(Point{cols, j}, Point{cols, j + 1})
	}
	for i := 0; i < cols; i++ {
		w.Add(Point{i, 0}, Point{i + 1, 0})
		w.Add(Point{i, rows}, Point{i + 1, rows})
	}

	total := rows * cols
	for b := 1; b <= total; b++ {
		i, j := cellIJ(b, rows, cols)
		n := cols
		neighbors := map[int]WallEdge{
			b - n: CanonicalEdge(Point{i, j + 1}, Point{i + 1, j + 1}), // above in enumeration -> top edge
			b - 1: CanonicalEdge(Point{i, j}, Point{i, j + 1}),         // left edge
			b + 1: CanonicalEdge(Point{i + 1, j}, Point{i + 1, j + 1}), // right edge
			b + n: CanonicalEdge(Point{i, j}, Point{i + 1, j}),         // below in enumeration -> bottom edge
		}
		for nbr, edge := range neighbors {
			if nbr < 1 || nbr > total {
				continue
			}
			if !hasConn(conns, b, nbr) {
				w.edges[edge] = struct{}{}
			}
		}
	}

	// Entry chamber: a unit box above column 0, sharing its bottom edge
	// with the grid's top border at column 0.
	entryBottom := CanonicalEdge(Point{0, rows}, Point{1, rows})
	w.Add(Point{0, rows}, Point{0, rows + 1})
	w.Add(Point{1, rows}, Point{1, rows + 1})
	w.Add(Point{0, rows + 1}, Point{1, rows + 1})
	w.edges[entryBottom] = struct{}{}
	w.Remove(entryBottom.A, entryBottom.B) // connect entry chamber to the top row

	// Exit aperture: open the bottom border at the last column.
	w.Remove(Point{cols - 1, 0}, Point{cols, 0})

	return w
}

package edmd

// WinningDisk identifies the disk that solved the maze on the final log
// frame: the one with minimum y among disks whose x falls in the exit
// column, using the same window the driver's exit check uses. Returns
// ok=false if no disk is in that window (e.g. the run exhausted its event
// budget without anyone reaching the exit).
func WinningDisk(finalFrame LogRecord, maxX float64) (idx int, ok bool) {
	best := 0.0
	found := false
	for i, p := range finalFrame.Pos {
		if maxX-2 < p.X() && p.X() < maxX+1 {
			if !found || p.Y() < best {
				best = p.Y()
				idx = i
				found = true
			}
		}
	}
	return idx, found
}

// TracePositions extracts disk idx's position across every recorded frame,
// in frame order — the input render.PathTracer needs to plot a trajectory.
func TracePositions(frames []LogRecord, idx int) []Vec2 {
	out := make([]Vec2, 0, len(frames))
	for _, f := range frames {
		if idx < len(f.Pos) {
			out = append(out, f.Pos[idx])
		}
	}
	return out
}

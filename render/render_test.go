package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maze-md/edmd"
)

func simpleMaze() *edmd.Maze {
	w := edmd.NewWallIndex()
	for j := 0; j < 2; j++ {
		w.Add(edmd.Point{X: 0, Y: j}, edmd.Point{X: 0, Y: j + 1})
		w.Add(edmd.Point{X: 2, Y: j}, edmd.Point{X: 2, Y: j + 1})
	}
	for i := 0; i < 2; i++ {
		w.Add(edmd.Point{X: i, Y: 0}, edmd.Point{X: i + 1, Y: 0})
		w.Add(edmd.Point{X: i, Y: 2}, edmd.Point{X: i + 1, Y: 2})
	}
	return &edmd.Maze{Rows: 2, Cols: 2, Walls: w}
}

func TestRasterRenderer_WritesValidPNG(t *testing.T) {
	dir := t.TempDir()
	r := NewRasterRenderer()
	rec := edmd.LogRecord{Pos: []edmd.Vec2{{1, 1}}, Vel: []edmd.Vec2{{1, 0}}}

	require.NoError(t, r.RenderFrame(0, rec, 0.1, simpleMaze(), true, dir))

	f, err := os.Open(snapshotPath(dir, 0))
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestRenderAll_RendersEveryFrame(t *testing.T) {
	dir := t.TempDir()
	r := NewRasterRenderer()
	frames := []edmd.LogRecord{
		{Pos: []edmd.Vec2{{1, 1}}},
		{Pos: []edmd.Vec2{{1.1, 1}}},
		{Pos: []edmd.Vec2{{1.2, 1}}},
	}
	require.NoError(t, RenderAll(r, frames, 0.1, simpleMaze(), false, dir, 2))

	for i := range frames {
		_, err := os.Stat(snapshotPath(dir, i))
		assert.NoError(t, err)
	}
}

func TestResetSnapshotDir_ClearsExistingFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snaps")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	stale := filepath.Join(dir, "stale.png")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))

	require.NoError(t, ResetSnapshotDir(dir))
	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
}

func TestSelectRaster_WiresAllThreeBackends(t *testing.T) {
	b := SelectRaster(16)
	assert.Equal(t, BackendRaster, b.Name)
	assert.NotNil(t, b.Snapshot)
	assert.NotNil(t, b.Encoder)
	assert.NotNil(t, b.Tracer)
}

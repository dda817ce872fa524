package render

import "fmt"

// BackendName identifies a concrete output backend, mirroring the teacher's
// renderer-exclusivity naming (RendererWGPU / RendererVoxelRT) but for the
// two optional collaborators this package exposes.
type BackendName string

const (
	BackendRaster BackendName = "raster"
	BackendNull   BackendName = "null"
)

// Backends bundles the optional collaborators an orchestrator run wires in.
// Grounded on renderer_select.go's UseRenderer: exactly one SnapshotRenderer
// and one VideoEncoder are active per run, selected once.
type Backends struct {
	Name     BackendName
	Snapshot SnapshotRenderer
	Encoder  VideoEncoder
	Tracer   PathTracer
}

// SelectRaster wires the PNG rasteriser as the active snapshot/trace backend
// with no video encoding (the "missing optional dependency" path spec.md §7
// describes — video assembly is left to an external tool).
func SelectRaster(pixelsPerCell int) Backends {
	ppc := pixelsPerCell
	if ppc <= 0 {
		ppc = 32
	}
	return Backends{
		Name:     BackendRaster,
		Snapshot: &RasterRenderer{PixelsPerCell: ppc},
		Encoder:  NullEncoder{},
		Tracer:   &RasterPathTracer{PixelsPerCell: ppc},
	}
}

// SelectNull wires no-op backends, for runs that only care about the log
// file and never touch the filesystem for frames.
func SelectNull() Backends {
	return Backends{Name: BackendNull, Snapshot: nil, Encoder: NullEncoder{}, Tracer: nil}
}

func (b Backends) String() string {
	return fmt.Sprintf("render backend: %s", b.Name)
}

// Package render is the out-of-scope collaborator spec.md §1 names but
// deliberately doesn't specify: snapshot rendering, video encoding, and
// winning-disk path tracing. The core package (edmd) never imports this
// one — it only produces the LogRecord values this package consumes.
//
// Modeled on the teacher's voxelrt split: a self-contained, swappable
// subsystem that the rest of the engine talks to only through interfaces
// (renderer_select.go / renderer_guard.go's optional-dependency pattern),
// never through shared mutable state.
package render

// api.go — Build, the package's single public entry-point (spec §6's
// terminal build() -> Mesh | BuildError).
//
// Design contract:
//   - One orchestrator: Build(opts...). Resolves cfg, validates shape,
//     adds every vertex then every face in index order.
//   - Every WithX option resolves into an immutable config before any
//     vertex or face is added, so a rejected call never partially builds
//     a mesh.
//   - Safety: never panics; returns one of the BuildError sentinels
//     (errors.go) wrapped with positional context.
package builder

import (
	"fmt"

	"github.com/trimesh-go/trimesh/core"
)

// Build assembles a *core.Mesh from the buffers supplied via WithPositions
// and WithIndices. Vertices are added in the order given; faces are added
// in index-triple order. An index out of range fails with
// ErrIndexOutOfRange, and an index triple that would give some directed
// edge a second incident face fails with ErrNonManifoldIndex. On any
// error Build returns a nil mesh, so a partially built mesh is never
// handed back.
func Build(opts ...Option) (*core.Mesh, error) {
	cfg := newConfig(opts...)

	if cfg.flatPositionsErr {
		return nil, fmt.Errorf("Build: flat positions buffer: %w", ErrPositionsLength)
	}
	if len(cfg.indices)%3 != 0 {
		return nil, fmt.Errorf("Build: %d indices: %w", len(cfg.indices), ErrIndicesLength)
	}

	m := core.NewMesh(core.WithCapacityHint(len(cfg.positions), len(cfg.indices), len(cfg.indices)/3))

	verts := make([]core.VH, len(cfg.positions))
	for i, p := range cfg.positions {
		verts[i] = m.AddVertex(p)
	}

	for i := 0; i < len(cfg.indices); i += 3 {
		a, b, c := cfg.indices[i], cfg.indices[i+1], cfg.indices[i+2]
		for _, idx := range [3]int{a, b, c} {
			if idx < 0 || idx >= len(verts) {
				return nil, fmt.Errorf("Build: face %d references index %d: %w", i/3, idx, ErrIndexOutOfRange)
			}
		}
		if _, err := m.AddFace(verts[a], verts[b], verts[c]); err != nil {
			return nil, fmt.Errorf("Build: face %d (%d,%d,%d): %w", i/3, a, b, c, errWrap(err))
		}
	}
	return m, nil
}

// errWrap maps a core connectivity error onto the package's own
// ErrNonManifoldIndex sentinel so callers only need to know this
// package's error surface, while %v still shows the underlying cause.
func errWrap(err error) error {
	return fmt.Errorf("%w (%v)", ErrNonManifoldIndex, err)
}

// File: split_edge.go
// Role: split_edge (spec §4.3): introduce a vertex in the middle of a
// mesh-edge, retriangulating the one or two faces incident to it.
package editor

import (
	"github.com/trimesh-go/trimesh"
	"github.com/trimesh-go/trimesh/core"
)

// SplitOption configures a single split_edge or split_face call.
type SplitOption func(*splitConfig)

type splitConfig struct {
	position    trimesh.Vec3
	hasPosition bool
}

// WithPosition pins the new vertex to an explicit position instead of
// the edge midpoint (split_edge) or face centroid (split_face).
func WithPosition(p trimesh.Vec3) SplitOption {
	return func(c *splitConfig) {
		c.position = p
		c.hasPosition = true
	}
}

// SplitEdge introduces a new vertex on the mesh-edge h belongs to,
// retriangulating each incident face into two. A boundary edge (one
// incident face) yields two new faces on its one side and a new
// boundary segment on the other; an interior edge yields four new
// faces. Returns the new vertex handle.
//
// Atomic: every precondition is checked before the mesh is touched, and
// the two (or one) removed faces are only removed once every downstream
// allocation is known to succeed, so a rejected call leaves the mesh
// unchanged.
func SplitEdge(m *core.Mesh, h core.HH, opts ...SplitOption) (core.VH, error) {
	cfg := splitConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	a, err := m.HalfedgeOrigin(h)
	if err != nil {
		return core.NilVH, err
	}
	b, err := m.HalfedgeVertex(h)
	if err != nil {
		return core.NilVH, err
	}
	t, err := m.HalfedgeTwin(h)
	if err != nil {
		return core.NilVH, err
	}

	fL, err := m.HalfedgeFace(h)
	if err != nil {
		return core.NilVH, err
	}
	fR, err := m.HalfedgeFace(t)
	if err != nil {
		return core.NilVH, err
	}

	var c, d core.VH
	if !fL.IsNil() {
		c, err = thirdVertex(m, fL, a, b)
		if err != nil {
			return core.NilVH, err
		}
	}
	if !fR.IsNil() {
		d, err = thirdVertex(m, fR, a, b)
		if err != nil {
			return core.NilVH, err
		}
	}

	pos := cfg.position
	if !cfg.hasPosition {
		pa, err := m.VertexPosition(a)
		if err != nil {
			return core.NilVH, err
		}
		pb, err := m.VertexPosition(b)
		if err != nil {
			return core.NilVH, err
		}
		pos = pa.Midpoint(pb)
	}

	// Pre-validate before any removal: the only way the replacement
	// AddFace calls can fail is if the two incident faces share their
	// apex (c == d), which would make face2 and face4 both claim the
	// directed edge between the new vertex and that shared apex.
	if !fL.IsNil() && !fR.IsNil() && c == d {
		return core.NilVH, ErrDegenerateGeometry
	}

	if !fL.IsNil() {
		if err := m.RemoveFace(fL); err != nil {
			return core.NilVH, err
		}
	}
	if !fR.IsNil() {
		if err := m.RemoveFace(fR); err != nil {
			return core.NilVH, err
		}
	}

	nv := m.AddVertex(pos)

	if !fL.IsNil() {
		if _, err := m.AddFace(a, nv, c); err != nil {
			return core.NilVH, err
		}
		if _, err := m.AddFace(nv, b, c); err != nil {
			return core.NilVH, err
		}
	}
	if !fR.IsNil() {
		if _, err := m.AddFace(b, nv, d); err != nil {
			return core.NilVH, err
		}
		if _, err := m.AddFace(nv, a, d); err != nil {
			return core.NilVH, err
		}
	}
	return nv, nil
}

// thirdVertex returns whichever of f's three vertices is neither a nor b.
func thirdVertex(m *core.Mesh, f core.FH, a, b core.VH) (core.VH, error) {
	verts, err := m.FaceVertices(f)
	if err != nil {
		return core.NilVH, err
	}
	for _, v := range verts {
		if v != a && v != b {
			return v, nil
		}
	}
	return core.NilVH, core.ErrDegenerateTopology
}

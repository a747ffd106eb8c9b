// File: split_face.go
// Role: split_face (spec §4.3): introduce a vertex in the interior of a
// face, replacing it with three faces fanned around the new vertex.
package editor

import "github.com/trimesh-go/trimesh/core"

// SplitFace introduces a new vertex inside f (its centroid by default,
// or an explicit WithPosition), replacing f with three faces. Returns
// the new vertex handle.
func SplitFace(m *core.Mesh, f core.FH, opts ...SplitOption) (core.VH, error) {
	cfg := splitConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	verts, err := m.FaceVertices(f)
	if err != nil {
		return core.NilVH, err
	}

	pos := cfg.position
	if !cfg.hasPosition {
		p0, err := m.VertexPosition(verts[0])
		if err != nil {
			return core.NilVH, err
		}
		p1, err := m.VertexPosition(verts[1])
		if err != nil {
			return core.NilVH, err
		}
		p2, err := m.VertexPosition(verts[2])
		if err != nil {
			return core.NilVH, err
		}
		pos = p0.Add(p1).Add(p2).Scale(1.0 / 3.0)
	}

	// Pre-validate before removal. The three replacement faces each pair
	// one of f's own (already-distinct) edges with the new vertex, which
	// does not exist yet and so cannot collide with anything already in
	// the mesh; the one precondition that actually matters is that f's
	// three vertices are themselves distinct.
	if verts[0] == verts[1] || verts[1] == verts[2] || verts[2] == verts[0] {
		return core.NilVH, core.ErrDegenerateTopology
	}

	if err := m.RemoveFace(f); err != nil {
		return core.NilVH, err
	}
	nv := m.AddVertex(pos)

	if _, err := m.AddFace(verts[0], verts[1], nv); err != nil {
		return core.NilVH, err
	}
	if _, err := m.AddFace(verts[1], verts[2], nv); err != nil {
		return core.NilVH, err
	}
	if _, err := m.AddFace(verts[2], verts[0], nv); err != nil {
		return core.NilVH, err
	}
	return nv, nil
}

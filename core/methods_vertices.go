// File: methods_vertices.go
// Role: Vertex lifecycle and queries.
package core

import "github.com/trimesh-go/trimesh"

// AddVertex inserts a new, isolated vertex at pos and returns its handle.
// Complexity: O(1) amortized.
func (m *Mesh) AddVertex(pos trimesh.Vec3) VH {
	return m.allocVertex(pos)
}

// RemoveVertex deletes an isolated vertex. Cascading removal (deleting a
// vertex's incident faces first) is an editor-layer concern; see spec
// §4.1 and the editor package's RemoveFace.
func (m *Mesh) RemoveVertex(v VH) error {
	s, err := m.resolveVertex(v)
	if err != nil {
		return err
	}
	if !s.out.IsNil() {
		return ErrNotIsolated
	}
	m.freeVertex(v)
	return nil
}

// VertexPosition returns the position stored at v.
func (m *Mesh) VertexPosition(v VH) (trimesh.Vec3, error) {
	s, err := m.resolveVertex(v)
	if err != nil {
		return trimesh.Vec3{}, err
	}
	return s.pos, nil
}

// SetVertexPosition overwrites the position stored at v (used by editors
// that relocate a vertex, e.g. collapse_edge's midpoint, and by the
// builder's affine-transform collaborator).
func (m *Mesh) SetVertexPosition(v VH, pos trimesh.Vec3) error {
	s, err := m.resolveVertex(v)
	if err != nil {
		return err
	}
	s.pos = pos
	return nil
}

// VertexOutgoing returns v's stored outgoing half-edge, or NilHH if v is
// isolated. When v has a boundary gap, the stored outgoing half-edge is
// always the boundary one (invariant 5), which is what lets a single
// rotation starting here enumerate the whole fan.
func (m *Mesh) VertexOutgoing(v VH) (HH, error) {
	s, err := m.resolveVertex(v)
	if err != nil {
		return NilHH, err
	}
	return s.out, nil
}

// VertexValid reports whether v refers to a live vertex in this mesh.
func (m *Mesh) VertexValid(v VH) bool {
	_, err := m.resolveVertex(v)
	return err == nil
}

// VertexCount returns the number of live vertices.
func (m *Mesh) VertexCount() int {
	return len(m.verts) - 1 - len(m.freeV)
}

// AllVertexHandles returns a snapshot of every live vertex handle in
// arena order. The iterator-invalidation contract (spec §4.2) applies:
// the slice is a snapshot, not a live view, and is safe to range over
// even while the caller later mutates the mesh, but a second call after
// mutation is needed to see the new state.
func (m *Mesh) AllVertexHandles() []VH {
	out := make([]VH, 0, m.VertexCount())
	for i := 1; i < len(m.verts); i++ {
		s := &m.verts[i]
		if s.alive {
			out = append(out, VH{idx: uint32(i), gen: s.gen})
		}
	}
	return out
}

// SetVertexOutgoing overwrites v's stored outgoing half-edge. Exported
// for the editor package, which must rewire this pointer during split,
// collapse, and flip; ordinary callers should not need it.
func (m *Mesh) SetVertexOutgoing(v VH, h HH) error {
	s, err := m.resolveVertex(v)
	if err != nil {
		return err
	}
	s.out = h
	return nil
}

// DeleteVertexRaw unconditionally frees a vertex slot. The caller (the
// editor package) is responsible for having already verified isolation;
// this exists alongside RemoveVertex so editors can delete a vertex as
// one step of a larger, pre-validated, atomic operation without paying
// for redundant validation.
func (m *Mesh) DeleteVertexRaw(v VH) error {
	if _, err := m.resolveVertex(v); err != nil {
		return err
	}
	m.freeVertex(v)
	return nil
}

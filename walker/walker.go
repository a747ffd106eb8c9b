// File: walker.go
// Role: The Walker cursor and its three primitive moves.
package walker

import "github.com/trimesh-go/trimesh/core"

// Walker is a lightweight, read-only cursor over a mesh's half-edges. It
// borrows the mesh; it never mutates it and is cheap to copy. Every move
// method returns a new Walker rather than mutating the receiver, so
// chaining (w.AsNext().AsTwin()...) never aliases a caller's cursor.
type Walker struct {
	mesh *core.Mesh
	cur  core.HH
}

// New returns a Walker positioned at start.
func New(m *core.Mesh, start core.HH) Walker {
	return Walker{mesh: m, cur: start}
}

// Halfedge returns the half-edge the cursor currently refers to.
func (w Walker) Halfedge() core.HH { return w.cur }

// Valid reports whether the cursor refers to a live half-edge.
func (w Walker) Valid() bool { return w.mesh.HalfedgeValid(w.cur) }

// VertexID returns the destination vertex of the current half-edge.
func (w Walker) VertexID() (core.VH, error) { return w.mesh.HalfedgeVertex(w.cur) }

// FaceID returns the face on the current half-edge's left, or
// core.NilFH if the cursor is on the boundary side.
func (w Walker) FaceID() (core.FH, error) { return w.mesh.HalfedgeFace(w.cur) }

// AsNext moves to the next half-edge around the current loop (the
// current face's loop if interior, the boundary loop if not).
func (w Walker) AsNext() Walker {
	n, err := w.mesh.HalfedgeNext(w.cur)
	if err != nil {
		return Walker{mesh: w.mesh, cur: core.NilHH}
	}
	return Walker{mesh: w.mesh, cur: n}
}

// AsTwin moves to the opposite half-edge of the same mesh-edge.
func (w Walker) AsTwin() Walker {
	t, err := w.mesh.HalfedgeTwin(w.cur)
	if err != nil {
		return Walker{mesh: w.mesh, cur: core.NilHH}
	}
	return Walker{mesh: w.mesh, cur: t}
}

// AsPrevious moves to the half-edge before the current one in its loop
// (next.next for a triangle's interior side; a fan rotation on the
// boundary side).
func (w Walker) AsPrevious() Walker {
	p, err := w.mesh.HalfedgePrev(w.cur)
	if err != nil {
		return Walker{mesh: w.mesh, cur: core.NilHH}
	}
	return Walker{mesh: w.mesh, cur: p}
}

// File: flip_edge.go
// Role: flip_edge (spec §4.3): replace an interior edge's diagonal with
// the other diagonal of the quad formed by its two incident faces.
package editor

import "github.com/trimesh-go/trimesh/core"

// FlipEdge replaces the mesh-edge h belongs to with the opposite
// diagonal of the quadrilateral formed by its two incident faces.
// Requires h to be an interior edge (ErrBoundaryOperationNotPermitted
// otherwise) and the new diagonal to not already exist elsewhere in the
// mesh (ErrEdgeAlreadyExists otherwise).
func FlipEdge(m *core.Mesh, h core.HH) error {
	a, err := m.HalfedgeOrigin(h)
	if err != nil {
		return err
	}
	b, err := m.HalfedgeVertex(h)
	if err != nil {
		return err
	}
	t, err := m.HalfedgeTwin(h)
	if err != nil {
		return err
	}
	fL, err := m.HalfedgeFace(h)
	if err != nil {
		return err
	}
	fR, err := m.HalfedgeFace(t)
	if err != nil {
		return err
	}
	if fL.IsNil() || fR.IsNil() {
		return ErrBoundaryOperationNotPermitted
	}

	c, err := thirdVertex(m, fL, a, b)
	if err != nil {
		return err
	}
	d, err := thirdVertex(m, fR, a, b)
	if err != nil {
		return err
	}
	if c == d {
		return ErrDegenerateGeometry
	}

	if _, err := m.HalfedgeBetween(c, d); err == nil {
		return ErrEdgeAlreadyExists
	} else if err != core.ErrHalfedgeNotFound {
		return err
	}
	if _, err := m.HalfedgeBetween(d, c); err == nil {
		return ErrEdgeAlreadyExists
	} else if err != core.ErrHalfedgeNotFound {
		return err
	}

	if err := m.RemoveFace(fL); err != nil {
		return err
	}
	if err := m.RemoveFace(fR); err != nil {
		return err
	}

	if _, err := m.AddFace(c, a, d); err != nil {
		return err
	}
	if _, err := m.AddFace(d, b, c); err != nil {
		return err
	}
	return nil
}

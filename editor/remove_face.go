// File: remove_face.go
// Role: remove_face (spec §4.3): open a hole, then cascade-delete any
// vertex the removal left isolated — the cleanup core.RemoveFace leaves
// to its callers (spec §4.1).
package editor

import "github.com/trimesh-go/trimesh/core"

// RemoveFace deletes f and any of its three vertices that the deletion
// left with no remaining incident half-edge.
func RemoveFace(m *core.Mesh, f core.FH) error {
	verts, err := m.FaceVertices(f)
	if err != nil {
		return err
	}
	if err := m.RemoveFace(f); err != nil {
		return err
	}
	for _, v := range verts {
		out, err := m.VertexOutgoing(v)
		if err != nil {
			return err
		}
		if out.IsNil() {
			if err := m.RemoveVertex(v); err != nil {
				return err
			}
		}
	}
	return nil
}

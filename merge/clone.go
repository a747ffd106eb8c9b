// File: clone.go
// Role: CloneSubset (spec §4.6): rebuild a standalone mesh containing
// exactly a given set of faces.
package merge

import "github.com/trimesh-go/trimesh/core"

// CloneSubset returns a new, independent mesh containing exactly the
// given faces (and whichever of m's vertices they touch), re-deriving
// boundary classification from scratch via core.AddFace. Faces are
// deduplicated; duplicate handles in faces are harmless.
func CloneSubset(m *core.Mesh, faces []core.FH) (*core.Mesh, error) {
	out := core.NewMesh()
	oldToNew := make(map[core.VH]core.VH)
	seen := make(map[core.FH]bool, len(faces))

	for _, f := range faces {
		if seen[f] {
			continue
		}
		seen[f] = true

		verts, err := m.FaceVertices(f)
		if err != nil {
			return nil, err
		}
		var mapped [3]core.VH
		for i, v := range verts {
			nv, ok := oldToNew[v]
			if !ok {
				pos, err := m.VertexPosition(v)
				if err != nil {
					return nil, err
				}
				nv = out.AddVertex(pos)
				oldToNew[v] = nv
			}
			mapped[i] = nv
		}
		if _, err := out.AddFace(mapped[0], mapped[1], mapped[2]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

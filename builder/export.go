// export.go — the read-side of spec §6: flat buffers a renderer or file
// writer would want back out of a built mesh.
package builder

import (
	"github.com/trimesh-go/trimesh/core"
	"github.com/trimesh-go/trimesh/measures"
)

// PositionsBuffer returns every live vertex's position, flattened to
// [x0,y0,z0,x1,y1,z1,...] in AllVertexHandles order.
func PositionsBuffer(m *core.Mesh) []float64 {
	handles := m.AllVertexHandles()
	out := make([]float64, 0, len(handles)*3)
	for _, v := range handles {
		p, err := m.VertexPosition(v)
		if err != nil {
			continue
		}
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}

// IndicesBuffer returns every live face's three vertex positions' index
// into PositionsBuffer's order, flattened to [i0,i1,i2,...] in
// AllFaceHandles (face-discovery) order, deterministic for the same
// construction history.
func IndicesBuffer(m *core.Mesh) ([]int, error) {
	handles := m.AllVertexHandles()
	index := make(map[core.VH]int, len(handles))
	for i, v := range handles {
		index[v] = i
	}

	faces := m.AllFaceHandles()
	out := make([]int, 0, len(faces)*3)
	for _, f := range faces {
		verts, err := m.FaceVertices(f)
		if err != nil {
			return nil, err
		}
		for _, v := range verts {
			out = append(out, index[v])
		}
	}
	return out, nil
}

// NormalsBuffer returns each vertex's normal, flattened to
// [x0,y0,z0,x1,...] in the same AllVertexHandles order as PositionsBuffer.
// A config built WithNormals returns that override buffer directly;
// otherwise each vertex's normal is the area-weighted average of its
// incident face normals (measures.VertexNormal).
func NormalsBuffer(m *core.Mesh, cfg ...Option) ([]float64, error) {
	c := newConfig(cfg...)
	if c.hasNormals {
		out := make([]float64, 0, len(c.normals)*3)
		for _, n := range c.normals {
			out = append(out, n.X, n.Y, n.Z)
		}
		return out, nil
	}

	handles := m.AllVertexHandles()
	out := make([]float64, 0, len(handles)*3)
	for _, v := range handles {
		n, err := measures.VertexNormal(m, v)
		if err != nil {
			return nil, err
		}
		out = append(out, n.X, n.Y, n.Z)
	}
	return out, nil
}

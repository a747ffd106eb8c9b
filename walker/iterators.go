// File: iterators.go
// Role: Global and adjacency iterators built on top of Walker and core's
// snapshot handle lists (spec §4.2).
package walker

import "github.com/trimesh-go/trimesh/core"

// Vertices returns a snapshot of every live vertex handle in m.
func Vertices(m *core.Mesh) []core.VH { return m.AllVertexHandles() }

// Halfedges returns a snapshot of every live half-edge handle in m,
// including both sides of every mesh-edge.
func Halfedges(m *core.Mesh) []core.HH { return m.AllHalfedgeHandles() }

// Faces returns a snapshot of every live face handle in m.
func Faces(m *core.Mesh) []core.FH { return m.AllFaceHandles() }

// Edges returns one half-edge per mesh-edge: the canonical side, chosen
// as whichever of a half-edge and its twin comes first in arena order
// (spec §3's "an edge is identified by its two half-edges, normalized by
// picking the smaller handle"). AllHalfedgeHandles already enumerates in
// ascending arena order, so the first of {h, twin} encountered while
// scanning is the canonical one. Each mesh-edge therefore appears
// exactly once, regardless of how many times Halfedges would report its
// two sides.
func Edges(m *core.Mesh) ([]core.HH, error) {
	all := m.AllHalfedgeHandles()
	seen := make(map[core.HH]bool, len(all))
	out := make([]core.HH, 0, len(all)/2+1)
	for _, h := range all {
		if seen[h] {
			continue
		}
		t, err := m.HalfedgeTwin(h)
		if err != nil {
			return nil, err
		}
		seen[h] = true
		seen[t] = true
		out = append(out, h)
	}
	return out, nil
}

// FaceHalfedges returns f's three half-edges in loop order (spec §4.2
// face-adjacency iteration), delegating to core.
func FaceHalfedges(m *core.Mesh, f core.FH) ([3]core.HH, error) {
	return m.FaceHalfedges(f)
}

// FaceVertices returns f's three vertices in winding order.
func FaceVertices(m *core.Mesh, f core.FH) ([3]core.VH, error) {
	return m.FaceVertices(f)
}

// OutgoingHalfedges returns every half-edge outgoing from v, in fan
// order (spec §4.2 vertex-adjacency iteration), delegating to core.
func OutgoingHalfedges(m *core.Mesh, v core.VH) ([]core.HH, error) {
	return m.OutgoingHalfedges(v)
}

// IncomingHalfedges returns every half-edge incoming to v (the twins of
// its outgoing half-edges), in the same fan order.
func IncomingHalfedges(m *core.Mesh, v core.VH) ([]core.HH, error) {
	out, err := m.OutgoingHalfedges(v)
	if err != nil {
		return nil, err
	}
	in := make([]core.HH, len(out))
	for i, h := range out {
		t, err := m.HalfedgeTwin(h)
		if err != nil {
			return nil, err
		}
		in[i] = t
	}
	return in, nil
}

// NeighborFaces returns the (up to deg(v)) distinct faces incident to v,
// skipping boundary gaps, in fan order.
func NeighborFaces(m *core.Mesh, v core.VH) ([]core.FH, error) {
	out, err := m.OutgoingHalfedges(v)
	if err != nil {
		return nil, err
	}
	faces := make([]core.FH, 0, len(out))
	for _, h := range out {
		f, err := m.HalfedgeFace(h)
		if err != nil {
			return nil, err
		}
		if !f.IsNil() {
			faces = append(faces, f)
		}
	}
	return faces, nil
}

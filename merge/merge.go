// File: merge.go
// Role: MergeWith (spec §4.6): splice src's faces into dst, matching
// src's boundary vertices against dst's within tolerance, rolling back
// if the splice would violate dst's manifold-with-boundary invariants.
package merge

import (
	"errors"
	"fmt"

	"github.com/trimesh-go/trimesh"
	"github.com/trimesh-go/trimesh/core"
	"github.com/trimesh-go/trimesh/editor"
)

// ErrMergeIncompatible is returned by MergeWith when splicing src's
// faces into dst would create a non-manifold edge; dst is left
// unchanged.
var ErrMergeIncompatible = errors.New("merge: meshes are not compatible to merge")

// MergeWith copies every face of src into dst. A boundary vertex of src
// within eps of a boundary vertex of dst is stitched to it (made the
// same vertex); every other src vertex becomes a new dst vertex. Fails
// with ErrMergeIncompatible, leaving dst exactly as it was, if any src
// face would give dst a non-manifold edge.
func MergeWith(dst *core.Mesh, src *core.Mesh, eps float64) error {
	dstBoundary, err := boundaryVertices(dst)
	if err != nil {
		return err
	}
	used := make(map[core.VH]bool, len(dstBoundary))

	vertexMap := make(map[core.VH]core.VH)
	var addedVertices []core.VH

	for _, v := range src.AllVertexHandles() {
		pos, err := src.VertexPosition(v)
		if err != nil {
			return err
		}
		isBoundary, err := vertexHasBoundaryGap(src, v)
		if err != nil {
			return err
		}
		if isBoundary {
			if match, ok := nearestUnused(dst, dstBoundary, used, pos, eps); ok {
				vertexMap[v] = match
				used[match] = true
				continue
			}
		}
		nv := dst.AddVertex(pos)
		addedVertices = append(addedVertices, nv)
		vertexMap[v] = nv
	}

	var addedFaces []core.FH
	for _, f := range src.AllFaceHandles() {
		verts, err := src.FaceVertices(f)
		if err != nil {
			rollback(dst, addedFaces, addedVertices)
			return err
		}
		a, b, c := vertexMap[verts[0]], vertexMap[verts[1]], vertexMap[verts[2]]
		nf, err := dst.AddFace(a, b, c)
		if err != nil {
			rollback(dst, addedFaces, addedVertices)
			return fmt.Errorf("%w: %v", ErrMergeIncompatible, err)
		}
		addedFaces = append(addedFaces, nf)
	}
	return nil
}

func rollback(dst *core.Mesh, faces []core.FH, vertices []core.VH) {
	for i := len(faces) - 1; i >= 0; i-- {
		_ = editor.RemoveFace(dst, faces[i])
	}
	for _, v := range vertices {
		if dst.VertexValid(v) {
			_ = dst.RemoveVertex(v)
		}
	}
}

func boundaryVertices(m *core.Mesh) ([]core.VH, error) {
	var out []core.VH
	for _, v := range m.AllVertexHandles() {
		has, err := vertexHasBoundaryGap(m, v)
		if err != nil {
			return nil, err
		}
		if has {
			out = append(out, v)
		}
	}
	return out, nil
}

func vertexHasBoundaryGap(m *core.Mesh, v core.VH) (bool, error) {
	out, err := m.OutgoingHalfedges(v)
	if err != nil {
		return false, err
	}
	for _, h := range out {
		f, err := m.HalfedgeFace(h)
		if err != nil {
			return false, err
		}
		if f.IsNil() {
			return true, nil
		}
	}
	return false, nil
}

func nearestUnused(m *core.Mesh, candidates []core.VH, used map[core.VH]bool, pos trimesh.Vec3, eps float64) (core.VH, bool) {
	best := core.NilVH
	bestDist := eps
	found := false
	for _, c := range candidates {
		if used[c] {
			continue
		}
		p, err := m.VertexPosition(c)
		if err != nil {
			continue
		}
		d := p.Sub(pos).Norm()
		if d <= bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trimesh-go/trimesh"
	"github.com/trimesh-go/trimesh/core"
)

func singleTriangle(t *testing.T, ox float64) *core.Mesh {
	t.Helper()
	m := core.NewMesh()
	a := m.AddVertex(trimesh.Vec3{ox + 0, 0, 0})
	b := m.AddVertex(trimesh.Vec3{ox + 1, 0, 0})
	c := m.AddVertex(trimesh.Vec3{ox + 0, 1, 0})
	_, err := m.AddFace(a, b, c)
	require.NoError(t, err)
	return m
}

func TestCloneSubsetReproducesFaceCount(t *testing.T) {
	m := singleTriangle(t, 0)
	faces := m.AllFaceHandles()

	clone, err := CloneSubset(m, faces)
	require.NoError(t, err)
	assert.Equal(t, 1, clone.FaceCount())
	assert.Equal(t, 3, clone.VertexCount())
}

func TestCloneSubsetDeduplicatesSharedVertices(t *testing.T) {
	m := core.NewMesh()
	a := m.AddVertex(trimesh.Vec3{0, 0, 0})
	b := m.AddVertex(trimesh.Vec3{1, 0, 0})
	c := m.AddVertex(trimesh.Vec3{0, 1, 0})
	d := m.AddVertex(trimesh.Vec3{1, 1, 0})
	_, err := m.AddFace(a, b, c)
	require.NoError(t, err)
	_, err = m.AddFace(b, d, c)
	require.NoError(t, err)

	clone, err := CloneSubset(m, m.AllFaceHandles())
	require.NoError(t, err)
	assert.Equal(t, 4, clone.VertexCount())
	assert.Equal(t, 2, clone.FaceCount())
}

func TestMergeWithStitchesSharedBoundaryEdge(t *testing.T) {
	// Two triangles that share an edge across the ox=1 seam once
	// stitched: (0,0)-(1,0)-(0,1) and (1,0)-(1,1)-(0,1) share the
	// (1,0)-(0,1) edge.
	dst := core.NewMesh()
	a := dst.AddVertex(trimesh.Vec3{0, 0, 0})
	b := dst.AddVertex(trimesh.Vec3{1, 0, 0})
	c := dst.AddVertex(trimesh.Vec3{0, 1, 0})
	_, err := dst.AddFace(a, b, c)
	require.NoError(t, err)

	src := core.NewMesh()
	b2 := src.AddVertex(trimesh.Vec3{1, 0, 0})
	d2 := src.AddVertex(trimesh.Vec3{1, 1, 0})
	c2 := src.AddVertex(trimesh.Vec3{0, 1, 0})
	_, err = src.AddFace(b2, d2, c2)
	require.NoError(t, err)

	require.NoError(t, MergeWith(dst, src, 1e-9))
	assert.Equal(t, 4, dst.VertexCount(), "b and c were stitched, d is new")
	assert.Equal(t, 2, dst.FaceCount())

	h, err := dst.HalfedgeBetween(b, c)
	require.NoError(t, err)
	t2, err := dst.HalfedgeTwin(h)
	require.NoError(t, err)
	fL, err := dst.HalfedgeFace(h)
	require.NoError(t, err)
	fR, err := dst.HalfedgeFace(t2)
	require.NoError(t, err)
	assert.False(t, fL.IsNil())
	assert.False(t, fR.IsNil(), "the shared edge now has a face on both sides")
}

func TestMergeWithRollsBackOnNonManifoldEdge(t *testing.T) {
	dst := core.NewMesh()
	a := dst.AddVertex(trimesh.Vec3{0, 0, 0})
	b := dst.AddVertex(trimesh.Vec3{1, 0, 0})
	c := dst.AddVertex(trimesh.Vec3{0, 1, 0})
	_, err := dst.AddFace(a, b, c)
	require.NoError(t, err)

	// src duplicates the exact same triangle at the exact same
	// positions: every vertex stitches, and re-adding (a,b,c) collides
	// with the existing face's orientation, giving a non-manifold edge.
	src := core.NewMesh()
	a2 := src.AddVertex(trimesh.Vec3{0, 0, 0})
	b2 := src.AddVertex(trimesh.Vec3{1, 0, 0})
	c2 := src.AddVertex(trimesh.Vec3{0, 1, 0})
	_, err = src.AddFace(a2, b2, c2)
	require.NoError(t, err)

	beforeV, beforeF := dst.VertexCount(), dst.FaceCount()
	err = MergeWith(dst, src, 1e-9)
	assert.ErrorIs(t, err, ErrMergeIncompatible)
	assert.Equal(t, beforeV, dst.VertexCount())
	assert.Equal(t, beforeF, dst.FaceCount())
}

package isect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trimesh-go/trimesh"
)

const testEps = 1e-9

func TestEdgePointClassifiesInteriorVertexAndOutside(t *testing.T) {
	a := trimesh.Vec3{0, 0, 0}
	b := trimesh.Vec3{2, 0, 0}

	mid := EdgePoint(a, b, trimesh.Vec3{1, 0, 0}, testEps)
	assert.Equal(t, OnEdge, mid.Class)
	assert.InDelta(t, 0.5, mid.T, 1e-9)

	atA := EdgePoint(a, b, trimesh.Vec3{0, 0, 0}, testEps)
	assert.Equal(t, OnVertex, atA.Class)

	off := EdgePoint(a, b, trimesh.Vec3{1, 1, 0}, testEps)
	assert.Equal(t, Outside, off.Class)
}

func TestFacePointClassifiesCornerEdgeAndInterior(t *testing.T) {
	tri := [3]trimesh.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	corner := FacePoint(tri, trimesh.Vec3{0, 0, 0}, testEps)
	assert.Equal(t, OnVertex, corner.Class)

	onEdge := FacePoint(tri, trimesh.Vec3{0.5, 0, 0}, testEps)
	assert.Equal(t, OnEdge, onEdge.Class)

	inside := FacePoint(tri, trimesh.Vec3{0.25, 0.25, 0}, testEps)
	assert.Equal(t, Inside, inside.Class)

	outside := FacePoint(tri, trimesh.Vec3{2, 2, 0}, testEps)
	assert.Equal(t, Outside, outside.Class)
}

func TestEdgeEdgeCrossingSegments(t *testing.T) {
	res := EdgeEdge(
		trimesh.Vec3{-1, 0, 0}, trimesh.Vec3{1, 0, 0},
		trimesh.Vec3{0, -1, 0}, trimesh.Vec3{0, 1, 0},
		testEps,
	)
	assert.True(t, res.Hit)
	assert.InDelta(t, 0, res.Point.X, 1e-9)
	assert.InDelta(t, 0, res.Point.Y, 1e-9)
	assert.Equal(t, OnEdge, res.Class1)
	assert.Equal(t, OnEdge, res.Class2)
}

func TestEdgeEdgeParallelSegmentsMiss(t *testing.T) {
	res := EdgeEdge(
		trimesh.Vec3{0, 0, 0}, trimesh.Vec3{1, 0, 0},
		trimesh.Vec3{0, 1, 0}, trimesh.Vec3{1, 1, 0},
		testEps,
	)
	assert.False(t, res.Hit)
}

func TestFaceEdgePiercingThroughTriangle(t *testing.T) {
	tri := [3]trimesh.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	res := FaceEdge(tri, trimesh.Vec3{0.2, 0.2, -1}, trimesh.Vec3{0.2, 0.2, 1}, testEps)
	assert.True(t, res.Hit)
	assert.Equal(t, Inside, res.FaceClass)
	assert.InDelta(t, 0.5, res.T, 1e-9)
}

func TestFaceEdgeMissingTriangle(t *testing.T) {
	tri := [3]trimesh.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	res := FaceEdge(tri, trimesh.Vec3{5, 5, -1}, trimesh.Vec3{5, 5, 1}, testEps)
	assert.False(t, res.Hit)
}

func TestFaceRayHitsBackFace(t *testing.T) {
	tri := [3]trimesh.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	res := FaceRay(tri, trimesh.Vec3{0.2, 0.2, -5}, trimesh.Vec3{0, 0, 1}, testEps)
	assert.True(t, res.Hit)
	assert.InDelta(t, 5, res.T, 1e-9)
}

func TestFaceRayMissesBehindOrigin(t *testing.T) {
	tri := [3]trimesh.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	res := FaceRay(tri, trimesh.Vec3{0.2, 0.2, 5}, trimesh.Vec3{0, 0, 1}, testEps)
	assert.False(t, res.Hit)
}

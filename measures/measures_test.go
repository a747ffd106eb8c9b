package measures

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trimesh-go/trimesh"
	"github.com/trimesh-go/trimesh/core"
)

func rightTriangle(t *testing.T) (*core.Mesh, core.FH) {
	t.Helper()
	m := core.NewMesh()
	a := m.AddVertex(trimesh.Vec3{0, 0, 0})
	b := m.AddVertex(trimesh.Vec3{1, 0, 0})
	c := m.AddVertex(trimesh.Vec3{0, 1, 0})
	f, err := m.AddFace(a, b, c)
	require.NoError(t, err)
	return m, f
}

func TestFaceAreaAndNormal(t *testing.T) {
	m, f := rightTriangle(t)

	area, err := FaceArea(m, f)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, area, 1e-12)

	n, err := FaceNormal(m, f)
	require.NoError(t, err)
	assert.InDelta(t, 1, n.Norm(), 1e-12)
	assert.InDelta(t, 1, n.Z, 1e-12, "CCW triangle in the XY plane faces +Z")
}

func TestFaceAnglesSumToPi(t *testing.T) {
	m, f := rightTriangle(t)
	angles, err := FaceAngles(m, f)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, angles[0]+angles[1]+angles[2], 1e-9)
	assert.InDelta(t, math.Pi/2, angles[0], 1e-9, "right angle at the origin vertex")
}

func TestDegenerateFaceNormal(t *testing.T) {
	m := core.NewMesh()
	a := m.AddVertex(trimesh.Vec3{0, 0, 0})
	b := m.AddVertex(trimesh.Vec3{1, 0, 0})
	c := m.AddVertex(trimesh.Vec3{2, 0, 0})
	f, err := m.AddFace(a, b, c)
	require.NoError(t, err)

	_, err = FaceNormal(m, f)
	assert.ErrorIs(t, err, ErrDegenerateFace)
}

func TestBoundingBoxTranslateAndScale(t *testing.T) {
	m, _ := rightTriangle(t)
	before := BoundingBox(m)

	require.NoError(t, Translate(m, trimesh.Vec3{5, 0, 0}))
	after := BoundingBox(m)
	assert.Equal(t, before.Translate(trimesh.Vec3{5, 0, 0}), after)

	require.NoError(t, Scale(m, 2))
	scaled := BoundingBox(m)
	assert.Equal(t, after.ScaleAboutOrigin(2), scaled)
}

func TestEdgeLength(t *testing.T) {
	m, f := rightTriangle(t)
	hs, err := m.FaceHalfedges(f)
	require.NoError(t, err)
	l, err := EdgeLength(m, hs[0])
	require.NoError(t, err)
	assert.True(t, l > 0)
}

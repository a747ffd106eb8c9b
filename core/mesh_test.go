package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trimesh-go/trimesh"
)

// buildFan builds the S1 scenario from spec §8: three triangles sharing
// vertex 0, forming one boundary loop of length 3 through {1,2,3}.
func buildFan(t *testing.T) (*Mesh, [4]VH) {
	t.Helper()
	m := NewMesh()
	var v [4]VH
	v[0] = m.AddVertex(trimesh.Vec3{0, 0, 0})
	v[1] = m.AddVertex(trimesh.Vec3{1, 0, -0.5})
	v[2] = m.AddVertex(trimesh.Vec3{-1, 0, -0.5})
	v[3] = m.AddVertex(trimesh.Vec3{0, 0, 1})

	_, err := m.AddFace(v[0], v[1], v[2])
	require.NoError(t, err)
	_, err = m.AddFace(v[0], v[2], v[3])
	require.NoError(t, err)
	_, err = m.AddFace(v[0], v[3], v[1])
	require.NoError(t, err)
	return m, v
}

func TestScenarioS1Fan(t *testing.T) {
	m, v := buildFan(t)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 3, m.FaceCount())

	// Exactly one boundary loop of length 3, visiting {1,2,3}.
	var start HH
	for _, h := range m.AllHalfedgeHandles() {
		f, err := m.HalfedgeFace(h)
		require.NoError(t, err)
		if f.IsNil() {
			start = h
			break
		}
	}
	require.False(t, start.IsNil(), "expected a boundary half-edge")

	seen := map[VH]bool{}
	cur := start
	for i := 0; i < 3; i++ {
		dest, err := m.HalfedgeVertex(cur)
		require.NoError(t, err)
		seen[dest] = true
		nxt, err := m.HalfedgeNext(cur)
		require.NoError(t, err)
		cur = nxt
	}
	assert.Equal(t, start, cur, "boundary loop should close after 3 steps")
	assert.True(t, seen[v[1]] && seen[v[2]] && seen[v[3]])
	assert.False(t, seen[v[0]], "the fan's hub is not on the boundary")
}

func TestAddFaceRejectsNonManifoldEdge(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(trimesh.Vec3{0, 0, 0})
	b := m.AddVertex(trimesh.Vec3{1, 0, 0})
	c := m.AddVertex(trimesh.Vec3{0, 1, 0})
	d := m.AddVertex(trimesh.Vec3{0, -1, 0})

	_, err := m.AddFace(a, b, c)
	require.NoError(t, err)

	// A second triangle reusing directed edge a->b is non-manifold.
	_, err = m.AddFace(a, b, d)
	assert.ErrorIs(t, err, ErrNonManifoldEdge)

	assert.Equal(t, 1, m.FaceCount(), "rejected AddFace must not mutate the mesh")
}

func TestAddFaceRejectsDegenerateTopology(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(trimesh.Vec3{0, 0, 0})
	b := m.AddVertex(trimesh.Vec3{1, 0, 0})

	_, err := m.AddFace(a, a, b)
	assert.ErrorIs(t, err, ErrDegenerateTopology)
}

func TestHandleInvalidAfterDeletion(t *testing.T) {
	m := NewMesh()
	v := m.AddVertex(trimesh.Vec3{})
	require.NoError(t, m.RemoveVertex(v))

	_, err := m.VertexPosition(v)
	assert.ErrorIs(t, err, ErrInvalidHandle)

	// The recycled slot gets a fresh handle with a bumped generation.
	v2 := m.AddVertex(trimesh.Vec3{1, 1, 1})
	assert.NotEqual(t, v, v2)
	assert.True(t, m.VertexValid(v2))
	assert.False(t, m.VertexValid(v))
}

func TestRemoveVertexRequiresIsolation(t *testing.T) {
	m, v := buildFan(t)
	err := m.RemoveVertex(v[0])
	assert.ErrorIs(t, err, ErrNotIsolated)
}

func TestRemoveFaceOpensHoleAndFreesBareEdges(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(trimesh.Vec3{0, 0, 0})
	b := m.AddVertex(trimesh.Vec3{1, 0, 0})
	c := m.AddVertex(trimesh.Vec3{0, 1, 0})
	f, err := m.AddFace(a, b, c)
	require.NoError(t, err)

	require.NoError(t, m.RemoveFace(f))
	assert.Equal(t, 0, m.FaceCount())
	assert.Equal(t, 0, m.HalfedgeCount(), "a lone triangle's edges become faceless on both sides and are dropped")
	assert.False(t, m.FaceValid(f))
}

func TestHalfedgeBetweenRoundTrip(t *testing.T) {
	m, v := buildFan(t)
	h, err := m.HalfedgeBetween(v[0], v[1])
	require.NoError(t, err)
	dest, err := m.HalfedgeVertex(h)
	require.NoError(t, err)
	assert.Equal(t, v[1], dest)

	// Every pair of the fan's four vertices shares an edge, so look for a
	// half-edge to a vertex that has none.
	iso := m.AddVertex(trimesh.Vec3{5, 5, 5})
	_, err = m.HalfedgeBetween(v[1], iso)
	assert.ErrorIs(t, err, ErrHalfedgeNotFound)
}

func TestTwinSymmetryAndTriangularLoops(t *testing.T) {
	m, _ := buildFan(t)
	for _, h := range m.AllHalfedgeHandles() {
		twin, err := m.HalfedgeTwin(h)
		require.NoError(t, err)
		backTwin, err := m.HalfedgeTwin(twin)
		require.NoError(t, err)
		assert.Equal(t, h, backTwin)

		f, err := m.HalfedgeFace(h)
		require.NoError(t, err)
		if f.IsNil() {
			continue
		}
		n1, err := m.HalfedgeNext(h)
		require.NoError(t, err)
		n2, err := m.HalfedgeNext(n1)
		require.NoError(t, err)
		n3, err := m.HalfedgeNext(n2)
		require.NoError(t, err)
		assert.Equal(t, h, n3, "h.next.next.next == h for a triangular loop")
	}
}

func TestVertexDegreeAndOutgoingFan(t *testing.T) {
	m, v := buildFan(t)
	deg, err := m.VertexDegree(v[0])
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	out, err := m.OutgoingHalfedges(v[0])
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

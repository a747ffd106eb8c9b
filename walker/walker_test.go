package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trimesh-go/trimesh"
	"github.com/trimesh-go/trimesh/core"
)

// buildFan mirrors the S1 scenario from spec §8: three triangles sharing
// vertex 0, forming one boundary loop of length 3 through {1,2,3}.
func buildFan(t *testing.T) (*core.Mesh, [4]core.VH) {
	t.Helper()
	m := core.NewMesh()
	var v [4]core.VH
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

func TestWalkerAsNextClosesFaceLoop(t *testing.T) {
	m, v := buildFan(t)
	outgoing, err := m.HalfedgeBetween(v[0], v[1])
	require.NoError(t, err)

	w := New(m, outgoing)
	w1 := w.AsNext()
	w2 := w1.AsNext()
	w3 := w2.AsNext()

	assert.Equal(t, w.Halfedge(), w3.Halfedge(), "three AsNext steps close a triangular loop")
}

func TestWalkerAsTwinIsInvolution(t *testing.T) {
	m, v := buildFan(t)
	h, err := m.HalfedgeBetween(v[0], v[1])
	require.NoError(t, err)

	w := New(m, h)
	back := w.AsTwin().AsTwin()
	assert.Equal(t, w.Halfedge(), back.Halfedge())
}

func TestWalkerAsPreviousUndoesAsNext(t *testing.T) {
	m, v := buildFan(t)
	h, err := m.HalfedgeBetween(v[0], v[1])
	require.NoError(t, err)

	w := New(m, h)
	assert.Equal(t, w.Halfedge(), w.AsNext().AsPrevious().Halfedge())
}

func TestOutgoingFanRotationClosesAfterDegreeSteps(t *testing.T) {
	m, v := buildFan(t)
	deg, err := m.VertexDegree(v[0])
	require.NoError(t, err)
	assert.Equal(t, 3, deg, "the hub vertex has three incident edges")

	outs, err := OutgoingHalfedges(m, v[0])
	require.NoError(t, err)
	assert.Len(t, outs, deg)

	// Rotating AsTwin().AsNext() deg times from any outgoing half-edge
	// returns to the start (spec §8 property 2).
	w := New(m, outs[0])
	cur := w
	for i := 0; i < deg; i++ {
		cur = cur.AsTwin().AsNext()
	}
	assert.Equal(t, w.Halfedge(), cur.Halfedge())
}

func TestFaceVerticesAndHalfedgesAgreeInOrder(t *testing.T) {
	m, v := buildFan(t)
	faces := Faces(m)
	require.Len(t, faces, 3)

	for _, f := range faces {
		verts, err := FaceVertices(m, f)
		require.NoError(t, err)
		hs, err := FaceHalfedges(m, f)
		require.NoError(t, err)
		for i, h := range hs {
			dest, err := m.HalfedgeVertex(h)
			require.NoError(t, err)
			assert.Equal(t, verts[i], dest)
		}
	}
	_ = v
}

func TestEdgesReportsEachMeshEdgeOnce(t *testing.T) {
	m, _ := buildFan(t)
	edges, err := Edges(m)
	require.NoError(t, err)

	// 4 vertices, 3 triangles sharing a hub: 6 mesh-edges total
	// (3 spokes + 3 boundary edges).
	assert.Len(t, edges, 6)

	all := Halfedges(m)
	assert.Len(t, all, 2*len(edges))
}

func TestNeighborFacesSkipsBoundaryGaps(t *testing.T) {
	m, v := buildFan(t)
	faces, err := NeighborFaces(m, v[0])
	require.NoError(t, err)
	assert.Len(t, faces, 3, "hub vertex touches all three faces and has no boundary gap")

	faces1, err := NeighborFaces(m, v[1])
	require.NoError(t, err)
	assert.Len(t, faces1, 2, "rim vertex touches two faces with one boundary gap")
}

func TestIncomingHalfedgesAreTwinsOfOutgoing(t *testing.T) {
	m, v := buildFan(t)
	out, err := OutgoingHalfedges(m, v[0])
	require.NoError(t, err)
	in, err := IncomingHalfedges(m, v[0])
	require.NoError(t, err)
	require.Len(t, in, len(out))
	for i, h := range out {
		twin, err := m.HalfedgeTwin(h)
		require.NoError(t, err)
		assert.Equal(t, twin, in[i])
	}
}

package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trimesh-go/trimesh"
	"github.com/trimesh-go/trimesh/core"
)

func onetri(t *testing.T, ox float64) *core.Mesh {
	t.Helper()
	m := core.NewMesh()
	a := m.AddVertex(trimesh.Vec3{ox + 0, 0, 0})
	b := m.AddVertex(trimesh.Vec3{ox + 1, 0, 0})
	c := m.AddVertex(trimesh.Vec3{ox + 0, 1, 0})
	_, err := m.AddFace(a, b, c)
	require.NoError(t, err)
	return m
}

func TestQueryFindsOverlappingFace(t *testing.T) {
	m := onetri(t, 0)
	idx, err := BuildIndex(m, 0.5)
	require.NoError(t, err)

	hits := idx.Query(trimesh.Box{Min: trimesh.Vec3{0, 0, 0}, Max: trimesh.Vec3{0.5, 0.5, 0}})
	assert.Len(t, hits, 1)
}

func TestQueryMissesFarAwayBox(t *testing.T) {
	m := onetri(t, 0)
	idx, err := BuildIndex(m, 0.5)
	require.NoError(t, err)

	hits := idx.Query(trimesh.Box{Min: trimesh.Vec3{100, 100, 100}, Max: trimesh.Vec3{101, 101, 101}})
	assert.Empty(t, hits)
}

func TestCandidatePairsFindsOverlapAcrossMeshes(t *testing.T) {
	a := onetri(t, 0)
	b := onetri(t, 0.5) // overlapping triangle
	pairs, err := CandidatePairs(a, b, 0.5)
	require.NoError(t, err)
	assert.NotEmpty(t, pairs)
}

func TestCandidatePairsEmptyForDisjointMeshes(t *testing.T) {
	a := onetri(t, 0)
	b := onetri(t, 1000)
	pairs, err := CandidatePairs(a, b, 0.5)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

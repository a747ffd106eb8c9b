package trimesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.InDelta(t, 32, a.Dot(b), 1e-12)
	assert.Equal(t, Vec3{2.5, 3.5, 4.5}, a.Midpoint(b))
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := x.Cross(y)
	assert.InDelta(t, 0, z.X, 1e-12)
	assert.InDelta(t, 0, z.Y, 1e-12)
	assert.InDelta(t, 1, z.Z, 1e-12)
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}.Normalize()
	require.InDelta(t, 1, v.Norm(), 1e-12)

	zero := Vec3{}.Normalize()
	assert.Equal(t, Vec3{}, zero)
}

func TestBoxExtendAndOverlaps(t *testing.T) {
	b := NewEmptyBox()
	b = b.Extend(Vec3{0, 0, 0})
	b = b.Extend(Vec3{1, 1, 1})
	assert.Equal(t, Vec3{0, 0, 0}, b.Min)
	assert.Equal(t, Vec3{1, 1, 1}, b.Max)

	other := NewEmptyBox().Extend(Vec3{0.5, 0.5, 0.5}).Extend(Vec3{2, 2, 2})
	assert.True(t, b.Overlaps(other))

	far := NewEmptyBox().Extend(Vec3{10, 10, 10}).Extend(Vec3{11, 11, 11})
	assert.False(t, b.Overlaps(far))
}

func TestBoxTranslateAndScale(t *testing.T) {
	b := NewEmptyBox().Extend(Vec3{-1, -1, -1}).Extend(Vec3{1, 1, 1})

	moved := b.Translate(Vec3{2, 0, 0})
	assert.Equal(t, Vec3{1, -1, -1}, moved.Min)
	assert.Equal(t, Vec3{3, 1, 1}, moved.Max)

	scaled := b.ScaleAboutOrigin(2)
	assert.Equal(t, Vec3{-2, -2, -2}, scaled.Min)
	assert.Equal(t, Vec3{2, 2, 2}, scaled.Max)
}

func TestToleranceFallsBackOnDegenerateBox(t *testing.T) {
	assert.Equal(t, DefaultRelativeTolerance, Tolerance(0, 0))
	assert.InDelta(t, 1e-3, Tolerance(1000, 1e-6), 1e-12)
}

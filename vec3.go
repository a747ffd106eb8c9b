package trimesh

import "math"

// Vec3 is a point or direction in ℝ³, IEEE-754 double precision throughout.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product v·w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product v×w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged since it has no meaningful direction.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Lerp returns the affine combination (1-t)*v + t*w.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return v.Add(w.Sub(v).Scale(t))
}

// Midpoint returns the average of v and w.
func (v Vec3) Midpoint(w Vec3) Vec3 { return v.Add(w).Scale(0.5) }

// AlmostEqual reports whether v and w are within eps of each other
// (Euclidean distance), per the caller-supplied absolute tolerance.
func (v Vec3) AlmostEqual(w Vec3, eps float64) bool {
	return v.Sub(w).Norm() <= eps
}

// Box is an axis-aligned bounding box. An empty Box (Min > Max on any axis)
// contains no points; use NewEmptyBox to construct one before accumulating.
type Box struct {
	Min, Max Vec3
}

// NewEmptyBox returns a box that contains no points, ready for Extend calls.
func NewEmptyBox() Box {
	inf := math.Inf(1)
	return Box{Min: Vec3{inf, inf, inf}, Max: Vec3{-inf, -inf, -inf}}
}

// Extend grows the box to also contain p.
func (b Box) Extend(p Vec3) Box {
	return Box{
		Min: Vec3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)},
		Max: Vec3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return b.Extend(o.Min).Extend(o.Max)
}

// Overlaps reports whether b and o share at least one point, inclusive of
// touching boundaries.
func (b Box) Overlaps(o Box) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y &&
		b.Min.Z <= o.Max.Z && o.Min.Z <= b.Max.Z
}

// Diagonal returns the Euclidean length of the box's diagonal. An empty box
// (no points ever extended into it) has a zero diagonal.
func (b Box) Diagonal() float64 {
	if b.Max.X < b.Min.X {
		return 0
	}
	return b.Max.Sub(b.Min).Norm()
}

// Translate returns b shifted by v.
func (b Box) Translate(v Vec3) Box {
	return Box{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// ScaleAboutOrigin returns b scaled by s about the world origin.
func (b Box) ScaleAboutOrigin(s float64) Box {
	corners := [2]Vec3{b.Min.Scale(s), b.Max.Scale(s)}
	out := NewEmptyBox()
	out = out.Extend(corners[0])
	out = out.Extend(corners[1])
	return out
}

// DefaultRelativeTolerance is the default ε factor from spec §4.4: the
// absolute tolerance used by a geometric predicate is this factor times
// the subject mesh's bounding-box diagonal.
const DefaultRelativeTolerance = 1e-8

// Tolerance resolves a relative epsilon factor against a bbox diagonal into
// an absolute epsilon. A zero or negative diagonal (degenerate/empty mesh)
// falls back to the relative factor itself so callers never divide by zero
// or silently get ε=0.
func Tolerance(bboxDiagonal, relativeFactor float64) float64 {
	if relativeFactor <= 0 {
		relativeFactor = DefaultRelativeTolerance
	}
	if bboxDiagonal <= 0 {
		return relativeFactor
	}
	return bboxDiagonal * relativeFactor
}

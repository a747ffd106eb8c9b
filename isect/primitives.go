// File: primitives.go
// Role: the edge/point, face/point, edge/edge, face/edge, and face/ray
// intersection primitives (spec §4.4).
package isect

import (
	"math"

	"github.com/trimesh-go/trimesh"
)

// PointClass classifies where a point landed relative to a feature.
type PointClass int

const (
	// Outside means the point is not on the feature at all, within the
	// given tolerance.
	Outside PointClass = iota
	// OnVertex means the point coincides with one of the feature's
	// corners.
	OnVertex
	// OnEdge means the point lies on one of the feature's edges, away
	// from its endpoints.
	OnEdge
	// Inside means the point lies in the feature's interior.
	Inside
)

func (k PointClass) String() string {
	switch k {
	case OnVertex:
		return "vertex"
	case OnEdge:
		return "edge"
	case Inside:
		return "interior"
	default:
		return "outside"
	}
}

// EdgePointResult is the outcome of classifying a point against a
// segment.
type EdgePointResult struct {
	Class PointClass
	T     float64 // parameter along a->b; meaningful only if Class != Outside
}

// EdgePoint classifies p against the segment a-b within tolerance eps.
func EdgePoint(a, b, p trimesh.Vec3, eps float64) EdgePointResult {
	ab := b.Sub(a)
	length2 := ab.Dot(ab)
	if length2 <= eps*eps {
		// Degenerate (zero-length) segment: treat as a single point.
		if p.Sub(a).Norm() <= eps {
			return EdgePointResult{Class: OnVertex, T: 0}
		}
		return EdgePointResult{Class: Outside}
	}
	t := p.Sub(a).Dot(ab) / length2
	closest := a.Add(ab.Scale(t))
	if p.Sub(closest).Norm() > eps {
		return EdgePointResult{Class: Outside}
	}
	if t < -eps/math.Sqrt(length2) || t > 1+eps/math.Sqrt(length2) {
		return EdgePointResult{Class: Outside}
	}
	switch {
	case t <= eps:
		return EdgePointResult{Class: OnVertex, T: 0}
	case t >= 1-eps:
		return EdgePointResult{Class: OnVertex, T: 1}
	default:
		return EdgePointResult{Class: OnEdge, T: t}
	}
}

// FacePointResult is the outcome of classifying a point against a
// triangle.
type FacePointResult struct {
	Class PointClass
	Bary  [3]float64 // barycentric coordinates w.r.t. tri's three corners
}

// FacePoint classifies p against the triangle tri within tolerance eps.
// p must already lie (approximately) in the triangle's plane; callers
// working with an arbitrary point in space should project it first.
func FacePoint(tri [3]trimesh.Vec3, p trimesh.Vec3, eps float64) FacePointResult {
	v0 := tri[1].Sub(tri[0])
	v1 := tri[2].Sub(tri[0])
	v2 := p.Sub(tri[0])

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)
	denom := d00*d11 - d01*d01
	if math.Abs(denom) <= eps*eps {
		return FacePointResult{Class: Outside}
	}
	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1 - v - w
	bary := [3]float64{u, v, w}

	normal := v0.Cross(v1)
	scale := normal.Norm()
	if scale > 0 {
		dist := math.Abs(p.Sub(tri[0]).Dot(normal.Normalize()))
		if dist > eps {
			return FacePointResult{Class: Outside}
		}
	}

	relEps := eps
	if scale > 0 {
		relEps = eps / math.Sqrt(scale)
	}
	for _, c := range bary {
		if c < -relEps {
			return FacePointResult{Class: Outside}
		}
	}

	zeros := 0
	for _, c := range bary {
		if c <= relEps {
			zeros++
		}
	}
	switch zeros {
	case 2:
		return FacePointResult{Class: OnVertex, Bary: bary}
	case 1:
		return FacePointResult{Class: OnEdge, Bary: bary}
	default:
		return FacePointResult{Class: Inside, Bary: bary}
	}
}

// EdgeEdgeResult is the outcome of intersecting two segments.
type EdgeEdgeResult struct {
	Hit            bool
	Point          trimesh.Vec3
	T1, T2         float64
	Class1, Class2 PointClass
}

// EdgeEdge intersects segment a0-a1 with segment b0-b1. The two
// segments are required to be (approximately) coplanar; skew segments
// in 3D are reported as not hitting even if their infinite lines would
// cross, since spec §4.4 only asks for an edge/edge primitive within a
// shared intersection plane (the mesh-mesh splitter only ever calls it
// on segments already known to be coplanar from a face/face test).
func EdgeEdge(a0, a1, b0, b1 trimesh.Vec3, eps float64) EdgeEdgeResult {
	d1 := a1.Sub(a0)
	d2 := b1.Sub(b0)
	r := a0.Sub(b0)

	n := d1.Cross(d2)
	denom := n.Dot(n)
	if denom <= eps*eps {
		return EdgeEdgeResult{Hit: false}
	}

	// Coplanarity check: the four points must lie in one plane.
	planeNormal := n.Normalize()
	if math.Abs(r.Dot(planeNormal)) > eps {
		return EdgeEdgeResult{Hit: false}
	}

	t1 := d2.Cross(r).Dot(n) / denom
	t2 := d1.Cross(r).Dot(n) / denom

	tol := eps / math.Sqrt(math.Max(d1.Dot(d1), 1e-30))
	tol2 := eps / math.Sqrt(math.Max(d2.Dot(d2), 1e-30))
	if t1 < -tol || t1 > 1+tol || t2 < -tol2 || t2 > 1+tol2 {
		return EdgeEdgeResult{Hit: false}
	}

	p1 := a0.Add(d1.Scale(t1))
	p2 := b0.Add(d2.Scale(t2))
	mid := p1.Midpoint(p2)

	class := func(t float64) PointClass {
		switch {
		case t <= eps:
			return OnVertex
		case t >= 1-eps:
			return OnVertex
		default:
			return OnEdge
		}
	}
	return EdgeEdgeResult{
		Hit:    true,
		Point:  mid,
		T1:     t1,
		T2:     t2,
		Class1: class(t1),
		Class2: class(t2),
	}
}

// FaceEdgeResult is the outcome of intersecting a triangle with a
// segment.
type FaceEdgeResult struct {
	Hit       bool
	Point     trimesh.Vec3
	T         float64 // parameter along a->b
	FaceClass PointClass
	Bary      [3]float64
}

// FaceEdge intersects the plane-bounded triangle tri with segment a-b.
func FaceEdge(tri [3]trimesh.Vec3, a, b trimesh.Vec3, eps float64) FaceEdgeResult {
	e1 := tri[1].Sub(tri[0])
	e2 := tri[2].Sub(tri[0])
	normal := e1.Cross(e2)
	normLen := normal.Norm()
	if normLen <= eps*eps {
		return FaceEdgeResult{Hit: false}
	}
	n := normal.Normalize()

	dirDotN := b.Sub(a).Dot(n)
	if math.Abs(dirDotN) <= eps {
		return FaceEdgeResult{Hit: false} // segment parallel to the face's plane
	}
	t := tri[0].Sub(a).Dot(n) / dirDotN
	if t < -eps || t > 1+eps {
		return FaceEdgeResult{Hit: false}
	}
	p := a.Add(b.Sub(a).Scale(t))

	fp := FacePoint(tri, p, eps)
	if fp.Class == Outside {
		return FaceEdgeResult{Hit: false}
	}
	return FaceEdgeResult{Hit: true, Point: p, T: clamp01(t), FaceClass: fp.Class, Bary: fp.Bary}
}

// FaceRayResult is the outcome of intersecting a triangle with a ray.
type FaceRayResult struct {
	Hit   bool
	T     float64 // ray parameter (Point = origin + T*dir); a distance only when dir is unit length
	Point trimesh.Vec3
	Bary  [3]float64
}

// FaceRay intersects tri with the ray origin+t*dir, t>=0, using the
// Möller-Trumbore algorithm.
func FaceRay(tri [3]trimesh.Vec3, origin, dir trimesh.Vec3, eps float64) FaceRayResult {
	e1 := tri[1].Sub(tri[0])
	e2 := tri[2].Sub(tri[0])
	pvec := dir.Cross(e2)
	det := e1.Dot(pvec)
	if math.Abs(det) <= eps {
		return FaceRayResult{Hit: false}
	}
	invDet := 1 / det
	tvec := origin.Sub(tri[0])
	u := tvec.Dot(pvec) * invDet
	if u < -eps || u > 1+eps {
		return FaceRayResult{Hit: false}
	}
	qvec := tvec.Cross(e1)
	v := dir.Dot(qvec) * invDet
	if v < -eps || u+v > 1+eps {
		return FaceRayResult{Hit: false}
	}
	t := e2.Dot(qvec) * invDet
	if t < -eps {
		return FaceRayResult{Hit: false}
	}
	w := 1 - u - v
	return FaceRayResult{
		Hit:   true,
		T:     t,
		Point: origin.Add(dir.Scale(t)),
		Bary:  [3]float64{w, u, v},
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

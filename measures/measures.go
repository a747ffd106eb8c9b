// File: measures.go
// Role: Lengths, areas, normals, angles, and bounding boxes computed
// purely from a core.Mesh's current vertex positions and connectivity.
package measures

import (
	"errors"
	"math"

	"github.com/trimesh-go/trimesh"
	"github.com/trimesh-go/trimesh/core"
)

// ErrDegenerateFace indicates a face has zero area (its three vertices
// are collinear or coincident), so its normal is undefined.
var ErrDegenerateFace = errors.New("measures: face has zero area")

// EdgeLength returns the Euclidean length of the mesh-edge h belongs to.
func EdgeLength(m *core.Mesh, h core.HH) (float64, error) {
	a, b, err := endpoints(m, h)
	if err != nil {
		return 0, err
	}
	return b.Sub(a).Norm(), nil
}

func endpoints(m *core.Mesh, h core.HH) (a, b trimesh.Vec3, err error) {
	origin, err := m.HalfedgeOrigin(h)
	if err != nil {
		return
	}
	dest, err := m.HalfedgeVertex(h)
	if err != nil {
		return
	}
	a, err = m.VertexPosition(origin)
	if err != nil {
		return
	}
	b, err = m.VertexPosition(dest)
	return
}

// faceCorners returns f's three vertex positions in winding order.
func faceCorners(m *core.Mesh, f core.FH) ([3]trimesh.Vec3, error) {
	var out [3]trimesh.Vec3
	verts, err := m.FaceVertices(f)
	if err != nil {
		return out, err
	}
	for i, v := range verts {
		p, err := m.VertexPosition(v)
		if err != nil {
			return out, err
		}
		out[i] = p
	}
	return out, nil
}

// FaceAreaVector returns twice the signed area vector of f: the cross
// product (p1-p0)×(p2-p0). Its length is twice the triangle's area and
// its direction is the (unnormalized) face normal.
func FaceAreaVector(m *core.Mesh, f core.FH) (trimesh.Vec3, error) {
	c, err := faceCorners(m, f)
	if err != nil {
		return trimesh.Vec3{}, err
	}
	return c[1].Sub(c[0]).Cross(c[2].Sub(c[0])), nil
}

// FaceArea returns the area of triangle f.
func FaceArea(m *core.Mesh, f core.FH) (float64, error) {
	v, err := FaceAreaVector(m, f)
	if err != nil {
		return 0, err
	}
	return v.Norm() / 2, nil
}

// FaceNormal returns f's unit normal, following the winding order of its
// vertices (right-hand rule). Returns ErrDegenerateFace for a zero-area
// face.
func FaceNormal(m *core.Mesh, f core.FH) (trimesh.Vec3, error) {
	v, err := FaceAreaVector(m, f)
	if err != nil {
		return trimesh.Vec3{}, err
	}
	if v.Norm() == 0 {
		return trimesh.Vec3{}, ErrDegenerateFace
	}
	return v.Normalize(), nil
}

// FaceAngles returns the interior angle (radians) at each of f's three
// vertices, in the same order as core.Mesh.FaceVertices.
func FaceAngles(m *core.Mesh, f core.FH) ([3]float64, error) {
	var out [3]float64
	c, err := faceCorners(m, f)
	if err != nil {
		return out, err
	}
	for i := 0; i < 3; i++ {
		p := c[i]
		prev := c[(i+2)%3]
		next := c[(i+1)%3]
		out[i] = angleBetween(prev.Sub(p), next.Sub(p))
	}
	return out, nil
}

func angleBetween(u, v trimesh.Vec3) float64 {
	un, vn := u.Norm(), v.Norm()
	if un == 0 || vn == 0 {
		return 0
	}
	cos := u.Dot(v) / (un * vn)
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// VertexNormal returns the area-weighted average of the unit normals of
// every face incident to v (spec §6's normals_buffer semantics), falling
// back to the zero vector for an isolated vertex or one whose incident
// faces are all degenerate.
func VertexNormal(m *core.Mesh, v core.VH) (trimesh.Vec3, error) {
	outgoing, err := m.OutgoingHalfedges(v)
	if err != nil {
		return trimesh.Vec3{}, err
	}
	sum := trimesh.Vec3{}
	for _, h := range outgoing {
		f, err := m.HalfedgeFace(h)
		if err != nil {
			return trimesh.Vec3{}, err
		}
		if f.IsNil() {
			continue
		}
		areaVec, err := FaceAreaVector(m, f)
		if err != nil {
			return trimesh.Vec3{}, err
		}
		sum = sum.Add(areaVec) // weight by (twice) area automatically
	}
	return sum.Normalize(), nil
}

// BoundingBox returns the axis-aligned bounding box of every live vertex
// in m.
func BoundingBox(m *core.Mesh) trimesh.Box {
	box := trimesh.NewEmptyBox()
	for _, v := range m.AllVertexHandles() {
		p, _ := m.VertexPosition(v)
		box = box.Extend(p)
	}
	return box
}

// Translate shifts every vertex of m by delta in place.
func Translate(m *core.Mesh, delta trimesh.Vec3) error {
	for _, v := range m.AllVertexHandles() {
		p, err := m.VertexPosition(v)
		if err != nil {
			return err
		}
		if err := m.SetVertexPosition(v, p.Add(delta)); err != nil {
			return err
		}
	}
	return nil
}

// Scale multiplies every vertex position of m by s about the world
// origin, in place.
func Scale(m *core.Mesh, s float64) error {
	for _, v := range m.AllVertexHandles() {
		p, err := m.VertexPosition(v)
		if err != nil {
			return err
		}
		if err := m.SetVertexPosition(v, p.Scale(s)); err != nil {
			return err
		}
	}
	return nil
}

// primitives.go — the primitive templates spec §6 names: cube,
// icosahedron, cylinder (configurable segments), sphere (subdivision
// depth). Each returns a positions/indices pair it then hands to Build,
// the same way the teacher's PlatonicSolid/Cycle/etc. constructors
// resolved a canonical, pre-sorted, deterministic dataset before handing
// it to core.Graph — generalized here from graph edges to 3D positions
// and triangle index triples.
package builder

import (
	"fmt"
	"math"

	"github.com/trimesh-go/trimesh"
	"github.com/trimesh-go/trimesh/core"
)

// Cube returns the 8-vertex, 12-triangle unit cube centered on the
// origin with side length 2, each quad face split along one diagonal.
// Vertex layout and winding follow the teacher's canonical bottom
// ring/top ring/verticals labeling (variants_platonic.go), generalized
// from a topology-only shell to positioned, outward-wound triangles.
func Cube() (*core.Mesh, error) {
	p := []trimesh.Vec3{
		{X: -1, Y: -1, Z: -1}, // 0
		{X: 1, Y: -1, Z: -1},  // 1
		{X: 1, Y: 1, Z: -1},   // 2
		{X: -1, Y: 1, Z: -1},  // 3
		{X: -1, Y: -1, Z: 1},  // 4
		{X: 1, Y: -1, Z: 1},   // 5
		{X: 1, Y: 1, Z: 1},    // 6
		{X: -1, Y: 1, Z: 1},   // 7
	}
	idx := []int{
		0, 2, 1, 0, 3, 2, // bottom (-z)
		4, 5, 6, 4, 6, 7, // top (+z)
		0, 1, 5, 0, 5, 4, // front (-y)
		2, 3, 7, 2, 7, 6, // back (+y)
		0, 4, 7, 0, 7, 3, // left (-x)
		1, 2, 6, 1, 6, 5, // right (+x)
	}
	return Build(WithPositions(p), WithIndices(idx))
}

// icosahedron's canonical face list, kept as a single source of truth in
// a fixed order so every build is deterministic, the same discipline the
// teacher applies to its five Platonic shells.
var icosahedronFaces = [][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// icosahedronVertices returns the 12 unit-circumradius icosahedron
// vertices built from the golden ratio, in the same index order
// icosahedronFaces refers to them by.
func icosahedronVertices() []trimesh.Vec3 {
	phi := (1 + math.Sqrt(5)) / 2
	raw := []trimesh.Vec3{
		{X: -1, Y: phi, Z: 0}, {X: 1, Y: phi, Z: 0},
		{X: -1, Y: -phi, Z: 0}, {X: 1, Y: -phi, Z: 0},
		{X: 0, Y: -1, Z: phi}, {X: 0, Y: 1, Z: phi},
		{X: 0, Y: -1, Z: -phi}, {X: 0, Y: 1, Z: -phi},
		{X: phi, Y: 0, Z: -1}, {X: phi, Y: 0, Z: 1},
		{X: -phi, Y: 0, Z: -1}, {X: -phi, Y: 0, Z: 1},
	}
	out := make([]trimesh.Vec3, len(raw))
	for i, v := range raw {
		out[i] = v.Normalize()
	}
	return out
}

// Icosahedron returns the 12-vertex, 20-triangle regular icosahedron
// inscribed in the unit sphere.
func Icosahedron() (*core.Mesh, error) {
	p := icosahedronVertices()
	idx := make([]int, 0, len(icosahedronFaces)*3)
	for _, f := range icosahedronFaces {
		idx = append(idx, f[0], f[1], f[2])
	}
	return Build(WithPositions(p), WithIndices(idx))
}

// Cylinder returns a capped cylinder of unit radius and height 2,
// centered on the origin with its axis along Z, approximated by
// segments side quads (each split into 2 triangles) and a fan-triangulated
// cap at each end. segments must be at least 3.
func Cylinder(segments int) (*core.Mesh, error) {
	if segments < 3 {
		return nil, fmt.Errorf("Cylinder: segments=%d: %w", segments, ErrTooFewSegments)
	}

	var p []trimesh.Vec3
	bottomCenter := 0
	p = append(p, trimesh.Vec3{X: 0, Y: 0, Z: -1})
	topCenter := 1
	p = append(p, trimesh.Vec3{X: 0, Y: 0, Z: 1})

	bottomRing := make([]int, segments)
	topRing := make([]int, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x, y := math.Cos(theta), math.Sin(theta)
		bottomRing[i] = len(p)
		p = append(p, trimesh.Vec3{X: x, Y: y, Z: -1})
		topRing[i] = len(p)
		p = append(p, trimesh.Vec3{X: x, Y: y, Z: 1})
	}

	var idx []int
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		// side quad (bottomRing[i], bottomRing[j], topRing[j], topRing[i]),
		// outward normal radial: split along the bottomRing[j]-topRing[i] diagonal.
		idx = append(idx, bottomRing[i], bottomRing[j], topRing[i])
		idx = append(idx, bottomRing[j], topRing[j], topRing[i])
		// caps: bottom fans inward (outward normal -z), top fans outward (+z).
		idx = append(idx, bottomCenter, bottomRing[j], bottomRing[i])
		idx = append(idx, topCenter, topRing[i], topRing[j])
	}
	return Build(WithPositions(p), WithIndices(idx))
}

// Sphere returns a unit sphere approximated by recursively subdividing an
// icosahedron's faces depth times: each subdivision splits every triangle
// into 4 by its edge midpoints, re-projected onto the unit sphere. depth=0
// returns the icosahedron itself.
func Sphere(depth int) (*core.Mesh, error) {
	if depth < 0 {
		return nil, fmt.Errorf("Sphere: depth=%d: %w", depth, ErrTooFewSegments)
	}

	verts := icosahedronVertices()
	faces := make([][3]int, len(icosahedronFaces))
	copy(faces, icosahedronFaces)

	type edgeKey struct{ a, b int }
	for d := 0; d < depth; d++ {
		midpoint := map[edgeKey]int{}
		midIndex := func(a, b int) int {
			key := edgeKey{a, b}
			if a > b {
				key = edgeKey{b, a}
			}
			if i, ok := midpoint[key]; ok {
				return i
			}
			m := verts[a].Midpoint(verts[b]).Normalize()
			verts = append(verts, m)
			i := len(verts) - 1
			midpoint[key] = i
			return i
		}

		var next [][3]int
		for _, f := range faces {
			a, b, c := f[0], f[1], f[2]
			ab := midIndex(a, b)
			bc := midIndex(b, c)
			ca := midIndex(c, a)
			next = append(next,
				[3]int{a, ab, ca},
				[3]int{b, bc, ab},
				[3]int{c, ca, bc},
				[3]int{ab, bc, ca},
			)
		}
		faces = next
	}

	idx := make([]int, 0, len(faces)*3)
	for _, f := range faces {
		idx = append(idx, f[0], f[1], f[2])
	}
	return Build(WithPositions(verts), WithIndices(idx))
}

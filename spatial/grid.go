// File: grid.go
// Role: a uniform-grid spatial hash over face bounding boxes, and the
// candidate-pair enumeration the splitter's broad phase calls.
package spatial

import (
	"math"

	"github.com/trimesh-go/trimesh"
	"github.com/trimesh-go/trimesh/core"
)

// cellKey identifies one cube of the uniform grid.
type cellKey struct{ x, y, z int32 }

// Index buckets a mesh's faces by the grid cells their bounding boxes
// overlap, so a query box only needs to inspect the faces sharing at
// least one cell with it instead of every face in the mesh.
type Index struct {
	cellSize float64
	buckets  map[cellKey][]core.FH
	boxes    map[core.FH]trimesh.Box
}

// NewIndex returns an empty Index with the given cell size. A cell size
// on the order of the mesh's average edge length keeps bucket occupancy
// low without fragmenting a typical face across too many cells.
func NewIndex(cellSize float64) *Index {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Index{
		cellSize: cellSize,
		buckets:  make(map[cellKey][]core.FH),
		boxes:    make(map[core.FH]trimesh.Box),
	}
}

// faceBox returns the axis-aligned bounding box of f's three vertices.
func faceBox(m *core.Mesh, f core.FH) (trimesh.Box, error) {
	verts, err := m.FaceVertices(f)
	if err != nil {
		return trimesh.Box{}, err
	}
	box := trimesh.NewEmptyBox()
	for _, v := range verts {
		p, err := m.VertexPosition(v)
		if err != nil {
			return trimesh.Box{}, err
		}
		box = box.Extend(p)
	}
	return box, nil
}

func (idx *Index) cellRange(box trimesh.Box) (lo, hi cellKey) {
	toCell := func(v float64) int32 { return int32(math.Floor(v / idx.cellSize)) }
	return cellKey{toCell(box.Min.X), toCell(box.Min.Y), toCell(box.Min.Z)},
		cellKey{toCell(box.Max.X), toCell(box.Max.Y), toCell(box.Max.Z)}
}

// Insert adds f (with its current bounding box) to the index.
func (idx *Index) Insert(m *core.Mesh, f core.FH) error {
	box, err := faceBox(m, f)
	if err != nil {
		return err
	}
	idx.boxes[f] = box
	lo, hi := idx.cellRange(box)
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for z := lo.z; z <= hi.z; z++ {
				k := cellKey{x, y, z}
				idx.buckets[k] = append(idx.buckets[k], f)
			}
		}
	}
	return nil
}

// BuildIndex constructs an Index over every live face of m.
func BuildIndex(m *core.Mesh, cellSize float64) (*Index, error) {
	idx := NewIndex(cellSize)
	for _, f := range m.AllFaceHandles() {
		if err := idx.Insert(m, f); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Query returns every face (deduplicated) whose bounding box overlaps
// box, found by inspecting only the grid cells box touches. It is a
// cheap necessary-but-not-sufficient filter: callers still need a
// narrow-phase test before trusting a hit.
func (idx *Index) Query(box trimesh.Box) []core.FH {
	lo, hi := idx.cellRange(box)
	seen := map[core.FH]bool{}
	var out []core.FH
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for z := lo.z; z <= hi.z; z++ {
				for _, f := range idx.buckets[cellKey{x, y, z}] {
					if !idx.boxes[f].Overlaps(box) || seen[f] {
						continue
					}
					seen[f] = true
					out = append(out, f)
				}
			}
		}
	}
	return out
}

// CandidatePair is one pair of faces, one from each mesh, whose
// bounding boxes overlap closely enough to warrant a narrow-phase
// intersection test.
type CandidatePair struct {
	A, B core.FH
}

// CandidatePairs enumerates every (faceA, faceB) pair across meshes a
// and b whose bounding boxes overlap, without testing every face of a
// against every face of b: b's faces are bucketed once, and each of a's
// faces only queries the cells its own bounding box touches (spec §4.5
// step 1's asymptotic requirement).
func CandidatePairs(a, b *core.Mesh, cellSize float64) ([]CandidatePair, error) {
	idxB, err := BuildIndex(b, cellSize)
	if err != nil {
		return nil, err
	}
	var out []CandidatePair
	for _, fa := range a.AllFaceHandles() {
		boxA, err := faceBox(a, fa)
		if err != nil {
			return nil, err
		}
		for _, fb := range idxB.Query(boxA) {
			out = append(out, CandidatePair{A: fa, B: fb})
		}
	}
	return out, nil
}

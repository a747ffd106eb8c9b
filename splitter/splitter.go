// File: splitter.go
// Role: SplitAtIntersection, the mesh-mesh splitter (spec §4.5).
package splitter

import (
	"fmt"

	"github.com/trimesh-go/trimesh"
	"github.com/trimesh-go/trimesh/core"
	"github.com/trimesh-go/trimesh/editor"
	"github.com/trimesh-go/trimesh/isect"
	"github.com/trimesh-go/trimesh/measures"
	"github.com/trimesh-go/trimesh/merge"
	"github.com/trimesh-go/trimesh/spatial"
)

// Option configures a single SplitAtIntersection call.
type Option func(*config)

type config struct {
	cellSize        float64
	toleranceFactor float64
}

// WithCellSize overrides the broad phase's spatial grid cell size.
func WithCellSize(s float64) Option { return func(c *config) { c.cellSize = s } }

// WithToleranceFactor overrides the relative tolerance factor (spec
// §4.4's ε, default trimesh.DefaultRelativeTolerance) used to classify
// every intersection in this call.
func WithToleranceFactor(f float64) Option { return func(c *config) { c.toleranceFactor = f } }

// Failure records one candidate face pair the narrow phase could not
// cleanly resolve into an intersection edge.
type Failure struct {
	FaceA core.FH
	FaceB core.FH
	Err   error
}

// Result is the outcome of SplitAtIntersection: each input mesh, cut
// along the intersection curve and broken into standalone connected
// components.
type Result struct {
	ComponentsA []*core.Mesh
	ComponentsB []*core.Mesh
	Failures    []Failure
}

// SplitAtIntersection finds where an edge of one mesh crosses a face of
// the other, introduces a vertex there on that edge (splitting it, or
// reusing an endpoint within tolerance), and returns each mesh broken
// into standalone components along the edges that join two such
// vertices on one original face. A point where the other mesh's edge
// pierces a face's interior is not inserted into that face, and no flip
// or face split is made to realize the crossing curve, so a mesh whose
// own edges never cross the other mesh is left uncut. Individual
// candidate face pairs that cannot be
// resolved are collected into Result.Failures rather than aborting the
// whole call (spec §7).
func SplitAtIntersection(a, b *core.Mesh, opts ...Option) (Result, error) {
	cfg := config{toleranceFactor: trimesh.DefaultRelativeTolerance}
	for _, o := range opts {
		o(&cfg)
	}

	boxA := measures.BoundingBox(a)
	boxB := measures.BoundingBox(b)
	diag := boxA.Union(boxB).Diagonal()
	eps := trimesh.Tolerance(diag, cfg.toleranceFactor)

	cellSize := cfg.cellSize
	if cellSize <= 0 {
		if diag > 0 {
			cellSize = diag / 20
		} else {
			cellSize = 1
		}
	}

	pairs, err := spatial.CandidatePairs(a, b, cellSize)
	if err != nil {
		return Result{}, err
	}

	cutA := map[core.HH]bool{}
	cutB := map[core.HH]bool{}
	var failures []Failure

	for _, p := range pairs {
		if !a.FaceValid(p.A) || !b.FaceValid(p.B) {
			continue // one side already subdivided by a prior pair this pass
		}
		triA, err := corners(a, p.A)
		if err != nil {
			failures = append(failures, Failure{p.A, p.B, err})
			continue
		}
		triB, err := corners(b, p.B)
		if err != nil {
			failures = append(failures, Failure{p.A, p.B, err})
			continue
		}

		vsA, err := introduceFaceIntersection(a, p.A, triB, eps)
		if err != nil {
			failures = append(failures, Failure{p.A, p.B, err})
			continue
		}
		vsB, err := introduceFaceIntersection(b, p.B, triA, eps)
		if err != nil {
			failures = append(failures, Failure{p.A, p.B, err})
			continue
		}
		markCut(a, cutA, vsA)
		markCut(b, cutB, vsB)
	}

	compsA, err := extractComponents(a, cutA)
	if err != nil {
		return Result{}, err
	}
	compsB, err := extractComponents(b, cutB)
	if err != nil {
		return Result{}, err
	}
	return Result{ComponentsA: compsA, ComponentsB: compsB, Failures: failures}, nil
}

func corners(m *core.Mesh, f core.FH) ([3]trimesh.Vec3, error) {
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

// edgeHit is a face/edge narrow-phase result, keyed by the stable
// vertex handles of the edge it was found on rather than its half-edge
// handle, since splitting an earlier hit on the same face can delete
// and recreate the half-edges of the face's other sides.
type edgeHit struct {
	origin, dest core.VH
	t            float64
	point        trimesh.Vec3
}

// introduceFaceIntersection tests f's three edges against otherTri and
// introduces a vertex at every crossing found, returning them in
// discovery order. Two crossings on the same face are resolved in a
// fixed order so that the second SplitEdge call lands on whichever new
// face the first call left owning that edge, which makes the new
// vertex-to-vertex edge fall out automatically as a byproduct (no
// separate flip or face-split step is needed).
func introduceFaceIntersection(m *core.Mesh, f core.FH, otherTri [3]trimesh.Vec3, eps float64) ([]core.VH, error) {
	hs, err := m.FaceHalfedges(f)
	if err != nil {
		return nil, err
	}

	var hits []edgeHit
	for _, h := range hs {
		origin, err := m.HalfedgeOrigin(h)
		if err != nil {
			return nil, err
		}
		dest, err := m.HalfedgeVertex(h)
		if err != nil {
			return nil, err
		}
		p0, err := m.VertexPosition(origin)
		if err != nil {
			return nil, err
		}
		p1, err := m.VertexPosition(dest)
		if err != nil {
			return nil, err
		}
		res := isect.FaceEdge(otherTri, p0, p1, eps)
		if !res.Hit {
			continue
		}
		hits = append(hits, edgeHit{origin: origin, dest: dest, t: res.T, point: res.Point})
	}

	// Dedupe: a crossing that passes exactly through an existing vertex
	// is reported once per adjacent edge (two hits, same resolved
	// vertex). Collapse those before counting distinct crossings, so
	// only genuinely distinct points count toward the 2-crossing case.
	type item struct {
		pinned bool
		vertex core.VH
		hit    edgeHit
	}
	var items []item
	seen := map[core.VH]bool{}
	for _, h := range hits {
		switch {
		case h.t <= eps:
			if seen[h.origin] {
				continue
			}
			seen[h.origin] = true
			items = append(items, item{pinned: true, vertex: h.origin})
		case h.t >= 1-eps:
			if seen[h.dest] {
				continue
			}
			seen[h.dest] = true
			items = append(items, item{pinned: true, vertex: h.dest})
		default:
			items = append(items, item{hit: h})
		}
	}

	resolve := func(it item) (core.VH, error) {
		if it.pinned {
			return it.vertex, nil
		}
		return resolveHit(m, it.hit, eps)
	}

	switch len(items) {
	case 0:
		return nil, nil
	case 1:
		v, err := resolve(items[0])
		if err != nil {
			return nil, err
		}
		return []core.VH{v}, nil
	case 2:
		v0, err := resolve(items[0])
		if err != nil {
			return nil, err
		}
		v1, err := resolve(items[1])
		if err != nil {
			return nil, err
		}
		if v0 == v1 {
			return []core.VH{v0}, nil
		}
		return []core.VH{v0, v1}, nil
	default:
		return nil, fmt.Errorf("%w: face has %d distinct edge crossings, expected at most 2", ErrCannotRealizeIntersection, len(items))
	}
}

// resolveHit returns the existing endpoint vertex if the hit landed
// within eps of it, or splits the edge at the hit point otherwise. The
// edge is re-looked-up by its (stable) vertex endpoints rather than
// trusting a previously captured half-edge handle.
func resolveHit(m *core.Mesh, hit edgeHit, eps float64) (core.VH, error) {
	if hit.t <= eps {
		return hit.origin, nil
	}
	if hit.t >= 1-eps {
		return hit.dest, nil
	}
	h, err := m.HalfedgeBetween(hit.origin, hit.dest)
	if err != nil {
		return core.NilVH, err
	}
	return editor.SplitEdge(m, h, editor.WithPosition(hit.point))
}

func markCut(m *core.Mesh, cut map[core.HH]bool, vs []core.VH) {
	if len(vs) != 2 {
		return
	}
	if h, err := m.HalfedgeBetween(vs[0], vs[1]); err == nil {
		cut[h] = true
		if t, err := m.HalfedgeTwin(h); err == nil {
			cut[t] = true
		}
	}
}

// extractComponents partitions m's faces into connected components,
// treating cut as a set of barriers that face-adjacency may not cross,
// and clones each component into its own standalone mesh.
func extractComponents(m *core.Mesh, cut map[core.HH]bool) ([]*core.Mesh, error) {
	visited := map[core.FH]bool{}
	var comps []*core.Mesh
	for _, seed := range m.AllFaceHandles() {
		if visited[seed] {
			continue
		}
		var group []core.FH
		queue := []core.FH{seed}
		visited[seed] = true
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			group = append(group, f)

			hs, err := m.FaceHalfedges(f)
			if err != nil {
				return nil, err
			}
			for _, h := range hs {
				if cut[h] {
					continue
				}
				t, err := m.HalfedgeTwin(h)
				if err != nil {
					return nil, err
				}
				if cut[t] {
					continue
				}
				nf, err := m.HalfedgeFace(t)
				if err != nil {
					return nil, err
				}
				if nf.IsNil() || visited[nf] {
					continue
				}
				visited[nf] = true
				queue = append(queue, nf)
			}
		}
		clone, err := merge.CloneSubset(m, group)
		if err != nil {
			return nil, err
		}
		comps = append(comps, clone)
	}
	return comps, nil
}

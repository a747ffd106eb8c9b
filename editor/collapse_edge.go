// File: collapse_edge.go
// Role: collapse_edge (spec §4.3): merge an edge's two endpoints into
// one vertex, guarded by the link condition (operator law 4, spec §8).
package editor

import (
	"github.com/trimesh-go/trimesh"
	"github.com/trimesh-go/trimesh/core"
)

// CollapseOption configures a single collapse_edge call.
type CollapseOption func(*collapseConfig)

type collapseConfig struct {
	position    trimesh.Vec3
	hasPosition bool
}

// WithTargetPosition pins the surviving vertex to an explicit position
// instead of the collapsed edge's midpoint.
func WithTargetPosition(p trimesh.Vec3) CollapseOption {
	return func(c *collapseConfig) {
		c.position = p
		c.hasPosition = true
	}
}

// CollapseEdge merges the two endpoints of the mesh-edge h belongs to
// into a single surviving vertex (the origin of h), deleting the
// destination. Fails with ErrLinkConditionViolated, without touching the
// mesh, if the endpoints share a common neighbor other than the apex of
// an incident face — collapsing such an edge would create a
// non-manifold vertex or edge.
func CollapseEdge(m *core.Mesh, h core.HH, opts ...CollapseOption) error {
	cfg := collapseConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	a, err := m.HalfedgeOrigin(h)
	if err != nil {
		return err
	}
	b, err := m.HalfedgeVertex(h)
	if err != nil {
		return err
	}
	t, err := m.HalfedgeTwin(h)
	if err != nil {
		return err
	}
	fL, err := m.HalfedgeFace(h)
	if err != nil {
		return err
	}
	fR, err := m.HalfedgeFace(t)
	if err != nil {
		return err
	}

	allowed := map[core.VH]bool{}
	if !fL.IsNil() {
		c, err := thirdVertex(m, fL, a, b)
		if err != nil {
			return err
		}
		allowed[c] = true
	}
	if !fR.IsNil() {
		d, err := thirdVertex(m, fR, a, b)
		if err != nil {
			return err
		}
		allowed[d] = true
	}

	neighborsA, err := neighborVertices(m, a, b)
	if err != nil {
		return err
	}
	neighborsB, err := neighborVertices(m, b, a)
	if err != nil {
		return err
	}
	for v := range neighborsA {
		if neighborsB[v] && !allowed[v] {
			return ErrLinkConditionViolated
		}
	}

	// Collect every face incident to b other than fL/fR, with b already
	// substituted by a, captured before any mutation so later queries
	// against b remain valid.
	type replacement [3]core.VH
	seen := map[core.FH]bool{}
	var toRebuild []replacement
	outB, err := m.OutgoingHalfedges(b)
	if err != nil {
		return err
	}
	for _, oh := range outB {
		f, err := m.HalfedgeFace(oh)
		if err != nil {
			return err
		}
		if f.IsNil() || f == fL || f == fR || seen[f] {
			continue
		}
		seen[f] = true
		verts, err := m.FaceVertices(f)
		if err != nil {
			return err
		}
		var r replacement
		for i, v := range verts {
			if v == b {
				r[i] = a
			} else {
				r[i] = v
			}
		}
		toRebuild = append(toRebuild, r)
	}

	pos := cfg.position
	if !cfg.hasPosition {
		pa, err := m.VertexPosition(a)
		if err != nil {
			return err
		}
		pb, err := m.VertexPosition(b)
		if err != nil {
			return err
		}
		pos = pa.Midpoint(pb)
	}

	if !fL.IsNil() {
		if err := m.RemoveFace(fL); err != nil {
			return err
		}
	}
	if !fR.IsNil() {
		if err := m.RemoveFace(fR); err != nil {
			return err
		}
	}
	for f := range seen {
		if err := m.RemoveFace(f); err != nil {
			return err
		}
	}
	if err := m.RemoveVertex(b); err != nil {
		return err
	}
	if err := m.SetVertexPosition(a, pos); err != nil {
		return err
	}
	for _, r := range toRebuild {
		if _, err := m.AddFace(r[0], r[1], r[2]); err != nil {
			return err
		}
	}
	return nil
}

// neighborVertices returns the set of v's neighbors (destinations of its
// outgoing half-edges), excluding exclude.
func neighborVertices(m *core.Mesh, v, exclude core.VH) (map[core.VH]bool, error) {
	out, err := m.OutgoingHalfedges(v)
	if err != nil {
		return nil, err
	}
	set := make(map[core.VH]bool, len(out))
	for _, h := range out {
		dest, err := m.HalfedgeVertex(h)
		if err != nil {
			return nil, err
		}
		if dest != exclude {
			set[dest] = true
		}
	}
	return set, nil
}

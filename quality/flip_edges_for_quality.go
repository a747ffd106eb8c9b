// File: flip_edges_for_quality.go
// Role: flip_edges_for_quality (spec §4.7): a Delaunay-style pass that
// flips any interior edge whose two opposite angles sum past a straight
// angle, repeated to a fixed iteration cap (spec §9 Open Question,
// resolved in DESIGN.md).
package quality

import (
	"math"

	"github.com/trimesh-go/trimesh/core"
	"github.com/trimesh-go/trimesh/editor"
	"github.com/trimesh-go/trimesh/measures"
	"github.com/trimesh-go/trimesh/walker"
)

// defaultMaxIterations bounds the number of full sweeps
// FlipEdgesForQuality performs when no QualityOption overrides it. A
// single sweep can only improve locally; a handful of sweeps lets
// improvements propagate without risking an unbounded loop on a mesh
// with no stable Delaunay triangulation (spec §9).
const defaultMaxIterations = 8

// QualityOption configures a FlipEdgesForQuality run.
type QualityOption func(*qualityConfig)

type qualityConfig struct {
	maxIterations int
}

// WithMaxIterations overrides the default sweep cap.
func WithMaxIterations(n int) QualityOption {
	return func(c *qualityConfig) { c.maxIterations = n }
}

// FlipEdgesForQuality repeatedly sweeps every interior edge, flipping
// any whose two opposite apex angles sum to more than pi (the standard
// in-circle Delaunay criterion expressed via angles), until a sweep
// makes no flips or the iteration cap is reached.
func FlipEdgesForQuality(m *core.Mesh, opts ...QualityOption) Report {
	cfg := qualityConfig{maxIterations: defaultMaxIterations}
	for _, o := range opts {
		o(&cfg)
	}

	var report Report
	for iter := 0; iter < cfg.maxIterations; iter++ {
		edges, err := walker.Edges(m)
		if err != nil {
			report.Failed = append(report.Failed, FailedItem{Err: err})
			return report
		}
		flips := 0
		for _, h := range edges {
			if !m.HalfedgeValid(h) {
				continue // consumed by an earlier flip this sweep
			}
			t, err := m.HalfedgeTwin(h)
			if err != nil {
				continue
			}
			fL, err := m.HalfedgeFace(h)
			if err != nil {
				continue
			}
			fR, err := m.HalfedgeFace(t)
			if err != nil {
				continue
			}
			if fL.IsNil() || fR.IsNil() {
				continue
			}
			improves, err := opppositeAnglesExceedStraight(m, h, t, fL, fR)
			if err != nil {
				continue
			}
			if !improves {
				continue
			}
			if err := editor.FlipEdge(m, h); err != nil {
				report.Failed = append(report.Failed, FailedItem{Face: fL, Err: err})
				continue
			}
			flips++
			report.Flipped++
		}
		if flips == 0 {
			break
		}
	}
	return report
}

// opppositeAnglesExceedStraight reports whether the interior angles at
// the two apexes opposite edge h (h's face apex and its twin's face
// apex) sum to more than pi, the classic Delaunay flip test.
func opppositeAnglesExceedStraight(m *core.Mesh, h, t core.HH, fL, fR core.FH) (bool, error) {
	a, err := m.HalfedgeOrigin(h)
	if err != nil {
		return false, err
	}
	b, err := m.HalfedgeVertex(h)
	if err != nil {
		return false, err
	}
	c, err := thirdVertex(m, fL, a, b)
	if err != nil {
		return false, err
	}
	d, err := thirdVertex(m, fR, a, b)
	if err != nil {
		return false, err
	}

	angleC, err := angleAtVertex(m, fL, c)
	if err != nil {
		return false, err
	}
	angleD, err := angleAtVertex(m, fR, d)
	if err != nil {
		return false, err
	}
	return angleC+angleD > math.Pi, nil
}

// thirdVertex returns whichever of f's three vertices is neither a nor b.
func thirdVertex(m *core.Mesh, f core.FH, a, b core.VH) (core.VH, error) {
	verts, err := m.FaceVertices(f)
	if err != nil {
		return core.NilVH, err
	}
	for _, v := range verts {
		if v != a && v != b {
			return v, nil
		}
	}
	return core.NilVH, core.ErrDegenerateTopology
}

// angleAtVertex returns f's interior angle at vertex v.
func angleAtVertex(m *core.Mesh, f core.FH, v core.VH) (float64, error) {
	verts, err := m.FaceVertices(f)
	if err != nil {
		return 0, err
	}
	angles, err := measures.FaceAngles(m, f)
	if err != nil {
		return 0, err
	}
	for i, vv := range verts {
		if vv == v {
			return angles[i], nil
		}
	}
	return 0, core.ErrDegenerateTopology
}

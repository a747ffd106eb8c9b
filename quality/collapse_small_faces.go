// File: collapse_small_faces.go
// Role: collapse_small_faces (spec §4.7): remove slivers below an area
// threshold by collapsing each one's shortest edge.
package quality

import (
	"github.com/trimesh-go/trimesh/core"
	"github.com/trimesh-go/trimesh/editor"
	"github.com/trimesh-go/trimesh/measures"
)

// CollapseSmallFaces collapses the shortest edge of every live face
// whose area is below threshold, at the time it is visited. Faces are
// visited in a snapshot taken up front; a face already consumed by an
// earlier collapse in the same pass (because it shared an edge with a
// smaller one) is silently skipped rather than reported as a failure.
func CollapseSmallFaces(m *core.Mesh, threshold float64) Report {
	var report Report
	for _, f := range m.AllFaceHandles() {
		if !m.FaceValid(f) {
			continue
		}
		area, err := measures.FaceArea(m, f)
		if err != nil {
			report.Failed = append(report.Failed, FailedItem{Face: f, Err: err})
			continue
		}
		if area >= threshold {
			continue
		}
		shortest, err := shortestEdge(m, f)
		if err != nil {
			report.Failed = append(report.Failed, FailedItem{Face: f, Err: err})
			continue
		}
		if err := editor.CollapseEdge(m, shortest); err != nil {
			report.Failed = append(report.Failed, FailedItem{Face: f, Err: err})
			continue
		}
		report.Collapsed++
	}
	return report
}

// shortestEdge returns whichever of f's three half-edges has the
// smallest length.
func shortestEdge(m *core.Mesh, f core.FH) (core.HH, error) {
	hs, err := m.FaceHalfedges(f)
	if err != nil {
		return core.NilHH, err
	}
	best := hs[0]
	bestLen, err := measures.EdgeLength(m, best)
	if err != nil {
		return core.NilHH, err
	}
	for _, h := range hs[1:] {
		l, err := measures.EdgeLength(m, h)
		if err != nil {
			return core.NilHH, err
		}
		if l < bestLen {
			best, bestLen = h, l
		}
	}
	return best, nil
}

// errors.go — sentinel errors for BuildError (spec §7/§6).
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is. Sentinels are never wrapped with formatted strings at
// definition site; Build attaches context with %w.

package builder

import "errors"

// ErrPositionsLength indicates the flat positions buffer's length is not a
// multiple of 3.
var ErrPositionsLength = errors.New("builder: positions length is not a multiple of 3")

// ErrIndexOutOfRange indicates an index triple references a position that
// was never supplied.
var ErrIndexOutOfRange = errors.New("builder: index references a missing position")

// ErrIndicesLength indicates the flat indices buffer's length is not a
// multiple of 3.
var ErrIndicesLength = errors.New("builder: indices length is not a multiple of 3")

// ErrNonManifoldIndex indicates an index triple would give some directed
// edge a second incident face, mirroring core.ErrNonManifoldEdge and
// core.ErrDegenerateTopology at construction time.
var ErrNonManifoldIndex = errors.New("builder: index triple would create a non-manifold edge")

// ErrTooFewSegments indicates a primitive template parameter (Cylinder's
// segment count, Sphere's subdivision depth) is below the minimum needed
// for a non-degenerate mesh.
var ErrTooFewSegments = errors.New("builder: parameter too small for this primitive")

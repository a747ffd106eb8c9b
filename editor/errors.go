package editor

import "errors"

// Sentinel errors for the local topological editors (spec §7).
var (
	// ErrLinkConditionViolated is returned by CollapseEdge when collapsing
	// the edge would create a non-manifold vertex or edge (the two
	// endpoints share a neighbor that is not one of the edge's two
	// incident-face apexes).
	ErrLinkConditionViolated = errors.New("editor: collapsing this edge violates the link condition")

	// ErrEdgeAlreadyExists is returned by FlipEdge when the edge that
	// flipping would create already exists elsewhere in the mesh.
	ErrEdgeAlreadyExists = errors.New("editor: the edge this operation would create already exists")

	// ErrBoundaryOperationNotPermitted is returned by FlipEdge, which
	// requires two incident faces, when it is given a boundary edge.
	// CollapseEdge and SplitEdge accept boundary edges.
	ErrBoundaryOperationNotPermitted = errors.New("editor: operation not permitted on a boundary edge")

	// ErrDegenerateGeometry is returned when an operation's input is
	// topologically degenerate in a way that has no sensible result, such
	// as FlipEdge's two incident faces sharing both non-shared apexes.
	ErrDegenerateGeometry = errors.New("editor: operation input is degenerate")
)

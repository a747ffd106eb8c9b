// File: types.go
// Role: Handle types, sentinel errors, and the Mesh arena layout.
package core

import (
	"errors"

	"github.com/trimesh-go/trimesh"
)

// Sentinel errors for core connectivity operations.
var (
	// ErrInvalidHandle indicates a handle belongs to a deleted slot, to a
	// different mesh, or was never allocated (spec §7 InvalidHandle).
	ErrInvalidHandle = errors.New("core: invalid handle")

	// ErrDegenerateTopology indicates a face was asked to reference the
	// same vertex more than once.
	ErrDegenerateTopology = errors.New("core: face references a repeated vertex")

	// ErrNonManifoldEdge indicates adding a face would give some directed
	// edge a second incident face, or would give an undirected edge a
	// third incident face (spec §4.1's add_face failure mode).
	ErrNonManifoldEdge = errors.New("core: edge already has an incident face in this orientation")

	// ErrNotIsolated indicates RemoveVertex was called on a vertex that
	// still has incident half-edges.
	ErrNotIsolated = errors.New("core: vertex is not isolated")

	// ErrHalfedgeNotFound is returned by HalfedgeBetween when no half-edge
	// connects the two given vertices.
	ErrHalfedgeNotFound = errors.New("core: no half-edge between the given vertices")
)

// VH is a stable handle to a Vertex. The zero value, NilVH, never refers
// to a live vertex.
type VH struct {
	idx uint32
	gen uint32
}

// NilVH is the handle that never refers to a live vertex.
var NilVH = VH{}

// IsNil reports whether h is the nil handle.
func (h VH) IsNil() bool { return h.idx == 0 }

// HH is a stable handle to a half-edge.
type HH struct {
	idx uint32
	gen uint32
}

// NilHH is the handle that never refers to a live half-edge.
var NilHH = HH{}

// IsNil reports whether h is the nil handle.
func (h HH) IsNil() bool { return h.idx == 0 }

// FH is a stable handle to a face.
type FH struct {
	idx uint32
	gen uint32
}

// NilFH is the handle that never refers to a live face.
var NilFH = FH{}

// IsNil reports whether h is the nil handle.
func (h FH) IsNil() bool { return h.idx == 0 }

type vertexSlot struct {
	alive bool
	gen   uint32
	pos   trimesh.Vec3
	out   HH // one outgoing half-edge; NilHH iff isolated
}

type halfedgeSlot struct {
	alive  bool
	gen    uint32
	vertex VH // destination (the vertex this half-edge points to)
	twin   HH
	next   HH
	face   FH // NilFH iff this is a boundary half-edge
}

type faceSlot struct {
	alive bool
	gen   uint32
	he    HH // one half-edge of the face's loop
}

// Mesh is the arena-backed connectivity store: vertices, half-edges, and
// faces, each in its own slice, addressed by generation-safe handles.
// Deleted slots are recycled via a free-list keyed by generation, so
// arenas grow geometrically and stale handles fail deterministically
// (spec §9's "cyclic references ... stored as arena indices").
//
// Index 0 in every arena is a permanent sentinel slot that is never
// allocated to a live entity, so the zero handle value is always invalid.
type Mesh struct {
	verts []vertexSlot
	hes   []halfedgeSlot
	faces []faceSlot

	freeV []uint32
	freeH []uint32
	freeF []uint32
}

// MeshOption configures a Mesh at construction time.
type MeshOption func(*Mesh)

// WithCapacityHint pre-sizes the arenas to reduce reallocation when the
// approximate final vertex/halfedge/face counts are known up front.
func WithCapacityHint(vertices, halfedges, faces int) MeshOption {
	return func(m *Mesh) {
		if vertices > 0 {
			m.verts = make([]vertexSlot, 1, vertices+1)
		}
		if halfedges > 0 {
			m.hes = make([]halfedgeSlot, 1, halfedges+1)
		}
		if faces > 0 {
			m.faces = make([]faceSlot, 1, faces+1)
		}
	}
}

// NewMesh returns an empty Mesh ready to accept vertices and faces.
func NewMesh(opts ...MeshOption) *Mesh {
	m := &Mesh{
		verts: make([]vertexSlot, 1), // slot 0 is the permanent nil sentinel
		hes:   make([]halfedgeSlot, 1),
		faces: make([]faceSlot, 1),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

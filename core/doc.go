// Package core is the connectivity store: three parallel arenas
// (vertices, half-edges, faces) addressed by generation-safe handles.
//
// A Mesh exclusively owns its arenas. Every exported method pre-validates
// handles and preconditions before touching a slot, so a failed call never
// leaves the mesh partway mutated (spec §4.3's atomicity policy starts
// here, at the lowest layer).
//
// Half-edges always come in twin pairs, even on the mesh boundary: a
// boundary half-edge has Face() == NilFH but still has a valid Twin and a
// valid Next that continues the boundary loop. This resolves an ambiguity
// in the half-edge model's description (a boundary half-edge's Next is
// sometimes described as absent) the same way every mature half-edge
// implementation does, because without it the boundary loop cannot be
// traversed at all; see DESIGN.md.
//
// Mesh is not safe for concurrent use: operators need exclusive access,
// readers need shared access, and the package enforces neither with locks
// (spec §5 — the mesh is single-threaded by design, not by accident).
package core

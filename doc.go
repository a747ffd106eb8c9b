// Package trimesh is the root of a half-edge triangle-mesh library: a
// connectivity store (core), a traversal cursor and iterators (walker),
// pure geometric measures (measures), local topological editors (editor),
// a quality/repair layer (quality), an intersection kernel (isect) and
// mesh-mesh splitter (splitter), a merge/clone layer (merge), and a thin
// mesh builder (builder).
//
// This root package owns only the two things every other package needs
// and that the spec treats as "assumed available": a minimal 3-vector
// type and a bbox-relative tolerance. Everything else lives in a
// subpackage so that dependency direction stays one-way: subpackages
// import trimesh, trimesh never imports them.
package trimesh

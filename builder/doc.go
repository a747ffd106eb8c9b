// Package builder is the external collaborator spec §6 calls out: a thin
// assembler that turns raw positions+indices, or one of a handful of
// primitive templates (cube, icosahedron, cylinder, sphere), into a
// *core.Mesh, plus the flat export buffers a renderer or file writer would
// want back out (positions_buffer/indices_buffer/normals_buffer).
//
// It never reaches into editor/quality/isect: every mesh it produces is
// built with core.AddVertex/core.AddFace alone, generalized from the
// teacher's BuildGraph(gopts, bopts, cons...) orchestrator to positioned
// triangle meshes instead of labeled topology graphs. A WithIndices triple
// that would violate core's manifold invariants surfaces as a BuildError,
// not a panic. Build rejects a bad flat-positions or indices length before
// any vertex is added; out-of-range indices and non-manifold triples are
// caught while faces are added, and on any error Build returns no mesh.
package builder

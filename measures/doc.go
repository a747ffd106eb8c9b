// Package measures provides pure, read-only geometric functions over a
// core.Mesh's connectivity and vertex positions: lengths, areas, normals,
// angles, and bounding boxes (spec §4.1 "Measures"). Nothing here mutates
// the mesh; the two transform helpers (Translate, Scale) are the
// exception, provided because spec §8's bbox invariants require them to
// exist, even though full affine-transform batch rewrites are named as an
// out-of-scope external collaborator in spec §1.
package measures

// Package merge implements the whole-mesh operations of spec §4.6:
// MergeWith (splice one mesh's faces into another, stitching boundary
// vertices within tolerance) and CloneSubset (extract a standalone mesh
// from exactly a given face set). Both are built by re-deriving
// connectivity from scratch through core.AddFace rather than copying
// arena slots directly, the same approach the splitter's component
// extraction relies on: core.AddFace already re-identifies twins for
// free by looking up any existing reverse half-edge.
package merge

// Package quality implements the high-level quality operators of spec
// §4.7: CollapseSmallFaces and FlipEdgesForQuality. Both are composed
// entirely from editor operations, and both absorb individual editor
// failures into a per-item report instead of propagating them (spec §7:
// "high-level operators may absorb individual editor failures"), since a
// single unflippable or uncollapsible triangle should not abort an
// otherwise-successful pass over the rest of the mesh.
package quality

// Package isect implements the intersection kernel of spec §4.4: the
// edge/point, face/point, edge/edge, face/edge, and face/ray primitives
// every higher-level intersection query is built from. Every primitive
// takes an explicit tolerance (see trimesh.Tolerance) rather than a
// hardcoded epsilon, since what counts as "on" a feature depends on the
// scale of the mesh being tested.
package isect

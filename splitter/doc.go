// Package splitter implements split_at_intersection (spec §4.5): find
// where the edges of each mesh cross the other mesh, cut each mesh there,
// and return each side as its own standalone mesh. It is built in the same four
// stages the spec lays the operation out in: a broad phase (spatial),
// a narrow phase (isect), vertex introduction (editor.SplitEdge), and
// component extraction (merge.CloneSubset).
package splitter

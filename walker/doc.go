// Package walker provides a read-only cursor over half-edges (Walker) and
// the global/adjacency iterators built on it (spec §4.2). Everything here
// is built exclusively on core's exported API, the same layering the
// teacher repo uses for its bfs/dfs packages over core.Graph.
//
// A Walker never mutates the mesh and never outlives a single read pass:
// iterators are snapshots, and any editor call between taking one and
// finishing the walk is a programming error the package does not defend
// against (spec §4.2's iterator-invalidation contract).
package walker

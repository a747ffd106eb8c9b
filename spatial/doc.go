// Package spatial provides the broad-phase spatial index the mesh-mesh
// splitter uses to avoid testing every face of one mesh against every
// face of the other (spec §4.5 step 1). It buckets faces by the
// axis-aligned grid cells their bounding boxes touch, the same
// discretize-space-into-cells approach the teacher's gridgraph package
// uses for 2D terrain, generalized here to 3D face bounding boxes and
// to answering overlap queries instead of fixed grid adjacency.
package spatial

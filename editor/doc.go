// Package editor implements the local topological editors of spec §4.3:
// SplitEdge, SplitFace, CollapseEdge, FlipEdge, and RemoveFace. Each one
// validates every precondition before touching the mesh, so a rejected
// call never leaves the mesh partially mutated — the same
// validate-then-mutate shape core.AddFace and core.RemoveFace already
// use, generalized here to operations that span several core calls.
//
// Editors are built only on core's and walker's exported APIs; none of
// them reach into core's internal slots.
package editor

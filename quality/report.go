package quality

import "github.com/trimesh-go/trimesh/core"

// FailedItem records one face or edge a quality pass could not improve,
// together with the editor error that stopped it.
type FailedItem struct {
	Face core.FH
	Err  error
}

// Report summarizes one quality-operator run. Individual failures are
// collected here rather than aborting the run (spec §7).
type Report struct {
	Collapsed int
	Flipped   int
	Failed    []FailedItem
}

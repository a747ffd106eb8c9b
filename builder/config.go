// config.go — functional options for Build (spec §6's with_positions/
// with_indices/with_normals), resolved once into an immutable config
// before any vertex or face is added.
package builder

import "github.com/trimesh-go/trimesh"

// Option customizes a single Build call by mutating a config before
// construction begins.
type Option func(cfg *config)

// config holds the raw buffers Build assembles a mesh from.
type config struct {
	positions        []trimesh.Vec3
	indices          []int // flat triples (i0,i1,i2, i0,i1,i2, ...)
	normals          []trimesh.Vec3
	hasNormals       bool
	flatPositionsErr bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithPositions supplies the mesh's vertex positions, one per vertex, in
// the order vertices are added (and thus the order index triples in
// WithIndices refer to them by).
func WithPositions(positions []trimesh.Vec3) Option {
	return func(cfg *config) { cfg.positions = positions }
}

// WithIndices supplies flat index triples (i0,i1,i2 per face) into the
// positions supplied via WithPositions.
func WithIndices(indices []int) Option {
	return func(cfg *config) { cfg.indices = indices }
}

// WithFlatPositions mirrors spec §6's literal with_positions(Vec<f32|f64>)
// signature: a flat [x0,y0,z0,x1,...] buffer instead of []trimesh.Vec3. A
// length not divisible by 3 is recorded and surfaces as ErrPositionsLength
// once Build runs, rather than panicking here, so every validation failure
// goes through the same BuildError path.
func WithFlatPositions(flat []float64) Option {
	return func(cfg *config) {
		if len(flat)%3 != 0 {
			cfg.flatPositionsErr = true
			return
		}
		positions := make([]trimesh.Vec3, len(flat)/3)
		for i := range positions {
			positions[i] = trimesh.Vec3{X: flat[3*i], Y: flat[3*i+1], Z: flat[3*i+2]}
		}
		cfg.positions = positions
	}
}

// WithNormals attaches an explicit per-vertex normal override, returned by
// NormalsBuffer in place of the geometric area-weighted average. The slice
// must have one entry per vertex in the same order as WithPositions; Build
// does not validate its length against the position count beyond that
// recorded here, since normals play no role in connectivity.
func WithNormals(normals []trimesh.Vec3) Option {
	return func(cfg *config) {
		cfg.normals = normals
		cfg.hasNormals = true
	}
}

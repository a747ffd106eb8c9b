// File: methods_halfedges.go
// Role: Half-edge queries, the vertex-fan rotation primitive, and the
// low-level setters the editor package composes into split/collapse/flip.
package core

// HalfedgeVertex returns the vertex h points to (its destination).
func (m *Mesh) HalfedgeVertex(h HH) (VH, error) {
	s, err := m.resolveHalfedge(h)
	if err != nil {
		return NilVH, err
	}
	return s.vertex, nil
}

// HalfedgeOrigin returns the vertex h points from. It is always
// HalfedgeVertex(h.Twin()), since every half-edge has a twin.
func (m *Mesh) HalfedgeOrigin(h HH) (VH, error) {
	s, err := m.resolveHalfedge(h)
	if err != nil {
		return NilVH, err
	}
	t, err := m.resolveHalfedge(s.twin)
	if err != nil {
		return NilVH, err
	}
	return t.vertex, nil
}

// HalfedgeTwin returns h's twin.
func (m *Mesh) HalfedgeTwin(h HH) (HH, error) {
	s, err := m.resolveHalfedge(h)
	if err != nil {
		return NilHH, err
	}
	return s.twin, nil
}

// HalfedgeNext returns the next half-edge around h's loop (its face's
// loop if h is interior, the boundary loop if h is a boundary half-edge).
func (m *Mesh) HalfedgeNext(h HH) (HH, error) {
	s, err := m.resolveHalfedge(h)
	if err != nil {
		return NilHH, err
	}
	return s.next, nil
}

// HalfedgePrev returns the half-edge before h in the same loop. For an
// interior half-edge this is next.next (triangular loops, invariant 1);
// for a boundary half-edge it is found by rotating the fan at h's origin.
func (m *Mesh) HalfedgePrev(h HH) (HH, error) {
	s, err := m.resolveHalfedge(h)
	if err != nil {
		return NilHH, err
	}
	if !s.face.IsNil() {
		n1, err := m.resolveHalfedge(s.next)
		if err != nil {
			return NilHH, err
		}
		return n1.next, nil
	}
	// Boundary: walk forward around the origin's fan until we find the
	// incoming half-edge (the twin of an outgoing one) whose next is h.
	origin, err := m.HalfedgeOrigin(h)
	if err != nil {
		return NilHH, err
	}
	start, err := m.VertexOutgoing(origin)
	if err != nil {
		return NilHH, err
	}
	cur := start
	for {
		cs, err := m.resolveHalfedge(cur)
		if err != nil {
			return NilHH, err
		}
		ts, err := m.resolveHalfedge(cs.twin)
		if err != nil {
			return NilHH, err
		}
		if ts.next == h {
			return cs.twin, nil
		}
		nxt, err := m.rotateOutgoing(cur)
		if err != nil || nxt == start {
			return NilHH, ErrHalfedgeNotFound
		}
		cur = nxt
	}
}

// HalfedgeFace returns the face on h's left, or NilFH if h is a boundary
// half-edge.
func (m *Mesh) HalfedgeFace(h HH) (FH, error) {
	s, err := m.resolveHalfedge(h)
	if err != nil {
		return NilFH, err
	}
	return s.face, nil
}

// HalfedgeValid reports whether h refers to a live half-edge.
func (m *Mesh) HalfedgeValid(h HH) bool {
	_, err := m.resolveHalfedge(h)
	return err == nil
}

// HalfedgeCount returns the number of live half-edges.
func (m *Mesh) HalfedgeCount() int {
	return len(m.hes) - 1 - len(m.freeH)
}

// AllHalfedgeHandles returns a snapshot of every live half-edge handle in
// arena order. See AllVertexHandles for the snapshot/stability contract.
func (m *Mesh) AllHalfedgeHandles() []HH {
	out := make([]HH, 0, m.HalfedgeCount())
	for i := 1; i < len(m.hes); i++ {
		s := &m.hes[i]
		if s.alive {
			out = append(out, HH{idx: uint32(i), gen: s.gen})
		}
	}
	return out
}

// rotateOutgoing returns the next outgoing half-edge when rotating around
// the shared origin vertex of h: h.twin.next. This is the fan-rotation
// primitive every traversal in this library is built from (spec §9).
func (m *Mesh) rotateOutgoing(h HH) (HH, error) {
	s, err := m.resolveHalfedge(h)
	if err != nil {
		return NilHH, err
	}
	t, err := m.resolveHalfedge(s.twin)
	if err != nil {
		return NilHH, err
	}
	return t.next, nil
}

// HalfedgeBetween returns the half-edge whose origin is a and whose
// destination is b, found by rotating a's outgoing fan (spec §4.1: "used
// by pairing and by intersection bookkeeping"). Returns ErrHalfedgeNotFound
// if no such half-edge exists.
func (m *Mesh) HalfedgeBetween(a, b VH) (HH, error) {
	as, err := m.resolveVertex(a)
	if err != nil {
		return NilHH, err
	}
	if _, err := m.resolveVertex(b); err != nil {
		return NilHH, err
	}
	if as.out.IsNil() {
		return NilHH, ErrHalfedgeNotFound
	}
	start := as.out
	cur := start
	for {
		cs, err := m.resolveHalfedge(cur)
		if err != nil {
			return NilHH, err
		}
		if cs.vertex == b {
			return cur, nil
		}
		nxt, err := m.rotateOutgoing(cur)
		if err != nil {
			return NilHH, err
		}
		if nxt == start {
			return NilHH, ErrHalfedgeNotFound
		}
		cur = nxt
	}
}

// VertexDegree returns the number of distinct edges incident to v
// (outgoing half-edge count), by rotating its fan once.
func (m *Mesh) VertexDegree(v VH) (int, error) {
	vs, err := m.resolveVertex(v)
	if err != nil {
		return 0, err
	}
	if vs.out.IsNil() {
		return 0, nil
	}
	start := vs.out
	cur := start
	n := 0
	for {
		n++
		nxt, err := m.rotateOutgoing(cur)
		if err != nil {
			return 0, err
		}
		if nxt == start {
			return n, nil
		}
		cur = nxt
	}
}

// OutgoingHalfedges returns every half-edge outgoing from v, in fan order
// starting from v's stored outgoing half-edge (spec §4.2 adjacency
// iteration).
func (m *Mesh) OutgoingHalfedges(v VH) ([]HH, error) {
	deg, err := m.VertexDegree(v)
	if err != nil {
		return nil, err
	}
	if deg == 0 {
		return nil, nil
	}
	vs, _ := m.resolveVertex(v)
	out := make([]HH, 0, deg)
	cur := vs.out
	for i := 0; i < deg; i++ {
		out = append(out, cur)
		cur, err = m.rotateOutgoing(cur)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// --- Low-level mutation primitives used by the editor package. ---
//
// These are thin, unvalidated-beyond-handle-resolution setters: the editor
// package is expected to have already checked every topological
// precondition before calling any of them, so a sequence of these calls
// never needs to roll back mid-way.

// AllocHalfedge allocates a raw half-edge slot (all fields nil/unset).
func (m *Mesh) AllocHalfedge() HH { return m.allocHalfedge() }

// AllocFace allocates a raw face slot (he unset).
func (m *Mesh) AllocFace() FH { return m.allocFace() }

// SetHalfedgeVertex sets h's destination vertex.
func (m *Mesh) SetHalfedgeVertex(h HH, v VH) error {
	s, err := m.resolveHalfedge(h)
	if err != nil {
		return err
	}
	s.vertex = v
	return nil
}

// SetTwins makes a and b each other's twin.
func (m *Mesh) SetTwins(a, b HH) error {
	as, err := m.resolveHalfedge(a)
	if err != nil {
		return err
	}
	bs, err := m.resolveHalfedge(b)
	if err != nil {
		return err
	}
	as.twin, bs.twin = b, a
	return nil
}

// SetHalfedgeNext sets h's next pointer.
func (m *Mesh) SetHalfedgeNext(h, next HH) error {
	s, err := m.resolveHalfedge(h)
	if err != nil {
		return err
	}
	s.next = next
	return nil
}

// SetHalfedgeFace sets h's incident face (NilFH to make it a boundary
// half-edge).
func (m *Mesh) SetHalfedgeFace(h HH, f FH) error {
	s, err := m.resolveHalfedge(h)
	if err != nil {
		return err
	}
	s.face = f
	return nil
}

// DeleteHalfedge frees a half-edge slot unconditionally.
func (m *Mesh) DeleteHalfedge(h HH) error {
	if _, err := m.resolveHalfedge(h); err != nil {
		return err
	}
	m.freeHalfedge(h)
	return nil
}

// FixBoundary recomputes every boundary half-edge's Next pointer and every
// boundary vertex's stored outgoing half-edge from scratch. It is the
// simple, always-correct alternative to incremental boundary-loop
// bookkeeping: editors call it once after any topology change instead of
// threading loop-repair logic through every operator (this trade favors
// clarity over the asymptotics spec §4.5 reserves for the broad-phase
// spatial index, not for this bookkeeping step).
// Complexity: O(H) in the number of live half-edges.
func (m *Mesh) FixBoundary() error {
	originOf := make(map[VH]HH)
	for i := 1; i < len(m.hes); i++ {
		s := &m.hes[i]
		if !s.alive || !s.face.IsNil() {
			continue
		}
		h := HH{idx: uint32(i), gen: s.gen}
		origin, err := m.HalfedgeOrigin(h)
		if err != nil {
			return err
		}
		originOf[origin] = h
	}
	for origin, b := range originOf {
		if err := m.SetVertexOutgoing(origin, b); err != nil {
			return err
		}
		bs, err := m.resolveHalfedge(b)
		if err != nil {
			return err
		}
		if next, ok := originOf[bs.vertex]; ok {
			bs.next = next
		}
	}
	return nil
}

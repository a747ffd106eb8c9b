// File: methods_faces.go
// Role: Face lifecycle: AddFace (triangle construction with twin pairing)
// and RemoveFace (opens a hole; cascading vertex cleanup is the editor
// package's job, per spec §4.1).
package core

// AddFace allocates a new triangular face over (v0,v1,v2), in that
// winding order, pairing each of its three directed edges with any
// existing opposite half-edge (spec §4.1). It fails, without mutating the
// mesh, if the three vertices are not distinct, any handle is invalid, or
// any directed edge would get a second incident face (ErrNonManifoldEdge).
//
// Complexity: O(d0+d1+d2) for the HalfedgeBetween lookups (vertex-fan
// rotations), O(1) allocation beyond that.
func (m *Mesh) AddFace(v0, v1, v2 VH) (FH, error) {
	verts := [3]VH{v0, v1, v2}
	for _, v := range verts {
		if _, err := m.resolveVertex(v); err != nil {
			return NilFH, err
		}
	}
	if v0 == v1 || v1 == v2 || v2 == v0 {
		return NilFH, ErrDegenerateTopology
	}

	// Pre-validate every edge before allocating anything, so a rejected
	// call never partially mutates the mesh.
	type edgePlan struct {
		from, to   VH
		existingAB HH // NilHH if this mesh-edge has never appeared before
	}
	plans := make([]edgePlan, 3)
	for i := 0; i < 3; i++ {
		from, to := verts[i], verts[(i+1)%3]
		plans[i] = edgePlan{from: from, to: to}
		rev, err := m.HalfedgeBetween(to, from)
		if err == ErrHalfedgeNotFound {
			continue // brand new mesh-edge; nothing to reuse or reject
		}
		if err != nil {
			return NilFH, err
		}
		revSlot, _ := m.resolveHalfedge(rev)
		existingAB := revSlot.twin
		abSlot, _ := m.resolveHalfedge(existingAB)
		if !abSlot.face.IsNil() {
			return NilFH, ErrNonManifoldEdge
		}
		plans[i].existingAB = existingAB
	}

	// Nothing can fail from here on: resolve or create each directed
	// half-edge, then link the triangle loop.
	loop := [3]HH{}
	for i, p := range plans {
		if !p.existingAB.IsNil() {
			loop[i] = p.existingAB
			continue
		}
		ab := m.allocHalfedge()
		ba := m.allocHalfedge()
		_ = m.SetHalfedgeVertex(ab, p.to)
		_ = m.SetHalfedgeVertex(ba, p.from)
		_ = m.SetTwins(ab, ba)
		loop[i] = ab
	}
	f := m.allocFace()
	for i := 0; i < 3; i++ {
		_ = m.SetHalfedgeNext(loop[i], loop[(i+1)%3])
		_ = m.SetHalfedgeFace(loop[i], f)
	}
	fs, _ := m.resolveFace(f)
	fs.he = loop[0]

	for _, v := range verts {
		vs, _ := m.resolveVertex(v)
		if vs.out.IsNil() {
			// Any outgoing half-edge will do until FixBoundary decides
			// whether a boundary one should take precedence.
			for i := 0; i < 3; i++ {
				if plans[i].from == v {
					vs.out = loop[i]
					break
				}
			}
		}
	}
	if err := m.FixBoundary(); err != nil {
		return NilFH, err
	}
	return f, nil
}

// FaceHalfedge returns one half-edge of f's loop.
func (m *Mesh) FaceHalfedge(f FH) (HH, error) {
	s, err := m.resolveFace(f)
	if err != nil {
		return NilHH, err
	}
	return s.he, nil
}

// FaceVertices returns f's three vertices in winding order.
func (m *Mesh) FaceVertices(f FH) ([3]VH, error) {
	var out [3]VH
	s, err := m.resolveFace(f)
	if err != nil {
		return out, err
	}
	h := s.he
	for i := 0; i < 3; i++ {
		v, err := m.HalfedgeVertex(h)
		if err != nil {
			return out, err
		}
		out[i] = v
		hs, err := m.resolveHalfedge(h)
		if err != nil {
			return out, err
		}
		h = hs.next
	}
	return out, nil
}

// FaceHalfedges returns f's three half-edges in loop order.
func (m *Mesh) FaceHalfedges(f FH) ([3]HH, error) {
	var out [3]HH
	s, err := m.resolveFace(f)
	if err != nil {
		return out, err
	}
	h := s.he
	for i := 0; i < 3; i++ {
		out[i] = h
		hs, err := m.resolveHalfedge(h)
		if err != nil {
			return out, err
		}
		h = hs.next
	}
	return out, nil
}

// FaceValid reports whether f refers to a live face.
func (m *Mesh) FaceValid(f FH) bool {
	_, err := m.resolveFace(f)
	return err == nil
}

// FaceCount returns the number of live faces.
func (m *Mesh) FaceCount() int {
	return len(m.faces) - 1 - len(m.freeF)
}

// AllFaceHandles returns a snapshot of every live face handle in arena
// order. See AllVertexHandles for the snapshot/stability contract.
func (m *Mesh) AllFaceHandles() []FH {
	out := make([]FH, 0, m.FaceCount())
	for i := 1; i < len(m.faces); i++ {
		s := &m.faces[i]
		if s.alive {
			out = append(out, FH{idx: uint32(i), gen: s.gen})
		}
	}
	return out
}

// RemoveFace opens a hole: each of f's three half-edges becomes a
// boundary half-edge (Face() == NilFH). Whenever that leaves both sides
// of a mesh-edge faceless, the half-edge pair is deleted outright, since
// a manifold-with-boundary mesh has no edges with zero incident faces
// (glossary). This is the low-level, non-cascading operation spec §4.1
// describes; isolated-vertex cleanup afterward is the editor package's
// RemoveFace wrapper.
func (m *Mesh) RemoveFace(f FH) error {
	loop, err := m.FaceHalfedges(f)
	if err != nil {
		return err
	}
	for _, h := range loop {
		_ = m.SetHalfedgeFace(h, NilFH)
	}

	willDelete := map[HH]bool{}
	affected := map[VH]bool{}
	for _, h := range loop {
		hs, err := m.resolveHalfedge(h)
		if err != nil {
			return err
		}
		twinSlot, err := m.resolveHalfedge(hs.twin)
		if err != nil {
			return err
		}
		if !twinSlot.face.IsNil() {
			continue
		}
		origin, err := m.HalfedgeOrigin(h)
		if err != nil {
			return err
		}
		willDelete[h] = true
		willDelete[hs.twin] = true
		affected[origin] = true
		affected[hs.vertex] = true
	}
	for v := range affected {
		if err := m.reassignOutgoingAwayFrom(v, willDelete); err != nil {
			return err
		}
	}
	for h := range willDelete {
		_ = m.DeleteHalfedge(h)
	}
	m.freeFace(f)
	return m.FixBoundary()
}

// reassignOutgoingAwayFrom rotates v's stored outgoing half-edge off of
// any half-edge in willDelete, landing on the first surviving outgoing
// half-edge, or NilHH if every one of v's edges is being deleted. It is a
// no-op if v's stored outgoing half-edge already survives. Must be called
// before any half-edge in willDelete is actually freed, since it rotates
// through still-alive twin/next pointers.
func (m *Mesh) reassignOutgoingAwayFrom(v VH, willDelete map[HH]bool) error {
	vs, err := m.resolveVertex(v)
	if err != nil {
		return err
	}
	if !willDelete[vs.out] {
		return nil
	}
	start := vs.out
	cur := start
	for {
		nxt, err := m.rotateOutgoing(cur)
		if err != nil {
			return err
		}
		if nxt == start {
			vs.out = NilHH
			return nil
		}
		if !willDelete[nxt] {
			vs.out = nxt
			return nil
		}
		cur = nxt
	}
}

// File: arena.go
// Role: Generation-safe allocation, resolution, and recycling for the
// three arenas. Every other file in this package builds on these helpers
// instead of touching the slices directly.
package core

import "github.com/trimesh-go/trimesh"

func (m *Mesh) allocVertex(pos trimesh.Vec3) VH {
	if n := len(m.freeV); n > 0 {
		idx := m.freeV[n-1]
		m.freeV = m.freeV[:n-1]
		s := &m.verts[idx]
		s.alive = true
		s.pos = pos
		s.out = NilHH
		return VH{idx: idx, gen: s.gen}
	}
	idx := uint32(len(m.verts))
	m.verts = append(m.verts, vertexSlot{alive: true, pos: pos, out: NilHH})
	return VH{idx: idx, gen: 0}
}

func (m *Mesh) resolveVertex(h VH) (*vertexSlot, error) {
	if h.idx == 0 || int(h.idx) >= len(m.verts) {
		return nil, ErrInvalidHandle
	}
	s := &m.verts[h.idx]
	if !s.alive || s.gen != h.gen {
		return nil, ErrInvalidHandle
	}
	return s, nil
}

func (m *Mesh) freeVertex(h VH) {
	s := &m.verts[h.idx]
	s.alive = false
	s.gen++
	s.out = NilHH
	m.freeV = append(m.freeV, h.idx)
}

func (m *Mesh) allocHalfedge() HH {
	if n := len(m.freeH); n > 0 {
		idx := m.freeH[n-1]
		m.freeH = m.freeH[:n-1]
		s := &m.hes[idx]
		s.alive = true
		s.vertex, s.twin, s.next, s.face = NilVH, NilHH, NilHH, NilFH
		return HH{idx: idx, gen: s.gen}
	}
	idx := uint32(len(m.hes))
	m.hes = append(m.hes, halfedgeSlot{alive: true})
	return HH{idx: idx, gen: 0}
}

func (m *Mesh) resolveHalfedge(h HH) (*halfedgeSlot, error) {
	if h.idx == 0 || int(h.idx) >= len(m.hes) {
		return nil, ErrInvalidHandle
	}
	s := &m.hes[h.idx]
	if !s.alive || s.gen != h.gen {
		return nil, ErrInvalidHandle
	}
	return s, nil
}

func (m *Mesh) freeHalfedge(h HH) {
	s := &m.hes[h.idx]
	s.alive = false
	s.gen++
	s.vertex, s.twin, s.next, s.face = NilVH, NilHH, NilHH, NilFH
	m.freeH = append(m.freeH, h.idx)
}

func (m *Mesh) allocFace() FH {
	if n := len(m.freeF); n > 0 {
		idx := m.freeF[n-1]
		m.freeF = m.freeF[:n-1]
		s := &m.faces[idx]
		s.alive = true
		s.he = NilHH
		return FH{idx: idx, gen: s.gen}
	}
	idx := uint32(len(m.faces))
	m.faces = append(m.faces, faceSlot{alive: true})
	return FH{idx: idx, gen: 0}
}

func (m *Mesh) resolveFace(h FH) (*faceSlot, error) {
	if h.idx == 0 || int(h.idx) >= len(m.faces) {
		return nil, ErrInvalidHandle
	}
	s := &m.faces[h.idx]
	if !s.alive || s.gen != h.gen {
		return nil, ErrInvalidHandle
	}
	return s, nil
}

func (m *Mesh) freeFace(h FH) {
	s := &m.faces[h.idx]
	s.alive = false
	s.gen++
	s.he = NilHH
	m.freeF = append(m.freeF, h.idx)
}

package halfedge

import "github.com/cockroachdb/errors"

/*
Check walks the whole graph and returns an error describing the first broken
connectivity invariant, nil if there is none. It is meant for tests and for
validating meshes read from files, not for hot paths.
*/
func (g *Graph) Check() error {
	nh := len(g.halfedges)
	for i := range g.halfedges {
		h := Halfedge(i)
		rec := g.halfedges[h]
		if !rec.vertex.IsValid() || int(rec.vertex) >= len(g.vertices) {
			return errors.Newf("%s: target vertex %d out of range", h, rec.vertex)
		}
		if !rec.next.IsValid() || int(rec.next) >= nh || !rec.prev.IsValid() || int(rec.prev) >= nh {
			return errors.Newf("%s: unlinked, next %d prev %d", h, rec.next, rec.prev)
		}
		if g.halfedges[rec.next].prev != h {
			return errors.Newf("%s: prev(next(h)) != h", h)
		}
		if g.halfedges[rec.prev].next != h {
			return errors.Newf("%s: next(prev(h)) != h", h)
		}
		if from := g.halfedges[h.Opposite()].vertex; from != g.halfedges[rec.prev].vertex {
			return errors.Newf("%s: from vertex %s does not match the target of prev", h, from)
		}
		if rec.face.IsValid() && int(rec.face) >= len(g.faces) {
			return errors.Newf("%s: face %d out of range", h, rec.face)
		}
		if g.halfedges[rec.next].face != rec.face {
			return errors.Newf("%s: loop mixes faces %s and %s", h, rec.face, g.halfedges[rec.next].face)
		}
		if rec.vertex == g.halfedges[h.Opposite()].vertex {
			return errors.Newf("%s: degenerate edge on %s", h, rec.vertex)
		}
	}
	for i := range g.faces {
		f := Face(i)
		h := g.faces[f].halfedge
		if !h.IsValid() || int(h) >= nh {
			return errors.Newf("%s: halfedge %d out of range", f, h)
		}
		if g.halfedges[h].face != f {
			return errors.Newf("%s: representative %s belongs to %s", f, h, g.halfedges[h].face)
		}
		// the loop must close without revisiting any other halfedge first
		cur, steps := g.halfedges[h].next, 1
		for cur != h {
			if steps > nh {
				return errors.Newf("%s: face loop does not close", f)
			}
			cur = g.halfedges[cur].next
			steps++
		}
		if steps < 3 {
			return errors.Newf("%s: degree %d", f, steps)
		}
	}
	for i := range g.vertices {
		v := Vertex(i)
		h := g.vertices[v].halfedge
		if !h.IsValid() {
			continue
		}
		if int(h) >= nh {
			return errors.Newf("%s: halfedge %d out of range", v, h)
		}
		if g.halfedges[h.Opposite()].vertex != v {
			return errors.Newf("%s: stored halfedge %s is not outgoing", v, h)
		}
		// a vertex with any boundary gap must store a boundary halfedge
		cur, steps, hasGap := h, 0, false
		for {
			if !g.halfedges[cur].face.IsValid() {
				hasGap = true
			}
			cur = g.halfedges[cur].prev.Opposite()
			steps++
			if cur == h {
				break
			}
			if steps > nh {
				return errors.Newf("%s: vertex fan does not close", v)
			}
		}
		if hasGap && g.halfedges[h].face.IsValid() {
			return errors.Newf("%s: boundary vertex stores interior halfedge %s", v, h)
		}
	}
	return nil
}

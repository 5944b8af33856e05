package halfedge

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

type faceEdge struct {
	h           Halfedge
	isNew       bool
	needsAdjust bool
}

type link struct {
	from, to Halfedge
}

/*
linkOverlay records next/prev changes without touching the graph. Reads made
through it see the pending links, so a sequence of relinks can be computed
against its own progress and then dropped or committed as a whole.
*/
type linkOverlay struct {
	g     *Graph
	next  map[Halfedge]Halfedge
	prev  map[Halfedge]Halfedge
	order []Halfedge
}

func (o *linkOverlay) nextOf(h Halfedge) Halfedge {
	if n, ok := o.next[h]; ok {
		return n
	}
	return o.g.halfedges[h].next
}

func (o *linkOverlay) prevOf(h Halfedge) Halfedge {
	if p, ok := o.prev[h]; ok {
		return p
	}
	return o.g.halfedges[h].prev
}

func (o *linkOverlay) setNext(h, next Halfedge) {
	if o.next == nil {
		o.next = make(map[Halfedge]Halfedge)
		o.prev = make(map[Halfedge]Halfedge)
	}
	if _, ok := o.next[h]; !ok {
		o.order = append(o.order, h)
	}
	o.next[h] = next
	o.prev[next] = h
}

func (o *linkOverlay) commit() {
	for _, h := range o.order {
		o.g.setNext(h, o.next[h])
	}
}

// AddFace is AddFaceChecked without the error; the result is InvalidFace on failure
func (g *Graph) AddFace(vs ...Vertex) Face {
	f, _ := g.AddFaceChecked(vs...)
	return f
}

func (g *Graph) AddTriangle(v0, v1, v2 Vertex) Face {
	return g.AddFace(v0, v1, v2)
}

/*
AddFaceChecked adds the face bounded by the vertex loop vs, in order. Missing
edges are created and the boundary loops around the new face are spliced so
the surface stays manifold.

The call fails, leaving the graph unchanged, when a vertex is interior
(ErrComplexVertex), when an existing edge of the loop already has a face on
that side (ErrComplexEdge), when two consecutive reused edges can not be made
adjacent because their shared vertex has no free boundary gap
(ErrPatchRelink), or when vs repeats a vertex (ErrDegenerateFace).
*/
func (g *Graph) AddFaceChecked(vs ...Vertex) (Face, error) {
	var (
		n  = len(vs)
		ed = make([]faceEdge, n)
	)
	if n < 3 {
		panic(errors.AssertionFailedf("add_face needs at least 3 vertices, have %d", n))
	}
	for i, v := range vs {
		g.checkVertex(v)
		for j := 0; j < i; j++ {
			if vs[j] == v {
				return g.rejectFace(ErrDegenerateFace, vs, i)
			}
		}
	}

	// Topology checks, nothing is written before all of them pass
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		if !g.IsBoundaryVertex(vs[i]) {
			return g.rejectFace(ErrComplexVertex, vs, i)
		}
		ed[i].h = g.FindHalfedge(vs[i], vs[ii])
		ed[i].isNew = !ed[i].h.IsValid()
		if !ed[i].isNew && !g.IsBoundaryHalfedge(ed[i].h) {
			return g.rejectFace(ErrComplexEdge, vs, i)
		}
	}

	// Re-link patches so that consecutive reused edges follow each other
	o := &linkOverlay{g: g}
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		if ed[i].isNew || ed[ii].isNew {
			continue
		}
		innerPrev, innerNext := ed[i].h, ed[ii].h
		if o.nextOf(innerPrev) == innerNext {
			continue
		}
		// The free gap is between boundaryPrev and boundaryNext
		boundaryPrev := innerNext.Opposite()
		for steps := 0; ; steps++ {
			boundaryPrev = o.nextOf(boundaryPrev).Opposite()
			if g.IsBoundaryHalfedge(boundaryPrev) {
				break
			}
			if steps > len(g.halfedges) {
				panic(errors.AssertionFailedf("no boundary halfedge around %s, the graph is corrupt", vs[ii]))
			}
		}
		if boundaryPrev == innerPrev {
			return g.rejectFace(ErrPatchRelink, vs, ii)
		}
		boundaryNext := o.nextOf(boundaryPrev)
		patchStart := o.nextOf(innerPrev)
		patchEnd := o.prevOf(innerNext)

		o.setNext(boundaryPrev, patchStart)
		o.setNext(patchEnd, boundaryNext)
		o.setNext(innerPrev, innerNext)
	}

	// From here on the face is accepted
	for i := 0; i < n; i++ {
		if ed[i].isNew {
			ed[i].h = g.newEdge(vs[i], vs[(i+1)%n])
		}
	}
	f := g.newFace(ed[n-1].h)

	cache := make([]link, 0, 3*n)
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		vh := vs[ii]
		innerPrev, innerNext := ed[i].h, ed[ii].h

		var id int
		if ed[i].isNew {
			id |= 1
		}
		if ed[ii].isNew {
			id |= 2
		}
		if id != 0 {
			outerPrev := innerNext.Opposite()
			outerNext := innerPrev.Opposite()
			switch id {
			case 1: // prev is new, next is old
				boundaryPrev := o.prevOf(innerNext)
				cache = append(cache, link{boundaryPrev, outerNext})
				g.setVertexHalfedge(vh, outerNext)
			case 2: // next is new, prev is old
				boundaryNext := o.nextOf(innerPrev)
				cache = append(cache, link{outerPrev, boundaryNext})
				g.setVertexHalfedge(vh, boundaryNext)
			case 3: // both are new
				if boundaryNext := g.vertices[vh].halfedge; !boundaryNext.IsValid() {
					g.setVertexHalfedge(vh, outerNext)
					cache = append(cache, link{outerPrev, outerNext})
				} else {
					boundaryPrev := o.prevOf(boundaryNext)
					cache = append(cache, link{boundaryPrev, outerNext}, link{outerPrev, boundaryNext})
				}
			}
			cache = append(cache, link{innerPrev, innerNext})
		} else {
			ed[ii].needsAdjust = g.vertices[vh].halfedge == innerNext
		}
		g.setFace(ed[i].h, f)
	}

	o.commit()
	for _, l := range cache {
		g.setNext(l.from, l.to)
	}
	for i, v := range vs {
		if ed[i].needsAdjust {
			g.adjustOutgoingHalfedge(v)
		}
	}
	return f, nil
}

func (g *Graph) rejectFace(reason error, vs []Vertex, at int) (Face, error) {
	g.log.WithFields(logrus.Fields{
		"op":     "add_face",
		"vertex": vs[at].Idx(),
		"reason": reason.Error(),
	}).Warn("face rejected")
	return InvalidFace, errors.Wrapf(reason, "add_face %v at %s", vs, vs[at])
}

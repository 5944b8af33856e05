/*
Package delaunay conditions a triangulated surface towards the Delaunay
property by Lawson's edge flip algorithm. Positions are read through the
Surface interface, the combinatorics are changed through halfedge.Graph.Flip.
*/
package delaunay

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/geomkit/halfedge"
	"github.com/notargets/geomkit/predicates"
)

// Surface is a halfedge graph with a planar position for each vertex
type Surface interface {
	Graph() *halfedge.Graph
	Point2D(v halfedge.Vertex) r2.Vec
}

var (
	ErrFlipLimit   = errors.New("flip limit reached")
	ErrOrientation = errors.New("clockwise triangle")
)

type Result struct {
	Flips   int // edges flipped
	Visited int // worklist entries examined
}

/*
Conditioner runs the Lawson flip loop. The zero value uses the exact kernel,
the standard logger and no flip limit.

AfterFlip, when set, is called after every flip with the flipped edge and the
running flip count; a non nil error stops the run and is returned wrapped.
MaxFlips > 0 bounds the number of flips, which is needed with an Inexact
kernel whose rounded in-circle tests can make the loop cycle.
*/
type Conditioner struct {
	Kernel    predicates.Kernel
	Log       logrus.FieldLogger
	AfterFlip func(e halfedge.Edge, n int) error
	MaxFlips  int
}

// LawsonFlip conditions s with the default Conditioner, leaving the constrained edges alone
func LawsonFlip(s Surface, constrained EdgeSet) {
	if _, err := (&Conditioner{}).Run(s, constrained); err != nil {
		// the default conditioner has no hook or limit, so only a clockwise face stops it
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "lawson flip"))
	}
}

/*
Run flips every interior, non constrained edge that is not locally Delaunay
until none is left. The worklist starts with all non constrained edges in
index order; after a flip the four outer edges of the quadrilateral are
queued again. Boundary edges are dropped when popped.

Termination: each flip strictly lowers the sum over triangles of the lifted
volume, so with the exact kernel the loop ends after finitely many flips.
Cocircular quadrilaterals are left as they are.

The in-circle test assumes counterclockwise triangles. Run checks every
triangle first and returns ErrOrientation, with nothing flipped, if one is
clockwise under the Kernel.
*/
func (c *Conditioner) Run(s Surface, constrained EdgeSet) (res Result, err error) {
	var (
		g   = s.Graph()
		log = c.Log
	)
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err = c.checkOrientation(s); err != nil {
		return
	}
	queue := newEdgeQueue(g.NumEdges())
	for e := range g.Edges() {
		if !constrained.Contains(e) {
			queue.push(e)
		}
	}
	for !queue.empty() {
		e := queue.pop()
		res.Visited++
		if g.IsBoundaryEdge(e) {
			continue
		}
		h0 := g.EdgeHalfedge(e, 0)
		h1 := h0.Opposite()
		var (
			v0 = g.FromVertex(h0)
			v1 = g.ToVertex(h0)
			va = g.ToVertex(g.Next(h0))
			vb = g.ToVertex(g.Next(h1))
		)
		if c.Kernel.IsLocallyDelaunay(s.Point2D(va), s.Point2D(v0), s.Point2D(v1), s.Point2D(vb), false) {
			continue
		}
		if !g.IsFlipOK(e) {
			continue
		}
		if c.MaxFlips > 0 && res.Flips >= c.MaxFlips {
			return res, errors.Wrapf(ErrFlipLimit, "after %d flips", res.Flips)
		}
		g.Flip(e)
		res.Flips++
		log.WithFields(logrus.Fields{
			"op":   "flip",
			"edge": e.Idx(),
			"from": [2]int{v0.Idx(), v1.Idx()},
			"to":   [2]int{va.Idx(), vb.Idx()},
		}).Debug("flipped edge")
		if c.AfterFlip != nil {
			if err = c.AfterFlip(e, res.Flips); err != nil {
				return res, errors.Wrapf(err, "after flip %d of %s", res.Flips, e)
			}
		}
		for _, h := range [4]halfedge.Halfedge{g.Next(h0), g.Prev(h0), g.Next(h1), g.Prev(h1)} {
			if ne := h.Edge(); !constrained.Contains(ne) {
				queue.push(ne)
			}
		}
	}
	log.WithFields(logrus.Fields{
		"flips":   res.Flips,
		"visited": res.Visited,
	}).Debug("lawson flip done")
	return
}

func (c *Conditioner) checkOrientation(s Surface) error {
	g := s.Graph()
	for f := range g.Faces() {
		if g.Degree(f) != 3 {
			continue
		}
		h := g.FaceHalfedge(f)
		var (
			a = g.FromVertex(h)
			b = g.ToVertex(h)
			v = g.ToVertex(g.Next(h))
		)
		if c.Kernel.Orient2D(s.Point2D(a), s.Point2D(b), s.Point2D(v)) == predicates.Negative {
			return errors.Wrapf(ErrOrientation, "face %d (%d, %d, %d)", f.Idx(), a.Idx(), b.Idx(), v.Idx())
		}
	}
	return nil
}

// IsDelaunay reports whether every interior non constrained edge is locally Delaunay
func IsDelaunay(s Surface, constrained EdgeSet, kernel predicates.Kernel) bool {
	return len(NonDelaunayEdges(s, constrained, kernel)) == 0
}

func NonDelaunayEdges(s Surface, constrained EdgeSet, kernel predicates.Kernel) (edges []halfedge.Edge) {
	g := s.Graph()
	for e := range g.Edges() {
		if g.IsBoundaryEdge(e) || constrained.Contains(e) {
			continue
		}
		h0 := g.EdgeHalfedge(e, 0)
		va, vb := g.Apexes(e)
		if !kernel.IsLocallyDelaunay(s.Point2D(va), s.Point2D(g.FromVertex(h0)), s.Point2D(g.ToVertex(h0)),
			s.Point2D(vb), false) {
			edges = append(edges, e)
		}
	}
	return
}

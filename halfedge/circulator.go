package halfedge

import (
	"iter"

	"github.com/cockroachdb/errors"
)

type Direction uint8

const (
	CCW Direction = iota
	CW
)

func (d Direction) String() string {
	if d == CW {
		return "CW"
	}
	return "CCW"
}

type (
	stepFunc           func(g *Graph, h Halfedge) Halfedge
	extractFunc[T any] func(g *Graph, h Halfedge) T
	skipFunc           func(g *Graph, h Halfedge) bool
)

/*
Circulator walks the halfedges around a vertex or a face by repeatedly applying
a rotation step to a start halfedge, and yields one element per position.

It is at its end once it has come back to the start a second time; the lap
counter tells the first visit of the start from the terminal one. Positions
rejected by the skip function are stepped over.

Typical use:

	c := g.VertexVertices(v, halfedge.CCW)
	for ; !c.Done(); c.Next() {
		nbr := c.Value()
	}
*/
type Circulator[T any] struct {
	g       *Graph
	start   Halfedge
	current Halfedge
	laps    int
	steps   int
	step    stepFunc
	extract extractFunc[T]
	skip    skipFunc
}

func newCirculator[T any](g *Graph, start Halfedge, step stepFunc, extract extractFunc[T], skip skipFunc) (c *Circulator[T]) {
	c = &Circulator[T]{
		g:       g,
		start:   start,
		step:    step,
		extract: extract,
		skip:    skip,
	}
	c.Reset()
	return
}

// Reset restarts the circulation at the start halfedge
func (c *Circulator[T]) Reset() {
	c.current = c.start
	c.laps = 0
	c.steps = 0
	c.skipRejected()
}

func (c *Circulator[T]) Done() bool {
	return !c.start.IsValid() || (c.laps > 0 && c.current == c.start)
}

func (c *Circulator[T]) Next() {
	if c.Done() {
		return
	}
	c.advance()
	c.skipRejected()
}

// Value is the element at the current position
func (c *Circulator[T]) Value() T {
	return c.extract(c.g, c.current)
}

// Halfedge is the halfedge at the current position
func (c *Circulator[T]) Halfedge() Halfedge {
	return c.current
}

// All iterates a fresh copy of the circulator, c itself is not advanced
func (c *Circulator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cc := *c
		cc.Reset()
		for ; !cc.Done(); cc.Next() {
			if !yield(cc.Value()) {
				return
			}
		}
	}
}

func (c *Circulator[T]) Collect() (out []T) {
	for v := range c.All() {
		out = append(out, v)
	}
	return
}

func (c *Circulator[T]) advance() {
	c.current = c.step(c.g, c.current)
	if c.current == c.start {
		c.laps++
	}
	c.steps++
	if c.steps > len(c.g.halfedges) {
		panic(errors.AssertionFailedf("circulation from %s does not close, the graph is corrupt", c.start))
	}
}

func (c *Circulator[T]) skipRejected() {
	for c.skip != nil && !c.Done() && c.skip(c.g, c.current) {
		c.advance()
	}
}

// Rotation steps and extractors

func vertexStep(dir Direction) stepFunc {
	if dir == CW {
		return (*Graph).CWRotated
	}
	return (*Graph).CCWRotated
}

func faceStep(dir Direction) stepFunc {
	if dir == CW {
		return (*Graph).Prev
	}
	return (*Graph).Next
}

func isBoundaryGap(g *Graph, h Halfedge) bool { return g.IsBoundaryHalfedge(h) }

func identity(_ *Graph, h Halfedge) Halfedge { return h }

func (g *Graph) VertexVertices(v Vertex, dir Direction) *Circulator[Vertex] {
	return newCirculator[Vertex](g, g.VertexHalfedge(v), vertexStep(dir), (*Graph).ToVertex, nil)
}

func (g *Graph) VertexOutgoingHalfedges(v Vertex, dir Direction) *Circulator[Halfedge] {
	return newCirculator[Halfedge](g, g.VertexHalfedge(v), vertexStep(dir), identity, nil)
}

func (g *Graph) VertexEdges(v Vertex, dir Direction) *Circulator[Edge] {
	return newCirculator[Edge](g, g.VertexHalfedge(v), vertexStep(dir), (*Graph).EdgeOf, nil)
}

// VertexFaces skips the boundary gaps of the vertex fan
func (g *Graph) VertexFaces(v Vertex, dir Direction) *Circulator[Face] {
	return newCirculator[Face](g, g.VertexHalfedge(v), vertexStep(dir), (*Graph).FaceOf, isBoundaryGap)
}

func (g *Graph) FaceVertices(f Face, dir Direction) *Circulator[Vertex] {
	return newCirculator[Vertex](g, g.FaceHalfedge(f), faceStep(dir), (*Graph).ToVertex, nil)
}

func (g *Graph) FaceHalfedges(f Face, dir Direction) *Circulator[Halfedge] {
	return newCirculator[Halfedge](g, g.FaceHalfedge(f), faceStep(dir), identity, nil)
}

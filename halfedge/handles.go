package halfedge

import "fmt"

/*
Handles are plain indices into the arrays owned by a Graph. They carry no
reference to the graph, so every query takes the graph explicitly:

	g.ToVertex(h)

A negative index is the invalid sentinel. Handles are never reused, the
element arrays are append-only.
*/
type (
	Vertex   int
	Halfedge int
	Edge     int
	Face     int
)

const (
	InvalidVertex   Vertex   = -1
	InvalidHalfedge Halfedge = -1
	InvalidEdge     Edge     = -1
	InvalidFace     Face     = -1
)

func (v Vertex) IsValid() bool   { return v >= 0 }
func (h Halfedge) IsValid() bool { return h >= 0 }
func (e Edge) IsValid() bool     { return e >= 0 }
func (f Face) IsValid() bool     { return f >= 0 }

func (v Vertex) Idx() int   { return int(v) }
func (h Halfedge) Idx() int { return int(h) }
func (e Edge) Idx() int     { return int(e) }
func (f Face) Idx() int     { return int(f) }

func (v Vertex) String() string   { return handleString("v", int(v)) }
func (h Halfedge) String() string { return handleString("h", int(h)) }
func (e Edge) String() string     { return handleString("e", int(e)) }
func (f Face) String() string     { return handleString("f", int(f)) }

// Halfedge returns side 0 or 1 of the edge, stored as (e << 1) | side
func (e Edge) Halfedge(side int) Halfedge {
	return Halfedge(int(e)<<1 | side&1)
}

// Edge is the edge this halfedge belongs to
func (h Halfedge) Edge() Edge { return Edge(int(h) >> 1) }

// Opposite is the other halfedge of the same edge
func (h Halfedge) Opposite() Halfedge { return h ^ 1 }

// Side is 0 or 1, the position of this halfedge within its edge
func (h Halfedge) Side() int { return int(h) & 1 }

func handleString(prefix string, idx int) string {
	if idx < 0 {
		return prefix + "(invalid)"
	}
	return fmt.Sprintf("%s%d", prefix, idx)
}

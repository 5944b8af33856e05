package types

import (
	"math"

	"github.com/cockroachdb/errors"
)

/*
EdgeKey is an always positive number that stores an edge's vertices as indices in a way that can be compared
An edge between vertices [4] and [0] will always be stored as [0,4], in the ascending order of the index values
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	// This packs two index coordinates into two 32 bit unsigned integers to act as a hash and an indirect access method
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(errors.AssertionFailedf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeKey(i1 + i2<<32)
	return
}

func (ek EdgeKey) GetVertices(rev bool) (verts [2]int) {
	var (
		enTmp EdgeKey
	)
	enTmp = ek >> 32
	verts[1] = int(enTmp)
	verts[0] = int(ek - enTmp*(1<<32))
	if rev {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

/*
An EdgeInt stores the edge vertices in the original order of the vertices, so that it can be recovered with it's direction
*/
type EdgeInt int64

func NewEdgeInt(verts [2]int) (packed EdgeInt) {
	// Two 31 bit indices, leaving the sign bit to carry the direction
	var (
		limit = math.MaxUint32 >> 1
		sign  bool
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(errors.AssertionFailedf("unable to pack two ints into an int64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		sign = true
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeInt(i1 + i2<<32)
	if sign {
		packed = -packed
	}
	return
}

func (e EdgeInt) GetVertices() (verts [2]int) {
	var (
		eTmp EdgeInt
		sign bool
	)
	if e < 0 {
		sign = true
		e = -e
	}
	eTmp = e >> 32
	verts[1] = int(eTmp)
	verts[0] = int(e - eTmp*(1<<32))
	if sign {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

func (e EdgeInt) GetKey() (ek EdgeKey) {
	ek = NewEdgeKey(e.GetVertices())
	return
}

// EdgeKeySet is a set of undirected vertex pairs
type EdgeKeySet map[EdgeKey]struct{}

func NewEdgeKeySet(pairs ...[2]int) (s EdgeKeySet) {
	s = make(EdgeKeySet, len(pairs))
	for _, p := range pairs {
		s.Add(NewEdgeKey(p))
	}
	return
}

func (s EdgeKeySet) Add(ek EdgeKey) { s[ek] = struct{}{} }

func (s EdgeKeySet) Contains(ek EdgeKey) bool {
	_, ok := s[ek]
	return ok
}

func (s EdgeKeySet) Len() int { return len(s) }

// Merge adds every key of other to s
func (s EdgeKeySet) Merge(other EdgeKeySet) {
	for ek := range other {
		s.Add(ek)
	}
}

type vertEdgeBucket struct {
	numberOfEdges int
	vertEdge      [2]EdgeInt
}

type bucketMap map[int]*vertEdgeBucket

// AddEdge returns false if one of the edge's vertices already carries two edges
func (bm bucketMap) AddEdge(e EdgeInt) bool {
	var (
		b  *vertEdgeBucket
		ok bool
	)
	verts := e.GetVertices()
	for i := 0; i < 2; i++ {
		if b, ok = bm[verts[i]]; !ok {
			bm[verts[i]] = &vertEdgeBucket{}
			b = bm[verts[i]]
		}
		if b.numberOfEdges == 2 {
			return false
		}
		b.vertEdge[b.numberOfEdges] = e
		b.numberOfEdges++
	}
	return true
}

// Curve is a polyline made of directed segments, as read from a boundary marker
type Curve []EdgeInt

func (c Curve) Keys() (s EdgeKeySet) {
	s = make(EdgeKeySet, len(c))
	for _, e := range c {
		s.Add(e.GetKey())
	}
	return
}

/*
ReOrder returns the curve's segments chained head to tail, each segment
directed so its second vertex is the next segment's first, starting from an
open end if there is one. With reverse set the chain is walked the other way.
It fails when a vertex is shared by more than two segments or when the
segments do not form one connected chain.
*/
func (c Curve) ReOrder(reverse bool) (ordered Curve, err error) {
	var (
		l  = len(c)
		vb = make(bucketMap, l+1)
	)
	if l == 0 {
		return
	}
	for _, e := range c {
		if !vb.AddEdge(e) {
			return nil, errors.Newf("curve branches at segment %v", e.GetVertices())
		}
	}
	start, open := c[0].GetVertices()[0], false
	for v, b := range vb {
		// lowest open end, so the result does not depend on map order
		if b.numberOfEdges == 1 && (!open || v < start) {
			start, open = v, true
		}
	}
	used := make(map[EdgeInt]bool, l)
	cur := start
	for len(ordered) < l {
		b := vb[cur]
		var next EdgeInt
		found := false
		for i := 0; i < b.numberOfEdges; i++ {
			if e := b.vertEdge[i]; !used[e] {
				next, found = e, true
				break
			}
		}
		if !found {
			return nil, errors.Newf("curve is not connected, %d of %d segments reached", len(ordered), l)
		}
		used[next] = true
		verts := next.GetVertices()
		if verts[0] != cur {
			verts[0], verts[1] = verts[1], verts[0]
		}
		ordered = append(ordered, NewEdgeInt(verts))
		cur = verts[1]
	}
	if reverse {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
		for i, e := range ordered {
			verts := e.GetVertices()
			ordered[i] = NewEdgeInt([2]int{verts[1], verts[0]})
		}
	}
	return
}

// IsClosed reports whether an ordered curve ends where it starts
func (c Curve) IsClosed() bool {
	if len(c) < 2 {
		return false
	}
	return c[0].GetVertices()[0] == c[len(c)-1].GetVertices()[1]
}

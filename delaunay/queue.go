package delaunay

import "github.com/notargets/geomkit/halfedge"

// edgeQueue is a FIFO ring buffer of edges; an edge may be queued more than once
type edgeQueue struct {
	buf        []halfedge.Edge
	head, size int
}

func newEdgeQueue(capacity int) *edgeQueue {
	if capacity < 4 {
		capacity = 4
	}
	return &edgeQueue{buf: make([]halfedge.Edge, capacity)}
}

func (q *edgeQueue) empty() bool { return q.size == 0 }

func (q *edgeQueue) push(e halfedge.Edge) {
	if q.size == len(q.buf) {
		grown := make([]halfedge.Edge, 2*len(q.buf))
		n := copy(grown, q.buf[q.head:])
		copy(grown[n:], q.buf[:q.head])
		q.buf, q.head = grown, 0
	}
	q.buf[(q.head+q.size)%len(q.buf)] = e
	q.size++
}

func (q *edgeQueue) pop() (e halfedge.Edge) {
	e = q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return
}

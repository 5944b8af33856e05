package halfedge

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
)

type snapshot struct {
	V []vertexRecord
	H []halfedgeRecord
	F []faceRecord
}

func takeSnapshot(g *Graph) snapshot {
	return snapshot{
		V: append([]vertexRecord(nil), g.vertices...),
		H: append([]halfedgeRecord(nil), g.halfedges...),
		F: append([]faceRecord(nil), g.faces...),
	}
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newQuietGraph() *Graph {
	return New(WithLogger(quietLogger()))
}

func addVertices(g *Graph, n int) (vs []Vertex) {
	vs = make([]Vertex, n)
	for i := range vs {
		vs[i] = g.NewVertex()
	}
	return
}

// gridTriangles splits every cell of an nx by ny vertex grid along a random diagonal
func gridTriangles(nx, ny int, rng *rand.Rand) (nVerts int, tris [][3]Vertex) {
	idx := func(i, j int) Vertex { return Vertex(i*(ny+1) + j) }
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			a, b, c, d := idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1)
			if rng.Intn(2) == 0 {
				tris = append(tris, [3]Vertex{a, b, c}, [3]Vertex{a, c, d})
			} else {
				tris = append(tris, [3]Vertex{a, b, d}, [3]Vertex{b, c, d})
			}
		}
	}
	return (nx + 1) * (ny + 1), tris
}

// buildShuffledGrid inserts the grid triangles in random order, retrying rejected ones
func buildShuffledGrid(nx, ny int, rng *rand.Rand) (g *Graph, tris [][3]Vertex, ok bool) {
	var nv int
	g = newQuietGraph()
	nv, tris = gridTriangles(nx, ny, rng)
	addVertices(g, nv)
	pending := append([][3]Vertex(nil), tris...)
	rng.Shuffle(len(pending), func(i, j int) { pending[i], pending[j] = pending[j], pending[i] })
	for round := 0; len(pending) > 0 && round < 50; round++ {
		var retry [][3]Vertex
		for _, t := range pending {
			if !g.AddFace(t[0], t[1], t[2]).IsValid() {
				retry = append(retry, t)
			}
		}
		pending = retry
	}
	return g, tris, len(pending) == 0
}

func faceVertexSet(g *Graph, f Face) map[Vertex]bool {
	set := make(map[Vertex]bool)
	for v := range g.FaceVertices(f, CCW).All() {
		set[v] = true
	}
	return set
}

func newTestRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewSource(20240611))
}

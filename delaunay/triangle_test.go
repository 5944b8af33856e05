//go:build cgo

package delaunay

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pradeep-pyro/triangle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/geomkit/surfacemesh"
	"github.com/notargets/geomkit/types"
)

func meshEdgeKeys(m *surfacemesh.Mesh) (s types.EdgeKeySet) {
	g := m.Graph()
	s = types.NewEdgeKeySet()
	for e := range g.Edges() {
		v0, v1 := g.EdgeVertices(e)
		s.Add(types.NewEdgeKey([2]int{v0.Idx(), v1.Idx()}))
	}
	return
}

// triangleEdgeKeys is the edge set of Shewchuk's Triangle on the mesh vertices
func triangleEdgeKeys(m *surfacemesh.Mesh) (s types.EdgeKeySet) {
	var pts [][2]float64
	for v := range m.Graph().Vertices() {
		p := m.Point2D(v)
		pts = append(pts, [2]float64{p.X, p.Y})
	}
	s = types.NewEdgeKeySet()
	for _, tri := range triangle.Delaunay(pts) {
		for i := 0; i < 3; i++ {
			s.Add(types.NewEdgeKey([2]int{int(tri[i]), int(tri[(i+1)%3])}))
		}
	}
	return
}

func TestLawsonMatchesTriangle(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := jitteredGrid(t, 6, 6, 0.2, rng)
	want := triangleEdgeKeys(m)
	require.Equal(t, m.Graph().NumEdges(), want.Len())
	_, err := quiet().Run(m, nil)
	require.NoError(t, err)
	assert.Equal(t, want, meshEdgeKeys(m))

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)
	properties.Property("conditioned jittered grids equal the Delaunay triangulation", prop.ForAll(
		func(seed int64, nx, ny int) bool {
			m := jitteredGrid(t, nx, ny, 0.2, rand.New(rand.NewSource(seed)))
			want := triangleEdgeKeys(m)
			if _, err := quiet().Run(m, nil); err != nil {
				return false
			}
			got := meshEdgeKeys(m)
			if got.Len() != want.Len() {
				return false
			}
			for ek := range want {
				if !got.Contains(ek) {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(2, 6), gen.IntRange(2, 6),
	))
	properties.TestingRun(t)
}

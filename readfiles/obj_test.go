package readfiles

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/geomkit/halfedge"
	"github.com/notargets/geomkit/surfacemesh"
)

var objSquare = `# unit square
o square
v 0 0
v 1 0 0
v 1.5e0 1 0
v 0 1 0   # trailing comment
vn 0 0 1
f 1 2 3
f 1/1/1 -2/2/2 -1//1
f 1 2 3
usemtl none
g fence
l 1 2 3
`

func TestReadOBJ(t *testing.T) {
	gr, err := ReadOBJ(strings.NewReader(objSquare), surfacemesh.WithLogger(quietLogger()))
	require.NoError(t, err)
	m := gr.Mesh
	g := m.Graph()
	require.NoError(t, g.Check())
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 2, g.NumFaces())
	assert.Equal(t, 5, g.NumEdges())
	assert.Equal(t, 1, gr.Rejected)
	assert.Equal(t, r3.Vec{X: 1.5, Y: 1}, m.Point(2))
	assert.Equal(t, []int{0, 2, 3}, sortedFace(m, 1))

	assert.Equal(t, []string{"fence"}, gr.MarkerNames())
	assert.Equal(t, 2, len(gr.Markers["fence"]))
	keys, err := gr.MarkerKeys("fence")
	require.NoError(t, err)
	assert.Equal(t, 2, keys.Len())
}

func TestOBJRoundTrip(t *testing.T) {
	src, err := ReadSU2(bytes.NewReader(inputFile), surfacemesh.WithLogger(quietLogger()))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, src.Mesh))

	dst, err := ReadOBJ(&buf, surfacemesh.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, 0, dst.Rejected)
	assert.Equal(t, src.Mesh.Points(), dst.Mesh.Points())
	require.Equal(t, src.Mesh.Graph().NumFaces(), dst.Mesh.Graph().NumFaces())
	for f := range src.Mesh.Graph().Faces() {
		assert.Equal(t, sortedFace(src.Mesh, f), sortedFace(dst.Mesh, f))
	}
	assert.Equal(t, src.Mesh.Stats().BoundaryEdges, dst.Mesh.Stats().BoundaryEdges)
}

func TestMeshFiles(t *testing.T) {
	dir := t.TempDir()
	src, err := ReadOBJ(strings.NewReader(objSquare), surfacemesh.WithLogger(quietLogger()))
	require.NoError(t, err)
	name := filepath.Join(dir, "square.obj")
	require.NoError(t, WriteOBJFile(name, src.Mesh))

	gr, err := ReadMeshFile(name, surfacemesh.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, 2, gr.Mesh.Graph().NumFaces())

	_, err = ReadMeshFile(filepath.Join(dir, "square.stl"))
	assert.Error(t, err)
	_, err = ReadMeshFile(filepath.Join(dir, "missing.su2"))
	assert.Error(t, err)
	assert.Error(t, WriteOBJFile(filepath.Join(dir, "no", "such", "dir.obj"), src.Mesh))
}

func TestReadOBJMalformed(t *testing.T) {
	cases := map[string]string{
		"short vertex":     "v 1\n",
		"bad coordinate":   "v 1 x 0\n",
		"short face":       "v 0 0\nv 1 0\nf 1 2\n",
		"index zero":       "v 0 0\nv 1 0\nv 0 1\nf 0 1 2\n",
		"index past end":   "v 0 0\nv 1 0\nv 0 1\nf 1 2 4\n",
		"relative too far": "v 0 0\nv 1 0\nv 0 1\nf -4 1 2\n",
		"bad index":        "v 0 0\nv 1 0\nv 0 1\nf 1 b 2\n",
		"line not an edge": "v 0 0\nv 1 0\nv 0 1\nv 1 1\nf 1 2 3\nl 1 4\n",
		"short line":       "v 0 0\nl 1\n",
	}
	for name, input := range cases {
		assert.NotPanics(t, func() {
			_, err := ReadOBJ(strings.NewReader(input), surfacemesh.WithLogger(quietLogger()))
			assert.Error(t, err, name)
		}, name)
	}
}

func sortedFace(m *surfacemesh.Mesh, f halfedge.Face) (vs []int) {
	for _, v := range m.FaceVertices(f) {
		vs = append(vs, int(v))
	}
	sort.Ints(vs)
	return
}

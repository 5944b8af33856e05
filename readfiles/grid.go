/*
Package readfiles loads meshes from SU2, Gambit neutral, Gmsh and Wavefront OBJ
files into a surface mesh, together with the named boundary markers the
files carry, and writes meshes back as OBJ.
*/
package readfiles

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/notargets/geomkit/geometry2D"
	"github.com/notargets/geomkit/halfedge"
	"github.com/notargets/geomkit/predicates"
	"github.com/notargets/geomkit/surfacemesh"
	"github.com/notargets/geomkit/types"
)

// MarkerProperty names the edge property holding the marker tag of each boundary segment
const MarkerProperty = "marker"

type Grid struct {
	Mesh     *surfacemesh.Mesh
	Markers  map[string]types.Curve // segments of each named marker, as read
	Rejected int                    // elements the mesh refused
}

func newGrid(opts []surfacemesh.Option) *Grid {
	return &Grid{
		Mesh:    surfacemesh.New(opts...),
		Markers: make(map[string]types.Curve),
	}
}

func (gr *Grid) MarkerNames() (names []string) {
	for name := range gr.Markers {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// MarkerKeys collects the vertex pairs of the named markers, all markers when no name is given
func (gr *Grid) MarkerKeys(names ...string) (keys types.EdgeKeySet, err error) {
	if len(names) == 0 {
		names = gr.MarkerNames()
	}
	keys = make(types.EdgeKeySet)
	for _, name := range names {
		c, ok := gr.Markers[name]
		if !ok {
			return nil, errors.Newf("no marker named %q, have %v", name, gr.MarkerNames())
		}
		keys.Merge(c.Keys())
	}
	return
}

/*
addElement inserts one element, turning it counterclockwise in the mesh
plane first when orient is set. A rejected element is counted, not fatal:
meshes written by other tools may hold a few non manifold pieces.
*/
func (gr *Grid) addElement(verts []int, orient bool) (f halfedge.Face) {
	var (
		m  = gr.Mesh
		vs = make([]halfedge.Vertex, len(verts))
	)
	for i, v := range verts {
		if v < 0 || v >= m.NumVertices() {
			failf("element %v: vertex %d out of range [0,%d)", verts, v, m.NumVertices())
		}
		vs[i] = halfedge.Vertex(v)
	}
	if orient && isClockwise(m, vs) {
		for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
			vs[i], vs[j] = vs[j], vs[i]
		}
	}
	var err error
	if f, err = m.AddFaceChecked(vs...); err != nil {
		gr.Rejected++
		return halfedge.InvalidFace
	}
	return
}

func isClockwise(m *surfacemesh.Mesh, vs []halfedge.Vertex) bool {
	if len(vs) == 3 {
		return predicates.Orient2D(m.Point2D(vs[0]), m.Point2D(vs[1]), m.Point2D(vs[2])) == predicates.Negative
	}
	pg := make(geometry2D.Polygon, len(vs))
	for i, v := range vs {
		pg[i] = m.Point2D(v)
	}
	return pg.Area() < 0
}

// tagMarkers stores each marker's name on its edges; every marker segment must be a mesh edge
func (gr *Grid) tagMarkers() {
	tags, err := surfacemesh.EdgeProperty[string](gr.Mesh, MarkerProperty)
	if err != nil {
		fail(err)
	}
	g := gr.Mesh.Graph()
	for _, name := range gr.MarkerNames() {
		for _, seg := range gr.Markers[name] {
			verts := seg.GetVertices()
			if verts[0] >= g.NumVertices() || verts[1] >= g.NumVertices() {
				failf("marker %s: segment %v out of range [0,%d)", name, verts, g.NumVertices())
			}
			h := g.FindHalfedge(halfedge.Vertex(verts[0]), halfedge.Vertex(verts[1]))
			if !h.IsValid() {
				failf("marker %s: segment %v is not an edge of the mesh", name, verts)
			}
			tags.Set(h.Edge(), name)
		}
	}
}

// ReadMeshFile picks the reader from the file extension: .su2, .neu, .msh or .obj
func ReadMeshFile(filename string, opts ...surfacemesh.Option) (*Grid, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".su2":
		return ReadSU2File(filename, opts...)
	case ".neu":
		return ReadGambit2DFile(filename, opts...)
	case ".obj":
		return ReadOBJFile(filename, opts...)
	case ".msh":
		return ReadGmshFile(filename, opts...)
	default:
		return nil, errors.Newf("%s: unknown mesh format %q", filename, ext)
	}
}

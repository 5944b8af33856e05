package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/geomkit/surfacemesh"
	"github.com/notargets/geomkit/types"
)

// SU2 element type numbers, VTK numbering
const (
	su2Line     = 3
	su2Triangle = 5
	su2Quad     = 9
)

func ReadSU2File(filename string, opts ...surfacemesh.Option) (gr *Grid, err error) {
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return nil, errors.Wrap(err, "open SU2 file")
	}
	defer file.Close()
	if gr, err = ReadSU2(file, opts...); err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}
	gr.Mesh.Logger().WithField("file", filename).Infof("read SU2 grid: %d vertices, %d faces, %d markers",
		gr.Mesh.NumVertices(), gr.Mesh.Graph().NumFaces(), len(gr.Markers))
	return
}

/*
ReadSU2 reads a two dimensional SU2 native grid: the NDIME, NELEM, NPOIN and
NMARK sections in that order. Triangles and quads are supported, each is
turned counterclockwise before it is added. Marker segments are kept by tag
and their tag is stored in the "marker" edge property.
*/
func ReadSU2(r io.Reader, opts ...surfacemesh.Option) (gr *Grid, err error) {
	defer catch(&err)
	reader := bufio.NewReader(r)

	if dim := readNumber(reader, "NDIME"); dim != 2 {
		failf("only two dimensional SU2 grids are supported, have NDIME= %d", dim)
	}
	elems := readElements(reader)
	gr = newGrid(opts)
	readVertices(reader, gr.Mesh, len(elems))
	for _, verts := range elems {
		gr.addElement(verts, true)
	}
	gr.Markers = readMarkers(reader)
	gr.tagMarkers()
	return gr, nil
}

func readElements(reader *bufio.Reader) (elems [][]int) {
	var (
		nType int
		err   error
	)
	K := readNumber(reader, "NELEM")
	elems = make([][]int, K)
	for k := 0; k < K; k++ {
		line := getLine(reader)
		if _, err = fmt.Sscanf(line, "%d", &nType); err != nil {
			failf("element %d: unable to read type from line [%s]", k, line)
		}
		var verts []int
		switch nType {
		case su2Triangle:
			verts = make([]int, 3)
			_, err = fmt.Sscanf(line, "%d %d %d %d", &nType, &verts[0], &verts[1], &verts[2])
		case su2Quad:
			verts = make([]int, 4)
			_, err = fmt.Sscanf(line, "%d %d %d %d %d", &nType, &verts[0], &verts[1], &verts[2], &verts[3])
		default:
			failf("element %d: unsupported element type %d", k, nType)
		}
		if err != nil {
			failf("element %d: unable to read vertices from line [%s]", k, line)
		}
		elems[k] = verts
	}
	return
}

func readVertices(reader *bufio.Reader, m *surfacemesh.Mesh, nFaces int) {
	var (
		x, y float64
	)
	Nv := readNumber(reader, "NPOIN")
	m.Reserve(Nv, nFaces)
	for i := 0; i < Nv; i++ {
		line := getLine(reader)
		if _, err := fmt.Sscanf(line, "%f %f", &x, &y); err != nil {
			failf("vertex %d: unable to read coordinates from line [%s]", i, line)
		}
		m.AddVertex(r3.Vec{X: x, Y: y})
	}
}

func readMarkers(reader *bufio.Reader) (markers map[string]types.Curve) {
	var (
		nType  int
		v1, v2 int
	)
	NBCs := readNumber(reader, "NMARK")
	markers = make(map[string]types.Curve, NBCs)
	for n := 0; n < NBCs; n++ {
		label := readLabel(reader, "MARKER_TAG")
		if _, ok := markers[label]; ok {
			failf("duplicate marker found with tag: [%s]", label)
		}
		nEdges := readNumber(reader, "MARKER_ELEMS")
		c := make(types.Curve, nEdges)
		for i := 0; i < nEdges; i++ {
			line := getLine(reader)
			if _, err := fmt.Sscanf(line, "%d %d %d", &nType, &v1, &v2); err != nil {
				failf("marker %s: unable to read segment from line [%s]", label, line)
			}
			if nType != su2Line {
				failf("marker %s: unsupported marker element type %d", label, nType)
			}
			if v1 < 0 || v2 < 0 || v1 == v2 {
				failf("marker %s: bad segment %d %d", label, v1, v2)
			}
			c[i] = types.NewEdgeInt([2]int{v1, v2})
		}
		markers[label] = c
	}
	return
}

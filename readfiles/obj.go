package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/geomkit/halfedge"
	"github.com/notargets/geomkit/surfacemesh"
	"github.com/notargets/geomkit/types"
)

// objLineMarker is the marker name for "l" polylines read before any group or object statement
const objLineMarker = "lines"

func ReadOBJFile(filename string, opts ...surfacemesh.Option) (gr *Grid, err error) {
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return nil, errors.Wrap(err, "open OBJ file")
	}
	defer file.Close()
	if gr, err = ReadOBJ(file, opts...); err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}
	gr.Mesh.Logger().WithField("file", filename).Infof("read OBJ mesh: %d vertices, %d faces, %d rejected",
		gr.Mesh.NumVertices(), gr.Mesh.Graph().NumFaces(), gr.Rejected)
	return
}

/*
ReadOBJ reads the "v", "f" and "l" statements of a Wavefront OBJ file. Face
and line indices are 1 based, negative indices count back from the last
vertex read, and the v/vt/vn forms are accepted with only the vertex used.
Faces are added as written; those the mesh refuses are counted in Rejected.
Polylines become markers named after the enclosing "g" or "o" statement.
Every other statement is ignored.
*/
func ReadOBJ(r io.Reader, opts ...surfacemesh.Option) (gr *Grid, err error) {
	defer catch(&err)
	var (
		scanner = bufio.NewScanner(r)
		group   = objLineMarker
		lineNo  int
		lines   = make(map[string][][]int)
		names   []string
	)
	gr = newGrid(opts)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if ind := strings.IndexByte(line, '#'); ind >= 0 {
			line = line[:ind]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			gr.Mesh.AddVertex(parseOBJVertex(lineNo, fields[1:]))
		case "f":
			if len(fields) < 4 {
				failf("line %d: face needs at least 3 vertices, has %d", lineNo, len(fields)-1)
			}
			gr.addElement(parseOBJIndices(lineNo, fields[1:], gr.Mesh.NumVertices()), false)
		case "l":
			if len(fields) < 3 {
				failf("line %d: polyline needs at least 2 vertices, has %d", lineNo, len(fields)-1)
			}
			if _, ok := lines[group]; !ok {
				names = append(names, group)
			}
			lines[group] = append(lines[group], parseOBJIndices(lineNo, fields[1:], gr.Mesh.NumVertices()))
		case "g", "o":
			if len(fields) > 1 {
				group = strings.Join(fields[1:], " ")
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read OBJ")
	}
	for _, name := range names {
		var c types.Curve
		for _, pl := range lines[name] {
			for i := 0; i+1 < len(pl); i++ {
				if pl[i] == pl[i+1] {
					failf("marker %s: repeated vertex %d in polyline", name, pl[i])
				}
				c = append(c, types.NewEdgeInt([2]int{pl[i], pl[i+1]}))
			}
		}
		gr.Markers[name] = c
	}
	gr.tagMarkers()
	return gr, nil
}

func parseOBJVertex(lineNo int, fields []string) (p r3.Vec) {
	if len(fields) < 2 {
		failf("line %d: vertex needs at least x and y", lineNo)
	}
	var xyz [3]float64
	for i := 0; i < len(fields) && i < 3; i++ {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			fail(errors.Wrapf(err, "line %d: vertex coordinate", lineNo))
		}
		xyz[i] = x
	}
	return r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}
}

// parseOBJIndices turns 1 based or negative relative references into zero based vertex numbers
func parseOBJIndices(lineNo int, fields []string, nv int) (verts []int) {
	verts = make([]int, len(fields))
	for i, fld := range fields {
		if ind := strings.IndexByte(fld, '/'); ind >= 0 {
			fld = fld[:ind]
		}
		n, err := strconv.Atoi(fld)
		if err != nil {
			fail(errors.Wrapf(err, "line %d: vertex reference", lineNo))
		}
		switch {
		case n > 0 && n <= nv:
			verts[i] = n - 1
		case n < 0 && -n <= nv:
			verts[i] = nv + n
		default:
			failf("line %d: vertex reference %d out of range, %d vertices read", lineNo, n, nv)
		}
	}
	return
}

func WriteOBJFile(filename string, m *surfacemesh.Mesh) (err error) {
	var file *os.File
	if file, err = os.Create(filename); err != nil {
		return errors.Wrap(err, "create OBJ file")
	}
	if err = WriteOBJ(file, m); err != nil {
		file.Close()
		return errors.Wrapf(err, "%s", filename)
	}
	return errors.Wrapf(file.Close(), "%s", filename)
}

// WriteOBJ writes every vertex and face, coordinates in shortest round trip form
func WriteOBJ(w io.Writer, m *surfacemesh.Mesh) (err error) {
	bw := bufio.NewWriter(w)
	for _, p := range m.Points() {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	g := m.Graph()
	for f := range g.Faces() {
		bw.WriteString("f")
		for v := range g.FaceVertices(f, halfedge.CCW).All() {
			fmt.Fprintf(bw, " %d", int(v)+1)
		}
		bw.WriteString("\n")
	}
	return errors.Wrap(bw.Flush(), "write OBJ")
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

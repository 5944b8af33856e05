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

	"github.com/notargets/geomkit/surfacemesh"
	"github.com/notargets/geomkit/types"
)

// PhysicalProperty names the face property holding the Gmsh physical tag of each element
const PhysicalProperty = "physical"

// Gmsh element type numbers used by two dimensional meshes
const (
	gmshLine     = 1
	gmshTriangle = 2
	gmshQuad     = 3
	gmshPoint    = 15
)

type gmshElement struct {
	physical int
	nodes    []int
}

type gmshReader struct {
	scanner   *bufio.Scanner
	grid      *Grid
	names     map[int]string // physical tag to name
	nodeIndex map[int]int    // node number to vertex
	faces     []gmshElement
	segments  []gmshElement
}

func ReadGmshFile(filename string, opts ...surfacemesh.Option) (gr *Grid, err error) {
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return nil, errors.Wrap(err, "open Gmsh file")
	}
	defer file.Close()
	if gr, err = ReadGmsh22(file, opts...); err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}
	gr.Mesh.Logger().WithField("file", filename).Infof("read Gmsh mesh: %d vertices, %d faces, %d markers",
		gr.Mesh.NumVertices(), gr.Mesh.Graph().NumFaces(), len(gr.Markers))
	return
}

/*
ReadGmsh22 reads an ASCII Gmsh MSH 2.2 file. Triangles and quads become
faces, turned counterclockwise and tagged with their physical group in the
"physical" face property. Line elements become marker segments named after
their physical group, "boundary_<tag>" when the group has no name. Points
and any other element type are skipped, as are the data sections.
*/
func ReadGmsh22(r io.Reader, opts ...surfacemesh.Option) (*Grid, error) {
	rd := &gmshReader{
		scanner:   bufio.NewScanner(r),
		grid:      newGrid(opts),
		names:     make(map[int]string),
		nodeIndex: make(map[int]int),
	}
	var haveFormat bool
	for rd.scanner.Scan() {
		line := strings.TrimSpace(rd.scanner.Text())
		if line == "" {
			continue
		}
		var err error
		switch line {
		case "$MeshFormat":
			err = rd.readMeshFormat()
			haveFormat = true
		case "$PhysicalNames":
			err = rd.readPhysicalNames()
		case "$Nodes":
			err = rd.readNodes()
		case "$Elements":
			err = rd.readElements()
		default:
			if strings.HasPrefix(line, "$") && !strings.HasPrefix(line, "$End") {
				// Skip data sections
				err = rd.skipTo("$End" + line[1:])
			}
		}
		if err != nil {
			return nil, err
		}
	}
	if err := rd.scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read Gmsh")
	}
	if !haveFormat {
		return nil, errors.New("could not find $MeshFormat section")
	}
	return rd.build()
}

func (rd *gmshReader) next(section string) (line string, err error) {
	if !rd.scanner.Scan() {
		return "", errors.Newf("unexpected EOF in %s", section)
	}
	return strings.TrimSpace(rd.scanner.Text()), nil
}

func (rd *gmshReader) skipTo(endMarker string) error {
	for rd.scanner.Scan() {
		if strings.TrimSpace(rd.scanner.Text()) == endMarker {
			return nil
		}
	}
	return errors.Newf("missing %s", endMarker)
}

func (rd *gmshReader) count(section string) (n int, err error) {
	var line string
	if line, err = rd.next(section); err != nil {
		return
	}
	if n, err = strconv.Atoi(line); err != nil || n < 0 {
		return 0, errors.Newf("%s: bad count [%s]", section, line)
	}
	return
}

func (rd *gmshReader) readMeshFormat() error {
	line, err := rd.next("MeshFormat")
	if err != nil {
		return err
	}
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return errors.Newf("invalid MeshFormat line [%s]", line)
	}
	if !strings.HasPrefix(parts[0], "2.") {
		return errors.Newf("unsupported Gmsh format version: %s", parts[0])
	}
	if parts[1] != "0" {
		return errors.New("binary Gmsh files are not supported")
	}
	return rd.skipTo("$EndMeshFormat")
}

func (rd *gmshReader) readPhysicalNames() error {
	numNames, err := rd.count("PhysicalNames")
	if err != nil {
		return err
	}
	for i := 0; i < numNames; i++ {
		line, err := rd.next("PhysicalNames")
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) < 3 {
			return errors.Newf("invalid physical name line [%s]", line)
		}
		tag, err := strconv.Atoi(parts[1])
		if err != nil {
			return errors.Wrapf(err, "physical tag in [%s]", line)
		}
		// Names may contain spaces
		rd.names[tag] = strings.Trim(strings.Join(parts[2:], " "), "\"")
	}
	return rd.skipTo("$EndPhysicalNames")
}

func (rd *gmshReader) readNodes() error {
	numNodes, err := rd.count("Nodes")
	if err != nil {
		return err
	}
	var planar = true
	m := rd.grid.Mesh
	for i := 0; i < numNodes; i++ {
		line, err := rd.next("Nodes")
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			return errors.Newf("invalid node line: %s", line)
		}
		nodeID, err := strconv.Atoi(parts[0])
		if err != nil {
			return errors.Wrapf(err, "node line: %s", line)
		}
		if _, ok := rd.nodeIndex[nodeID]; ok {
			return errors.Newf("repeated node %d", nodeID)
		}
		var xyz [3]float64
		for j := range xyz {
			if xyz[j], err = strconv.ParseFloat(parts[1+j], 64); err != nil {
				return errors.Wrapf(err, "node line: %s", line)
			}
		}
		planar = planar && xyz[2] == 0
		rd.nodeIndex[nodeID] = int(m.AddVertex(r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}))
	}
	if !planar {
		if err = m.FitPlane(); err != nil {
			return err
		}
	}
	return rd.skipTo("$EndNodes")
}

func (rd *gmshReader) readElements() error {
	numElements, err := rd.count("Elements")
	if err != nil {
		return err
	}
	for i := 0; i < numElements; i++ {
		line, err := rd.next("Elements")
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			return errors.Newf("invalid element line: %s", line)
		}
		var head [3]int
		for j := range head {
			if head[j], err = strconv.Atoi(parts[j]); err != nil {
				return errors.Wrapf(err, "element line: %s", line)
			}
		}
		elemID, elemType, numTags := head[0], head[1], head[2]
		if numTags < 0 || len(parts) < 3+numTags {
			return errors.Newf("element %d: invalid element tags", elemID)
		}
		var numNodes int
		switch elemType {
		case gmshLine:
			numNodes = 2
		case gmshTriangle:
			numNodes = 3
		case gmshQuad:
			numNodes = 4
		default:
			// Skip points and element types a surface mesh cannot hold
			continue
		}
		var el gmshElement
		if numTags > 0 {
			if el.physical, err = strconv.Atoi(parts[3]); err != nil {
				return errors.Wrapf(err, "element %d: physical tag", elemID)
			}
		}
		nodeStart := 3 + numTags
		if len(parts) < nodeStart+numNodes {
			return errors.Newf("element %d: expected %d nodes, got %d", elemID, numNodes, len(parts)-nodeStart)
		}
		el.nodes = make([]int, numNodes)
		for j := range el.nodes {
			nodeID, err := strconv.Atoi(parts[nodeStart+j])
			if err != nil {
				return errors.Wrapf(err, "element %d: node", elemID)
			}
			idx, ok := rd.nodeIndex[nodeID]
			if !ok {
				return errors.Newf("element %d: unknown node %d", elemID, nodeID)
			}
			el.nodes[j] = idx
		}
		if elemType == gmshLine {
			rd.segments = append(rd.segments, el)
		} else {
			rd.faces = append(rd.faces, el)
		}
	}
	return rd.skipTo("$EndElements")
}

func (rd *gmshReader) markerName(tag int) string {
	if name, ok := rd.names[tag]; ok {
		return name
	}
	return fmt.Sprintf("boundary_%d", tag)
}

func (rd *gmshReader) build() (gr *Grid, err error) {
	defer catch(&err)
	gr = rd.grid
	physical, err := surfacemesh.FaceProperty[int](gr.Mesh, PhysicalProperty)
	if err != nil {
		return nil, err
	}
	for _, el := range rd.faces {
		if f := gr.addElement(el.nodes, true); f.IsValid() {
			physical.Set(f, el.physical)
		}
	}
	for _, el := range rd.segments {
		if el.nodes[0] == el.nodes[1] {
			return nil, errors.Newf("degenerate line element on node %d", el.nodes[0])
		}
		name := rd.markerName(el.physical)
		gr.Markers[name] = append(gr.Markers[name], types.NewEdgeInt([2]int{el.nodes[0], el.nodes[1]}))
	}
	gr.tagMarkers()
	return gr, nil
}

package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/geomkit/halfedge"
	"github.com/notargets/geomkit/surfacemesh"
	"github.com/notargets/geomkit/types"
)

// MaterialProperty names the face property holding the material value of each Gambit element group
const MaterialProperty = "material"

type Material struct {
	ElementCount  int
	MaterialValue float64
	Title         string
}

func ReadGambit2DFile(filename string, opts ...surfacemesh.Option) (gr *Grid, err error) {
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return nil, errors.Wrap(err, "open Gambit neutral file")
	}
	defer file.Close()
	if gr, err = ReadGambit2D(file, opts...); err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}
	gr.Mesh.Logger().WithField("file", filename).Infof("read Gambit grid: %d vertices, %d faces, %d markers",
		gr.Mesh.NumVertices(), gr.Mesh.Graph().NumFaces(), len(gr.Markers))
	return
}

/*
ReadGambit2D reads a Gambit neutral file holding triangles. Three
dimensional coordinates are accepted for surface triangulations, in which
case the mesh plane is fit to the points. Material groups are stored in the
"material" face property, NaN for faces outside every group. Boundary
condition groups become markers.
*/
func ReadGambit2D(r io.Reader, opts ...surfacemesh.Option) (gr *Grid, err error) {
	defer catch(&err)
	reader := bufio.NewReader(r)

	// Skip first six lines
	skipLines(6, reader)

	// Get dimensions
	Nv, K, Nmats, Nbcs, Nsd := readGambitHeader(reader)
	skipLines(2, reader)
	if Nsd > 3 || Nsd < 2 {
		failf("space dimensions not 2 or 3, have %d", Nsd)
	}

	gr = newGrid(opts)
	gr.Mesh.Reserve(Nv, K)
	readGambitVertices(Nv, Nsd, reader, gr.Mesh)
	skipLines(2, reader)
	if Nsd == 3 {
		if err = gr.Mesh.FitPlane(); err != nil {
			fail(err)
		}
	}

	EToV := readGambitTris(K, Nv, reader)
	skipLines(2, reader)
	faces := make([]halfedge.Face, K)
	for k, verts := range EToV {
		faces[k] = gr.addElement(verts[:], true)
	}

	materials, err := surfacemesh.FaceProperty[float64](gr.Mesh, MaterialProperty)
	if err != nil {
		fail(err)
	}
	materials.Fill(math.NaN())
	for i := 0; i < Nmats; i++ {
		mat := readMaterialHeader(reader)
		for _, k := range readMaterialGroup(reader, mat.ElementCount, K) {
			if f := faces[k]; f.IsValid() {
				materials.Set(f, mat.MaterialValue)
			}
		}
		skipLines(2, reader)
	}

	for i := 0; i < Nbcs; i++ {
		if i != 0 {
			skipLines(1, reader)
		}
		label, c := readGambitBC(reader, EToV)
		gr.Markers[label] = append(gr.Markers[label], c...)
		skipLines(1, reader)
	}
	gr.tagMarkers()
	return gr, nil
}

func readGambitHeader(reader *bufio.Reader) (Nv, K, Nmats, Nbcs, Nsd int) {
	/*
		Nv      // num nodes in mesh
		K       // num elements
		Nmats   // num material groups
		Nbcs    // num boundary groups
		Nsd;    // num space dimensions
	*/
	var (
		line   = getLine(reader)
		n, dum int
		err    error
	)
	if n, err = fmt.Sscanf(line, "%d %d %d %d %d %d", &Nv, &K, &Nmats, &Nbcs, &Nsd, &dum); err != nil || n < 6 {
		failf("read fewer than 6 dimensions, read %d, line: %s", n, line)
	}
	if Nv < 0 || K < 0 || Nmats < 0 || Nbcs < 0 {
		failf("negative count in header line: %s", line)
	}
	return
}

func readGambitVertices(Nv, Nsd int, reader *bufio.Reader, m *surfacemesh.Mesh) {
	var (
		n, ind int
		err    error
	)
	pts := make([]r3.Vec, Nv)
	seen := make([]bool, Nv)
	for i := 0; i < Nv; i++ {
		line := getLine(reader)
		var p r3.Vec
		if Nsd == 3 {
			n, err = fmt.Sscanf(line, "%d %f %f %f", &ind, &p.X, &p.Y, &p.Z)
		} else {
			n, err = fmt.Sscanf(line, "%d %f %f", &ind, &p.X, &p.Y)
		}
		if err != nil || n < Nsd+1 {
			failf("read fewer than required dimensions, read %d, need %d, line: %s", n, Nsd+1, line)
		}
		if ind < 1 || ind > Nv || seen[ind-1] {
			failf("bad or repeated node index %d, line: %s", ind, line)
		}
		pts[ind-1], seen[ind-1] = p, true
	}
	for _, p := range pts {
		m.AddVertex(p)
	}
}

func readGambitTris(K, Nv int, reader *bufio.Reader) (EToV [][3]int) {
	//-------------------------------------
	// ENDOFSECTION
	//    ELEMENTS/CELLS 1.3.0
	//      1  3  3        1       2       3
	//      2  3  3        3       2       4
	//-------------------------------------
	var (
		n, ind, typ, nfaces int
		err                 error
	)
	EToV = make([][3]int, K)
	for i := 0; i < K; i++ {
		line := getLine(reader)
		var n1, n2, n3 int
		if n, err = fmt.Sscanf(line, "%d %d %d %d %d %d", &ind, &typ, &nfaces, &n1, &n2, &n3); err != nil || n < 6 {
			failf("read fewer than required dimensions, read %d, need 6, line: %s", n, line)
		}
		if typ != 3 || nfaces != 3 {
			failf("only triangles are supported, have element type %d with %d nodes", typ, nfaces)
		}
		if ind < 1 || ind > K {
			failf("element index %d out of range, line: %s", ind, line)
		}
		for _, nn := range [3]int{n1, n2, n3} {
			if nn < 1 || nn > Nv {
				failf("node %d out of range, line: %s", nn, line)
			}
		}
		EToV[ind-1] = [3]int{n1 - 1, n2 - 1, n3 - 1}
	}
	return
}

func readMaterialHeader(reader *bufio.Reader) (mat Material) {
	/*
	   GROUP:           1 ELEMENTS:        977 MATERIAL:      1.000 NFLAGS:          0
	                     epsilon: 1.000
	          0
	*/
	var (
		line  = getLine(reader)
		n, gn int
		err   error
	)
	if n, err = fmt.Sscanf(line, "GROUP: %11d ELEMENTS:%11d MATERIAL:%11f", &gn, &mat.ElementCount, &mat.MaterialValue); err != nil || n < 3 {
		failf("read fewer than 3 dimensions, read %d, line: %s", n, line)
	}
	mat.Title = strings.TrimSpace(getLine(reader))
	skipLines(1, reader)
	return
}

// readMaterialGroup returns the zero based element numbers of a group, listed ten to a line
func readMaterialGroup(reader *bufio.Reader, elementCount, K int) (elems []int) {
	for len(elems) < elementCount {
		fields := strings.Fields(getLine(reader))
		if len(fields) == 0 || len(fields) > 10 {
			failf("material group line should have 1 to 10 entries, has %d", len(fields))
		}
		for _, fld := range fields {
			var k int
			if _, err := fmt.Sscanf(fld, "%d", &k); err != nil || k < 1 || k > K {
				failf("bad element number [%s] in material group", fld)
			}
			elems = append(elems, k-1)
		}
	}
	if len(elems) != elementCount {
		failf("material group lists %d elements, header says %d", len(elems), elementCount)
	}
	return
}

func readGambitBC(reader *bufio.Reader, EToV [][3]int) (label string, c types.Curve) {
	var (
		line              = getLine(reader)
		err               error
		bcid, numfaces, n int
	)
	if n, err = fmt.Sscanf(line, "%32s%8d%8d", &label, &bcid, &numfaces); err != nil || n < 3 {
		failf("unable to read boundary condition header, line: %s", line)
	}
	label = strings.ToLower(strings.TrimSpace(label))
	c = make(types.Curve, numfaces)
	for i := 0; i < numfaces; i++ {
		line = getLine(reader)
		var kp1, n2, faceNumberp1 int
		if n, err = fmt.Sscanf(line, "%d %d %d", &kp1, &n2, &faceNumberp1); err != nil || n < 3 {
			failf("read fewer than required dimensions, read %d, need 3, line: %s", n, line)
		}
		if kp1 < 1 || kp1 > len(EToV) || faceNumberp1 < 1 || faceNumberp1 > 3 {
			failf("boundary face %d of element %d out of range", faceNumberp1, kp1)
		}
		verts := EToV[kp1-1]
		f := faceNumberp1 - 1
		c[i] = types.NewEdgeInt([2]int{verts[f], verts[(f+1)%3]})
	}
	return
}

/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/geomkit/InputParameters"
	"github.com/notargets/geomkit/delaunay"
	"github.com/notargets/geomkit/halfedge"
	"github.com/notargets/geomkit/readfiles"
	"github.com/notargets/geomkit/surfacemesh"
)

type DelaunayModel struct {
	GridFile string
	ICFile   string
	OutFile  string
}

// DelaunayCmd represents the delaunay command
var DelaunayCmd = &cobra.Command{
	Use:   "delaunay",
	Short: "Flip edges until every interior edge is locally Delaunay",
	Long: `
Reads a triangulation, resolves the constrained edges named in the input
parameters file and runs Lawson's flip algorithm on the rest.

geomkit delaunay -F mesh.su2 -I params.yaml -o out.obj`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		dm := &DelaunayModel{}
		if dm.GridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			return
		}
		if dm.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		if dm.OutFile, err = cmd.Flags().GetString("output"); err != nil {
			return
		}
		var ip *InputParameters.DelaunayParameters
		if ip, err = processDelaunayInput(dm); err != nil {
			return
		}
		_, err = RunDelaunay(dm, ip, logrus.StandardLogger(), cmd.OutOrStdout())
		return
	},
}

const exampleFile = `
########################################
Title: "Test Case"
Exact: true
MaxFlips: 0 # unlimited
ConstrainedEdges: [[0, 4]]
ConstrainMarkers: [top, bottom] # SU2 or Gambit markers
ConstrainBoundary: false
DumpEveryFlip: false
########################################
`

func processDelaunayInput(dm *DelaunayModel) (ip *InputParameters.DelaunayParameters, err error) {
	if len(dm.GridFile) == 0 {
		return nil, errors.New("must supply a grid file (-F, --gridFile) in .su2, .neu or .obj format")
	}
	ip = &InputParameters.DelaunayParameters{}
	if len(dm.ICFile) == 0 {
		return
	}
	var data []byte
	if data, err = os.ReadFile(dm.ICFile); err != nil {
		return nil, errors.Wrap(err, "read input parameters")
	}
	if err = ip.Parse(data); err != nil {
		return nil, errors.Wrapf(err, "%s, example file:%s", dm.ICFile, exampleFile)
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(DelaunayCmd)
	DelaunayCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in SU2 (.su2), Gambit (.neu) or OBJ (.obj) format")
	DelaunayCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Exact\n\t- ConstrainMarkers")
	DelaunayCmd.Flags().StringP("output", "o", "", "OBJ file to write the conditioned mesh to")
}

func RunDelaunay(dm *DelaunayModel, ip *InputParameters.DelaunayParameters, log logrus.FieldLogger,
	w io.Writer) (res delaunay.Result, err error) {
	var gr *readfiles.Grid
	if gr, err = readfiles.ReadMeshFile(dm.GridFile, surfacemesh.WithLogger(log)); err != nil {
		return
	}
	m := gr.Mesh
	var constrained delaunay.EdgeSet
	if constrained, err = resolveConstraints(gr, ip); err != nil {
		return
	}
	c := &delaunay.Conditioner{Kernel: ip.Kernel(), Log: log, MaxFlips: ip.MaxFlips}
	if ip.DumpEveryFlip {
		if err = os.MkdirAll(ip.DumpDir, 0o755); err != nil {
			return res, errors.Wrap(err, "create dump directory")
		}
		c.AfterFlip = func(e halfedge.Edge, n int) error {
			return readfiles.WriteOBJFile(filepath.Join(ip.DumpDir, fmt.Sprintf("flip-%06d.obj", n)), m)
		}
	}
	if len(ip.Title) != 0 {
		fmt.Fprintf(w, "%s\n", ip.Title)
	}
	before := len(delaunay.NonDelaunayEdges(m, constrained, c.Kernel))
	if res, err = c.Run(m, constrained); err != nil {
		return
	}
	fmt.Fprintf(w, "Constrained edges = %d\n", constrained.Len())
	fmt.Fprintf(w, "Non Delaunay edges before = %d, after = %d\n", before,
		len(delaunay.NonDelaunayEdges(m, constrained, c.Kernel)))
	fmt.Fprintf(w, "Flips = %d, edges visited = %d\n", res.Flips, res.Visited)
	if len(dm.OutFile) != 0 {
		err = readfiles.WriteOBJFile(dm.OutFile, m)
	}
	return
}

// resolveConstraints joins the listed vertex pairs, the named markers and optionally the whole boundary
func resolveConstraints(gr *readfiles.Grid, ip *InputParameters.DelaunayParameters) (s delaunay.EdgeSet, err error) {
	keys := ip.ConstraintKeys()
	if len(ip.ConstrainMarkers) != 0 {
		mk, err := gr.MarkerKeys(ip.ConstrainMarkers...)
		if err != nil {
			return nil, err
		}
		keys.Merge(mk)
	}
	g := gr.Mesh.Graph()
	if s, err = delaunay.ConstrainByKeys(g, keys); err != nil {
		return
	}
	if ip.ConstrainBoundary {
		for e := range delaunay.BoundaryEdges(g) {
			s.Add(e)
		}
	}
	return
}

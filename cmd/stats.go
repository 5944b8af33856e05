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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/geomkit/geometry2D"
	"github.com/notargets/geomkit/predicates"
	"github.com/notargets/geomkit/readfiles"
	"github.com/notargets/geomkit/surfacemesh"
)

// StatsCmd represents the stats command
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report topology, quality and Delaunay status of a mesh",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var gridFile string
		if gridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			return
		}
		return RunStats(gridFile, logrus.StandardLogger(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(StatsCmd)
	StatsCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in SU2 (.su2), Gambit (.neu) or OBJ (.obj) format")
}

func RunStats(gridFile string, log logrus.FieldLogger, w io.Writer) (err error) {
	var gr *readfiles.Grid
	if gr, err = readfiles.ReadMeshFile(gridFile, surfacemesh.WithLogger(log)); err != nil {
		return
	}
	m := gr.Mesh
	fmt.Fprint(w, m.Stats().Print())
	if gr.Rejected != 0 {
		fmt.Fprintf(w, "Rejected elements = %d\n", gr.Rejected)
	}
	for _, name := range gr.MarkerNames() {
		c := gr.Markers[name]
		shape := "open"
		if ordered, oerr := c.ReOrder(false); oerr != nil {
			shape = oerr.Error()
		} else if ordered.IsClosed() {
			shape = "closed"
		}
		fmt.Fprintf(w, "Marker[%s] = %d edges, %s\n", name, len(c), shape)
	}
	if cerr := m.Graph().Check(); cerr != nil {
		fmt.Fprintf(w, "Topology: INVALID, %v\n", cerr)
	} else {
		fmt.Fprintf(w, "Topology: valid\n")
	}
	fmt.Fprintf(w, "Laplacian nonzeros = %d\n", m.UniformLaplacian().NNZ())
	illegal, clockwise := illegalEdges(m)
	fmt.Fprintf(w, "Non Delaunay edges = %d\n", illegal)
	if clockwise != 0 {
		fmt.Fprintf(w, "Clockwise triangles = %d, delaunay will refuse this mesh\n", clockwise)
	}
	return
}

// illegalEdges counts the interior edges failing the in-circle test, whichever way their triangles turn
func illegalEdges(m *surfacemesh.Mesh) (illegal, clockwise int) {
	g := m.Graph()
	for f := range g.Faces() {
		if pg := m.FacePolygon(f); len(pg) == 3 && predicates.Orient2D(pg[0], pg[1], pg[2]) == predicates.Negative {
			clockwise++
		}
	}
	for e := range g.Edges() {
		if g.IsBoundaryEdge(e) {
			continue
		}
		h := g.EdgeHalfedge(e, 0)
		if g.Degree(g.FaceOf(h)) != 3 || g.Degree(g.FaceOf(h.Opposite())) != 3 {
			continue
		}
		v0, v1 := g.EdgeVertices(e)
		va, vb := g.Apexes(e)
		if geometry2D.IsIllegalEdge(m.Point2D(vb), m.Point2D(v0), m.Point2D(v1), m.Point2D(va)) {
			illegal++
		}
	}
	return
}

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

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/geomkit/halfedge"
	"github.com/notargets/geomkit/readfiles"
	"github.com/notargets/geomkit/surfacemesh"
)

// SplitCmd represents the split command
var SplitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split an edge at its midpoint",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			gridFile, outFile string
			edge              int
		)
		if gridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			return
		}
		if edge, err = cmd.Flags().GetInt("edge"); err != nil {
			return
		}
		if outFile, err = cmd.Flags().GetString("output"); err != nil {
			return
		}
		return RunSplit(gridFile, edge, outFile, logrus.StandardLogger(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(SplitCmd)
	SplitCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in SU2 (.su2), Gambit (.neu) or OBJ (.obj) format")
	SplitCmd.Flags().IntP("edge", "e", 0, "index of the edge to split")
	SplitCmd.Flags().StringP("output", "o", "", "OBJ file to write the split mesh to")
}

func RunSplit(gridFile string, edge int, outFile string, log logrus.FieldLogger, w io.Writer) (err error) {
	var gr *readfiles.Grid
	if gr, err = readfiles.ReadMeshFile(gridFile, surfacemesh.WithLogger(log)); err != nil {
		return
	}
	m := gr.Mesh
	if edge < 0 || edge >= m.Graph().NumEdges() {
		return errors.Newf("edge %d out of range [0,%d)", edge, m.Graph().NumEdges())
	}
	e := halfedge.Edge(edge)
	v0, v1 := m.Graph().EdgeVertices(e)
	var v halfedge.Vertex
	if v, err = m.SplitEdgeMidpoint(e); err != nil {
		return
	}
	fmt.Fprintf(w, "Split edge %d (%d,%d) at new vertex %d, %v\n", edge, v0, v1, v, m.Point(v))
	fmt.Fprint(w, m.Stats().Print())
	if len(outFile) != 0 {
		err = readfiles.WriteOBJFile(outFile, m)
	}
	return
}

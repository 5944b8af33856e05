package InputParameters

import (
	"fmt"
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/ghodss/yaml"

	"github.com/notargets/geomkit/predicates"
	"github.com/notargets/geomkit/types"
)

// Parameters obtained from the YAML input file
type DelaunayParameters struct {
	Title             string   `yaml:"Title"`
	Exact             *bool    `yaml:"Exact"`     // Exact predicates unless set false
	Tolerance         float64  `yaml:"Tolerance"` // Inexact mode only
	MaxFlips          int      `yaml:"MaxFlips"`  // Zero is unlimited
	ConstrainedEdges  [][2]int `yaml:"ConstrainedEdges"`
	ConstrainMarkers  []string `yaml:"ConstrainMarkers"`
	ConstrainBoundary bool     `yaml:"ConstrainBoundary"`
	DumpEveryFlip     bool     `yaml:"DumpEveryFlip"`
	DumpDir           string   `yaml:"DumpDir"`
}

func (ip *DelaunayParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return errors.Wrap(err, "parse Delaunay parameters")
	}
	return ip.Validate()
}

func (ip *DelaunayParameters) Validate() error {
	if ip.Tolerance < 0 {
		return errors.Newf("Tolerance must not be negative, have %g", ip.Tolerance)
	}
	if ip.MaxFlips < 0 {
		return errors.Newf("MaxFlips must not be negative, have %d", ip.MaxFlips)
	}
	for _, pair := range ip.ConstrainedEdges {
		if pair[0] < 0 || pair[1] < 0 || pair[0] == pair[1] {
			return errors.Newf("bad constrained edge %v", pair)
		}
		if pair[0] > math.MaxUint32 || pair[1] > math.MaxUint32 {
			return errors.Newf("constrained edge %v: vertex index above %d", pair, uint32(math.MaxUint32))
		}
	}
	if ip.DumpEveryFlip && len(ip.DumpDir) == 0 {
		ip.DumpDir = "."
	}
	return nil
}

func (ip *DelaunayParameters) IsExact() bool {
	return ip.Exact == nil || *ip.Exact
}

func (ip *DelaunayParameters) Kernel() predicates.Kernel {
	if ip.IsExact() {
		return predicates.DefaultKernel()
	}
	return predicates.InexactKernel(ip.Tolerance)
}

// ConstraintKeys holds the explicitly listed constrained vertex pairs
func (ip *DelaunayParameters) ConstraintKeys() types.EdgeKeySet {
	return types.NewEdgeKeySet(ip.ConstrainedEdges...)
}

func (ip *DelaunayParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Predicates\n", ip.Kernel().Mode)
	if !ip.IsExact() {
		fmt.Printf("%8.5g\t\t= Tolerance\n", ip.Tolerance)
	}
	fmt.Printf("[%d]\t\t\t\t= MaxFlips\n", ip.MaxFlips)
	fmt.Printf("[%v]\t\t\t= ConstrainBoundary\n", ip.ConstrainBoundary)
	fmt.Printf("[%d]\t\t\t\t= Constrained Edges\n", len(ip.ConstrainedEdges))
	markers := append([]string(nil), ip.ConstrainMarkers...)
	sort.Strings(markers)
	for _, name := range markers {
		fmt.Printf("Markers[%s] = constrained\n", name)
	}
	if ip.DumpEveryFlip {
		fmt.Printf("[%s]\t\t\t= Dump Directory\n", ip.DumpDir)
	}
}

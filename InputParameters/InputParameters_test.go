package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/geomkit/predicates"
	"github.com/notargets/geomkit/types"
)

func TestParse(t *testing.T) {
	fileInput := []byte(`
Title: Channel
Exact: false
Tolerance: 1.e-10
MaxFlips: 500
ConstrainedEdges:
  - [0, 4]
  - [4, 5]
ConstrainMarkers: [top, bottom]
ConstrainBoundary: true
DumpEveryFlip: true
`)
	var ip DelaunayParameters
	require.NoError(t, ip.Parse(fileInput))
	assert.Equal(t, "Channel", ip.Title)
	assert.False(t, ip.IsExact())
	assert.Equal(t, predicates.InexactKernel(1.e-10), ip.Kernel())
	assert.Equal(t, 500, ip.MaxFlips)
	assert.Equal(t, [][2]int{{0, 4}, {4, 5}}, ip.ConstrainedEdges)
	assert.Equal(t, []string{"top", "bottom"}, ip.ConstrainMarkers)
	assert.True(t, ip.ConstrainBoundary)
	assert.Equal(t, ".", ip.DumpDir)
	keys := ip.ConstraintKeys()
	assert.Equal(t, 2, keys.Len())
	assert.True(t, keys.Contains(types.NewEdgeKey([2]int{5, 4})))
	ip.Print()
}

func TestParseDefaults(t *testing.T) {
	var ip DelaunayParameters
	require.NoError(t, ip.Parse([]byte(`Title: "Test Case"`)))
	assert.True(t, ip.IsExact())
	assert.Equal(t, predicates.DefaultKernel(), ip.Kernel())
	assert.Equal(t, 0, ip.MaxFlips)
	assert.Equal(t, 0, ip.ConstraintKeys().Len())
	ip.Print()
}

func TestParseErrors(t *testing.T) {
	for name, input := range map[string]string{
		"yaml":           "Title: [unclosed",
		"tolerance":      "Exact: false\nTolerance: -1",
		"max flips":      "MaxFlips: -3",
		"degenerate":     "ConstrainedEdges: [[2, 2]]",
		"negative index": "ConstrainedEdges: [[-1, 2]]",
		"wrong type":     "MaxFlips: many",
		"index too big":  "ConstrainedEdges: [[0, 4294967296]]",
	} {
		var ip DelaunayParameters
		assert.Error(t, ip.Parse([]byte(input)), name)
	}
}

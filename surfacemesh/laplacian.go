package surfacemesh

import (
	"github.com/james-bowman/sparse"
)

/*
UniformLaplacian assembles the combinatorial graph Laplacian L = D - A over
the vertices: the valence on the diagonal and -1 for each edge. Isolated
vertices get an empty row.
*/
func (m *Mesh) UniformLaplacian() *sparse.CSR {
	var (
		g   = m.graph
		nv  = g.NumVertices()
		dok = sparse.NewDOK(nv, nv)
	)
	for e := range g.Edges() {
		v0, v1 := g.EdgeVertices(e)
		i, j := int(v0), int(v1)
		dok.Set(i, j, dok.At(i, j)-1)
		dok.Set(j, i, dok.At(j, i)-1)
		dok.Set(i, i, dok.At(i, i)+1)
		dok.Set(j, j, dok.At(j, j)+1)
	}
	return dok.ToCSR()
}

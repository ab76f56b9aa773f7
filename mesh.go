package cflow2d

import "math"

// Mesh is the structured (imx x jmx) vertex grid. Vertex (i, j) for
// i ∈ [0, imx-1], j ∈ [0, jmx-1] is addressed directly; it is not
// ghost-padded (only cell/face quantities are, per the indexing
// convention).
type Mesh struct {
	Imx, Jmx int
	GridX    [][]float64 // [i][j], i ∈ [0,imx-1], j ∈ [0,jmx-1]
	GridY    [][]float64
}

// NewMesh allocates a mesh of the given vertex dimensions with zeroed
// coordinates.
func NewMesh(imx, jmx int) *Mesh {
	gx := make([][]float64, imx)
	gy := make([][]float64, imx)
	for i := range gx {
		gx[i] = make([]float64, jmx)
		gy[i] = make([]float64, jmx)
	}
	return &Mesh{Imx: imx, Jmx: jmx, GridX: gx, GridY: gy}
}

// cellVolume computes the area (the 2-D analogue of volume) of the
// quadrilateral cell whose corners are vertices (i,j), (i+1,j), (i+1,j+1),
// (i,j+1), via the shoelace formula.
func (m *Mesh) cellVolume(i, j int) float64 {
	x1, y1 := m.GridX[i][j], m.GridY[i][j]
	x2, y2 := m.GridX[i+1][j], m.GridY[i+1][j]
	x3, y3 := m.GridX[i+1][j+1], m.GridY[i+1][j+1]
	x4, y4 := m.GridX[i][j+1], m.GridY[i][j+1]
	sum := x1*y2 - x2*y1
	sum += x2*y3 - x3*y2
	sum += x3*y4 - x4*y3
	sum += x4*y1 - x1*y4
	return 0.5 * math.Abs(sum)
}

// Validate checks the non-self-intersecting / positive-volume invariant
// (spec §3 Mesh invariant) by requiring every interior cell to have a
// strictly positive area. It returns an IOError on the first violation.
func (m *Mesh) Validate() error {
	for i := 0; i < m.Imx-1; i++ {
		for j := 0; j < m.Jmx-1; j++ {
			if m.cellVolume(i, j) <= 0 {
				return newErr(IOError, "mesh", "Validate",
					"non-positive cell volume encountered (self-intersecting or degenerate mesh)", nil)
			}
		}
	}
	return nil
}

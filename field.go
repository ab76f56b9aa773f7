package cflow2d

// ScalarField is a dense, ghost-padded scalar quantity over the cell/face
// index domain i ∈ [0, imx], j ∈ [0, jmx] described in the indexing
// convention (interior cells i ∈ [1,imx-1], j ∈ [1,jmx-1]; ghost ring at
// i ∈ {0,imx}, j ∈ {0,jmx}; faces addressed by the same (i,j) pair as the
// cell/face they sit on). All field arrays in the engine share this single
// padded allocation shape so that ghost population, face reconstruction and
// flux storage never need separate index arithmetic.
type ScalarField struct {
	imx, jmx int
	data     []float64
}

// NewScalarField allocates a zeroed scalar field over the padded domain for
// a mesh with imx x jmx vertices.
func NewScalarField(imx, jmx int) *ScalarField {
	return &ScalarField{imx: imx, jmx: jmx, data: make([]float64, (imx+1)*(jmx+1))}
}

func (f *ScalarField) index(i, j int) int { return i*(f.jmx+1) + j }

// At returns the value at cell/face (i, j).
func (f *ScalarField) At(i, j int) float64 { return f.data[f.index(i, j)] }

// Set stores a value at cell/face (i, j).
func (f *ScalarField) Set(i, j int, v float64) { f.data[f.index(i, j)] = v }

// Add accumulates a value at cell/face (i, j).
func (f *ScalarField) Add(i, j int, v float64) { f.data[f.index(i, j)] += v }

// Zero resets every entry to zero.
func (f *ScalarField) Zero() {
	for i := range f.data {
		f.data[i] = 0
	}
}

// CopyFrom overwrites f's data with g's. Both fields must share dimensions.
func (f *ScalarField) CopyFrom(g *ScalarField) {
	copy(f.data, g.data)
}

// VectorField is a dense, ghost-padded field of nc-component vectors over
// the same padded index domain as ScalarField. It is used for the
// primitive state Q, the conservative fluxes F/G, the residue R, the
// primitive residue dE/dx, and the left/right reconstructed face states —
// every quantity the engine carries per cell or per face that has more than
// one component. Modeling every one of these as a single owned array (never
// as independently-mutable slices aliasing the same memory) keeps mutation
// paths unambiguous.
type VectorField struct {
	imx, jmx, nc int
	data         []float64
}

// NewVectorField allocates a zeroed vector field with nc components per
// cell/face over the padded domain for a mesh with imx x jmx vertices.
func NewVectorField(imx, jmx, nc int) *VectorField {
	return &VectorField{imx: imx, jmx: jmx, nc: nc, data: make([]float64, (imx+1)*(jmx+1)*nc)}
}

func (f *VectorField) index(i, j, k int) int { return (i*(f.jmx+1)+j)*f.nc + k }

// At returns component k of the vector at cell/face (i, j).
func (f *VectorField) At(i, j, k int) float64 { return f.data[f.index(i, j, k)] }

// Set stores component k of the vector at cell/face (i, j).
func (f *VectorField) Set(i, j, k int, v float64) { f.data[f.index(i, j, k)] = v }

// Add accumulates into component k of the vector at cell/face (i, j).
func (f *VectorField) Add(i, j, k int, v float64) { f.data[f.index(i, j, k)] += v }

// NumComponents returns nc.
func (f *VectorField) NumComponents() int { return f.nc }

// Zero resets every entry to zero.
func (f *VectorField) Zero() {
	for i := range f.data {
		f.data[i] = 0
	}
}

// CopyFrom overwrites f's data with g's. Both fields must share dimensions.
func (f *VectorField) CopyFrom(g *VectorField) {
	copy(f.data, g.data)
}

// At4 reads all four components at once, for the common nc==4 case
// (primitive/conservative/residue quartets).
func (f *VectorField) At4(i, j int) [4]float64 {
	base := f.index(i, j, 0)
	return [4]float64{f.data[base], f.data[base+1], f.data[base+2], f.data[base+3]}
}

// Set4 writes all four components at once.
func (f *VectorField) Set4(i, j int, v [4]float64) {
	base := f.index(i, j, 0)
	f.data[base], f.data[base+1], f.data[base+2], f.data[base+3] = v[0], v[1], v[2], v[3]
}

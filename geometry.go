package cflow2d

import "math"

// Geometry holds the per-face outward unit normals and areas (xn, yn, xA,
// yA) and the per-cell volume, derived once from a Mesh and immutable
// thereafter (spec §3). All fields share the cell/face ghost-padded
// layout of ScalarField so that flux and reconstruction code can index
// geometry with the same (i, j) pair used for state.
type Geometry struct {
	Imx, Jmx int

	// ξ-face quantities, meaningful for i ∈ [1,imx], j ∈ [1,jmx-1].
	XiNx, XiNy, XiArea *ScalarField
	// η-face quantities, meaningful for i ∈ [1,imx-1], j ∈ [1,jmx].
	EtaNx, EtaNy, EtaArea *ScalarField
	// Cell volume, meaningful for i ∈ [1,imx-1], j ∈ [1,jmx-1].
	Volume *ScalarField
}

// NewGeometry computes Geometry from a validated Mesh.
func NewGeometry(m *Mesh) (*Geometry, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	g := &Geometry{
		Imx: m.Imx, Jmx: m.Jmx,
		XiNx: NewScalarField(m.Imx, m.Jmx), XiNy: NewScalarField(m.Imx, m.Jmx), XiArea: NewScalarField(m.Imx, m.Jmx),
		EtaNx: NewScalarField(m.Imx, m.Jmx), EtaNy: NewScalarField(m.Imx, m.Jmx), EtaArea: NewScalarField(m.Imx, m.Jmx),
		Volume: NewScalarField(m.Imx, m.Jmx),
	}

	// ξ-faces: i ∈ [1,imx], j ∈ [1,jmx-1]. Face i sits on mesh vertex
	// column vc = i-1, spanning vertex rows vr = j-1 to vr+1.
	for i := 1; i <= m.Imx; i++ {
		vc := i - 1
		for j := 1; j <= m.Jmx-1; j++ {
			vr := j - 1
			dx := m.GridX[vc][vr+1] - m.GridX[vc][vr]
			dy := m.GridY[vc][vr+1] - m.GridY[vc][vr]
			length := math.Hypot(dx, dy)
			g.XiArea.Set(i, j, length)
			if length > 0 {
				g.XiNx.Set(i, j, dy/length)
				g.XiNy.Set(i, j, -dx/length)
			}
		}
	}

	// η-faces: i ∈ [1,imx-1], j ∈ [1,jmx]. Face j sits on mesh vertex
	// row vr = j-1, spanning vertex columns vc = i-1 to vc+1.
	for i := 1; i <= m.Imx-1; i++ {
		vc := i - 1
		for j := 1; j <= m.Jmx; j++ {
			vr := j - 1
			dx := m.GridX[vc+1][vr] - m.GridX[vc][vr]
			dy := m.GridY[vc+1][vr] - m.GridY[vc][vr]
			length := math.Hypot(dx, dy)
			g.EtaArea.Set(i, j, length)
			if length > 0 {
				g.EtaNx.Set(i, j, -dy/length)
				g.EtaNy.Set(i, j, dx/length)
			}
		}
	}

	for i := 1; i <= m.Imx-1; i++ {
		for j := 1; j <= m.Jmx-1; j++ {
			g.Volume.Set(i, j, m.cellVolume(i-1, j-1))
		}
	}

	return g, nil
}

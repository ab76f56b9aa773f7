package cflow2d

// Gradients holds face-centered velocity gradients used by the viscous
// flux contribution. They must be computed from the 1st-order face
// reconstruction regardless of the inviscid interpolant choice (spec
// §4.3 ordering contract).
type Gradients struct {
	Imx, Jmx int

	XiDUDx, XiDUDy, XiDVDx, XiDVDy     *ScalarField
	EtaDUDx, EtaDUDy, EtaDVDx, EtaDVDy *ScalarField
}

// NewGradients allocates a Gradients set over the padded domain.
func NewGradients(imx, jmx int) *Gradients {
	return &Gradients{
		Imx: imx, Jmx: jmx,
		XiDUDx: NewScalarField(imx, jmx), XiDUDy: NewScalarField(imx, jmx),
		XiDVDx: NewScalarField(imx, jmx), XiDVDy: NewScalarField(imx, jmx),
		EtaDUDx: NewScalarField(imx, jmx), EtaDUDy: NewScalarField(imx, jmx),
		EtaDVDx: NewScalarField(imx, jmx), EtaDVDy: NewScalarField(imx, jmx),
	}
}

// computeFirstOrderFaces builds a throwaway first-order (none-interpolant)
// Faces set, used internally so that viscous fluxes always see 1st-order
// states even when the inviscid scheme uses a higher-order interpolant.
func computeFirstOrderFaces(s *State) *Faces {
	f := NewFaces(s.Imx, s.Jmx)
	noneReconstructor{}.Reconstruct(s, f)
	return f
}

// ComputeGradients derives face-centered ∂u/∂x, ∂u/∂y, ∂v/∂x, ∂v/∂y from
// the first-order face states and face geometry, using a simple
// directional-difference / area-weighted approximation.
func ComputeGradients(s *State, g *Geometry) *Gradients {
	first := computeFirstOrderFaces(s)
	grads := NewGradients(s.Imx, s.Jmx)

	for i := 1; i <= s.Imx; i++ {
		for j := 1; j <= s.Jmx-1; j++ {
			l := first.XiLeft.At4(i, j)
			r := first.XiRight.At4(i, j)
			dn := faceSeparation(g.Volume, i, j, s.Imx, s.Jmx)
			nx, ny := g.XiNx.At(i, j), g.XiNy.At(i, j)
			du, dv := r[IU]-l[IU], r[IV]-l[IV]
			grads.XiDUDx.Set(i, j, du/dn*nx)
			grads.XiDUDy.Set(i, j, du/dn*ny)
			grads.XiDVDx.Set(i, j, dv/dn*nx)
			grads.XiDVDy.Set(i, j, dv/dn*ny)
		}
	}
	for i := 1; i <= s.Imx-1; i++ {
		for j := 1; j <= s.Jmx; j++ {
			l := first.EtaLeft.At4(i, j)
			r := first.EtaRight.At4(i, j)
			dn := faceSeparation(g.Volume, i, j, s.Imx, s.Jmx)
			nx, ny := g.EtaNx.At(i, j), g.EtaNy.At(i, j)
			du, dv := r[IU]-l[IU], r[IV]-l[IV]
			grads.EtaDUDx.Set(i, j, du/dn*nx)
			grads.EtaDUDy.Set(i, j, du/dn*ny)
			grads.EtaDVDx.Set(i, j, dv/dn*nx)
			grads.EtaDVDy.Set(i, j, dv/dn*ny)
		}
	}
	return grads
}

// faceSeparation approximates the center-to-center distance across a face
// as √volume of the cell at (i, j), with i and j clamped into the interior
// range so that edge faces use their adjacent interior cell; it returns 1
// if that volume is not positive, to avoid division by zero.
func faceSeparation(vol *ScalarField, i, j, imx, jmx int) float64 {
	v := vol.At(clampI(i, imx-1), clampJ(j, jmx-1))
	if v <= 0 {
		return 1
	}
	return sqrtApprox(v)
}

func sqrtApprox(v float64) float64 {
	if v == 0 {
		return 1
	}
	x := v
	for i := 0; i < 20; i++ {
		x = 0.5 * (x + v/x)
	}
	return x
}

// AddViscousFluxes computes the Navier-Stokes viscous stress and heat-flux
// contribution at every face and adds it into F (ξ-faces) and G
// (η-faces), using Sutherland's law for μ(T) (spec §4.3). It is a no-op
// when μ_ref == 0.
func AddViscousFluxes(s *State, g *Geometry, grads *Gradients, F, G *VectorField) {
	if !s.Params.Viscous() {
		return
	}
	gamma, rGas, pr := s.Params.Gamma, s.Params.RGas, s.Params.Pr
	cp := gamma * rGas / (gamma - 1)
	first := computeFirstOrderFaces(s)

	for i := 1; i <= s.Imx; i++ {
		for j := 1; j <= s.Jmx-1; j++ {
			l := first.XiLeft.At4(i, j)
			r := first.XiRight.At4(i, j)
			rho := 0.5 * (l[IRho] + r[IRho])
			p := 0.5 * (l[IP] + r[IP])
			u := 0.5 * (l[IU] + r[IU])
			v := 0.5 * (l[IV] + r[IV])
			temp := s.Params.Temperature(rho, p)
			mu := s.Params.SutherlandMu(temp)
			k := mu * cp / pr
			dudx, dudy := grads.XiDUDx.At(i, j), grads.XiDUDy.At(i, j)
			dvdx, dvdy := grads.XiDVDx.At(i, j), grads.XiDVDy.At(i, j)
			tauxx := mu * (4./3.*dudx - 2./3.*dvdy)
			tauyy := mu * (4./3.*dvdy - 2./3.*dudx)
			tauxy := mu * (dudy + dvdx)
			dn := faceSeparation(g.Volume, i, j, s.Imx, s.Jmx)
			dTdx := (r[IP]/r[IRho] - l[IP]/l[IRho]) / rGas / dn
			nx, ny := g.XiNx.At(i, j), g.XiNy.At(i, j)
			qx := -k * dTdx * nx
			qy := -k * dTdx * ny
			F.Add(i, j, IU, -(tauxx*nx + tauxy*ny))
			F.Add(i, j, IV, -(tauxy*nx + tauyy*ny))
			F.Add(i, j, IP, -((u*tauxx+v*tauxy+qx)*nx + (u*tauxy+v*tauyy+qy)*ny))
		}
	}

	for i := 1; i <= s.Imx-1; i++ {
		for j := 1; j <= s.Jmx; j++ {
			l := first.EtaLeft.At4(i, j)
			r := first.EtaRight.At4(i, j)
			rho := 0.5 * (l[IRho] + r[IRho])
			p := 0.5 * (l[IP] + r[IP])
			u := 0.5 * (l[IU] + r[IU])
			v := 0.5 * (l[IV] + r[IV])
			temp := s.Params.Temperature(rho, p)
			mu := s.Params.SutherlandMu(temp)
			k := mu * cp / pr
			dudx, dudy := grads.EtaDUDx.At(i, j), grads.EtaDUDy.At(i, j)
			dvdx, dvdy := grads.EtaDVDx.At(i, j), grads.EtaDVDy.At(i, j)
			tauxx := mu * (4./3.*dudx - 2./3.*dvdy)
			tauyy := mu * (4./3.*dvdy - 2./3.*dudx)
			tauxy := mu * (dudy + dvdx)
			dn := faceSeparation(g.Volume, i, j, s.Imx, s.Jmx)
			dTdy := (r[IP]/r[IRho] - l[IP]/l[IRho]) / rGas / dn
			nx, ny := g.EtaNx.At(i, j), g.EtaNy.At(i, j)
			qx := -k * dTdy * nx
			qy := -k * dTdy * ny
			G.Add(i, j, IU, -(tauxx*nx + tauxy*ny))
			G.Add(i, j, IV, -(tauxy*nx + tauyy*ny))
			G.Add(i, j, IP, -((u*tauxx+v*tauxy+qx)*nx + (u*tauxy+v*tauyy+qy)*ny))
		}
	}
}

package cflow2d

import "math"

// ldfss0Scheme is LDFSS(0): Van Leer, post-processed with a small
// convective correction that is non-zero only in the mixed-sign (near-sonic
// / stagnation) region, vanishing identically whenever both sides agree in
// sign (in particular in supersonic uniform flow, spec §8 property 5).
type ldfss0Scheme struct{}

func (ldfss0Scheme) Name() string { return "ldfss0" }

func (ldfss0Scheme) ComputeFluxes(s *State, faces *Faces, g *Geometry, F, G *VectorField) {
	gamma := s.Params.Gamma
	for i := 1; i <= s.Imx; i++ {
		for j := 1; j <= s.Jmx-1; j++ {
			nx, ny := g.XiNx.At(i, j), g.XiNy.At(i, j)
			sc := vanLeerSplit(faces.XiLeft.At4(i, j), faces.XiRight.At4(i, j), nx, ny, gamma)
			adjustLDFSS(&sc)
			flux := assembleFlux(sc, nx, ny)
			area := g.XiArea.At(i, j)
			for k := 0; k < 4; k++ {
				F.Set(i, j, k, flux[k]*area)
			}
		}
	}
	for i := 1; i <= s.Imx-1; i++ {
		for j := 1; j <= s.Jmx; j++ {
			nx, ny := g.EtaNx.At(i, j), g.EtaNy.At(i, j)
			sc := vanLeerSplit(faces.EtaLeft.At4(i, j), faces.EtaRight.At4(i, j), nx, ny, gamma)
			adjustLDFSS(&sc)
			flux := assembleFlux(sc, nx, ny)
			area := g.EtaArea.At(i, j)
			for k := 0; k < 4; k++ {
				G.Set(i, j, k, flux[k]*area)
			}
		}
	}
}

// adjustLDFSS applies the LDFSS(0) refinement described in spec §4.3:
//
//	M_ldfss = ¼ β_L β_R (√((M⊥_L²+M⊥_R²)/2) − 1)²
//
// scaled by (1 − (p_L−p_R)/(2 ρ_{L or R} a_avg²)) on each side, then
// c+ ← c+ − ρ_avg a_avg M+_ldfss and c− ← c− + ρ_avg a_avg M−_ldfss (c± here
// are mass fluxes, ρ·a·M, so the Mach-number correction carries ρ_avg a_avg).
func adjustLDFSS(sc *splitCoefficients) {
	betaL := 0.5 * (1 + sign(sc.Ml))
	betaR := 0.5 * (1 - sign(sc.Mr))
	term := math.Sqrt((sc.Ml*sc.Ml+sc.Mr*sc.Mr)/2) - 1
	mLdfss := 0.25 * betaL * betaR * term * term

	pDiff := sc.Pl - sc.Pr
	aSq := sc.Aavg * sc.Aavg
	mPlusLdfss := mLdfss * (1 - pDiff/(2*sc.Rhol*aSq))
	mMinusLdfss := mLdfss * (1 - pDiff/(2*sc.Rhor*aSq))

	sc.Cplus -= sc.Rhoavg * sc.Aavg * mPlusLdfss
	sc.Cminus += sc.Rhoavg * sc.Aavg * mMinusLdfss
}

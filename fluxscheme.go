package cflow2d

import "math"

// FluxScheme turns reconstructed left/right face primitive states into
// 4-component conservative fluxes F (ξ-faces) and G (η-faces). Two
// concrete schemes are provided: Van Leer flux-vector-splitting, and
// LDFSS(0), which is expressed compositionally as "call Van Leer, then
// adjust c±" (spec §4.3).
type FluxScheme interface {
	Name() string
	ComputeFluxes(s *State, faces *Faces, g *Geometry, F, G *VectorField)
}

// NewFluxScheme resolves a FluxScheme by config name. An unknown name is a
// fatal ConfigError (spec §6).
func NewFluxScheme(name string) (FluxScheme, error) {
	switch name {
	case "van_leer", "":
		return vanLeerScheme{}, nil
	case "ldfss0":
		return ldfss0Scheme{}, nil
	default:
		return nil, newErr(ConfigError, "fluxscheme", "NewFluxScheme",
			"unknown scheme_name \""+name+"\"", nil)
	}
}

// splitCoefficients holds everything a face's Van Leer split computes,
// including the raw left/right pressures so LDFSS(0) can apply its
// pressure-scaled convective correction without recomputing the split.
type splitCoefficients struct {
	Cplus, Cminus float64
	Pplus, Pminus float64
	Hl, Hr        float64
	Ul, Vl, Ur, Vr float64
	Rhol, Rhor     float64
	Pl, Pr         float64
	Ml, Mr         float64
	Aavg, Rhoavg   float64
}

// vanLeerSplit computes the Van Leer split convective coefficients c±,
// split pressures p±, and per-side enthalpies at a single face with unit
// outward normal (nx, ny) (spec §4.3 "Van Leer FVS").
func vanLeerSplit(l, r [4]float64, nx, ny, gamma float64) splitCoefficients {
	rhol, ul, vl, pl := l[IRho], l[IU], l[IV], l[IP]
	rhor, ur, vr, pr := r[IRho], r[IU], r[IV], r[IP]
	al := math.Sqrt(gamma * pl / rhol)
	ar := math.Sqrt(gamma * pr / rhor)
	aavg := 0.5 * (al + ar)
	unl := ul*nx + vl*ny
	unr := ur*nx + vr*ny
	ml := unl / aavg
	mr := unr / aavg

	var cplus, pplus float64
	switch {
	case ml <= -1:
		cplus, pplus = 0, 0
	case ml >= 1:
		cplus, pplus = rhol*aavg*ml, pl
	default:
		cplus = rhol * aavg * 0.25 * (ml + 1) * (ml + 1)
		pplus = pl * 0.25 * (ml + 1) * (ml + 1) * (2 - ml)
	}
	var cminus, pminus float64
	switch {
	case mr >= 1:
		cminus, pminus = 0, 0
	case mr <= -1:
		cminus, pminus = rhor*aavg*mr, pr
	default:
		cminus = -rhor * aavg * 0.25 * (mr - 1) * (mr - 1)
		pminus = pr * 0.25 * (mr - 1) * (mr - 1) * (2 + mr)
	}

	hl := gamma/(gamma-1)*pl/rhol + 0.5*(ul*ul+vl*vl)
	hr := gamma/(gamma-1)*pr/rhor + 0.5*(ur*ur+vr*vr)

	return splitCoefficients{
		Cplus: cplus, Cminus: cminus,
		Pplus: pplus, Pminus: pminus,
		Hl: hl, Hr: hr,
		Ul: ul, Vl: vl, Ur: ur, Vr: vr,
		Rhol: rhol, Rhor: rhor,
		Pl: pl, Pr: pr,
		Ml: ml, Mr: mr,
		Aavg: aavg, Rhoavg: 0.5 * (rhol + rhor),
	}
}

// assembleFlux assembles the 4-component flux from a face's split
// coefficients, per the standard Van Leer formula.
func assembleFlux(sc splitCoefficients, nx, ny float64) [4]float64 {
	pSum := sc.Pplus + sc.Pminus
	return [4]float64{
		sc.Cplus + sc.Cminus,
		sc.Cplus*sc.Ul + sc.Cminus*sc.Ur + pSum*nx,
		sc.Cplus*sc.Vl + sc.Cminus*sc.Vr + pSum*ny,
		sc.Cplus*sc.Hl + sc.Cminus*sc.Hr,
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

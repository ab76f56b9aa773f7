package cflow2d

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TimeSteppingMethod selects how Δt is computed (spec §4.5).
type TimeSteppingMethod int

const (
	LocalTimeStepping TimeSteppingMethod = iota
	GlobalTimeStepping
)

// ParseTimeSteppingMethod resolves the config directive's single-letter
// code. Anything other than 'l' or 'g' is a fatal ConfigError (spec §4.5).
func ParseTimeSteppingMethod(code string) (TimeSteppingMethod, error) {
	switch code {
	case "l":
		return LocalTimeStepping, nil
	case "g":
		return GlobalTimeStepping, nil
	default:
		return 0, newErr(ConfigError, "timestep", "ParseTimeSteppingMethod",
			"unknown time_stepping_method \""+code+"\"", nil)
	}
}

// localDt computes the CFL-limited local time step at a single interior
// cell (spec §4.5 Local):
//
//	a = √(γp/ρ); λ_k = |u·n_k + v·n_k| + a for each of the 4 faces;
//	Δt(i,j) = CFL·V(i,j) / Σ (A_k λ_k)
func localDt(s *State, g *Geometry, i, j int, cfl float64) float64 {
	u, v := s.U(i, j), s.V(i, j)
	a := s.SoundSpeed(i, j)

	sum := 0.0
	faces := [4]struct{ nx, ny, area float64 }{
		{g.XiNx.At(i, j), g.XiNy.At(i, j), g.XiArea.At(i, j)},
		{g.XiNx.At(i+1, j), g.XiNy.At(i+1, j), g.XiArea.At(i+1, j)},
		{g.EtaNx.At(i, j), g.EtaNy.At(i, j), g.EtaArea.At(i, j)},
		{g.EtaNx.At(i, j+1), g.EtaNy.At(i, j+1), g.EtaArea.At(i, j+1)},
	}
	for _, fc := range faces {
		lambda := math.Abs(u*fc.nx+v*fc.ny) + a
		sum += fc.area * lambda
	}
	return cfl * g.Volume.At(i, j) / sum
}

// ComputeTimeStep fills dt with the Δt at every interior cell, per the
// selected method. When method is global and globalTimeStep > 0, Δt is
// that constant everywhere; when global and globalTimeStep <= 0, Δt is the
// minimum local Δt broadcast to every cell (spec §4.5, §8 "global_time_step
// ≤ 0 falls back to local").
func ComputeTimeStep(s *State, g *Geometry, method TimeSteppingMethod, cfl, globalTimeStep float64, dt *ScalarField) {
	if method == GlobalTimeStepping && globalTimeStep > 0 {
		for i := 1; i <= s.Imx-1; i++ {
			for j := 1; j <= s.Jmx-1; j++ {
				dt.Set(i, j, globalTimeStep)
			}
		}
		return
	}

	locals := make([]float64, 0, (s.Imx-1)*(s.Jmx-1))
	for i := 1; i <= s.Imx-1; i++ {
		for j := 1; j <= s.Jmx-1; j++ {
			dt.Set(i, j, localDt(s, g, i, j, cfl))
			locals = append(locals, dt.At(i, j))
		}
	}
	if method == LocalTimeStepping {
		return
	}
	// Global, no positive override: broadcast the minimum local Δt.
	minDt := floats.Min(locals)
	for i := 1; i <= s.Imx-1; i++ {
		for j := 1; j <= s.Jmx-1; j++ {
			dt.Set(i, j, minDt)
		}
	}
}

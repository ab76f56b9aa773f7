package cflow2d

import "math"

// FreeStream holds the scalar reference quadruple Q∞ = (ρ∞, u∞, v∞, p∞)
// that ghost-cell Dirichlet conditions and the residue normalizers are
// built from. It is set once from configuration and never mutated
// afterwards.
type FreeStream struct {
	Rho, U, V, P float64
}

// SoundSpeed returns a∞ = √(γ p∞ / ρ∞).
func (q FreeStream) SoundSpeed(gamma float64) float64 {
	return math.Sqrt(gamma * q.P / q.Rho)
}

// Supersonic reports whether |V∞|/a∞ ≥ 1, computed once at setup and
// cached by the caller; it governs the inlet/exit ghost-cell pressure
// policy (spec §4.1).
func (q FreeStream) Supersonic(gamma float64) bool {
	speed := math.Hypot(q.U, q.V)
	return speed/q.SoundSpeed(gamma) >= 1.0
}

// Params holds the thermodynamic parameters that are immutable after
// setup: the ratio of specific heats, the gas constant, and the
// viscous-model constants used by Sutherland's law.
type Params struct {
	Gamma          float64 // gm
	RGas           float64
	MuRef          float64 // 0 disables the viscous contribution entirely
	TRef           float64
	SutherlandTemp float64 // Sutherland constant S
	Pr             float64
}

// Viscous reports whether the viscous (Navier-Stokes) contribution is
// active, i.e. μ_ref ≠ 0.
func (p Params) Viscous() bool { return p.MuRef != 0 }

// SutherlandMu evaluates μ(T) = μ_ref (T/T_ref)^(3/2) (T_ref + S)/(T + S).
func (p Params) SutherlandMu(t float64) float64 {
	return p.MuRef * math.Pow(t/p.TRef, 1.5) * (p.TRef + p.SutherlandTemp) / (t + p.SutherlandTemp)
}

// Temperature recovers T = p/(ρ R) from the ideal-gas law.
func (p Params) Temperature(rho, pressure float64) float64 {
	return pressure / (rho * p.RGas)
}

// SoundSpeed returns a = √(γ p / ρ) for arbitrary (ρ, p).
func (p Params) SoundSpeed(rho, pressure float64) float64 {
	return math.Sqrt(p.Gamma * pressure / rho)
}

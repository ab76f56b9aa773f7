package cflow2d

// Accuracy selects the time-integration scheme (spec §4.6).
type Accuracy int

const (
	EulerAccuracy Accuracy = iota
	RK4Accuracy
)

// ParseAccuracy resolves the time_step_accuracy directive. Anything other
// than "none" or "RK4" is a fatal ConfigError.
func ParseAccuracy(code string) (Accuracy, error) {
	switch code {
	case "none":
		return EulerAccuracy, nil
	case "RK4":
		return RK4Accuracy, nil
	default:
		return 0, newErr(ConfigError, "integrator", "ParseAccuracy",
			"unknown time_step_accuracy \""+code+"\"", nil)
	}
}

// guardedAdvance computes Qn − scale·dEdx/V cell-by-cell and, when guard is
// true, accepts the candidate only where the resulting ρ and p are both
// positive (spec §4.6); cells that fail the guard keep their qn value. When
// guard is false every candidate is written regardless of sign, and
// onNegative (when non-nil) is called for each cell that goes non-physical.
// The final RK4 combination does not go through this function;
// rk4Stepper.Run applies and logs it itself.
func guardedAdvance(qn *VectorField, dEdx *VectorField, dt *ScalarField, g *Geometry, imx, jmx int, scale float64, guard bool, out *VectorField, onNegative func(i, j int, q [4]float64)) {
	for i := 1; i <= imx-1; i++ {
		for j := 1; j <= jmx-1; j++ {
			q := qn.At4(i, j)
			de := dEdx.At4(i, j)
			factor := scale * dt.At(i, j) / g.Volume.At(i, j)
			var cand [4]float64
			for k := 0; k < 4; k++ {
				cand[k] = q[k] - de[k]*factor
			}
			if guard {
				if cand[IRho] > 0 && cand[IP] > 0 {
					out.Set4(i, j, cand)
				} else {
					out.Set4(i, j, q)
				}
				continue
			}
			if (cand[IRho] <= 0 || cand[IP] <= 0) && onNegative != nil {
				onNegative(i, j, cand)
			}
			out.Set4(i, j, cand)
		}
	}
}

// integrateEuler performs the single forward-Euler update
//
//	Q' = Q − (dE/dx)·Δt/V
//
// accepting the candidate cell-by-cell only where ρ'>0 and p'>0 (spec
// §4.6, §8 property 1's "positivity guard").
func integrateEuler(s *State, g *Geometry, dEdx *VectorField, dt *ScalarField) {
	guardedAdvance(s.Q, dEdx, dt, g, s.Imx, s.Jmx, 1.0, true, s.Q, nil)
}

// rk4Stepper runs the classic 4-stage Runge-Kutta scheme (spec §4.6, Open
// Question (d): the implementation follows the standard Butcher tableau
// rather than the source's cumulative Δt-rescaling arithmetic). subStep
// recomputes dE/dx at the solver's current Q (it must leave its result in
// dEdx); dt holds the single Δt snapshot taken before stage 1 from the
// unintegrated state.
type rk4Stepper struct {
	solver *Solver
}

// Run advances s.Q by one full RK4 step in place, using the dEdx already
// populated by the solver's most recent sub-step as k1.
func (r rk4Stepper) Run(dEdx1 *VectorField) error {
	s, g := r.solver.State, r.solver.Geometry
	dt := r.solver.Dt

	qn := r.solver.QSnapshot
	qn.CopyFrom(s.Q)
	ComputeTimeStep(s, g, r.solver.TimeSteppingMethod, r.solver.CFL, r.solver.GlobalTimeStep, dt)

	// Stage 2: half-step from Qn using k1, guarded.
	guardedAdvance(qn, dEdx1, dt, g, s.Imx, s.Jmx, 0.5, true, s.Q, nil)
	if err := r.solver.subStep(); err != nil {
		return err
	}
	dEdx2 := r.solver.dEdx2
	dEdx2.CopyFrom(r.solver.dEdx)

	// Stage 3: half-step from Qn using k2, guarded.
	guardedAdvance(qn, dEdx2, dt, g, s.Imx, s.Jmx, 0.5, true, s.Q, nil)
	if err := r.solver.subStep(); err != nil {
		return err
	}
	dEdx3 := r.solver.dEdx3
	dEdx3.CopyFrom(r.solver.dEdx)

	// Stage 4: full step from Qn using k3, guarded.
	guardedAdvance(qn, dEdx3, dt, g, s.Imx, s.Jmx, 1.0, true, s.Q, nil)
	if err := r.solver.subStep(); err != nil {
		return err
	}
	dEdx4 := r.solver.dEdx4
	dEdx4.CopyFrom(r.solver.dEdx)

	// Final combination: Q = Qn − Δt/V·(k1/6 + k2/3 + k3/3 + k4/6), applied
	// unconditionally; a non-physical result is logged, not rejected.
	for i := 1; i <= s.Imx-1; i++ {
		for j := 1; j <= s.Jmx-1; j++ {
			q := qn.At4(i, j)
			k1, k2, k3, k4 := dEdx1.At4(i, j), dEdx2.At4(i, j), dEdx3.At4(i, j), dEdx4.At4(i, j)
			factor := dt.At(i, j) / g.Volume.At(i, j)
			var cand [4]float64
			for k := 0; k < 4; k++ {
				combined := k1[k]/6 + k2[k]/3 + k3[k]/3 + k4[k]/6
				cand[k] = q[k] - combined*factor
			}
			if (cand[IRho] <= 0 || cand[IP] <= 0) && r.solver.Log != nil {
				// spec §7: logged at debug_level 5 (Trace here, since Debug
				// already fires starting at debug_level 2 — see logging.go).
				r.solver.Log.WithFields(logFields{
					"i": i, "j": j, "iter": r.solver.Iter,
				}).Trace("RK4 combination produced non-physical state")
			}
			s.Q.Set4(i, j, cand)
		}
	}
	return nil
}

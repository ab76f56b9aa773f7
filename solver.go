package cflow2d

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Solver gathers every piece of mutable and immutable state a run needs
// into one explicit value (spec §9 design note: prefer one gathered
// struct over scattered globals, the way the teacher's run-level type
// threads a single context through its step loop). Nothing here is safe
// for concurrent use; a Solver drives exactly one simulation.
type Solver struct {
	Mesh     *Mesh
	Geometry *Geometry
	State    *State

	Reconstructor Reconstructor
	FluxScheme    FluxScheme
	IB            IB

	CFL                float64
	TimeSteppingMethod TimeSteppingMethod
	GlobalTimeStep     float64
	Accuracy           Accuracy
	Tolerance          float64
	MaxIters           int
	CheckpointIter     int
	WallPolicy         WallVelocityPolicy

	CheckpointPath string

	// Periodic output sinks (spec §6 "Periodic outputs", §5 "setup_solver
	// ... opens the residue-history and mass-residue output sinks").
	// Opened once in SetupSolver, closed by Destroy in reverse order. Tests
	// that build a Solver by hand may leave these as io.Discard / "" to
	// skip periodic output entirely.
	resnormFile     io.Writer
	massResidueFile io.Writer
	pressurePath    string
	LastMassFlux    MassBoundaryFlux

	// Scratch fields, allocated once in Setup and reused every sub-step
	// (except Gradients, which each viscous sub-step replaces with a fresh
	// ComputeGradients result).
	Faces     *Faces
	Gradients *Gradients
	F, G      *VectorField
	R         *VectorField
	dEdx      *VectorField
	Dt        *ScalarField

	// RK4-only scratch.
	QSnapshot                  *VectorField
	dEdx1, dEdx2, dEdx3, dEdx4 *VectorField

	Iter     int
	SimClock float64
	ResNorm  [4]float64
	ResNorm0 [4]float64

	Log *logrus.Logger
}

// SetupSolver builds a ready-to-run Solver from a parsed Config (spec §6,
// §9 Setup/Destroy lifecycle).
func SetupSolver(cfg *Config) (*Solver, error) {
	log := NewLogger(cfg.DebugLevel)

	mesh, err := ReadGridFile(cfg.GridFile)
	if err != nil {
		return nil, err
	}
	geom, err := NewGeometry(mesh)
	if err != nil {
		return nil, err
	}

	state := NewState(mesh.Imx, mesh.Jmx, cfg.FreeStream(), cfg.Params())
	if cfg.StateLoadFile != "" {
		if err := ReadCheckpoint(cfg.StateLoadFile, state); err != nil {
			return nil, err
		}
	}

	reconstructor, err := NewReconstructor(cfg.Interpolant)
	if err != nil {
		return nil, err
	}
	fluxScheme, err := NewFluxScheme(cfg.SchemeName)
	if err != nil {
		return nil, err
	}
	tsMethod, err := ParseTimeSteppingMethod(cfg.TimeSteppingMethod)
	if err != nil {
		return nil, err
	}
	accuracy, err := ParseAccuracy(cfg.TimeStepAccuracy)
	if err != nil {
		return nil, err
	}

	var ib IB = NoopIB{}
	if cfg.IBFile != "" {
		ib, err = LoadFileIB(cfg.IBFile)
		if err != nil {
			return nil, err
		}
	}

	// spec §5: setup_solver opens the residue-history and mass-residue
	// output sinks; destroy_solver releases them in reverse order.
	resnormFile, err := os.Create("resnorms")
	if err != nil {
		return nil, newErr(IOError, "solver", "SetupSolver", "could not open resnorms output sink", err)
	}
	massResidueFile, err := os.Create("mass_residue")
	if err != nil {
		resnormFile.Close()
		return nil, newErr(IOError, "solver", "SetupSolver", "could not open mass_residue output sink", err)
	}

	imx, jmx := mesh.Imx, mesh.Jmx
	solver := &Solver{
		Mesh: mesh, Geometry: geom, State: state,
		Reconstructor: reconstructor, FluxScheme: fluxScheme, IB: ib,
		CFL: cfg.CFL, TimeSteppingMethod: tsMethod, GlobalTimeStep: cfg.GlobalTimeStep,
		Accuracy: accuracy, Tolerance: cfg.Tolerance,
		MaxIters: cfg.MaxIters, CheckpointIter: cfg.CheckpointIter,
		WallPolicy: SlipReflection,

		// The fixed-order config has no separate checkpoint-path directive;
		// state_load_file doubles as both load source and checkpoint output
		// (spec §6 "State file"). A CLI caller may still override this.
		CheckpointPath: cfg.StateLoadFile,

		resnormFile:     resnormFile,
		massResidueFile: massResidueFile,
		pressurePath:    fmt.Sprintf("pressure-%s", cfg.Interpolant),

		Faces:     NewFaces(imx, jmx),
		Gradients: NewGradients(imx, jmx),
		F:         NewVectorField(imx, jmx, 4),
		G:         NewVectorField(imx, jmx, 4),
		R:         NewVectorField(imx, jmx, 4),
		dEdx:      NewVectorField(imx, jmx, 4),
		Dt:        NewScalarField(imx, jmx),

		QSnapshot: NewVectorField(imx, jmx, 4),
		dEdx1:     NewVectorField(imx, jmx, 4),
		dEdx2:     NewVectorField(imx, jmx, 4),
		dEdx3:     NewVectorField(imx, jmx, 4),
		dEdx4:     NewVectorField(imx, jmx, 4),

		Log: log,
	}
	return solver, nil
}

// Destroy releases everything SetupSolver acquired. Scratch fields are
// plain Go memory and need no explicit release; the output sinks opened
// by SetupSolver are closed here, in the reverse of their acquisition
// order (spec §5 "destroy_solver releases them in reverse order on every
// exit path").
func (solver *Solver) Destroy() {
	if c, ok := solver.massResidueFile.(io.Closer); ok {
		c.Close()
	}
	if c, ok := solver.resnormFile.(io.Closer); ok {
		c.Close()
	}
}

// subStep runs exactly one sub-step: the ordered sequence of face
// reconstruction, IB coupling, flux evaluation and residue transform
// described in spec §4.8. It leaves solver.dEdx populated with the
// primitive residue at the solver's current State.Q; it does not advance
// time. For RK4, Δt is never (re)computed here — the integrator takes a
// single Δt snapshot before stage 1 and reuses it for every stage.
func (solver *Solver) subStep() error {
	s, g := solver.State, solver.Geometry

	solver.F.Zero()
	solver.G.Zero()

	s.SetGhostCellData(g, solver.WallPolicy)

	// 1st-order faces first: both the IB interface-state reset and the
	// viscous gradient computation must see 1st-order states regardless
	// of the inviscid interpolant (spec §4.2-§4.3 ordering contract).
	noneReconstructor{}.Reconstruct(s, solver.Faces)
	solver.IB.ResetStatesAtInterfaceFaces(solver.Faces)

	if s.Params.Viscous() {
		grads := ComputeGradients(s, g)
		solver.Gradients = grads
		solver.IB.ResetGradientsAtInterfaces(solver.Gradients)
	}

	if solver.Reconstructor.Name() != "none" {
		solver.Reconstructor.Reconstruct(s, solver.Faces)
		solver.IB.ResetStatesAtInterfaceFaces(solver.Faces)
	}

	solver.FluxScheme.ComputeFluxes(s, solver.Faces, g, solver.F, solver.G)
	if s.Params.Viscous() {
		AddViscousFluxes(s, g, solver.Gradients, solver.F, solver.G)
	}

	ComputeResidue(s, solver.F, solver.G, solver.R)

	if solver.Accuracy != RK4Accuracy {
		ComputeTimeStep(s, g, solver.TimeSteppingMethod, solver.CFL, solver.GlobalTimeStep, solver.Dt)
	}

	ResidueToPrimitive(s, solver.R, solver.dEdx)
	return nil
}

// Step advances the simulation by exactly one outer iteration: one
// sub-step, the configured time integrator, then bookkeeping (clock,
// iteration count, residue norms). It writes a checkpoint when
// CheckpointIter divides the new iteration count and the path is set
// (spec §6, §9).
func (solver *Solver) Step() error {
	if err := solver.subStep(); err != nil {
		return err
	}

	switch solver.Accuracy {
	case EulerAccuracy:
		integrateEuler(solver.State, solver.Geometry, solver.dEdx, solver.Dt)
	case RK4Accuracy:
		solver.dEdx1.CopyFrom(solver.dEdx)
		stepper := rk4Stepper{solver: solver}
		if err := stepper.Run(solver.dEdx1); err != nil {
			return err
		}
	}

	solver.Iter++
	dtRepresentative := solver.Dt.At(1, 1)
	solver.SimClock += dtRepresentative
	solver.updateResNorm()

	solver.LastMassFlux = ComputeMassBoundaryFlux(solver.State, solver.F, solver.G)
	if err := solver.writeMassResidueLine(); err != nil {
		return err
	}
	if err := solver.writeResnormLine(); err != nil {
		return err
	}

	if solver.CheckpointPath != "" && solver.CheckpointIter > 0 && solver.Iter%solver.CheckpointIter == 0 {
		path := fmt.Sprintf("%s.%d", solver.CheckpointPath, solver.Iter)
		if err := WriteCheckpoint(path, solver.Mesh, solver.State); err != nil {
			return err
		}
		if err := solver.writePressureProfile(); err != nil {
			return err
		}
	}
	return nil
}

// writeResnormLine appends one line of 5 numbers (iter, then the 4
// per-equation normalized residue norms) to the resnorms sink, for every
// iteration after the first (spec §6 "Periodic outputs": "one line per
// iter after the first").
func (solver *Solver) writeResnormLine() error {
	if solver.Iter <= 1 || solver.resnormFile == nil {
		return nil
	}
	n := solver.ResNorm
	if _, err := fmt.Fprintf(solver.resnormFile, "%d %.10e %.10e %.10e %.10e\n",
		solver.Iter, n[0], n[1], n[2], n[3]); err != nil {
		return newErr(IOError, "solver", "writeResnormLine", "could not write resnorms line", err)
	}
	return nil
}

// writeMassResidueLine appends one line of 5 numbers (iter, then the
// Bottom/Top/Left/Right boundary mass fluxes) to the mass_residue sink,
// for every update (spec §6 "Periodic outputs": "one line per update").
func (solver *Solver) writeMassResidueLine() error {
	if solver.massResidueFile == nil {
		return nil
	}
	mb := solver.LastMassFlux
	if _, err := fmt.Fprintf(solver.massResidueFile, "%d %.10e %.10e %.10e %.10e\n",
		solver.Iter, mb.Bottom, mb.Top, mb.Left, mb.Right); err != nil {
		return newErr(IOError, "solver", "writeMassResidueLine", "could not write mass_residue line", err)
	}
	return nil
}

// writePressureProfile (over)writes the bottom-wall pressure profile to
// pressure-<interpolant>, at every checkpoint and at the final iteration
// (spec §6 "Periodic outputs").
func (solver *Solver) writePressureProfile() error {
	if solver.pressurePath == "" {
		return nil
	}
	f, err := os.Create(solver.pressurePath)
	if err != nil {
		return newErr(IOError, "solver", "writePressureProfile", "could not create pressure output file", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 1; i <= solver.Mesh.Imx-1; i++ {
		fmt.Fprintf(w, "%.10e ", solver.State.P(i, 1))
	}
	fmt.Fprintln(w)
	if err := w.Flush(); err != nil {
		return newErr(IOError, "solver", "writePressureProfile", "could not flush pressure output file", err)
	}
	return nil
}

// Run drives the step loop until convergence or MaxIters, whichever comes
// first (spec §8 "converged" / "max_iters exhausted").
func (solver *Solver) Run() error {
	for solver.Iter < solver.MaxIters {
		if err := solver.Step(); err != nil {
			return err
		}
		massFlow := AsMassFlow(solver.LastMassFlux.Net)
		solver.Log.WithFields(logFields{
			"iter": solver.Iter, "resnorm": solver.ResNorm, "net_mass_flow_kg_s": massFlow.Value(),
		}).Debug("iteration complete")
		if solver.converged() {
			solver.Log.WithFields(logFields{"iter": solver.Iter}).Info("converged")
			if err := solver.writePressureProfile(); err != nil {
				return err
			}
			return solver.writeSummaryIfConfigured()
		}
	}
	solver.Log.WithFields(logFields{"iter": solver.Iter}).Info("reached max_iters")
	if err := solver.writePressureProfile(); err != nil {
		return err
	}
	return solver.writeSummaryIfConfigured()
}

// writeSummaryIfConfigured writes the run summary next to the checkpoint
// base path, when one was configured.
func (solver *Solver) writeSummaryIfConfigured() error {
	if solver.CheckpointPath == "" {
		return nil
	}
	return WriteRunSummary(solver.CheckpointPath+".summary.toml", solver)
}

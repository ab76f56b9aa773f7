package cflow2d

import "testing"

func newTestSolver(t *testing.T, imx, jmx int, fs FreeStream, accuracy Accuracy) *Solver {
	t.Helper()
	mesh := uniformMesh(imx, jmx)
	geom, err := NewGeometry(mesh)
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}
	state := NewState(mesh.Imx, mesh.Jmx, fs, testParams())
	recon, _ := NewReconstructor("none")
	flux, _ := NewFluxScheme("van_leer")

	return &Solver{
		Mesh: mesh, Geometry: geom, State: state,
		Reconstructor: recon, FluxScheme: flux, IB: NoopIB{},
		CFL: 0.5, TimeSteppingMethod: LocalTimeStepping,
		Accuracy: accuracy, Tolerance: 1e-10, MaxIters: 20,
		WallPolicy: SlipReflection,

		Faces:     NewFaces(mesh.Imx, mesh.Jmx),
		Gradients: NewGradients(mesh.Imx, mesh.Jmx),
		F:         NewVectorField(mesh.Imx, mesh.Jmx, 4),
		G:         NewVectorField(mesh.Imx, mesh.Jmx, 4),
		R:         NewVectorField(mesh.Imx, mesh.Jmx, 4),
		dEdx:      NewVectorField(mesh.Imx, mesh.Jmx, 4),
		Dt:        NewScalarField(mesh.Imx, mesh.Jmx),

		QSnapshot: NewVectorField(mesh.Imx, mesh.Jmx, 4),
		dEdx1:     NewVectorField(mesh.Imx, mesh.Jmx, 4),
		dEdx2:     NewVectorField(mesh.Imx, mesh.Jmx, 4),
		dEdx3:     NewVectorField(mesh.Imx, mesh.Jmx, 4),
		dEdx4:     NewVectorField(mesh.Imx, mesh.Jmx, 4),

		Log: NewLogger(0),
	}
}

func TestFreeStreamIsAnExactSteadyStateUnderEuler(t *testing.T) {
	fs := FreeStream{Rho: 1, U: 50, V: 0, P: 101325}
	solver := newTestSolver(t, 6, 6, fs, EulerAccuracy)
	for n := 0; n < 10; n++ {
		if err := solver.Step(); err != nil {
			t.Fatalf("Step() at iteration %d: %v", n, err)
		}
	}
	for i := 1; i <= 4; i++ {
		for j := 1; j <= 4; j++ {
			if got := solver.State.Rho(i, j); got != fs.Rho {
				t.Errorf("Rho(%d,%d) = %v after steady free-stream steps, want %v", i, j, got, fs.Rho)
			}
			if got := solver.State.U(i, j); got != fs.U {
				t.Errorf("U(%d,%d) = %v after steady free-stream steps, want %v", i, j, got, fs.U)
			}
		}
	}
}

func TestFreeStreamIsAnExactSteadyStateUnderRK4(t *testing.T) {
	fs := FreeStream{Rho: 1, U: 50, V: 0, P: 101325}
	solver := newTestSolver(t, 6, 6, fs, RK4Accuracy)
	for n := 0; n < 5; n++ {
		if err := solver.Step(); err != nil {
			t.Fatalf("Step() at iteration %d: %v", n, err)
		}
	}
	for i := 1; i <= 4; i++ {
		for j := 1; j <= 4; j++ {
			if got := solver.State.Rho(i, j); got != fs.Rho {
				t.Errorf("Rho(%d,%d) = %v after steady free-stream RK4 steps, want %v", i, j, got, fs.Rho)
			}
		}
	}
}

func TestRunStopsAtMaxItersWhenNeverConverging(t *testing.T) {
	fs := FreeStream{Rho: 1, U: 50, V: 0, P: 101325}
	solver := newTestSolver(t, 6, 6, fs, EulerAccuracy)
	solver.Tolerance = 0 // a ratio can never be strictly less than 0
	solver.MaxIters = 7
	if err := solver.Run(); err != nil {
		t.Fatalf("Run(): %v", err)
	}
	if solver.Iter != 7 {
		t.Errorf("Iter = %d, want 7 (MaxIters reached without converging)", solver.Iter)
	}
}

func TestSolverStaysPositiveUnderInteriorPerturbation(t *testing.T) {
	fs := FreeStream{Rho: 1, U: 300, V: 0, P: 101325}
	solver := newTestSolver(t, 8, 8, fs, EulerAccuracy)
	solver.State.SetP(3, 3, fs.P*1.2)
	solver.State.SetRho(3, 3, fs.Rho*1.1)
	for n := 0; n < 15; n++ {
		if err := solver.Step(); err != nil {
			t.Fatalf("Step() at iteration %d: %v", n, err)
		}
	}
	for i := 1; i <= 7; i++ {
		for j := 1; j <= 7; j++ {
			if !solver.State.Positive(i, j) {
				t.Errorf("cell (%d,%d) went non-physical: rho=%v p=%v", i, j, solver.State.Rho(i, j), solver.State.P(i, j))
			}
		}
	}
}

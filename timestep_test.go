package cflow2d

import "testing"

func TestParseTimeSteppingMethodRejectsUnknown(t *testing.T) {
	if _, err := ParseTimeSteppingMethod("x"); err == nil {
		t.Fatal("expected an error for an unknown time_stepping_method code")
	}
	if m, err := ParseTimeSteppingMethod("l"); err != nil || m != LocalTimeStepping {
		t.Errorf("ParseTimeSteppingMethod(l) = %v, %v", m, err)
	}
	if m, err := ParseTimeSteppingMethod("g"); err != nil || m != GlobalTimeStepping {
		t.Errorf("ParseTimeSteppingMethod(g) = %v, %v", m, err)
	}
}

func TestComputeTimeStepGlobalPositiveOverrideIsConstant(t *testing.T) {
	fs := FreeStream{Rho: 1, U: 10, V: 0, P: 101325}
	s := uniformState(5, 5, fs)
	g, _ := NewGeometry(uniformMesh(6, 6))
	dt := NewScalarField(5, 5)
	ComputeTimeStep(s, g, GlobalTimeStepping, 0.5, 0.01, dt)
	for i := 1; i <= 4; i++ {
		for j := 1; j <= 4; j++ {
			if got := dt.At(i, j); got != 0.01 {
				t.Fatalf("dt(%d,%d) = %v, want constant 0.01", i, j, got)
			}
		}
	}
}

func TestComputeTimeStepGlobalFallsBackToMinLocal(t *testing.T) {
	fs := FreeStream{Rho: 1, U: 10, V: 0, P: 101325}
	s := uniformState(5, 5, fs)
	g, _ := NewGeometry(uniformMesh(6, 6))
	local := NewScalarField(5, 5)
	ComputeTimeStep(s, g, LocalTimeStepping, 0.5, 0, local)

	global := NewScalarField(5, 5)
	ComputeTimeStep(s, g, GlobalTimeStepping, 0.5, 0, global)

	minLocal := local.At(1, 1)
	for i := 1; i <= 4; i++ {
		for j := 1; j <= 4; j++ {
			if local.At(i, j) < minLocal {
				minLocal = local.At(i, j)
			}
		}
	}
	for i := 1; i <= 4; i++ {
		for j := 1; j <= 4; j++ {
			if got := global.At(i, j); got != minLocal {
				t.Errorf("global(%d,%d) = %v, want broadcast min-local %v", i, j, got, minLocal)
			}
		}
	}
}

func TestComputeTimeStepLocalVariesWithSpeed(t *testing.T) {
	fs := FreeStream{Rho: 1, U: 10, V: 0, P: 101325}
	s := uniformState(5, 5, fs)
	g, _ := NewGeometry(uniformMesh(6, 6))
	s.SetU(2, 2, 500) // much faster cell should get a smaller Δt
	dt := NewScalarField(5, 5)
	ComputeTimeStep(s, g, LocalTimeStepping, 0.5, 0, dt)
	if dt.At(2, 2) >= dt.At(3, 3) {
		t.Errorf("fast cell dt(2,2)=%v should be smaller than slow cell dt(3,3)=%v", dt.At(2, 2), dt.At(3, 3))
	}
}

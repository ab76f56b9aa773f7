package cflow2d

import "testing"

func uniformState(imx, jmx int, fs FreeStream) *State {
	return NewState(imx, jmx, fs, testParams())
}

func TestNoneReconstructorOnUniformStateReproducesFreeStream(t *testing.T) {
	fs := FreeStream{Rho: 1, U: 10, V: 0, P: 101325}
	s := uniformState(5, 5, fs)
	f := NewFaces(5, 5)
	noneReconstructor{}.Reconstruct(s, f)
	l := f.XiLeft.At4(2, 2)
	want := [4]float64{fs.Rho, fs.U, fs.V, fs.P}
	if l != want {
		t.Errorf("XiLeft(2,2) = %v, want %v", l, want)
	}
}

func TestMusclReconstructorOnUniformStateReproducesFreeStream(t *testing.T) {
	fs := FreeStream{Rho: 1, U: 10, V: 0, P: 101325}
	s := uniformState(5, 5, fs)
	f := NewFaces(5, 5)
	musclReconstructor{}.Reconstruct(s, f)
	l := f.XiLeft.At4(2, 2)
	want := [4]float64{fs.Rho, fs.U, fs.V, fs.P}
	if l != want {
		t.Errorf("uniform flow should reconstruct with zero slope: XiLeft(2,2) = %v, want %v", l, want)
	}
}

func TestMinmodClipsOppositeSignedSlopes(t *testing.T) {
	if got := minmod(1, -1); got != 0 {
		t.Errorf("minmod(1,-1) = %v, want 0", got)
	}
	if got := minmod(2, 5); got != 2 {
		t.Errorf("minmod(2,5) = %v, want 2 (smaller magnitude, same sign)", got)
	}
	if got := minmod(-2, -5); got != -2 {
		t.Errorf("minmod(-2,-5) = %v, want -2", got)
	}
}

func TestReconstructNeverAliasesState(t *testing.T) {
	fs := FreeStream{Rho: 1, U: 10, V: 0, P: 101325}
	s := uniformState(5, 5, fs)
	f := NewFaces(5, 5)
	noneReconstructor{}.Reconstruct(s, f)
	f.XiLeft.Set(2, 2, IRho, 999)
	if s.Rho(1, 2) == 999 {
		t.Fatal("mutating a reconstructed face mutated the source state")
	}
}

package cflow2d

import "math"

// Faces holds the reconstructed left/right primitive states at every
// ξ-face and η-face, plus two scalar quantities derived from them: face
// sound speed on ξ-faces and face pressure on η-faces. The flux schemes
// recompute sound speed from the left/right states and do not read these
// scalars, and the bottom-wall pressure output (writePressureProfile)
// writes cell-centre pressure, not these face values.
type Faces struct {
	Imx, Jmx int

	XiLeft, XiRight   *VectorField // nc==4, meaningful for i∈[1,imx], j∈[1,jmx-1]
	EtaLeft, EtaRight *VectorField // nc==4, meaningful for i∈[1,imx-1], j∈[1,jmx]

	XiSoundLeft, XiSoundRight   *ScalarField
	EtaPressureLeft, EtaPressureRight *ScalarField
}

// NewFaces allocates a Faces set over the padded domain.
func NewFaces(imx, jmx int) *Faces {
	return &Faces{
		Imx: imx, Jmx: jmx,
		XiLeft: NewVectorField(imx, jmx, 4), XiRight: NewVectorField(imx, jmx, 4),
		EtaLeft: NewVectorField(imx, jmx, 4), EtaRight: NewVectorField(imx, jmx, 4),
		XiSoundLeft: NewScalarField(imx, jmx), XiSoundRight: NewScalarField(imx, jmx),
		EtaPressureLeft: NewScalarField(imx, jmx), EtaPressureRight: NewScalarField(imx, jmx),
	}
}

// Reconstructor produces left/right face primitive states from cell
// averages. Implementations are selected by the `interpolant` config
// directive (spec §4.2).
type Reconstructor interface {
	Name() string
	Reconstruct(s *State, f *Faces)
}

// NewReconstructor resolves a Reconstructor by config name. An unknown
// name is a fatal ConfigError (spec §6).
func NewReconstructor(name string) (Reconstructor, error) {
	switch name {
	case "none", "":
		return noneReconstructor{}, nil
	case "muscl":
		return musclReconstructor{}, nil
	default:
		return nil, newErr(ConfigError, "reconstruct", "NewReconstructor",
			"unknown interpolant \""+name+"\"", nil)
	}
}

// noneReconstructor is the first-order scheme: left = cell(i-1), right =
// cell(i) (spec §4.2 table).
type noneReconstructor struct{}

func (noneReconstructor) Name() string { return "none" }

func (noneReconstructor) Reconstruct(s *State, f *Faces) {
	for i := 1; i <= s.Imx; i++ {
		for j := 1; j <= s.Jmx-1; j++ {
			f.XiLeft.Set4(i, j, s.Q.At4(i-1, j))
			f.XiRight.Set4(i, j, s.Q.At4(i, j))
		}
	}
	for i := 1; i <= s.Imx-1; i++ {
		for j := 1; j <= s.Jmx; j++ {
			f.EtaLeft.Set4(i, j, s.Q.At4(i, j-1))
			f.EtaRight.Set4(i, j, s.Q.At4(i, j))
		}
	}
	finishFaces(s, f)
}

// musclReconstructor is a limited linear (MUSCL-class) extrapolation of
// cell averages to faces, using a minmod slope limiter per component.
type musclReconstructor struct{}

func (musclReconstructor) Name() string { return "muscl" }

func minmod(a, b float64) float64 {
	if a*b <= 0 {
		return 0
	}
	if math.Abs(a) < math.Abs(b) {
		return a
	}
	return b
}

func (musclReconstructor) Reconstruct(s *State, f *Faces) {
	for i := 1; i <= s.Imx; i++ {
		for j := 1; j <= s.Jmx-1; j++ {
			im1, ip0 := clampI(i-1, s.Imx), clampI(i, s.Imx)
			for k := 0; k < 4; k++ {
				qm1 := s.Q.At(clampI(im1-1, s.Imx), j, k)
				q0 := s.Q.At(im1, j, k)
				q1 := s.Q.At(ip0, j, k)
				q2 := s.Q.At(clampI(ip0+1, s.Imx), j, k)
				left := q0 + 0.5*minmod(q0-qm1, q1-q0)
				right := q1 - 0.5*minmod(q1-q0, q2-q1)
				f.XiLeft.Set(i, j, k, left)
				f.XiRight.Set(i, j, k, right)
			}
		}
	}
	for i := 1; i <= s.Imx-1; i++ {
		for j := 1; j <= s.Jmx; j++ {
			jm1, jp0 := clampJ(j-1, s.Jmx), clampJ(j, s.Jmx)
			for k := 0; k < 4; k++ {
				qm1 := s.Q.At(i, clampJ(jm1-1, s.Jmx), k)
				q0 := s.Q.At(i, jm1, k)
				q1 := s.Q.At(i, jp0, k)
				q2 := s.Q.At(i, clampJ(jp0+1, s.Jmx), k)
				left := q0 + 0.5*minmod(q0-qm1, q1-q0)
				right := q1 - 0.5*minmod(q1-q0, q2-q1)
				f.EtaLeft.Set(i, j, k, left)
				f.EtaRight.Set(i, j, k, right)
			}
		}
	}
	finishFaces(s, f)
}

func clampI(i, imx int) int {
	if i < 0 {
		return 0
	}
	if i > imx {
		return imx
	}
	return i
}

func clampJ(j, jmx int) int {
	if j < 0 {
		return 0
	}
	if j > jmx {
		return jmx
	}
	return j
}

// finishFaces derives the ξ-face sound speed and η-face pressure scalars
// from the just-reconstructed left/right states.
func finishFaces(s *State, f *Faces) {
	gamma := s.Params.Gamma
	for i := 1; i <= s.Imx; i++ {
		for j := 1; j <= s.Jmx-1; j++ {
			l := f.XiLeft.At4(i, j)
			r := f.XiRight.At4(i, j)
			f.XiSoundLeft.Set(i, j, math.Sqrt(gamma*l[IP]/l[IRho]))
			f.XiSoundRight.Set(i, j, math.Sqrt(gamma*r[IP]/r[IRho]))
		}
	}
	for i := 1; i <= s.Imx-1; i++ {
		for j := 1; j <= s.Jmx; j++ {
			l := f.EtaLeft.At4(i, j)
			r := f.EtaRight.At4(i, j)
			f.EtaPressureLeft.Set(i, j, l[IP])
			f.EtaPressureRight.Set(i, j, r[IP])
		}
	}
}

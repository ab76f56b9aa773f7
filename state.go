package cflow2d

// Component indices into the 4-component primitive/conservative vectors
// carried by VectorFields throughout the engine.
const (
	IRho = 0
	IU   = 1
	IV   = 2
	IP   = 3
)

// State is the cell-centered primitive field Q = (ρ, u, v, p) over the
// ghost-padded mesh, together with the free-stream reference and
// thermodynamic parameters it was set up with. Only the time integrator
// (Solver) mutates Q; everything else treats it as read-only within a
// sub-step.
type State struct {
	Imx, Jmx int
	Q        *VectorField // nc == 4, (ρ, u, v, p)

	FreeStream FreeStream
	Params     Params

	// supersonic is computed once at setup from FreeStream and Params.Gamma.
	supersonic bool
}

// NewState allocates Q over the padded domain and initializes every cell
// (including ghosts) to the free-stream state.
func NewState(imx, jmx int, fs FreeStream, p Params) *State {
	s := &State{
		Imx: imx, Jmx: jmx,
		Q:          NewVectorField(imx, jmx, 4),
		FreeStream: fs,
		Params:     p,
		supersonic: fs.Supersonic(p.Gamma),
	}
	for i := 0; i <= imx; i++ {
		for j := 0; j <= jmx; j++ {
			s.Q.Set4(i, j, [4]float64{fs.Rho, fs.U, fs.V, fs.P})
		}
	}
	return s
}

// Supersonic reports the free-stream supersonic flag computed at setup
// (spec §4.1).
func (s *State) Supersonic() bool { return s.supersonic }

func (s *State) Rho(i, j int) float64 { return s.Q.At(i, j, IRho) }
func (s *State) U(i, j int) float64   { return s.Q.At(i, j, IU) }
func (s *State) V(i, j int) float64   { return s.Q.At(i, j, IV) }
func (s *State) P(i, j int) float64   { return s.Q.At(i, j, IP) }

func (s *State) SetRho(i, j int, v float64) { s.Q.Set(i, j, IRho, v) }
func (s *State) SetU(i, j int, v float64)   { s.Q.Set(i, j, IU, v) }
func (s *State) SetV(i, j int, v float64)   { s.Q.Set(i, j, IV, v) }
func (s *State) SetP(i, j int, v float64)   { s.Q.Set(i, j, IP, v) }

// SoundSpeed returns a(i,j) = √(γ p/ρ) at a cell.
func (s *State) SoundSpeed(i, j int) float64 {
	return s.Params.SoundSpeed(s.Rho(i, j), s.P(i, j))
}

// Positive reports whether ρ>0 and p>0 at (i,j) — the invariant that must
// hold for every interior cell after any accepted update (spec §8
// property 1).
func (s *State) Positive(i, j int) bool {
	return s.Rho(i, j) > 0 && s.P(i, j) > 0
}

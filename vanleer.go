package cflow2d

// vanLeerScheme is the Van Leer flux-vector-splitting scheme (spec §4.3).
type vanLeerScheme struct{}

func (vanLeerScheme) Name() string { return "van_leer" }

func (vanLeerScheme) ComputeFluxes(s *State, faces *Faces, g *Geometry, F, G *VectorField) {
	gamma := s.Params.Gamma
	for i := 1; i <= s.Imx; i++ {
		for j := 1; j <= s.Jmx-1; j++ {
			nx, ny := g.XiNx.At(i, j), g.XiNy.At(i, j)
			sc := vanLeerSplit(faces.XiLeft.At4(i, j), faces.XiRight.At4(i, j), nx, ny, gamma)
			flux := assembleFlux(sc, nx, ny)
			area := g.XiArea.At(i, j)
			for k := 0; k < 4; k++ {
				F.Set(i, j, k, flux[k]*area)
			}
		}
	}
	for i := 1; i <= s.Imx-1; i++ {
		for j := 1; j <= s.Jmx; j++ {
			nx, ny := g.EtaNx.At(i, j), g.EtaNy.At(i, j)
			sc := vanLeerSplit(faces.EtaLeft.At4(i, j), faces.EtaRight.At4(i, j), nx, ny, gamma)
			flux := assembleFlux(sc, nx, ny)
			area := g.EtaArea.At(i, j)
			for k := 0; k < 4; k++ {
				G.Set(i, j, k, flux[k]*area)
			}
		}
	}
}

package cflow2d

import "gonum.org/v1/gonum/mat"

// ComputeResidue assembles the cell-wise flux divergence (spec §4.4):
//
//	Residue_k(i,j) = F_k(i+1,j) − F_k(i,j) + G_k(i,j+1) − G_k(i,j)
//
// for every interior cell and every conservative component k.
func ComputeResidue(s *State, F, G, R *VectorField) {
	for i := 1; i <= s.Imx-1; i++ {
		for j := 1; j <= s.Jmx-1; j++ {
			for k := 0; k < 4; k++ {
				v := F.At(i+1, j, k) - F.At(i, j, k) + G.At(i, j+1, k) - G.At(i, j, k)
				R.Set(i, j, k, v)
			}
		}
	}
}

// ResidueToPrimitive transforms the conservative residue R into the
// primitive-variable residue dE/dx via the chain-rule Jacobian (spec
// §4.4):
//
//	dE1 = R1
//	dE2 = (−u R1 + R2) / ρ
//	dE3 = (−v R1 + R3) / ρ
//	dE4 = ½(γ−1)(u²+v²) R1 − (γ−1) u R2 − (γ−1) v R3 + (γ−1) R4
func ResidueToPrimitive(s *State, R, dEdx *VectorField) {
	gamma := s.Params.Gamma
	for i := 1; i <= s.Imx-1; i++ {
		for j := 1; j <= s.Jmx-1; j++ {
			rho, u, v := s.Rho(i, j), s.U(i, j), s.V(i, j)
			r := R.At4(i, j)
			de1 := r[0]
			de2 := (-u*r[0] + r[1]) / rho
			de3 := (-v*r[0] + r[2]) / rho
			de4 := 0.5*(gamma-1)*(u*u+v*v)*r[0] - (gamma-1)*u*r[1] - (gamma-1)*v*r[2] + (gamma-1)*r[3]
			dEdx.Set4(i, j, [4]float64{de1, de2, de3, de4})
		}
	}
}

// PrimitiveToResidue applies the inverse transform, recovering the
// conservative residue from dE/dx at a single cell. It exists so the
// self-inverse property of the Jacobian (spec §8 property 6) can be
// tested directly: PrimitiveToResidue(ResidueToPrimitive(R)) == R.
func PrimitiveToResidue(rho, u, v, gamma float64, de [4]float64) [4]float64 {
	r1 := de[0]
	r2 := rho*de[1] + u*de[0]
	r3 := rho*de[2] + v*de[0]
	r4 := de[3]/(gamma-1) + 0.5*(u*u+v*v)*de[0] + rho*(u*de[1]+v*de[2])
	return [4]float64{r1, r2, r3, r4}
}

// JacobianMatrix builds the 4x4 ∂(primitive)/∂(conservative) Jacobian used
// by ResidueToPrimitive at a point (ρ, u, v, γ), as a dense gonum matrix.
// It is used by tests to check that it reproduces the ResidueToPrimitive
// formulas and that its inverse recovers the conservative residue (spec §8
// property 6).
func JacobianMatrix(rho, u, v, gamma float64) *mat.Dense {
	j := mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		-u / rho, 1 / rho, 0, 0,
		-v / rho, 0, 1 / rho, 0,
		0.5 * (gamma - 1) * (u*u + v*v), -(gamma - 1) * u, -(gamma - 1) * v, gamma - 1,
	})
	return j
}

// InvertJacobian returns the matrix inverse of j using gonum's LU
// factorization, used in tests to recover the conservative residue from
// JacobianMatrix·R.
func InvertJacobian(j *mat.Dense) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(j); err != nil {
		return nil, newErr(NumericalError, "residue", "InvertJacobian", "singular Jacobian", err)
	}
	return &inv, nil
}

package physics

import "math"

// Physical constants in SI units.
const (
	// Epsilon0 is the vacuum permittivity ε₀ in F/m.
	Epsilon0 = 8.854e-12

	// Mu0 is the vacuum permeability μ₀ = 4π×10⁻⁷ H/m.
	Mu0 = 4 * math.Pi * 1e-7
)

// K is the Coulomb constant 1/(4π·ε₀) in N·m²/C², about 8.98774×10⁹.
//
// It is evaluated in float64 arithmetic with one rounding per operation, not
// folded as an exact constant expression.
var K = coulombConstant(Epsilon0)

func coulombConstant(epsilon0 float64) float64 {
	return 1 / (4 * math.Pi * epsilon0)
}

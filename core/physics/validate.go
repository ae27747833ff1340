package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/leofalp/emcalc/core/vector"
)

// ErrNonPhysicalInput is returned by the validation helpers when an argument
// would drive an evaluator into a zero denominator or an unphysical regime.
var ErrNonPhysicalInput = errors.New("non-physical input")

// RequirePositive fails unless v > 0.
func RequirePositive(name string, v float64) error {
	if !(v > 0) {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrNonPhysicalInput, name, v)
	}
	return nil
}

// RequireNonZero fails when v == 0 or v is NaN.
func RequireNonZero(name string, v float64) error {
	if v == 0 || math.IsNaN(v) {
		return fmt.Errorf("%w: %s must be non-zero, got %v", ErrNonPhysicalInput, name, v)
	}
	return nil
}

// RequireDistinct fails when a and b are the same point, which would make the
// displacement between them the zero vector.
func RequireDistinct(nameA string, a vector.Vector3D, nameB string, b vector.Vector3D) error {
	if vector.Magnitude(vector.Subtract(a, b)) == 0 {
		return fmt.Errorf("%w: %s and %s must not coincide", ErrNonPhysicalInput, nameA, nameB)
	}
	return nil
}

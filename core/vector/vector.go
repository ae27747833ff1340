package vector

import (
	"encoding/json"
	"math"

	"github.com/leofalp/emcalc/internal/jsonfloat"
)

// Vector3D is a point or physical vector quantity in three dimensions.
// It is a plain value: every function in this package returns a new Vector3D
// and never modifies its arguments.
type Vector3D struct {
	X float64 `json:"x" jsonschema:"description=X component,required"`
	Y float64 `json:"y" jsonschema:"description=Y component,required"`
	Z float64 `json:"z" jsonschema:"description=Z component,required"`
}

// Zero is the zero vector.
var Zero = Vector3D{}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Magnitude returns the Euclidean length √(x²+y²+z²).
func Magnitude(v Vector3D) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v divided by its magnitude.
//
// The zero vector is not special-cased: dividing by a zero magnitude yields
// NaN components, and callers normalizing the displacement between two
// coincident points get that NaN vector back.
func Normalize(v Vector3D) Vector3D {
	mag := Magnitude(v)
	return Vector3D{
		X: v.X / mag,
		Y: v.Y / mag,
		Z: v.Z / mag,
	}
}

// Subtract returns a − b.
func Subtract(a, b Vector3D) Vector3D {
	return Vector3D{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Z: a.Z - b.Z,
	}
}

// Add returns a + b.
func Add(a, b Vector3D) Vector3D {
	return Vector3D{
		X: a.X + b.X,
		Y: a.Y + b.Y,
		Z: a.Z + b.Z,
	}
}

// CrossProduct returns the right-handed cross product a × b.
// It is anti-commutative: CrossProduct(a, b) == Scale(CrossProduct(b, a), -1).
func CrossProduct(a, b Vector3D) Vector3D {
	return Vector3D{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Scale returns v multiplied component-wise by s.
func Scale(v Vector3D, s float64) Vector3D {
	return Vector3D{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// IsFinite reports whether every component is neither NaN nor infinite.
func (v Vector3D) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// MarshalJSON encodes the vector as {"x":..,"y":..,"z":..}.
// Non-finite components are written as "NaN", "+Inf" or "-Inf".
func (v Vector3D) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 64)
	buf = append(buf, `{"x":`...)
	buf = jsonfloat.Append(buf, v.X)
	buf = append(buf, `,"y":`...)
	buf = jsonfloat.Append(buf, v.Y)
	buf = append(buf, `,"z":`...)
	buf = jsonfloat.Append(buf, v.Z)
	buf = append(buf, '}')
	return buf, nil
}

// UnmarshalJSON accepts plain numbers as well as the non-finite tokens
// written by MarshalJSON.
func (v *Vector3D) UnmarshalJSON(data []byte) error {
	var raw struct {
		X jsonfloat.Float `json:"x"`
		Y jsonfloat.Float `json:"y"`
		Z jsonfloat.Float `json:"z"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = Vector3D{X: float64(raw.X), Y: float64(raw.Y), Z: float64(raw.Z)}
	return nil
}

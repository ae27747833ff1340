package physics

import (
	"math"

	"github.com/leofalp/emcalc/core/vector"
)

// ElectricForce returns the Coulomb force exerted on charge q2 at p2 by
// charge q1 at p1: F = K·q1·q2/|r|² · r̂ with r = p2 − p1.
// Like charges repel, so the force points along +r̂ when q1·q2 > 0.
func ElectricForce(q1 float64, p1 vector.Vector3D, q2 float64, p2 vector.Vector3D) vector.Vector3D {
	r := vector.Subtract(p2, p1)
	rMagnitude := vector.Magnitude(r)
	rUnit := vector.Normalize(r)

	forceMagnitude := K * q1 * q2 / (rMagnitude * rMagnitude)
	return vector.Scale(rUnit, forceMagnitude)
}

// MagneticField returns the Biot-Savart contribution of the current element
// I·dl at the observation point: B = μ₀·I/(4π|r|²) · (dl × r̂), r = point − dl.
func MagneticField(current float64, dl, point vector.Vector3D) vector.Vector3D {
	r := vector.Subtract(point, dl)
	rMagnitude := vector.Magnitude(r)

	factor := (Mu0 * current) / (4 * math.Pi * rMagnitude * rMagnitude)
	return vector.Scale(vector.CrossProduct(dl, vector.Normalize(r)), factor)
}

// LorentzForce returns F = q·E + q·(v × B).
func LorentzForce(charge float64, velocity, electricField, magneticField vector.Vector3D) vector.Vector3D {
	magnetic := vector.Scale(vector.CrossProduct(velocity, magneticField), charge)
	electric := vector.Scale(electricField, charge)
	return vector.Add(electric, magnetic)
}

// InducedEMF returns Faraday's ε = −N·ΔΦ/Δt, evaluated as N·(−ΔΦ/Δt).
func InducedEMF(fluxChange, timeInterval, turns float64) float64 {
	return turns * (-fluxChange / timeInterval)
}

// CyclotronFrequency returns f = |q·B|/(2π·m) in hertz. The result is never
// negative for a positive mass.
func CyclotronFrequency(charge, magneticField, mass float64) float64 {
	return math.Abs(charge*magneticField) / (2 * math.Pi * mass)
}

// ElectricPotentialEnergy returns U = K·q1·q2/d.
func ElectricPotentialEnergy(q1, q2, distance float64) float64 {
	return K * q1 * q2 / distance
}

// MagneticFlux returns Φ = |B|·A·cos θ with θ in radians, measured between
// the field and the surface normal.
func MagneticFlux(magneticField vector.Vector3D, area, angle float64) float64 {
	return vector.Magnitude(magneticField) * area * math.Cos(angle)
}

// CapacitorEnergy returns U = ½·C·V².
func CapacitorEnergy(capacitance, voltage float64) float64 {
	return 0.5 * capacitance * voltage * voltage
}

// SolenoidInductance returns L = μ₀·N²·A/l.
func SolenoidInductance(turns, length, area float64) float64 {
	return (Mu0 * turns * turns * area) / length
}

// RCTimeConstant returns τ = R·C.
func RCTimeConstant(resistance, capacitance float64) float64 {
	return resistance * capacitance
}

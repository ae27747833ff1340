// Package physics evaluates closed-form electromagnetic laws over scalars and
// [vector.Vector3D] values.
//
// Each evaluator is an independent pure function: Coulomb's law
// ([ElectricForce]), the Biot-Savart law for a single current element
// ([MagneticField]), the Lorentz force, Faraday induction ([InducedEMF]),
// cyclotron frequency, electric potential energy, magnetic flux, capacitor
// energy, solenoid inductance and the RC time constant. None of them keeps
// state, performs I/O or blocks, so they are safe to call from any goroutine.
//
// # Degenerate inputs
//
// The evaluators never validate their arguments. A zero distance, time
// interval, mass or length propagates IEEE-754 infinity or NaN into the
// result instead of returning an error. Callers that want to refuse such
// inputs can use [RequirePositive], [RequireNonZero] and [RequireDistinct]
// before evaluating; those helpers report [ErrNonPhysicalInput].
package physics

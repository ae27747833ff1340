// Package electromagnetism registers the electromagnetism evaluators of
// [physics] as tools: Coulomb force, Biot-Savart field, Lorentz force,
// induced EMF, cyclotron frequency, potential energy, magnetic flux,
// capacitor energy, solenoid inductance and the RC time constant.
//
// Each tool takes the named arguments advertised in its parameter schema and
// returns its result together with a unit label, e.g.
//
//	{"force":{"x":0,"y":0,"z":-0.008987742437988217},"magnitude":0.008987742437988217,"unit":"Newtons"}
//	{"emf":-500,"unit":"Volts"}
//
// Degenerate inputs are evaluated as-is and may produce NaN or infinite
// results, which are encoded as the strings "NaN", "+Inf" and "-Inf".
// [WithStrictInputs] rejects them up front instead.
package electromagnetism

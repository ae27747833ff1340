package electromagnetism

import (
	"github.com/leofalp/emcalc/core/vector"
	"github.com/leofalp/emcalc/internal/jsonfloat"
	"github.com/leofalp/emcalc/internal/units"
)

// CoulombForceInput holds the arguments of coulomb_force.
type CoulombForceInput struct {
	Charge1   float64         `json:"charge1" jsonschema:"description=First charge in Coulombs"`
	Position1 vector.Vector3D `json:"position1" jsonschema:"description=Position of first charge"`
	Charge2   float64         `json:"charge2" jsonschema:"description=Second charge in Coulombs"`
	Position2 vector.Vector3D `json:"position2" jsonschema:"description=Position of second charge"`
}

// MagneticFieldInput holds the arguments of magnetic_field.
type MagneticFieldInput struct {
	Current          float64         `json:"current" jsonschema:"description=Current in Amperes"`
	WirePath         vector.Vector3D `json:"wirePath" jsonschema:"description=Current element vector"`
	ObservationPoint vector.Vector3D `json:"observationPoint" jsonschema:"description=Point where field is calculated"`
}

// LorentzForceInput holds the arguments of lorentz_force.
type LorentzForceInput struct {
	Charge        float64         `json:"charge" jsonschema:"description=Charge in Coulombs"`
	Velocity      vector.Vector3D `json:"velocity" jsonschema:"description=Particle velocity"`
	ElectricField vector.Vector3D `json:"electricField" jsonschema:"description=Electric field vector"`
	MagneticField vector.Vector3D `json:"magneticField" jsonschema:"description=Magnetic field vector"`
}

// InducedEMFInput holds the arguments of induced_emf. Turns defaults to 1.
type InducedEMFInput struct {
	FluxChange   float64  `json:"fluxChange" jsonschema:"description=Change in magnetic flux in Weber (Wb)"`
	TimeInterval float64  `json:"timeInterval" jsonschema:"description=Time interval in seconds"`
	Turns        *float64 `json:"turns,omitempty" jsonschema:"description=Number of turns in the coil (default 1)"`
}

// CyclotronFrequencyInput holds the arguments of cyclotron_frequency.
type CyclotronFrequencyInput struct {
	Charge        float64 `json:"charge" jsonschema:"description=Particle charge in Coulombs"`
	MagneticField float64 `json:"magneticField" jsonschema:"description=Magnetic field strength in Tesla"`
	Mass          float64 `json:"mass" jsonschema:"description=Particle mass in kilograms"`
}

// ElectricPotentialEnergyInput holds the arguments of electric_potential_energy.
type ElectricPotentialEnergyInput struct {
	Charge1  float64 `json:"charge1" jsonschema:"description=First charge in Coulombs"`
	Charge2  float64 `json:"charge2" jsonschema:"description=Second charge in Coulombs"`
	Distance float64 `json:"distance" jsonschema:"description=Distance between charges in meters"`
}

// MagneticFluxInput holds the arguments of magnetic_flux.
type MagneticFluxInput struct {
	MagneticField vector.Vector3D `json:"magneticField" jsonschema:"description=Magnetic field vector"`
	Area          float64         `json:"area" jsonschema:"description=Surface area in square meters"`
	Angle         float64         `json:"angle" jsonschema:"description=Angle between field and surface normal in radians"`
}

// CapacitorEnergyInput holds the arguments of capacitor_energy.
type CapacitorEnergyInput struct {
	Capacitance float64 `json:"capacitance" jsonschema:"description=Capacitance in Farads"`
	Voltage     float64 `json:"voltage" jsonschema:"description=Voltage across capacitor in Volts"`
}

// SolenoidInductanceInput holds the arguments of solenoid_inductance.
type SolenoidInductanceInput struct {
	Turns  float64 `json:"turns" jsonschema:"description=Number of turns in the solenoid"`
	Length float64 `json:"length" jsonschema:"description=Length of solenoid in meters"`
	Area   float64 `json:"area" jsonschema:"description=Cross-sectional area in square meters"`
}

// RCTimeConstantInput holds the arguments of rc_time_constant.
type RCTimeConstantInput struct {
	Resistance  float64 `json:"resistance" jsonschema:"description=Resistance in Ohms"`
	Capacitance float64 `json:"capacitance" jsonschema:"description=Capacitance in Farads"`
}

// ForceOutput is the result of coulomb_force and lorentz_force.
type ForceOutput struct {
	Force     vector.Vector3D `json:"force" jsonschema:"description=Force vector"`
	Magnitude jsonfloat.Float `json:"magnitude" jsonschema:"description=Magnitude of the force"`
	Unit      units.Unit      `json:"unit" jsonschema:"description=Unit of the force,enum=Newtons"`
}

// FieldOutput is the result of magnetic_field.
type FieldOutput struct {
	Field     vector.Vector3D `json:"field" jsonschema:"description=Magnetic field vector"`
	Magnitude jsonfloat.Float `json:"magnitude" jsonschema:"description=Magnitude of the field"`
	Unit      units.Unit      `json:"unit" jsonschema:"description=Unit of the field,enum=Tesla"`
}

// EMFOutput is the result of induced_emf.
type EMFOutput struct {
	EMF  jsonfloat.Float `json:"emf" jsonschema:"description=Induced electromotive force"`
	Unit units.Unit      `json:"unit" jsonschema:"description=Unit of the EMF,enum=Volts"`
}

// FrequencyOutput is the result of cyclotron_frequency.
type FrequencyOutput struct {
	Frequency jsonfloat.Float `json:"frequency" jsonschema:"description=Cyclotron frequency"`
	Unit      units.Unit      `json:"unit" jsonschema:"description=Unit of the frequency,enum=Hertz"`
}

// EnergyOutput is the result of electric_potential_energy and capacitor_energy.
type EnergyOutput struct {
	Energy jsonfloat.Float `json:"energy" jsonschema:"description=Energy"`
	Unit   units.Unit      `json:"unit" jsonschema:"description=Unit of the energy,enum=Joules"`
}

// FluxOutput is the result of magnetic_flux.
type FluxOutput struct {
	Flux jsonfloat.Float `json:"flux" jsonschema:"description=Magnetic flux"`
	Unit units.Unit      `json:"unit" jsonschema:"description=Unit of the flux,enum=Weber"`
}

// InductanceOutput is the result of solenoid_inductance.
type InductanceOutput struct {
	Inductance jsonfloat.Float `json:"inductance" jsonschema:"description=Self-inductance"`
	Unit       units.Unit      `json:"unit" jsonschema:"description=Unit of the inductance,enum=Henry"`
}

// TimeConstantOutput is the result of rc_time_constant.
type TimeConstantOutput struct {
	TimeConstant jsonfloat.Float `json:"timeConstant" jsonschema:"description=Time constant"`
	Unit         units.Unit      `json:"unit" jsonschema:"description=Unit of the time constant,enum=Seconds"`
}

func newForceOutput(f vector.Vector3D) ForceOutput {
	return ForceOutput{Force: f, Magnitude: jsonfloat.Float(vector.Magnitude(f)), Unit: units.Newtons}
}

func newFieldOutput(b vector.Vector3D) FieldOutput {
	return FieldOutput{Field: b, Magnitude: jsonfloat.Float(vector.Magnitude(b)), Unit: units.Tesla}
}

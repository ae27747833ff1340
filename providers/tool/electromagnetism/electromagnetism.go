package electromagnetism

import (
	"context"

	"github.com/leofalp/emcalc/core/physics"
	"github.com/leofalp/emcalc/internal/jsonfloat"
	"github.com/leofalp/emcalc/internal/units"
	"github.com/leofalp/emcalc/providers/tool"
)

// Operation names accepted by the dispatcher.
const (
	CoulombForce            = "coulomb_force"
	MagneticField           = "magnetic_field"
	LorentzForce            = "lorentz_force"
	InducedEMF              = "induced_emf"
	CyclotronFrequency      = "cyclotron_frequency"
	ElectricPotentialEnergy = "electric_potential_energy"
	MagneticFlux            = "magnetic_flux"
	CapacitorEnergy         = "capacitor_energy"
	SolenoidInductance      = "solenoid_inductance"
	RCTimeConstant          = "rc_time_constant"
)

// Operations returns the operation names in their canonical order.
func Operations() []string {
	return []string{
		CoulombForce,
		MagneticField,
		LorentzForce,
		InducedEMF,
		CyclotronFrequency,
		ElectricPotentialEnergy,
		MagneticFlux,
		CapacitorEnergy,
		SolenoidInductance,
		RCTimeConstant,
	}
}

// Option configures the tools built by [NewTools].
type Option func(*options)

type options struct {
	strict bool
}

// WithStrictInputs makes every tool reject inputs that would divide by zero
// or are otherwise unphysical (coincident positions, a zero time interval,
// a non-positive mass, distance or solenoid length) with
// physics.ErrNonPhysicalInput. By default such inputs are evaluated and the
// NaN or infinite result is returned.
func WithStrictInputs(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// NewTools returns one tool per operation, in the order of [Operations].
func NewTools(opts ...Option) []tool.GenericTool {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return []tool.GenericTool{
		tool.NewTool(CoulombForce, o.coulombForce,
			tool.WithDescription("Calculate the electrostatic force between two point charges using Coulomb's law"),
			tool.WithUnit(units.Newtons.String()),
		),
		tool.NewTool(MagneticField, o.magneticField,
			tool.WithDescription("Calculate the magnetic field due to a current element using the Biot-Savart law"),
			tool.WithUnit(units.Tesla.String()),
		),
		tool.NewTool(LorentzForce, o.lorentzForce,
			tool.WithDescription("Calculate the Lorentz force on a charged particle in electromagnetic fields"),
			tool.WithUnit(units.Newtons.String()),
		),
		tool.NewTool(InducedEMF, o.inducedEMF,
			tool.WithDescription("Calculate the induced EMF using Faraday's law of electromagnetic induction"),
			tool.WithUnit(units.Volts.String()),
		),
		tool.NewTool(CyclotronFrequency, o.cyclotronFrequency,
			tool.WithDescription("Calculate the cyclotron frequency for a charged particle in a magnetic field"),
			tool.WithUnit(units.Hertz.String()),
		),
		tool.NewTool(ElectricPotentialEnergy, o.electricPotentialEnergy,
			tool.WithDescription("Calculate the electric potential energy between two point charges"),
			tool.WithUnit(units.Joules.String()),
		),
		tool.NewTool(MagneticFlux, o.magneticFlux,
			tool.WithDescription("Calculate the magnetic flux through a surface"),
			tool.WithUnit(units.Weber.String()),
		),
		tool.NewTool(CapacitorEnergy, o.capacitorEnergy,
			tool.WithDescription("Calculate the energy stored in a capacitor"),
			tool.WithUnit(units.Joules.String()),
		),
		tool.NewTool(SolenoidInductance, o.solenoidInductance,
			tool.WithDescription("Calculate the inductance of a solenoid"),
			tool.WithUnit(units.Henry.String()),
		),
		tool.NewTool(RCTimeConstant, o.rcTimeConstant,
			tool.WithDescription("Calculate the time constant of an RC circuit"),
			tool.WithUnit(units.Seconds.String()),
		),
	}
}

// NewCatalog returns a catalog holding every tool from [NewTools].
func NewCatalog(opts ...Option) *tool.Catalog {
	return tool.NewCatalogWithTools(NewTools(opts...)...)
}

func (o *options) coulombForce(_ context.Context, in CoulombForceInput) (ForceOutput, error) {
	if o.strict {
		if err := physics.RequireDistinct("position1", in.Position1, "position2", in.Position2); err != nil {
			return ForceOutput{}, err
		}
	}
	return newForceOutput(physics.ElectricForce(in.Charge1, in.Position1, in.Charge2, in.Position2)), nil
}

func (o *options) magneticField(_ context.Context, in MagneticFieldInput) (FieldOutput, error) {
	if o.strict {
		if err := physics.RequireDistinct("wirePath", in.WirePath, "observationPoint", in.ObservationPoint); err != nil {
			return FieldOutput{}, err
		}
	}
	return newFieldOutput(physics.MagneticField(in.Current, in.WirePath, in.ObservationPoint)), nil
}

func (o *options) lorentzForce(_ context.Context, in LorentzForceInput) (ForceOutput, error) {
	return newForceOutput(physics.LorentzForce(in.Charge, in.Velocity, in.ElectricField, in.MagneticField)), nil
}

func (o *options) inducedEMF(_ context.Context, in InducedEMFInput) (EMFOutput, error) {
	if o.strict {
		if err := physics.RequireNonZero("timeInterval", in.TimeInterval); err != nil {
			return EMFOutput{}, err
		}
	}
	turns := 1.0
	if in.Turns != nil && *in.Turns != 0 {
		turns = *in.Turns
	}
	return EMFOutput{
		EMF:  jsonfloat.Float(physics.InducedEMF(in.FluxChange, in.TimeInterval, turns)),
		Unit: units.Volts,
	}, nil
}

func (o *options) cyclotronFrequency(_ context.Context, in CyclotronFrequencyInput) (FrequencyOutput, error) {
	if o.strict {
		if err := physics.RequirePositive("mass", in.Mass); err != nil {
			return FrequencyOutput{}, err
		}
	}
	return FrequencyOutput{
		Frequency: jsonfloat.Float(physics.CyclotronFrequency(in.Charge, in.MagneticField, in.Mass)),
		Unit:      units.Hertz,
	}, nil
}

func (o *options) electricPotentialEnergy(_ context.Context, in ElectricPotentialEnergyInput) (EnergyOutput, error) {
	if o.strict {
		if err := physics.RequirePositive("distance", in.Distance); err != nil {
			return EnergyOutput{}, err
		}
	}
	return EnergyOutput{
		Energy: jsonfloat.Float(physics.ElectricPotentialEnergy(in.Charge1, in.Charge2, in.Distance)),
		Unit:   units.Joules,
	}, nil
}

func (o *options) magneticFlux(_ context.Context, in MagneticFluxInput) (FluxOutput, error) {
	return FluxOutput{
		Flux: jsonfloat.Float(physics.MagneticFlux(in.MagneticField, in.Area, in.Angle)),
		Unit: units.Weber,
	}, nil
}

func (o *options) capacitorEnergy(_ context.Context, in CapacitorEnergyInput) (EnergyOutput, error) {
	return EnergyOutput{
		Energy: jsonfloat.Float(physics.CapacitorEnergy(in.Capacitance, in.Voltage)),
		Unit:   units.Joules,
	}, nil
}

func (o *options) solenoidInductance(_ context.Context, in SolenoidInductanceInput) (InductanceOutput, error) {
	if o.strict {
		if err := physics.RequirePositive("length", in.Length); err != nil {
			return InductanceOutput{}, err
		}
	}
	return InductanceOutput{
		Inductance: jsonfloat.Float(physics.SolenoidInductance(in.Turns, in.Length, in.Area)),
		Unit:       units.Henry,
	}, nil
}

func (o *options) rcTimeConstant(_ context.Context, in RCTimeConstantInput) (TimeConstantOutput, error) {
	return TimeConstantOutput{
		TimeConstant: jsonfloat.Float(physics.RCTimeConstant(in.Resistance, in.Capacitance)),
		Unit:         units.Seconds,
	}, nil
}

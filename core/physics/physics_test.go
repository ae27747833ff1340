package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leofalp/emcalc/core/vector"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, 8.854e-12, Epsilon0)
	assert.InDelta(t, 1.2566370614359173e-6, Mu0, 1e-20)
	assert.InEpsilon(t, 8.9875e9, K, 1e-4)
}

func TestCoulombConstant_FloatArithmetic(t *testing.T) {
	epsilon0 := Epsilon0
	assert.Equal(t, 1/(4*math.Pi*epsilon0), K)
	assert.Equal(t, 8.987742437988218e9, K)
}

// Two +1 µC charges one metre apart repel along +x.
func TestElectricForce_LikeChargesRepel(t *testing.T) {
	force := ElectricForce(1e-6, vector.New(0, 0, 0), 1e-6, vector.New(1, 0, 0))

	assert.InEpsilon(t, 0.0089875, vector.Magnitude(force), 1e-4)
	assert.Equal(t, K*1e-6*1e-6, force.X)
	assert.Greater(t, force.X, 0.0)
	assert.Equal(t, 0.0, force.Y)
	assert.Equal(t, 0.0, force.Z)

	direction := vector.Normalize(force)
	assert.Equal(t, vector.New(1, 0, 0), direction)
}

func TestElectricForce_Attractive(t *testing.T) {
	force := ElectricForce(1e-6, vector.New(0, 0, 0), -1e-6, vector.New(0, 2, 0))
	assert.Less(t, force.Y, 0.0, "opposite charges attract charge 2 back toward charge 1")
	assert.InDelta(t, K*1e-12/4, vector.Magnitude(force), 1e-12)
}

func TestElectricForce_SwapIsOpposite(t *testing.T) {
	cases := []struct {
		q1, q2 float64
		p1, p2 vector.Vector3D
	}{
		{1e-6, 2e-6, vector.New(0, 0, 0), vector.New(1, 2, 3)},
		{-3e-9, 5e-9, vector.New(-1, 4, 0.5), vector.New(2, -2, 7)},
		{1, 1, vector.New(10, 10, 10), vector.New(10, 10, 11)},
	}

	for _, tc := range cases {
		forward := ElectricForce(tc.q1, tc.p1, tc.q2, tc.p2)
		backward := ElectricForce(tc.q2, tc.p2, tc.q1, tc.p1)

		mag := vector.Magnitude(forward)
		assert.InDelta(t, mag, vector.Magnitude(backward), mag*1e-12)

		sum := vector.Add(forward, backward)
		assert.InDelta(t, 0, vector.Magnitude(sum), mag*1e-12)
	}
}

func TestElectricForce_CoincidentPositionsIsNaN(t *testing.T) {
	p := vector.New(1, 1, 1)
	force := ElectricForce(1, p, 1, p)
	assert.False(t, force.IsFinite())
	assert.True(t, math.IsNaN(force.X))
}

func TestMagneticField(t *testing.T) {
	field := MagneticField(1, vector.New(0, 0, 1), vector.New(1, 0, 1))

	assert.Equal(t, 0.0, field.X)
	assert.InDelta(t, 1e-7, field.Y, 1e-20)
	assert.Equal(t, 0.0, field.Z)
}

func TestMagneticField_ScalesWithCurrent(t *testing.T) {
	dl := vector.New(0, 0.1, 0)
	point := vector.New(0.3, 0.5, -0.2)

	one := MagneticField(1, dl, point)
	three := MagneticField(3, dl, point)
	assert.InDelta(t, 3*vector.Magnitude(one), vector.Magnitude(three), 1e-20)
}

func TestLorentzForce(t *testing.T) {
	force := LorentzForce(2, vector.New(1, 0, 0), vector.New(0, 0, 1), vector.New(0, 1, 0))
	assert.Equal(t, vector.New(0, 0, 4), force)
}

func TestLorentzForce_ElectricOnly(t *testing.T) {
	force := LorentzForce(-1.5, vector.Zero, vector.New(2, -4, 0), vector.New(7, 8, 9))
	assert.Equal(t, vector.New(-3, 6, 0), force)
}

func TestInducedEMF(t *testing.T) {
	assert.InDelta(t, -0.4, InducedEMF(0.02, 0.5, 10), 1e-15)
	assert.InDelta(t, -0.04, InducedEMF(0.02, 0.5, 1), 1e-15)
}

func TestCyclotronFrequency(t *testing.T) {
	assert.InDelta(t, 0.6366, CyclotronFrequency(1, 2, 0.5), 1e-4)
	assert.Equal(t, CyclotronFrequency(1, 2, 0.5), CyclotronFrequency(-1, 2, 0.5))
}

func TestCyclotronFrequency_NonIncreasingInMass(t *testing.T) {
	previous := math.Inf(1)
	for mass := 1e-31; mass < 1e3; mass *= 3.7 {
		f := CyclotronFrequency(1.602e-19, 1.5, mass)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, previous, "mass %g", mass)
		previous = f
	}
}

func TestElectricPotentialEnergy(t *testing.T) {
	assert.InDelta(t, K*2e-12/0.5, ElectricPotentialEnergy(1e-6, 2e-6, 0.5), 1e-15)
}

// A zero distance is not an error: the result follows IEEE-754.
func TestElectricPotentialEnergy_ZeroDistance(t *testing.T) {
	assert.True(t, math.IsInf(ElectricPotentialEnergy(1e-6, 1e-6, 0), 1))
	assert.True(t, math.IsInf(ElectricPotentialEnergy(1e-6, -1e-6, 0), -1))
	assert.True(t, math.IsNaN(ElectricPotentialEnergy(0, 1e-6, 0)))
}

func TestMagneticFlux(t *testing.T) {
	field := vector.New(3, 4, 0)
	assert.Equal(t, 10.0, MagneticFlux(field, 2, 0))
	assert.InDelta(t, 0, MagneticFlux(field, 2, math.Pi/2), 1e-14)
	assert.InDelta(t, -10, MagneticFlux(field, 2, math.Pi), 1e-14)
}

func TestCapacitorEnergy(t *testing.T) {
	assert.Equal(t, 9.0, CapacitorEnergy(2, 3))
}

func TestSolenoidInductance(t *testing.T) {
	assert.InDelta(t, Mu0*200, SolenoidInductance(100, 0.5, 0.01), 1e-18)
	assert.True(t, math.IsInf(SolenoidInductance(100, 0, 0.01), 1))
}

func TestRCTimeConstant(t *testing.T) {
	assert.Equal(t, 1.0, RCTimeConstant(1000, 0.001))
}

func TestZeroDenominators(t *testing.T) {
	assert.True(t, math.IsInf(InducedEMF(0.02, 0, 1), -1))
	assert.True(t, math.IsInf(CyclotronFrequency(1, 2, 0), 1))
	assert.True(t, math.IsNaN(CyclotronFrequency(0, 2, 0)))
}

func TestValidationHelpers(t *testing.T) {
	require.NoError(t, RequirePositive("mass", 1))
	assert.ErrorIs(t, RequirePositive("mass", 0), ErrNonPhysicalInput)
	assert.ErrorIs(t, RequirePositive("mass", -2), ErrNonPhysicalInput)
	assert.ErrorIs(t, RequirePositive("mass", math.NaN()), ErrNonPhysicalInput)

	require.NoError(t, RequireNonZero("timeInterval", -0.5))
	assert.ErrorIs(t, RequireNonZero("timeInterval", 0), ErrNonPhysicalInput)

	a := vector.New(1, 2, 3)
	require.NoError(t, RequireDistinct("position1", a, "position2", vector.New(1, 2, 4)))
	err := RequireDistinct("position1", a, "position2", a)
	assert.ErrorIs(t, err, ErrNonPhysicalInput)
	assert.Contains(t, err.Error(), "position1")
}

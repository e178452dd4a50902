//nolint:funlen,lll // ok for tests
package vehicle

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleCar(t *testing.T, fuel string, hybrid bool) *Car {
	t.Helper()
	c, err := NewCar(NewRegistry(), "sample-car", dec("50"), dec(fuel), hybrid)
	require.NoError(t, err)
	return c
}

func sampleMoto(t *testing.T, fuel string, displacement int) *Motorcycle {
	t.Helper()
	m, err := NewMotorcycle(NewRegistry(), "sample-moto", dec("30"), dec(fuel), displacement)
	require.NoError(t, err)
	return m
}

func TestCar_Autonomy(t *testing.T) {
	assert.True(t, dec("200").Equal(sampleCar(t, "20", false).Autonomy()))
	assert.True(t, dec("300").Equal(sampleCar(t, "20", true).Autonomy()))
}

func TestMotorcycle_Autonomy(t *testing.T) {
	// 1000 cc is the reference displacement: 20 km/l
	assert.True(t, dec("200").Equal(sampleMoto(t, "10", 1000).Autonomy()))
	// above reference stays at the reference efficiency
	assert.True(t, dec("200").Equal(sampleMoto(t, "10", 1200).Autonomy()))
	// 500 cc degrades to 19.5 km/l
	assert.True(t, dec("195").Equal(sampleMoto(t, "10", 500).Autonomy()))
	// 125 cc degrades to 19.13 km/l (rounded)
	assert.True(t, dec("191.3").Equal(sampleMoto(t, "10", 125).Autonomy()))
}

func TestTravel_WithinAutonomy(t *testing.T) {
	c := sampleCar(t, "20", false)

	left := c.Travel(dec("50"))

	assert.True(t, left.IsZero())
	assert.True(t, dec("15").Equal(c.Fuel()), "fuel %s", c.Fuel())
	assert.True(t, dec("50").Equal(c.Distance()))
}

func TestTravel_BeyondAutonomy(t *testing.T) {
	c := sampleCar(t, "2", false) // autonomy 20

	left := c.Travel(dec("30"))

	assert.True(t, dec("10").Equal(left), "unconsumed %s", left)
	assert.True(t, c.Fuel().IsZero())
	assert.True(t, dec("20").Equal(c.Distance()))
}

func TestTravel_ExactAutonomyDrainsTank(t *testing.T) {
	c := sampleCar(t, "2", false)

	left := c.Travel(dec("20"))

	assert.True(t, left.IsZero())
	assert.True(t, c.Fuel().IsZero())
	assert.True(t, dec("20").Equal(c.Distance()))
}

func TestTravel_ZeroDistance(t *testing.T) {
	c := sampleCar(t, "20", false)

	assert.True(t, c.Travel(decimal.Zero).IsZero())
	assert.True(t, dec("20").Equal(c.Fuel()))
	assert.True(t, c.Distance().IsZero())

	empty := sampleMoto(t, "0", 1000)
	assert.True(t, empty.Travel(decimal.Zero).IsZero())
	assert.True(t, empty.Fuel().IsZero())
}

func TestTravel_RoundsToTwoDecimals(t *testing.T) {
	c := sampleCar(t, "20", false)

	left := c.Travel(dec("33.33"))

	assert.True(t, left.IsZero())
	// 20 - 33.33/10 = 16.667 -> 16.67
	assert.True(t, dec("16.67").Equal(c.Fuel()), "fuel %s", c.Fuel())
	assert.True(t, dec("33.33").Equal(c.Distance()))
}

func TestTravel_FuelBoundsAndOdometerMonotonic(t *testing.T) {
	m := sampleMoto(t, "3", 500)
	prev := m.Distance()
	for _, d := range []string{"12.5", "0", "40", "7.77", "200", "1.01"} {
		m.Travel(dec(d))
		assert.True(t, m.Fuel().Sign() >= 0, "fuel went negative")
		assert.True(t, m.Fuel().LessThanOrEqual(m.Capacity()))
		assert.True(t, m.Distance().GreaterThanOrEqual(prev), "odometer moved backwards")
		prev = m.Distance()
		m.Refuel(dec("1.5"))
	}
}

func TestRefuel_FillToCapacity(t *testing.T) {
	c := sampleCar(t, "15", false)

	added := c.Refuel(decimal.Zero)

	assert.True(t, dec("35").Equal(added))
	assert.True(t, c.Capacity().Equal(c.Fuel()))

	// a full tank legitimately adds zero
	assert.True(t, c.Refuel(decimal.Zero).IsZero())
	assert.True(t, c.Refuel(dec("10")).IsZero())
}

func TestRefuel_NegativeAmountMeansFill(t *testing.T) {
	c := sampleCar(t, "15", false)

	added := c.Refuel(dec("-5"))

	assert.True(t, dec("35").Equal(added))
	assert.True(t, c.Capacity().Equal(c.Fuel()))
}

func TestRefuel_ClampsAtCapacity(t *testing.T) {
	c := sampleCar(t, "15", false)

	assert.True(t, dec("10").Equal(c.Refuel(dec("10"))))
	assert.True(t, dec("25").Equal(c.Fuel()))

	// only 25 l fit, the rest is discarded
	assert.True(t, dec("25").Equal(c.Refuel(dec("100"))))
	assert.True(t, c.Capacity().Equal(c.Fuel()))
}

func TestPerformManeuver_CarSkid(t *testing.T) {
	std := sampleCar(t, "20", false) // autonomy 200
	remaining := std.PerformManeuver()
	// 7.5 / 200 = 0.0375 -> 0.04
	assert.True(t, dec("19.96").Equal(remaining), "fuel %s", remaining)

	hyb := sampleCar(t, "20", true) // autonomy 300
	remaining = hyb.PerformManeuver()
	// 6.25 / 300 = 0.0208… -> 0.02
	assert.True(t, dec("19.98").Equal(remaining), "fuel %s", remaining)
}

func TestPerformManeuver_CarEmptyTank(t *testing.T) {
	c := sampleCar(t, "0", false)

	assert.True(t, c.PerformManeuver().IsZero())
	assert.True(t, c.Fuel().IsZero())
}

func TestPerformManeuver_MotorcycleWheelie(t *testing.T) {
	ref := sampleMoto(t, "10", 1000)
	// 6.5 / 20 = 0.325 -> 0.33
	assert.True(t, dec("9.67").Equal(ref.PerformManeuver()))

	small := sampleMoto(t, "10", 500)
	// 6.5 / 19.5 = 0.3333… -> 0.33
	assert.True(t, dec("9.67").Equal(small.PerformManeuver()))
}

func TestPerformManeuver_ClampsAtEmpty(t *testing.T) {
	m := sampleMoto(t, "0.1", 1000)

	assert.True(t, m.PerformManeuver().IsZero())
	assert.True(t, m.Fuel().IsZero())
}

func TestNewVehicle_Validation(t *testing.T) {
	reg := NewRegistry()

	_, err := NewCar(reg, "a", decimal.Zero, decimal.Zero, false)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = NewCar(reg, "a", dec("-3"), decimal.Zero, false)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = NewCar(reg, "a", dec("50"), dec("-1"), false)
	assert.ErrorIs(t, err, ErrNegativeFuel)

	_, err = NewCar(reg, "a", dec("50"), dec("51"), false)
	assert.ErrorIs(t, err, ErrFuelOverflow)

	_, err = NewCar(reg, "a", dec("50"), dec("25"), false,
		WithInitialDistance(dec("-1")))
	assert.ErrorIs(t, err, ErrNegativeDistance)

	_, err = NewMotorcycle(reg, "a", dec("30"), dec("15"), 0)
	assert.ErrorIs(t, err, ErrInvalidDisplacement)

	// none of the failed constructions may have claimed the name
	_, err = NewCar(reg, "a", dec("50"), dec("25"), false)
	assert.NoError(t, err)
}

func TestRegistry_RejectsDuplicateNames(t *testing.T) {
	reg := NewRegistry()

	_, err := NewCar(reg, "rayo", dec("50"), dec("25"), false)
	require.NoError(t, err)

	// second construction with the same name fails, even across kinds
	_, err = NewMotorcycle(reg, "rayo", dec("30"), dec("15"), 500)
	assert.ErrorIs(t, err, ErrDuplicateName)

	// a fresh registry starts from a clean slate
	_, err = NewMotorcycle(NewRegistry(), "rayo", dec("30"), dec("15"), 500)
	assert.NoError(t, err)
}

func TestWithInitialDistance(t *testing.T) {
	c, err := NewCar(NewRegistry(), "veteran", dec("50"), dec("25"), false,
		WithInitialDistance(dec("123.45")))
	require.NoError(t, err)
	assert.True(t, dec("123.45").Equal(c.Distance()))
}

package vehicle

import "github.com/shopspring/decimal"

var (
	carKmPerLiter       = decimal.NewFromInt(10)
	carHybridKmPerLiter = decimal.NewFromInt(15)
	skidCost            = decimal.RequireFromString("7.5")
	skidCostHybrid      = decimal.RequireFromString("6.25")
)

// Car is a combustion car. The hybrid drive stretches each liter further and
// makes its skid cheaper.
type Car struct {
	Vehicle
	hybrid bool
}

//nolint:whitespace // can't make the linters happy
func NewCar(
	reg *Registry,
	name string,
	capacity, fuel decimal.Decimal,
	hybrid bool,
	opts ...Option,
) (*Car, error) {
	base, err := newVehicle(reg, name, capacity, fuel, opts...)
	if err != nil {
		return nil, err
	}
	return &Car{Vehicle: base, hybrid: hybrid}, nil
}

func (c *Car) Hybrid() bool { return c.hybrid }

func (c *Car) kmPerLiter() decimal.Decimal {
	if c.hybrid {
		return carHybridKmPerLiter
	}
	return carKmPerLiter
}

// Autonomy is the distance the car covers before the tank runs dry.
func (c *Car) Autonomy() decimal.Decimal {
	return c.autonomy(c.kmPerLiter())
}

// Travel advances the car and returns the distance left uncovered when the
// fuel ran out (zero when the full distance fit into the current autonomy).
func (c *Car) Travel(dist decimal.Decimal) decimal.Decimal {
	return c.travel(dist, c.kmPerLiter())
}

func (c *Car) ManeuverName() string { return "skid" }

// PerformManeuver executes a skid and returns the fuel left. The cost scales
// inversely with the current autonomy; with an empty tank there is nothing
// left to drain.
func (c *Car) PerformManeuver() decimal.Decimal {
	autonomy := c.Autonomy()
	if autonomy.IsZero() {
		return c.fuel
	}
	cost := skidCost
	if c.hybrid {
		cost = skidCostHybrid
	}
	return c.drainFuel(cost.Div(autonomy).Round(2))
}

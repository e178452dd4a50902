package vehicle

import "github.com/shopspring/decimal"

var (
	motoKmPerLiter  = decimal.NewFromInt(20)
	motoReferenceCC = decimal.NewFromInt(1000)
	wheelieCost     = decimal.RequireFromString("6.5")
)

// Motorcycle gets its fuel efficiency from the engine displacement: the
// 1000 cc reference engine does 20 km/l, smaller engines degrade linearly.
type Motorcycle struct {
	Vehicle
	displacement int
}

//nolint:whitespace // can't make the linters happy
func NewMotorcycle(
	reg *Registry,
	name string,
	capacity, fuel decimal.Decimal,
	displacement int,
	opts ...Option,
) (*Motorcycle, error) {
	if displacement <= 0 {
		return nil, ErrInvalidDisplacement
	}
	base, err := newVehicle(reg, name, capacity, fuel, opts...)
	if err != nil {
		return nil, err
	}
	return &Motorcycle{Vehicle: base, displacement: displacement}, nil
}

func (m *Motorcycle) Displacement() int { return m.displacement }

func (m *Motorcycle) kmPerLiter() decimal.Decimal {
	cc := decimal.NewFromInt(int64(m.displacement))
	if cc.GreaterThanOrEqual(motoReferenceCC) {
		return motoKmPerLiter
	}
	return motoKmPerLiter.Sub(motoReferenceCC.Sub(cc).Div(motoReferenceCC)).Round(2)
}

func (m *Motorcycle) Autonomy() decimal.Decimal {
	return m.autonomy(m.kmPerLiter())
}

func (m *Motorcycle) Travel(dist decimal.Decimal) decimal.Decimal {
	return m.travel(dist, m.kmPerLiter())
}

func (m *Motorcycle) ManeuverName() string { return "wheelie" }

// PerformManeuver executes a wheelie and returns the fuel left. The cost is
// divided by the per-displacement efficiency, not by the full autonomy.
func (m *Motorcycle) PerformManeuver() decimal.Decimal {
	return m.drainFuel(wheelieCost.Div(m.kmPerLiter()).Round(2))
}

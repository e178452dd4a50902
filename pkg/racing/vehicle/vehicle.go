package vehicle

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCapacity     = errors.New("fuel capacity must be positive")
	ErrNegativeFuel        = errors.New("initial fuel must not be negative")
	ErrFuelOverflow        = errors.New("initial fuel exceeds capacity")
	ErrNegativeDistance    = errors.New("initial distance must not be negative")
	ErrInvalidDisplacement = errors.New("displacement must be positive")
	ErrDuplicateName       = errors.New("vehicle name already taken")
)

// Registry hands out vehicle names and rejects duplicates. Its scope is up to
// the caller; the simulation CLI keeps a single one per process, tests create
// a fresh one per case.
type Registry struct {
	used map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{used: make(map[string]struct{})}
}

func (r *Registry) claim(name string) error {
	if _, ok := r.used[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	r.used[name] = struct{}{}
	return nil
}

// Vehicle holds the state shared by all vehicle kinds. The concrete kinds
// embed it and contribute their efficiency formula and maneuver.
type Vehicle struct {
	name        string
	capacity    decimal.Decimal
	fuel        decimal.Decimal
	distance    decimal.Decimal
	refuelStops int
}

type Option func(*Vehicle)

// WithInitialDistance starts the vehicle with distance already on the clock.
func WithInitialDistance(dist decimal.Decimal) Option {
	return func(v *Vehicle) { v.distance = dist }
}

//nolint:whitespace // can't make the linters happy
func newVehicle(
	reg *Registry,
	name string,
	capacity, fuel decimal.Decimal,
	opts ...Option,
) (Vehicle, error) {
	v := Vehicle{
		name:     name,
		capacity: capacity.Round(2),
		fuel:     fuel.Round(2),
		distance: decimal.Zero,
	}
	for _, opt := range opts {
		opt(&v)
	}
	v.distance = v.distance.Round(2)
	if v.capacity.Sign() <= 0 {
		return Vehicle{}, fmt.Errorf("%w: %s", ErrInvalidCapacity, capacity)
	}
	if v.fuel.Sign() < 0 {
		return Vehicle{}, fmt.Errorf("%w: %s", ErrNegativeFuel, fuel)
	}
	if v.fuel.GreaterThan(v.capacity) {
		return Vehicle{}, fmt.Errorf("%w: %s > %s", ErrFuelOverflow, fuel, capacity)
	}
	if v.distance.Sign() < 0 {
		return Vehicle{}, fmt.Errorf("%w: %s", ErrNegativeDistance, v.distance)
	}
	if err := reg.claim(name); err != nil {
		return Vehicle{}, err
	}
	return v, nil
}

func (v *Vehicle) Name() string              { return v.name }
func (v *Vehicle) Capacity() decimal.Decimal { return v.capacity }
func (v *Vehicle) Fuel() decimal.Decimal     { return v.fuel }
func (v *Vehicle) Distance() decimal.Decimal { return v.distance }
func (v *Vehicle) RefuelStops() int          { return v.refuelStops }

// RecordRefuelStop counts one refueling stop. The race engine calls this for
// every refuel it orders during a segment.
func (v *Vehicle) RecordRefuelStop() { v.refuelStops++ }

// Refuel adds fuel and returns the amount actually taken on board. A
// non-positive amount means fill to capacity; anything beyond capacity is
// discarded, so a full tank legitimately adds zero.
func (v *Vehicle) Refuel(amount decimal.Decimal) decimal.Decimal {
	free := v.capacity.Sub(v.fuel)
	added := free
	if amount.IsPositive() {
		added = decimal.Min(amount, free)
	}
	added = added.Round(2)
	v.fuel = v.fuel.Add(added)
	return added
}

func (v *Vehicle) autonomy(kmPerLiter decimal.Decimal) decimal.Decimal {
	return v.fuel.Mul(kmPerLiter).Round(2)
}

// travel advances the vehicle by dist at the given efficiency and returns the
// distance that could not be covered before the tank ran dry. Fuel never goes
// negative and the odometer only moves forward.
func (v *Vehicle) travel(dist, kmPerLiter decimal.Decimal) decimal.Decimal {
	autonomy := v.autonomy(kmPerLiter)
	if dist.GreaterThanOrEqual(autonomy) {
		v.fuel = decimal.Zero
		v.distance = v.distance.Add(autonomy).Round(2)
		return dist.Sub(autonomy).Round(2)
	}
	v.fuel = v.fuel.Sub(dist.Div(kmPerLiter)).Round(2)
	v.distance = v.distance.Add(dist).Round(2)
	return decimal.Zero
}

// drainFuel applies a maneuver's fuel cost, flooring at an empty tank, and
// returns the fuel left.
func (v *Vehicle) drainFuel(cost decimal.Decimal) decimal.Decimal {
	v.fuel = decimal.Max(decimal.Zero, v.fuel.Sub(cost)).Round(2)
	return v.fuel
}

package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/sebasdelalv340/carrera-go/log"
)

// Participant is the capability surface the engine needs from a vehicle. The
// concrete kinds live in pkg/racing/vehicle.
type Participant interface {
	Name() string
	Distance() decimal.Decimal
	RefuelStops() int
	RecordRefuelStop()
	Autonomy() decimal.Decimal
	Travel(dist decimal.Decimal) decimal.Decimal
	Refuel(amount decimal.Decimal) decimal.Decimal
	PerformManeuver() decimal.Decimal
	ManeuverName() string
}

// State models the race lifecycle. Finished is terminal.
type State int

const (
	NotStarted State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrEmptyName      = errors.New("race name must not be empty")
	ErrTargetTooShort = errors.New("target distance below minimum")
	ErrNoParticipants = errors.New("race needs at least one participant")
	ErrDuplicateEntry = errors.New("duplicate participant name")
	ErrAlreadyStarted = errors.New("race already started")
)

var (
	// MinTargetDistance is the shortest race that may be constructed.
	MinTargetDistance = decimal.NewFromInt(1000)
	segmentLength     = decimal.NewFromInt(20)
)

// Engine owns the whole race state: participants, standings, action log and
// the simulation loop. It is not safe for concurrent use; a race runs to
// completion before its results are read.
type Engine struct {
	name         string
	target       decimal.Decimal
	participants []Participant
	standings    map[string]decimal.Decimal
	actions      map[string][]string
	state        State
	winner       Participant
	source       Source
	log          *log.Logger
}

type Option func(*Engine)

// WithSource replaces the seeded default random source, mainly so tests can
// script the vehicle and quota draws.
func WithSource(s Source) Option {
	return func(e *Engine) { e.source = s }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

//nolint:whitespace // can't make the linters happy
func New(
	name string,
	target decimal.Decimal,
	participants []Participant,
	opts ...Option,
) (*Engine, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if target.LessThan(MinTargetDistance) {
		return nil, fmt.Errorf("%w: %s < %s", ErrTargetTooShort, target, MinTargetDistance)
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	names := lo.Map(participants, func(p Participant, _ int) string { return p.Name() })
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateEntry, dups)
	}
	e := &Engine{
		name:         name,
		target:       target.Round(2),
		participants: participants,
		standings:    make(map[string]decimal.Decimal),
		actions:      make(map[string][]string),
		state:        NotStarted,
	}
	// every participant gets its standings and action-log entry up front
	for _, p := range participants {
		e.standings[p.Name()] = p.Distance()
		e.actions[p.Name()] = make([]string, 0)
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.source == nil {
		e.source = NewRandSource(time.Now().UnixNano())
	}
	if e.log == nil {
		e.log = log.Default().Named("engine")
	}
	return e, nil
}

func (e *Engine) Name() string            { return e.name }
func (e *Engine) Target() decimal.Decimal { return e.target }
func (e *Engine) State() State            { return e.state }

// Winner returns the winning participant once the race is finished.
func (e *Engine) Winner() (Participant, bool) {
	return e.winner, e.winner != nil
}

// Start runs the race to completion. Starting a race twice is an error; after
// it returns, the engine performs no further mutation and stays queryable.
func (e *Engine) Start() error {
	if e.state != NotStarted {
		return fmt.Errorf("%w: %s", ErrAlreadyStarted, e.state)
	}
	e.state = Running
	e.log.Info("race started",
		log.String("race", e.name),
		log.Stringer("target", e.target),
		log.Int("participants", len(e.participants)))
	for e.state == Running {
		e.step()
	}
	e.log.Info("race finished",
		log.String("race", e.name),
		log.String("winner", e.winner.Name()))
	return nil
}

// step advances one randomly chosen participant by one travel quota.
func (e *Engine) step() {
	p := e.participants[e.source.ParticipantIndex(len(e.participants))]
	quota := e.source.TravelQuota()
	if left := e.target.Sub(p.Distance()); quota.GreaterThan(left) {
		quota = decimal.Max(decimal.Zero, left)
	}

	whole := quota.Div(segmentLength).IntPart()
	remainder := quota.Sub(segmentLength.Mul(decimal.NewFromInt(whole)))
	for i := int64(0); i < whole; i++ {
		e.advanceSegment(p, segmentLength)
		fuelLeft := p.PerformManeuver()
		e.record(p, fmt.Sprintf("performed a %s, %s l left in the tank",
			p.ManeuverName(), fuelLeft.StringFixed(2)))
	}
	e.advanceSegment(p, remainder)

	e.standings[p.Name()] = p.Distance()
	e.log.Debug("vehicle advanced",
		log.String("vehicle", p.Name()),
		log.Stringer("quota", quota),
		log.Stringer("distance", p.Distance()))
	e.checkFinished()
}

// advanceSegment drives one segment to its end, refueling to full as often as
// the tank runs dry on the way.
func (e *Engine) advanceSegment(p Participant, dist decimal.Decimal) {
	left := p.Travel(dist)
	if covered := dist.Sub(left); covered.IsPositive() {
		e.record(p, fmt.Sprintf("travelled %s km", covered.StringFixed(2)))
	}
	for left.IsPositive() {
		added := p.Refuel(decimal.Zero)
		p.RecordRefuelStop()
		e.record(p, fmt.Sprintf("refueled %s l at stop %d",
			added.StringFixed(2), p.RefuelStops()))
		req := left
		left = p.Travel(req)
		if covered := req.Sub(left); covered.IsPositive() {
			e.record(p, fmt.Sprintf("travelled %s km", covered.StringFixed(2)))
		}
	}
}

// checkFinished ends the race on the first participant, in construction
// order, whose distance reached the target. Ties go to that order, not to
// distance magnitude.
func (e *Engine) checkFinished() {
	winner, found := lo.Find(e.participants, func(p Participant) bool {
		return p.Distance().GreaterThanOrEqual(e.target)
	})
	if !found {
		return
	}
	e.state = Finished
	e.winner = winner
	e.record(winner, fmt.Sprintf("won the race %s", e.name))
}

func (e *Engine) record(p Participant, msg string) {
	e.actions[p.Name()] = append(e.actions[p.Name()], msg)
}

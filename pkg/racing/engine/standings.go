package engine

import (
	"slices"
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Entry is one row of the standings table.
type Entry struct {
	Name     string
	Distance decimal.Decimal
}

// Standings returns the table sorted by distance descending. Participants on
// the same distance keep their construction order.
func (e *Engine) Standings() []Entry {
	return lo.Map(e.ranked(), func(p Participant, _ int) Entry {
		return Entry{Name: p.Name(), Distance: e.standings[p.Name()]}
	})
}

func (e *Engine) ranked() []Participant {
	ranked := slices.Clone(e.participants)
	sort.SliceStable(ranked, func(i, j int) bool {
		return e.standings[ranked[i].Name()].GreaterThan(e.standings[ranked[j].Name()])
	})
	return ranked
}

// Result is the read-only projection of one participant's race.
type Result struct {
	Vehicle     Participant
	Rank        int
	Distance    decimal.Decimal
	RefuelStops int
	Actions     []string
}

// Results computes the result projection on demand from the current engine
// state. Ranks are 1-indexed.
func (e *Engine) Results() []Result {
	return lo.Map(e.ranked(), func(p Participant, i int) Result {
		return Result{
			Vehicle:     p,
			Rank:        i + 1,
			Distance:    p.Distance(),
			RefuelStops: p.RefuelStops(),
			Actions:     slices.Clone(e.actions[p.Name()]),
		}
	})
}

// Actions returns the chronological action history of one participant.
func (e *Engine) Actions(name string) []string {
	return slices.Clone(e.actions[name])
}

package engine

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// Source supplies the random draws of the simulation loop. The default is
// backed by math/rand; tests inject scripted implementations for
// deterministic replay.
type Source interface {
	// ParticipantIndex picks the next vehicle among n participants.
	ParticipantIndex(n int) int
	// TravelQuota draws the next travel quota in [10.00, 200.00] at
	// two-decimal granularity.
	TravelQuota() decimal.Decimal
}

const (
	quotaMinCents int64 = 1000
	quotaMaxCents int64 = 20000
)

type randSource struct {
	r *rand.Rand
}

// NewRandSource returns the pseudo-random Source used outside of tests.
func NewRandSource(seed int64) Source {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) ParticipantIndex(n int) int {
	return s.r.Intn(n)
}

func (s *randSource) TravelQuota() decimal.Decimal {
	return decimal.New(quotaMinCents+s.r.Int63n(quotaMaxCents-quotaMinCents+1), -2)
}

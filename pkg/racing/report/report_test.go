//nolint:lll // ok for tests
package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebasdelalv340/carrera-go/pkg/racing/engine"
	"github.com/sebasdelalv340/carrera-go/pkg/racing/vehicle"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixedSource struct{}

func (fixedSource) ParticipantIndex(n int) int   { return 0 }
func (fixedSource) TravelQuota() decimal.Decimal { return dec("200") }

func finishedRace(t *testing.T) *engine.Engine {
	t.Helper()
	reg := vehicle.NewRegistry()
	car, err := vehicle.NewCar(reg, "rayo", dec("100"), dec("100"), false)
	require.NoError(t, err)
	moto, err := vehicle.NewMotorcycle(reg, "colibri", dec("30"), dec("15"), 500)
	require.NoError(t, err)
	e, err := engine.New("Gran Premio", dec("1000"),
		[]engine.Participant{car, moto}, engine.WithSource(fixedSource{}))
	require.NoError(t, err)
	require.NoError(t, e.Start())
	return e
}

func TestWriteStandings(t *testing.T) {
	e := finishedRace(t)
	var buf bytes.Buffer

	WriteStandings(&buf, e.Name(), e.Results())

	out := buf.String()
	assert.Contains(t, out, "Final standings for Gran Premio")
	assert.Contains(t, out, "  1. rayo")
	assert.Contains(t, out, "  2. colibri")
	assert.Contains(t, out, "1000.00 km")
	// the winner is listed before the vehicle that never moved
	assert.Less(t, strings.Index(out, "rayo"), strings.Index(out, "colibri"))
}

func TestWriteHistory(t *testing.T) {
	e := finishedRace(t)
	var buf bytes.Buffer

	WriteHistory(&buf, e.Results())

	out := buf.String()
	assert.Contains(t, out, "1. rayo")
	assert.Contains(t, out, "travelled 20.00 km")
	assert.Contains(t, out, "won the race Gran Premio")
	// the runner-up section exists even with an empty history
	assert.Contains(t, out, "2. colibri")
}

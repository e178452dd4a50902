// Package report renders the engine's output for humans. It only reads the
// result projection; the simulation itself lives in pkg/racing/engine.
package report

import (
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/sebasdelalv340/carrera-go/pkg/racing/engine"
)

// WriteStandings renders the 1-indexed classification sorted by distance.
func WriteStandings(w io.Writer, raceName string, results []engine.Result) {
	fmt.Fprintf(w, "Final standings for %s\n", raceName)
	for _, res := range results {
		fmt.Fprintf(w, "%3d. %-20s %10s km   %d refuel stops\n",
			res.Rank, res.Vehicle.Name(), res.Distance.StringFixed(2), res.RefuelStops)
	}
	total := lo.SumBy(results, func(r engine.Result) int { return r.RefuelStops })
	fmt.Fprintf(w, "     refuel stops overall: %d\n", total)
}

// WriteHistory renders each ranked vehicle's full action history in
// chronological order.
func WriteHistory(w io.Writer, results []engine.Result) {
	for _, res := range results {
		fmt.Fprintf(w, "\n%d. %s\n", res.Rank, res.Vehicle.Name())
		for _, action := range res.Actions {
			fmt.Fprintf(w, "   - %s\n", action)
		}
	}
}

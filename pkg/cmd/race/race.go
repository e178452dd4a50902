package race

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sebasdelalv340/carrera-go/log"
	"github.com/sebasdelalv340/carrera-go/pkg/config"
	"github.com/sebasdelalv340/carrera-go/pkg/racing/engine"
	"github.com/sebasdelalv340/carrera-go/pkg/racing/report"
	"github.com/sebasdelalv340/carrera-go/pkg/racing/vehicle"
)

var (
	raceName    string
	target      float64
	seed        int64
	numCars     int
	numMotos    int
	withHistory bool
)

func NewRaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "race",
		Short: "run a complete race simulation and print the standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRace()
		},
	}
	cmd.Flags().StringVar(&raceName, "name", "Gran Premio", "name of the race")
	cmd.Flags().Float64Var(&target, "target", 1000,
		"target distance in km (minimum 1000)")
	cmd.Flags().Int64Var(&seed, "seed", 0,
		"random seed (0 means derive one from the clock)")
	cmd.Flags().IntVar(&numCars, "cars", 2, "number of cars in the lineup")
	cmd.Flags().IntVar(&numMotos, "motorcycles", 2,
		"number of motorcycles in the lineup")
	cmd.Flags().BoolVar(&withHistory, "history", true,
		"print the per-vehicle action history after the standings")
	return cmd
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func setupLogger() *log.Logger {
	opts := []log.Option{}
	if config.LogFilter != "" {
		opts = append(opts, log.WithFilter(config.LogFilter))
	}
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel), opts...)
	default:
		logger = log.DevLogger(os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel), opts...)
	}
	log.ResetDefault(logger)
	return logger
}

// caps and displacements for the default lineup; every vehicle starts with a
// half-full tank
var (
	carCapacity  = decimal.NewFromInt(50)
	motoCapacity = decimal.NewFromInt(30)
	displacement = []int{1000, 750, 500, 250, 125}
)

//nolint:whitespace // can't make the linters happy
func buildLineup(
	reg *vehicle.Registry,
	cars, motos int,
) ([]engine.Participant, error) {
	lineup := make([]engine.Participant, 0, cars+motos)
	for i := 0; i < cars; i++ {
		hybrid := i%2 == 1
		c, err := vehicle.NewCar(reg,
			fmt.Sprintf("car-%d", i+1),
			carCapacity,
			carCapacity.DivRound(decimal.NewFromInt(2), 2),
			hybrid)
		if err != nil {
			return nil, fmt.Errorf("building car %d: %w", i+1, err)
		}
		lineup = append(lineup, c)
	}
	for i := 0; i < motos; i++ {
		m, err := vehicle.NewMotorcycle(reg,
			fmt.Sprintf("moto-%d", i+1),
			motoCapacity,
			motoCapacity.DivRound(decimal.NewFromInt(2), 2),
			displacement[i%len(displacement)])
		if err != nil {
			return nil, fmt.Errorf("building motorcycle %d: %w", i+1, err)
		}
		lineup = append(lineup, m)
	}
	return lineup, nil
}

func runRace() error {
	logger := setupLogger()
	defer logger.Sync() //nolint:errcheck // stderr

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("building lineup",
		log.Int("cars", numCars),
		log.Int("motorcycles", numMotos),
		log.Int64("seed", seed))

	lineup, err := buildLineup(vehicle.NewRegistry(), numCars, numMotos)
	if err != nil {
		return err
	}
	race, err := engine.New(raceName,
		decimal.NewFromFloat(target),
		lineup,
		engine.WithSource(engine.NewRandSource(seed)),
		engine.WithLogger(logger.Named("engine")))
	if err != nil {
		return err
	}
	if err := race.Start(); err != nil {
		return err
	}

	results := race.Results()
	report.WriteStandings(os.Stdout, race.Name(), results)
	if withHistory {
		report.WriteHistory(os.Stdout, results)
	}
	return nil
}

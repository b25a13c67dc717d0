package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cityloop/transitops/internal/server"
	"github.com/cityloop/transitops/pkg/alerts"
	"github.com/cityloop/transitops/pkg/bunching"
	"github.com/cityloop/transitops/pkg/feed"
	"github.com/cityloop/transitops/pkg/forecast"
	"github.com/cityloop/transitops/pkg/schedule"
	"github.com/cityloop/transitops/pkg/transit"
)

// engineOptions are the flags shared by every command that builds a
// predictor from the synthetic feed.
type engineOptions struct {
	historyDays int
	seed        int64
}

func (o *engineOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.historyDays, "history-days", 30, "days of synthetic history to generate")
	cmd.Flags().Int64Var(&o.seed, "seed", 1, "seed for the synthetic feed")
}

// loadNetwork resolves the optional project-path argument; without one the
// built-in demonstration network is used.
func loadNetwork(args []string) (*transit.Network, error) {
	if len(args) == 0 {
		return transit.DefaultNetwork(), nil
	}
	n, err := transit.LoadProject(args[0])
	if err != nil {
		return nil, fmt.Errorf("loading network: %w", err)
	}
	return n, nil
}

// buildPredictor generates the synthetic history snapshot and indexes it.
// The wall clock enters the engine only through the returned time.
func buildPredictor(n *transit.Network, opts engineOptions) (*forecast.Predictor, time.Time) {
	now := time.Now()
	history := feed.GenerateHistory(n, opts.historyDays, now, opts.seed)
	return forecast.NewPredictor(history), now
}

func runPredict(args []string, route string, hours int, opts engineOptions) error {
	n, err := loadNetwork(args)
	if err != nil {
		return err
	}

	predictor, now := buildPredictor(n, opts)

	routes := predictor.Routes()
	if route != "" {
		if n.RouteByID(route) == nil {
			return fmt.Errorf("unknown route %q", route)
		}
		routes = []string{route}
	}

	for _, routeID := range routes {
		preds := predictor.PredictDemand(routeID, hours, now)
		printPredictions(routeID, preds)
	}
	return nil
}

func runOptimize(args []string, opts engineOptions) error {
	n, err := loadNetwork(args)
	if err != nil {
		return err
	}

	predictor, now := buildPredictor(n, opts)
	optimizations := schedule.OptimizeWithBaseline(predictor, now, n.BaselineFrequency)
	printOptimizations(optimizations)
	return nil
}

// fetchFleet returns live positions from the GTFS-RT feed when a URL is
// configured, falling back to the seeded synthetic fleet.
func fetchFleet(n *transit.Network, feedURL string, now time.Time, opts engineOptions) ([]transit.VehiclePosition, error) {
	if feedURL == "" {
		return feed.GenerateFleet(n, now, opts.seed), nil
	}
	client := feed.NewClient(10 * time.Second)
	positions, err := client.FetchVehiclePositions(feedURL, now)
	if err != nil {
		return nil, fmt.Errorf("fetching vehicle positions: %w", err)
	}
	return positions, nil
}

func runBunching(args []string, feedURL string, opts engineOptions) error {
	n, err := loadNetwork(args)
	if err != nil {
		return err
	}

	now := time.Now()
	positions, err := fetchFleet(n, feedURL, now, opts)
	if err != nil {
		return err
	}

	cleaned, report := feed.Clean(positions, n.ServiceArea)
	found := bunching.Detect(cleaned)
	wrapped := alerts.CollectBunching(found, now)

	printCleanReport(report)
	printAlerts(wrapped)
	return nil
}

func runServe(args []string, feedURL string, port int, opts engineOptions) error {
	n, err := loadNetwork(args)
	if err != nil {
		return err
	}

	// The history snapshot anchors at startup; each request passes its
	// own clock into the engine.
	predictor, _ := buildPredictor(n, opts)

	fleet := func(at time.Time) ([]transit.VehiclePosition, error) {
		return fetchFleet(n, feedURL, at, opts)
	}

	return server.New(n, predictor, fleet, port).Start()
}

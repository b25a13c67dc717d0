package main

import (
	"fmt"

	"github.com/cityloop/transitops/pkg/alerts"
	"github.com/cityloop/transitops/pkg/feed"
	"github.com/cityloop/transitops/pkg/forecast"
	"github.com/cityloop/transitops/pkg/schedule"
)

func printPredictions(routeID string, preds []forecast.DemandPrediction) {
	fmt.Printf("Route %s\n", routeID)
	fmt.Println("========")

	if len(preds) == 0 {
		fmt.Println("  no historical coverage for this route")
		fmt.Println()
		return
	}

	fmt.Printf("  %-20s %5s %10s %11s %11s\n", "Stop", "Hour", "Boardings", "Alightings", "Confidence")
	lastHour := -1
	for _, p := range preds {
		if p.Hour != lastHour && lastHour != -1 {
			fmt.Println()
		}
		lastHour = p.Hour
		fmt.Printf("  %-20s %4d:00 %9d %11d %10.0f%%\n",
			p.StopID, p.Hour, p.PredictedBoardings, p.PredictedAlightings, p.Confidence*100)
	}
	fmt.Println()
}

func printOptimizations(opts []schedule.RouteOptimization) {
	fmt.Println("Schedule Recommendations")
	fmt.Println("========================")

	if len(opts) == 0 {
		fmt.Println("  no routes in history")
		return
	}

	fmt.Printf("  %-8s %9s %9s %8s  %s\n", "Route", "Current", "Proposed", "Change", "Reasoning")
	for _, o := range opts {
		fmt.Printf("  %-8s %7d/h %7d/h %7.0f%%  %s\n",
			o.RouteID, o.CurrentFrequency, o.OptimizedFrequency, o.ExpectedImprovement, o.Reasoning)
	}
}

func printCleanReport(r *feed.CleanReport) {
	fmt.Printf("Telemetry: %s\n", r.Summary)
	for _, d := range r.Drops {
		fmt.Printf("  dropped %s: %s (%s)\n", d.VehicleID, d.Reason, d.Field)
	}
	fmt.Println()
}

func printAlerts(as []alerts.Alert) {
	if len(as) == 0 {
		fmt.Println("No bunching detected.")
		return
	}

	fmt.Printf("BUNCHING ALERTS (%d):\n", len(as))
	for _, a := range as {
		b := a.Bunching
		fmt.Printf("  [%s] route %s: %s and %s are %dm apart\n",
			b.Severity, b.RouteID, b.VehicleIDs[0], b.VehicleIDs[1], b.DistanceMeters)
		fmt.Printf("    * %s\n", b.Recommendation)
	}
}

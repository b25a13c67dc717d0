// Package schedule turns per-route demand forecasts into dispatch-frequency
// recommendations.
package schedule

import (
	"math"
	"time"

	"github.com/cityloop/transitops/pkg/forecast"
	"github.com/cityloop/transitops/pkg/transit"
)

// Demand thresholds and the frequencies they map to, in buses per hour.
// First matching rule wins; the high-demand boundary is exclusive (a total
// of exactly 200 keeps the current schedule).
const (
	highDemandThreshold = 200
	lowDemandThreshold  = 50
	highDemandFrequency = 6
	lowDemandFrequency  = 2
)

// Reasoning categories attached to recommendations.
const (
	ReasonIncrease = "high demand - increase frequency"
	ReasonReduce   = "low demand - reduce frequency"
	ReasonMaintain = "maintain current schedule"
)

// RouteOptimization is the dispatch recommendation for one route.
//
// ExpectedImprovement is the absolute percentage change of frequency; the
// direction of the change is carried by the frequencies themselves, not by
// the sign. Kept unsigned for parity with the deployed behavior.
type RouteOptimization struct {
	RouteID             string  `json:"route_id"`
	CurrentFrequency    int     `json:"current_frequency"`
	OptimizedFrequency  int     `json:"optimized_frequency"`
	ExpectedImprovement float64 `json:"expected_improvement"`
	Reasoning           string  `json:"reasoning"`
}

// TotalDemand sums predicted boardings over a one-hour horizon for a route.
func TotalDemand(p *forecast.Predictor, routeID string, now time.Time) int {
	total := 0
	for _, pred := range p.PredictDemand(routeID, 1, now) {
		total += pred.PredictedBoardings
	}
	return total
}

// Optimize recommends a dispatch frequency for every route present in the
// predictor's history, using the default baseline of
// transit.DefaultBaselineFrequency buses per hour. Results are ordered by
// route id. An empty history yields an empty slice.
func Optimize(p *forecast.Predictor, now time.Time) []RouteOptimization {
	return OptimizeWithBaseline(p, now, transit.DefaultBaselineFrequency)
}

// OptimizeWithBaseline is Optimize with an explicit current frequency,
// for networks that configure their own baseline.
func OptimizeWithBaseline(p *forecast.Predictor, now time.Time, baseline int) []RouteOptimization {
	routes := p.Routes()
	optimizations := make([]RouteOptimization, 0, len(routes))

	for _, routeID := range routes {
		totalDemand := TotalDemand(p, routeID, now)

		optimized := baseline
		reasoning := ReasonMaintain
		switch {
		case totalDemand > highDemandThreshold:
			optimized = highDemandFrequency
			reasoning = ReasonIncrease
		case totalDemand < lowDemandThreshold:
			optimized = lowDemandFrequency
			reasoning = ReasonReduce
		}

		improvement := 0.0
		if baseline != 0 {
			improvement = math.Abs(float64(optimized-baseline)) / float64(baseline) * 100
		}

		optimizations = append(optimizations, RouteOptimization{
			RouteID:             routeID,
			CurrentFrequency:    baseline,
			OptimizedFrequency:  optimized,
			ExpectedImprovement: improvement,
			Reasoning:           reasoning,
		})
	}

	return optimizations
}

// Package forecast predicts short-horizon boarding and alighting demand per
// route, stop, and hour from a snapshot of historical passenger counts.
//
// The model is a moving average over matching (stop, hour-of-day)
// observations with two multiplicative seasonal adjustments, not a trained
// statistical model. Prediction time is an explicit input so that outputs
// are reproducible; the package never reads the wall clock.
package forecast

import (
	"math"
	"time"

	"github.com/cityloop/transitops/pkg/transit"
)

const (
	// weekendFactor damps predictions made on a Saturday or Sunday. It is
	// keyed to the day the prediction is made on, not the day of the
	// forecasted hour; a multi-hour horizon crossing midnight into a
	// weekend keeps the weekday factor. Known limitation, kept for parity
	// with the deployed behavior.
	weekendFactor = 0.7

	// peakFactor lifts predictions for target hours inside a peak window.
	peakFactor = 1.3

	// confidenceCap bounds the sample-size heuristic below certainty.
	confidenceCap = 0.95

	// fullConfidenceSamples is the observation count at which the
	// confidence heuristic saturates.
	fullConfidenceSamples = 30
)

// DemandPrediction is the forecast for one (route, stop, hour) cell.
// Confidence reflects historical sample sufficiency, not a statistical
// interval.
type DemandPrediction struct {
	RouteID             string  `json:"route_id"`
	StopID              string  `json:"stop_id"`
	Hour                int     `json:"hour"`
	PredictedBoardings  int     `json:"predicted_boardings"`
	PredictedAlightings int     `json:"predicted_alightings"`
	Confidence          float64 `json:"confidence"`
}

// Predictor holds an indexed, immutable copy of the historical snapshot.
// A constructed Predictor is safe for concurrent use.
type Predictor struct {
	idx *historyIndex
}

// NewPredictor indexes the given historical snapshot. The records are not
// retained by reference; callers may reuse the slice.
func NewPredictor(records []transit.HistoricalRecord) *Predictor {
	return &Predictor{idx: newHistoryIndex(records)}
}

// Routes returns the distinct route ids present in the historical snapshot,
// sorted.
func (p *Predictor) Routes() []string {
	routes := make([]string, len(p.idx.routes))
	copy(routes, p.idx.routes)
	return routes
}

// PredictDemand forecasts demand for the next horizonHours hours on a
// route, starting at now's hour and wrapping past midnight. now is the
// prediction time; it selects the starting hour and the weekend adjustment.
//
// Output is sparse: a (stop, hour) cell with no historical coverage emits
// no prediction, and a route absent from history yields an empty slice.
// Predictions for one target hour form a contiguous group, ordered by stop
// id within the group. A non-positive horizon yields an empty slice.
func (p *Predictor) PredictDemand(routeID string, horizonHours int, now time.Time) []DemandPrediction {
	if horizonHours <= 0 {
		return nil
	}

	stops := p.idx.stops[routeID]
	if len(stops) == 0 {
		return nil
	}

	dayFactor := 1.0
	if transit.IsWeekend(now) {
		dayFactor = weekendFactor
	}

	var predictions []DemandPrediction
	for h := 0; h < horizonHours; h++ {
		targetHour := (now.Hour() + h) % 24

		hourFactor := 1.0
		if transit.IsPeakHour(targetHour) {
			hourFactor = peakFactor
		}

		for _, stopID := range stops {
			matches := p.idx.recordsFor(routeID, stopID, targetHour)
			if len(matches) == 0 {
				continue
			}

			var boardings, alightings int
			for _, rec := range matches {
				boardings += rec.Boardings
				alightings += rec.Alightings
			}
			n := float64(len(matches))
			avgBoardings := float64(boardings) / n
			avgAlightings := float64(alightings) / n

			predictions = append(predictions, DemandPrediction{
				RouteID:             routeID,
				StopID:              stopID,
				Hour:                targetHour,
				PredictedBoardings:  int(math.Round(avgBoardings * dayFactor * hourFactor)),
				PredictedAlightings: int(math.Round(avgAlightings * dayFactor * hourFactor)),
				Confidence:          math.Min(confidenceCap, n/fullConfidenceSamples),
			})
		}
	}

	return predictions
}

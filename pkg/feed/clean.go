// Package feed supplies the engine's external collaborators: the
// range-validation cleaning step live telemetry must pass before detection,
// deterministic synthetic generators standing in for a real ticketing and
// telemetry feed, and an adapter for GTFS-Realtime vehicle positions.
package feed

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/cityloop/transitops/pkg/geo"
	"github.com/cityloop/transitops/pkg/transit"
)

var validate = validator.New()

// Drop records one rejected position and why.
type Drop struct {
	VehicleID string `json:"vehicle_id"`
	Field     string `json:"field"`
	Reason    string `json:"reason"`
	Actual    any    `json:"actual,omitempty"`
}

// CleanReport summarizes a cleaning pass.
type CleanReport struct {
	Input   int    `json:"input"`
	Kept    int    `json:"kept"`
	Drops   []Drop `json:"drops"`
	Summary string `json:"summary"`
}

func (r *CleanReport) add(d Drop) {
	r.Drops = append(r.Drops, d)
}

func (r *CleanReport) finish() {
	r.Summary = fmt.Sprintf("%d positions in, %d kept, %d dropped", r.Input, r.Kept, len(r.Drops))
}

// Clean filters a telemetry snapshot down to positions the engine may trust:
// finite coordinates inside the service area, speed and occupancy within
// plausible ranges, identifiers present. The engine itself never
// re-validates, so every detection path should pass through here first.
//
// The returned slice preserves input order. The report lists every dropped
// position with the offending field.
func Clean(positions []transit.VehiclePosition, area geo.BoundingBox) ([]transit.VehiclePosition, *CleanReport) {
	report := &CleanReport{Input: len(positions)}
	kept := make([]transit.VehiclePosition, 0, len(positions))

	for _, pos := range positions {
		if !pos.Coordinate().IsFinite() {
			report.add(Drop{
				VehicleID: pos.VehicleID,
				Field:     "lat/lng",
				Reason:    "non-finite coordinates",
			})
			continue
		}

		if err := validate.Struct(pos); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				report.add(Drop{
					VehicleID: pos.VehicleID,
					Field:     verrs[0].Field(),
					Reason:    fmt.Sprintf("failed %q check", verrs[0].Tag()),
					Actual:    verrs[0].Value(),
				})
			} else {
				report.add(Drop{VehicleID: pos.VehicleID, Reason: err.Error()})
			}
			continue
		}

		if !area.Contains(pos.Coordinate()) {
			report.add(Drop{
				VehicleID: pos.VehicleID,
				Field:     "lat/lng",
				Reason:    "outside service area",
				Actual:    pos.Coordinate(),
			})
			continue
		}

		kept = append(kept, pos)
	}

	report.Kept = len(kept)
	report.finish()
	return kept, report
}

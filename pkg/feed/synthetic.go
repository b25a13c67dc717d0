package feed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cityloop/transitops/pkg/transit"
)

// Synthetic service-day bounds: hourly records are generated for 06:00
// through 22:00.
const (
	serviceDayStart = 6
	serviceDayEnd   = 23 // exclusive

	peakBasePassengers    = 50
	offPeakBasePassengers = 20
)

// GenerateHistory produces a seeded synthetic passenger-count history
// covering the given number of days back from now, one record per route,
// stop, and service hour. Peak hours draw from a higher base than off-peak
// hours. The same seed always yields the same snapshot.
func GenerateHistory(n *transit.Network, days int, now time.Time, seed int64) []transit.HistoricalRecord {
	rng := rand.New(rand.NewSource(seed))
	var records []transit.HistoricalRecord

	for day := 0; day < days; day++ {
		date := now.AddDate(0, 0, -day)

		for _, route := range n.Routes {
			for _, stop := range route.Stops {
				for hour := serviceDayStart; hour < serviceDayEnd; hour++ {
					base := offPeakBasePassengers
					if transit.IsPeakHour(hour) {
						base = peakBasePassengers
					}

					records = append(records, transit.HistoricalRecord{
						RouteID:    route.ID,
						StopID:     stop,
						Timestamp:  time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location()),
						Boardings:  rng.Intn(base) + 5,
						Alightings: rng.Intn(base) + 5,
					})
				}
			}
		}
	}

	return records
}

// GenerateFleet produces a seeded snapshot of 3-5 vehicles per route,
// scattered around the service-area center. Values stay inside the ranges
// Clean accepts, except for position jitter that can land a vehicle just
// outside a tight service area, which is exactly what the cleaning step is
// for.
func GenerateFleet(n *transit.Network, now time.Time, seed int64) []transit.VehiclePosition {
	rng := rand.New(rand.NewSource(seed))
	center := n.ServiceArea.Center()
	var fleet []transit.VehiclePosition

	for _, route := range n.Routes {
		count := rng.Intn(3) + 3
		for i := 0; i < count; i++ {
			fleet = append(fleet, transit.VehiclePosition{
				VehicleID:    fmt.Sprintf("%s-%d", route.ID, i+1),
				RouteID:      route.ID,
				Lat:          center.Lat + (rng.Float64()-0.5)*0.2,
				Lng:          center.Lng + (rng.Float64()-0.5)*0.2,
				OccupancyPct: rng.Intn(100),
				SpeedKmh:     float64(rng.Intn(40) + 10),
				DelayMinutes: rng.Intn(20) - 5,
				NextStop:     route.Stops[rng.Intn(len(route.Stops))],
				Timestamp:    now,
			})
		}
	}

	return fleet
}

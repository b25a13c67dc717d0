// Package bunching flags same-route vehicles that have converged to within
// an unsafe following distance.
package bunching

import (
	"math"
	"sort"

	"github.com/cityloop/transitops/pkg/geo"
	"github.com/cityloop/transitops/pkg/transit"
)

const (
	// AlertDistanceKm is the pairwise distance below which two vehicles
	// count as bunched.
	AlertDistanceKm = 0.5

	// HighSeverityKm is the distance below which a bunching pair is
	// escalated to high severity.
	HighSeverityKm = 0.2

	// Recommendation is the fixed advisory attached to every alert.
	Recommendation = "hold back trailing vehicle or accelerate leading vehicle"
)

// Severity classifies how tight a bunching pair is.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Alert reports one pair of bunched vehicles. A cluster of k mutually close
// vehicles produces one alert per pair, k*(k-1)/2 in total; pairs are not
// merged into clusters.
type Alert struct {
	RouteID        string    `json:"route_id"`
	VehicleIDs     [2]string `json:"vehicle_ids"`
	DistanceMeters int       `json:"distance_meters"`
	Severity       Severity  `json:"severity"`
	Recommendation string    `json:"recommendation"`
}

// Detect scans a snapshot of live positions and returns an alert for every
// same-route vehicle pair closer than AlertDistanceKm. Vehicles on
// different routes are never compared, and a route with fewer than two
// vehicles produces nothing. Alerts are grouped by route id in sorted
// order; within a route, pair order follows the input.
//
// Positions are assumed range-validated upstream (see feed.Clean);
// out-of-range or non-finite coordinates propagate into the distance math
// without complaint.
func Detect(positions []transit.VehiclePosition) []Alert {
	byRoute := make(map[string][]transit.VehiclePosition)
	for _, pos := range positions {
		byRoute[pos.RouteID] = append(byRoute[pos.RouteID], pos)
	}

	routes := make([]string, 0, len(byRoute))
	for routeID := range byRoute {
		routes = append(routes, routeID)
	}
	sort.Strings(routes)

	var alerts []Alert
	for _, routeID := range routes {
		vehicles := byRoute[routeID]
		for i := 0; i < len(vehicles)-1; i++ {
			for j := i + 1; j < len(vehicles); j++ {
				distKm := geo.Haversine(vehicles[i].Coordinate(), vehicles[j].Coordinate())
				if !(distKm < AlertDistanceKm) {
					continue
				}

				severity := SeverityMedium
				if distKm < HighSeverityKm {
					severity = SeverityHigh
				}

				alerts = append(alerts, Alert{
					RouteID:        routeID,
					VehicleIDs:     [2]string{vehicles[i].VehicleID, vehicles[j].VehicleID},
					DistanceMeters: int(math.Round(distKm * 1000)),
					Severity:       severity,
					Recommendation: Recommendation,
				})
			}
		}
	}

	return alerts
}

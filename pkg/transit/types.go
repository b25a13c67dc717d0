package transit

import (
	"time"

	"github.com/cityloop/transitops/pkg/geo"
)

// HistoricalRecord is one observed stop visit: how many passengers boarded
// and alighted at a stop during one hour. Records are ingested in bulk as a
// fixed snapshot and never mutated.
type HistoricalRecord struct {
	RouteID    string    `json:"route_id"`
	StopID     string    `json:"stop_id"`
	Timestamp  time.Time `json:"timestamp"`
	Boardings  int       `json:"boardings"`
	Alightings int       `json:"alightings"`
}

// VehiclePosition is one live telemetry reading for a vehicle. Range limits
// in the validate tags are enforced by feed.Clean, not by the engine; the
// engine assumes cleaned input.
type VehiclePosition struct {
	VehicleID    string    `json:"vehicle_id" validate:"required"`
	RouteID      string    `json:"route_id" validate:"required"`
	Lat          float64   `json:"lat" validate:"gte=-90,lte=90"`
	Lng          float64   `json:"lng" validate:"gte=-180,lte=180"`
	OccupancyPct int       `json:"occupancy_pct" validate:"gte=0,lte=100"`
	SpeedKmh     float64   `json:"speed_kmh" validate:"gte=0,lte=80"`
	DelayMinutes int       `json:"delay_minutes"` // negative means early
	NextStop     string    `json:"next_stop"`
	Timestamp    time.Time `json:"timestamp"`
}

// Coordinate returns the vehicle's position as a geo.Coordinate.
func (v VehiclePosition) Coordinate() geo.Coordinate {
	return geo.Coordinate{Lat: v.Lat, Lng: v.Lng}
}

// Route is a scheduled service pattern with an ordered stop list.
type Route struct {
	ID    string   `yaml:"id" json:"id" validate:"required"`
	Name  string   `yaml:"name" json:"name"`
	Stops []string `yaml:"stops" json:"stops" validate:"min=2"`
	Color string   `yaml:"color" json:"color"`
}

// IsPeakHour reports whether the hour of day falls in a peak ridership
// window (7-10 and 17-20, both ends inclusive).
func IsPeakHour(hour int) bool {
	return (hour >= 7 && hour <= 10) || (hour >= 17 && hour <= 20)
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

package forecast

import (
	"testing"
	"time"

	"github.com/cityloop/transitops/pkg/transit"
)

func rec(routeID, stopID string, hour, boardings, alightings int) transit.HistoricalRecord {
	return transit.HistoricalRecord{
		RouteID:    routeID,
		StopID:     stopID,
		Timestamp:  time.Date(2024, 6, 5, hour, 0, 0, 0, time.UTC),
		Boardings:  boardings,
		Alightings: alightings,
	}
}

func TestIndexEmptyInput(t *testing.T) {
	idx := newHistoryIndex(nil)
	if len(idx.routes) != 0 {
		t.Errorf("expected no routes, got %v", idx.routes)
	}
	if got := idx.recordsFor("R1", "S1", 8); got != nil {
		t.Errorf("expected nil records, got %v", got)
	}
}

func TestIndexGroupsByRouteStopHour(t *testing.T) {
	records := []transit.HistoricalRecord{
		rec("R1", "S1", 8, 10, 5),
		rec("R1", "S1", 8, 20, 5),
		rec("R1", "S1", 9, 30, 5),
		rec("R1", "S2", 8, 40, 5),
		rec("R2", "S1", 8, 50, 5),
	}
	idx := newHistoryIndex(records)

	if got := len(idx.recordsFor("R1", "S1", 8)); got != 2 {
		t.Errorf("R1/S1/8 has %d records, want 2", got)
	}
	if got := len(idx.recordsFor("R1", "S1", 9)); got != 1 {
		t.Errorf("R1/S1/9 has %d records, want 1", got)
	}
	if got := len(idx.recordsFor("R2", "S1", 8)); got != 1 {
		t.Errorf("R2/S1/8 has %d records, want 1", got)
	}
	if got := idx.recordsFor("R1", "S2", 9); got != nil {
		t.Errorf("R1/S2/9 should be empty, got %v", got)
	}
}

func TestIndexHourUsesTimeOfDayOnly(t *testing.T) {
	// Same hour on different days lands in the same group.
	a := rec("R1", "S1", 8, 10, 0)
	b := a
	b.Timestamp = b.Timestamp.AddDate(0, 0, -7)
	idx := newHistoryIndex([]transit.HistoricalRecord{a, b})

	if got := len(idx.recordsFor("R1", "S1", 8)); got != 2 {
		t.Errorf("expected both days grouped under hour 8, got %d", got)
	}
}

func TestIndexSortsRoutesAndStops(t *testing.T) {
	records := []transit.HistoricalRecord{
		rec("R2", "S9", 8, 1, 1),
		rec("R1", "S3", 8, 1, 1),
		rec("R1", "S1", 8, 1, 1),
	}
	idx := newHistoryIndex(records)

	if len(idx.routes) != 2 || idx.routes[0] != "R1" || idx.routes[1] != "R2" {
		t.Errorf("routes = %v, want [R1 R2]", idx.routes)
	}
	stops := idx.stops["R1"]
	if len(stops) != 2 || stops[0] != "S1" || stops[1] != "S3" {
		t.Errorf("R1 stops = %v, want [S1 S3]", stops)
	}
}

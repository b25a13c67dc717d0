package forecast

import (
	"sort"

	"github.com/cityloop/transitops/pkg/transit"
)

// stopHour is the composite lookup key for one stop's observations at one
// hour of day, regardless of which day they occurred on.
type stopHour struct {
	stopID string
	hour   int
}

// historyIndex partitions a flat historical snapshot so that per-route and
// per-(stop,hour) lookups are O(1) during prediction. Built once, read-only
// thereafter.
type historyIndex struct {
	byStopHour map[string]map[stopHour][]transit.HistoricalRecord
	stops      map[string][]string // route -> sorted distinct stop ids
	routes     []string            // sorted distinct route ids
}

func newHistoryIndex(records []transit.HistoricalRecord) *historyIndex {
	idx := &historyIndex{
		byStopHour: make(map[string]map[stopHour][]transit.HistoricalRecord),
		stops:      make(map[string][]string),
	}

	stopSets := make(map[string]map[string]struct{})
	for _, rec := range records {
		m := idx.byStopHour[rec.RouteID]
		if m == nil {
			m = make(map[stopHour][]transit.HistoricalRecord)
			idx.byStopHour[rec.RouteID] = m
			stopSets[rec.RouteID] = make(map[string]struct{})
		}
		key := stopHour{stopID: rec.StopID, hour: rec.Timestamp.Hour()}
		m[key] = append(m[key], rec)
		stopSets[rec.RouteID][rec.StopID] = struct{}{}
	}

	for routeID, set := range stopSets {
		stops := make([]string, 0, len(set))
		for s := range set {
			stops = append(stops, s)
		}
		sort.Strings(stops)
		idx.stops[routeID] = stops
		idx.routes = append(idx.routes, routeID)
	}
	sort.Strings(idx.routes)

	return idx
}

// recordsFor returns all observations for (route, stop, hour). A nil return
// means the combination has no coverage.
func (idx *historyIndex) recordsFor(routeID, stopID string, hour int) []transit.HistoricalRecord {
	m := idx.byStopHour[routeID]
	if m == nil {
		return nil
	}
	return m[stopHour{stopID: stopID, hour: hour}]
}

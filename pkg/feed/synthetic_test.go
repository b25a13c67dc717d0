package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityloop/transitops/pkg/transit"
)

var genNow = time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)

func TestGenerateHistoryShape(t *testing.T) {
	n := transit.DefaultNetwork()
	records := GenerateHistory(n, 2, genNow, 42)

	// 2 days x 5 routes x 4 stops x 17 service hours.
	require.Len(t, records, 2*5*4*17)

	for _, rec := range records {
		h := rec.Timestamp.Hour()
		assert.GreaterOrEqual(t, h, 6)
		assert.LessOrEqual(t, h, 22)
		assert.GreaterOrEqual(t, rec.Boardings, 5)
		assert.GreaterOrEqual(t, rec.Alightings, 5)
		if transit.IsPeakHour(h) {
			assert.Less(t, rec.Boardings, 55)
		} else {
			assert.Less(t, rec.Boardings, 25)
		}
		assert.NotNil(t, n.RouteByID(rec.RouteID))
	}
}

func TestGenerateHistoryDeterministic(t *testing.T) {
	n := transit.DefaultNetwork()
	a := GenerateHistory(n, 3, genNow, 7)
	b := GenerateHistory(n, 3, genNow, 7)
	assert.Equal(t, a, b)

	c := GenerateHistory(n, 3, genNow, 8)
	assert.NotEqual(t, a, c)
}

func TestGenerateFleetShape(t *testing.T) {
	n := transit.DefaultNetwork()
	fleet := GenerateFleet(n, genNow, 42)

	perRoute := make(map[string]int)
	for _, v := range fleet {
		perRoute[v.RouteID]++

		route := n.RouteByID(v.RouteID)
		require.NotNil(t, route)
		assert.Contains(t, route.Stops, v.NextStop)
		assert.GreaterOrEqual(t, v.OccupancyPct, 0)
		assert.Less(t, v.OccupancyPct, 100)
		assert.GreaterOrEqual(t, v.SpeedKmh, 10.0)
		assert.Less(t, v.SpeedKmh, 50.0)
		assert.GreaterOrEqual(t, v.DelayMinutes, -5)
		assert.Less(t, v.DelayMinutes, 15)
		assert.True(t, genNow.Equal(v.Timestamp))
	}

	for _, route := range n.Routes {
		count := perRoute[route.ID]
		assert.GreaterOrEqual(t, count, 3, "route %s", route.ID)
		assert.LessOrEqual(t, count, 5, "route %s", route.ID)
	}
}

func TestGenerateFleetDeterministic(t *testing.T) {
	n := transit.DefaultNetwork()
	a := GenerateFleet(n, genNow, 7)
	b := GenerateFleet(n, genNow, 7)
	assert.Equal(t, a, b)
}

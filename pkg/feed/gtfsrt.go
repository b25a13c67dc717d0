package feed

import (
	"fmt"
	"io"
	"net/http"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/cityloop/transitops/pkg/transit"
)

// VehiclePositionsFromGTFSRT decodes a GTFS-Realtime FeedMessage into
// engine vehicle positions. Entities without a position are skipped. Speed
// converts from the feed's m/s to km/h; GTFS-RT vehicle positions carry no
// schedule deviation, so DelayMinutes is always zero here. Entities without
// a vehicle timestamp are stamped with at.
//
// The result has not been range-validated; run it through Clean before
// detection.
func VehiclePositionsFromGTFSRT(data []byte, at time.Time) ([]transit.VehiclePosition, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(data, &fm); err != nil {
		return nil, fmt.Errorf("parsing vehicle positions feed: %w", err)
	}

	var out []transit.VehiclePosition
	for _, e := range fm.Entity {
		v := e.Vehicle
		if v == nil || v.Position == nil {
			continue
		}

		vp := transit.VehiclePosition{Timestamp: at}
		if v.Vehicle != nil && v.Vehicle.Id != nil {
			vp.VehicleID = *v.Vehicle.Id
		} else if e.Id != nil {
			vp.VehicleID = *e.Id
		}
		if v.Trip != nil && v.Trip.RouteId != nil {
			vp.RouteID = *v.Trip.RouteId
		}
		if v.Position.Latitude != nil {
			vp.Lat = float64(*v.Position.Latitude)
		}
		if v.Position.Longitude != nil {
			vp.Lng = float64(*v.Position.Longitude)
		}
		if v.Position.Speed != nil {
			vp.SpeedKmh = float64(*v.Position.Speed) * 3.6
		}
		if v.OccupancyPercentage != nil {
			vp.OccupancyPct = int(*v.OccupancyPercentage)
		}
		if v.StopId != nil {
			vp.NextStop = *v.StopId
		}
		if v.Timestamp != nil {
			vp.Timestamp = time.Unix(int64(*v.Timestamp), 0).UTC()
		}

		out = append(out, vp)
	}

	return out, nil
}

// Client fetches GTFS-RT feed bytes over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a feed client. A zero timeout means no timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// Fetch retrieves one feed URL and returns the raw protobuf bytes.
// Returns nil for an empty URL so optional feeds can be skipped.
func (c *Client) Fetch(url string) ([]byte, error) {
	if url == "" {
		return nil, nil
	}

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// FetchVehiclePositions fetches and decodes a vehicle-positions feed in one
// step.
func (c *Client) FetchVehiclePositions(url string, at time.Time) ([]transit.VehiclePosition, error) {
	data, err := c.Fetch(url)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	return VehiclePositionsFromGTFSRT(data, at)
}

package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/cityloop/transitops/pkg/alerts"
	"github.com/cityloop/transitops/pkg/bunching"
	"github.com/cityloop/transitops/pkg/feed"
	"github.com/cityloop/transitops/pkg/forecast"
	"github.com/cityloop/transitops/pkg/schedule"
	"github.com/cityloop/transitops/pkg/transit"
)

// FleetSource supplies the current vehicle snapshot for a request. The
// positions it returns are cleaned before any detection runs.
type FleetSource func(at time.Time) ([]transit.VehiclePosition, error)

// Server exposes engine results as JSON for an external dashboard.
type Server struct {
	network   *transit.Network
	predictor *forecast.Predictor
	fleet     FleetSource
	port      int
	now       func() time.Time
}

// New creates a server over a constructed predictor and a fleet source.
func New(network *transit.Network, predictor *forecast.Predictor, fleet FleetSource, port int) *Server {
	return &Server{
		network:   network,
		predictor: predictor,
		fleet:     fleet,
		port:      port,
		now:       time.Now,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("transitops server starting on http://localhost%s", addr)
	log.Printf("Network: %s (%d routes)", s.network.Name, len(s.network.Routes))

	return http.ListenAndServe(addr, s.handler())
}

func (s *Server) handler() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/network", s.handleNetwork)
	mux.HandleFunc("GET /api/predictions", s.handlePredictions)
	mux.HandleFunc("GET /api/optimizations", s.handleOptimizations)
	mux.HandleFunc("GET /api/fleet", s.handleFleet)
	mux.HandleFunc("GET /api/alerts", s.handleAlerts)
	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>transitops</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>transitops</h1>
<p>Engine API is up. Dashboard is served separately; see /api/predictions, /api/optimizations, /api/alerts.</p>
</div>
</body></html>`)
}

func (s *Server) handleNetwork(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.network)
}

func (s *Server) handlePredictions(w http.ResponseWriter, r *http.Request) {
	now := s.now()

	hours := 6
	if h := r.URL.Query().Get("hours"); h != "" {
		parsed, err := strconv.Atoi(h)
		if err != nil || parsed < 1 || parsed > 24 {
			http.Error(w, "hours must be an integer between 1 and 24", http.StatusBadRequest)
			return
		}
		hours = parsed
	}

	routes := s.predictor.Routes()
	if route := r.URL.Query().Get("route"); route != "" {
		routes = []string{route}
	}

	predictions := make(map[string][]forecast.DemandPrediction, len(routes))
	for _, routeID := range routes {
		predictions[routeID] = s.predictor.PredictDemand(routeID, hours, now)
	}

	writeJSON(w, map[string]any{
		"generated_at": now,
		"horizon":      hours,
		"predictions":  predictions,
	})
}

func (s *Server) handleOptimizations(w http.ResponseWriter, _ *http.Request) {
	now := s.now()
	writeJSON(w, map[string]any{
		"generated_at":  now,
		"optimizations": schedule.OptimizeWithBaseline(s.predictor, now, s.network.BaselineFrequency),
	})
}

func (s *Server) handleFleet(w http.ResponseWriter, _ *http.Request) {
	now := s.now()
	positions, err := s.fleet(now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	cleaned, report := feed.Clean(positions, s.network.ServiceArea)
	writeJSON(w, map[string]any{
		"generated_at": now,
		"vehicles":     cleaned,
		"cleaning":     report,
	})
}

func (s *Server) handleAlerts(w http.ResponseWriter, _ *http.Request) {
	now := s.now()
	positions, err := s.fleet(now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	cleaned, report := feed.Clean(positions, s.network.ServiceArea)
	found := bunching.Detect(cleaned)

	writeJSON(w, map[string]any{
		"generated_at": now,
		"alerts":       alerts.CollectBunching(found, now),
		"cleaning":     report,
	})
}

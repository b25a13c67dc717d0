package transit

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsPeakHour(t *testing.T) {
	tests := []struct {
		hour int
		want bool
	}{
		{6, false},
		{7, true},
		{10, true},
		{11, false},
		{14, false},
		{16, false},
		{17, true},
		{20, true},
		{21, false},
		{0, false},
		{23, false},
	}
	for _, tt := range tests {
		if got := IsPeakHour(tt.hour); got != tt.want {
			t.Errorf("IsPeakHour(%d) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestIsWeekend(t *testing.T) {
	// 2024-06-03 is a Monday.
	monday := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	for d := 0; d < 7; d++ {
		day := monday.AddDate(0, 0, d)
		want := d >= 5 // Saturday, Sunday
		if got := IsWeekend(day); got != want {
			t.Errorf("IsWeekend(%s) = %v, want %v", day.Weekday(), got, want)
		}
	}
}

func TestDefaultNetwork(t *testing.T) {
	n := DefaultNetwork()
	if len(n.Routes) != 5 {
		t.Fatalf("expected 5 routes, got %d", len(n.Routes))
	}
	if n.BaselineFrequency != DefaultBaselineFrequency {
		t.Errorf("BaselineFrequency = %d, want %d", n.BaselineFrequency, DefaultBaselineFrequency)
	}
	r := n.RouteByID("R3")
	if r == nil {
		t.Fatal("RouteByID(R3) returned nil")
	}
	if len(r.Stops) != 4 {
		t.Errorf("R3 has %d stops, want 4", len(r.Stops))
	}
	if n.RouteByID("R9") != nil {
		t.Error("RouteByID(R9) should return nil")
	}
}

func TestLoadNetwork(t *testing.T) {
	doc := `
name: test-network
baseline_frequency: 5
service_area:
  min_lat: 12.8
  max_lat: 13.2
  min_lng: 77.3
  max_lng: 77.8
routes:
  - id: R1
    name: North Loop
    stops: [A, B, C]
    color: "#112233"
`
	dir := t.TempDir()
	path := filepath.Join(dir, "network.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if n.Name != "test-network" {
		t.Errorf("Name = %q", n.Name)
	}
	if n.BaselineFrequency != 5 {
		t.Errorf("BaselineFrequency = %d, want 5", n.BaselineFrequency)
	}
	if len(n.Routes) != 1 || n.Routes[0].ID != "R1" {
		t.Errorf("unexpected routes: %+v", n.Routes)
	}
	if !n.ServiceArea.Contains(n.ServiceArea.Center()) {
		t.Error("service area should contain its own center")
	}
}

func TestLoadNetworkDefaultsBaseline(t *testing.T) {
	doc := `
name: minimal
routes:
  - id: R1
    stops: [A, B]
`
	path := filepath.Join(t.TempDir(), "network.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := LoadNetwork(path)
	if err != nil {
		t.Fatalf("LoadNetwork: %v", err)
	}
	if n.BaselineFrequency != DefaultBaselineFrequency {
		t.Errorf("BaselineFrequency = %d, want default %d", n.BaselineFrequency, DefaultBaselineFrequency)
	}
}

func TestLoadNetworkRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", "routes: [{id: R1, stops: [A, B]}]"},
		{"no routes", "name: empty\nroutes: []"},
		{"route without id", "name: bad\nroutes: [{stops: [A, B]}]"},
		{"single-stop route", "name: bad\nroutes: [{id: R1, stops: [A]}]"},
		{"malformed yaml", "name: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "network.yaml")
			if err := os.WriteFile(path, []byte(tt.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadNetwork(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadNetworkMissingFile(t *testing.T) {
	if _, err := LoadNetwork(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

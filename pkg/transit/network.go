package transit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cityloop/transitops/pkg/geo"
)

// Network describes the transit network an engine instance operates on:
// the route list, the service-area box used to reject implausible
// positions, and the dispatch baseline the optimizer compares against.
type Network struct {
	Name              string          `yaml:"name" json:"name" validate:"required"`
	Routes            []Route         `yaml:"routes" json:"routes" validate:"min=1,dive"`
	ServiceArea       geo.BoundingBox `yaml:"service_area" json:"service_area"`
	BaselineFrequency int             `yaml:"baseline_frequency" json:"baseline_frequency" validate:"gte=0"`
}

// RouteByID returns the route with the given id, or nil if not found.
func (n *Network) RouteByID(id string) *Route {
	for i := range n.Routes {
		if n.Routes[i].ID == id {
			return &n.Routes[i]
		}
	}
	return nil
}

// LoadNetwork reads a network description from a YAML file.
func LoadNetwork(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading network file: %w", err)
	}

	var n Network
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parsing network YAML: %w", err)
	}

	if err := validator.New().Struct(&n); err != nil {
		return nil, fmt.Errorf("validating network: %w", err)
	}

	if n.BaselineFrequency == 0 {
		n.BaselineFrequency = DefaultBaselineFrequency
	}
	return &n, nil
}

// LoadProject loads a network from a project directory.
// It looks for network.yaml in the given directory.
func LoadProject(projectDir string) (*Network, error) {
	return LoadNetwork(filepath.Join(projectDir, "network.yaml"))
}

// DefaultBaselineFrequency is the assumed dispatch rate, in buses per hour,
// when a network does not configure one.
const DefaultBaselineFrequency = 4

// DefaultNetwork returns the built-in Bengaluru demonstration network.
// It backs the CLI and server when no project directory is given.
func DefaultNetwork() *Network {
	return &Network{
		Name: "Bengaluru Metro Bus",
		Routes: []Route{
			{ID: "R1", Name: "Koramangala - Whitefield", Stops: []string{"Koramangala", "HSR Layout", "Marathahalli", "Whitefield"}, Color: "#3b82f6"},
			{ID: "R2", Name: "Banashankari - Electronic City", Stops: []string{"Banashankari", "BTM Layout", "Silk Board", "Electronic City"}, Color: "#f59e0b"},
			{ID: "R3", Name: "Indiranagar - Airport", Stops: []string{"Indiranagar", "Domlur", "HAL", "Airport"}, Color: "#10b981"},
			{ID: "R4", Name: "Jayanagar - Hebbal", Stops: []string{"Jayanagar", "Lalbagh", "Majestic", "Hebbal"}, Color: "#ef4444"},
			{ID: "R5", Name: "Rajajinagar - Sarjapur", Stops: []string{"Rajajinagar", "Malleswaram", "MG Road", "Sarjapur"}, Color: "#8b5cf6"},
		},
		ServiceArea:       geo.BoundingBox{MinLat: 12.8, MaxLat: 13.2, MinLng: 77.3, MaxLng: 77.8},
		BaselineFrequency: DefaultBaselineFrequency,
	}
}

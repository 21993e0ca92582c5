package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/arxiv-assistant/arxivctl/internal/model"
)

// Manifest is the subset of a docker-compose file this tool reads.
// Only the service map is decoded; service definitions themselves are
// left as raw nodes because compose owns their semantics.
type Manifest struct {
	// Services maps service names to their (opaque) definitions.
	Services map[string]yaml.Node `yaml:"services"`
}

// LoadManifest reads and parses the compose manifest at the given path.
//
// Returns a CLIError with ExitConfigError if the file is missing or not
// valid YAML. The manifest is only used for service-name discovery; a
// manifest compose itself would reject can still load here as long as it
// is well-formed YAML with a services map.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("compose manifest not found at %s", path), err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse compose manifest %s", path), err)
	}

	if len(m.Services) == 0 {
		return nil, model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("compose manifest %s defines no services", path))
	}

	return &m, nil
}

// ServiceNames returns the names of all defined services, sorted for
// deterministic output.
func (m *Manifest) ServiceNames() []string {
	names := make([]string, 0, len(m.Services))
	for name := range m.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasService reports whether the manifest defines the named service.
func (m *Manifest) HasService(name string) bool {
	_, ok := m.Services[name]
	return ok
}

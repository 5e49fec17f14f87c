package catalog

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"project/models"
)

// catalogFile is the YAML document shape for deployments that author their
// own content instead of using the built-in catalog.
type catalogFile struct {
	StartScenario string                    `yaml:"start_scenario"`
	Scenarios     []models.Scenario         `yaml:"scenarios"`
	Archetypes    []models.ArchetypeProfile `yaml:"archetypes"`
	Personas      []models.PersonaProfile   `yaml:"personas"`
}

// LoadFromFile reads a catalog document and runs it through the same
// integrity validation as the built-in content.
func LoadFromFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %q: %w", path, err)
	}

	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %q: %w", path, err)
	}

	log.Printf("INFO: [Catalog] Loading catalog content from %q.", path)
	return New(doc.Scenarios, doc.StartScenario, doc.Archetypes, doc.Personas)
}

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fpt/graspify-cli/internal/infra"
	"github.com/fpt/graspify-cli/internal/repository"
	"github.com/fpt/graspify-cli/pkg/narrow"
)

// Catalog describes the object universe a narrowing session starts from and
// the grasp types that can be tested against it. The definitions are restated
// verbatim in every oracle prompt regardless of which grasp type is chosen.
type Catalog struct {
	Objects     []string `yaml:"objects"`
	GraspTypes  []string `yaml:"grasp_types"`
	Definitions []string `yaml:"definitions"`
}

// DefaultCatalog returns the built-in tabletop object universe
func DefaultCatalog() *Catalog {
	return &Catalog{
		Objects: []string{
			"wine glass", "hammer", "apple", "screwdriver",
			"credit card", "tennis ball", "paintbrush", "laptop",
			"book", "fork", "bottle", "remote control", "cell phone",
			"basketball", "soap bar", "toothbrush", "scissors", "notebook",
			"mug", "key", "banana", "flashlight", "watermelon", "tablet",
		},
		GraspTypes: []string{"power grasp", "precision grasp"},
		Definitions: []string{
			"Power grasp: Usually for larger or heavier objects where fingers wrap fully around.",
			"Precision grasp: Usually for smaller or lighter objects where fingertips are used.",
		},
	}
}

// LoadCatalog loads an object catalog from a YAML file. An empty path yields
// the built-in default catalog.
func LoadCatalog(catalogPath string) (*Catalog, error) {
	if catalogPath == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalogFromRepository(infra.NewFileCatalogRepository(catalogPath))
}

// LoadCatalogFromRepository loads an object catalog from an injected repository
func LoadCatalogFromRepository(repo repository.CatalogRepository) (*Catalog, error) {
	data, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	// Fields left out of the file fall back to the built-in catalog
	applyCatalogDefaults(&catalog)

	if err := ValidateCatalog(&catalog); err != nil {
		return nil, err
	}

	return &catalog, nil
}

// applyCatalogDefaults fills in missing fields from the built-in catalog
func applyCatalogDefaults(catalog *Catalog) {
	defaults := DefaultCatalog()

	if len(catalog.Objects) == 0 {
		catalog.Objects = defaults.Objects
	}
	if len(catalog.GraspTypes) == 0 {
		catalog.GraspTypes = defaults.GraspTypes
	}
	if len(catalog.Definitions) == 0 {
		catalog.Definitions = defaults.Definitions
	}
}

// ValidateCatalog validates a catalog configuration
func ValidateCatalog(catalog *Catalog) error {
	if len(catalog.Objects) == 0 {
		return fmt.Errorf("catalog has no objects")
	}
	if len(catalog.GraspTypes) == 0 {
		return fmt.Errorf("catalog has no grasp types")
	}
	return nil
}

// Universe returns the catalog's objects as a candidate set
func (c *Catalog) Universe() narrow.Set {
	return narrow.NewSet(c.Objects...)
}

// Predicate builds the suitability predicate for a grasp type. The grasp type
// is free text; unknown values are passed through to the oracle as-is.
func (c *Catalog) Predicate(graspType string) narrow.Predicate {
	return narrow.Predicate{
		Name:        graspType,
		Definitions: c.Definitions,
	}
}

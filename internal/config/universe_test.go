package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	universe := catalog.Universe()
	if universe.Len() != 24 {
		t.Errorf("Expected 24 objects in the default universe, got %d", universe.Len())
	}
	if !universe.Contains("wine glass") || !universe.Contains("tablet") {
		t.Errorf("Default universe is missing expected objects: %s", universe.String())
	}

	pred := catalog.Predicate("precision grasp")
	if pred.Name != "precision grasp" {
		t.Errorf("Unexpected predicate name %q", pred.Name)
	}
	if len(pred.Definitions) != 2 {
		t.Errorf("Expected both grasp definitions, got %d", len(pred.Definitions))
	}
}

func TestLoadCatalog_EmptyPathYieldsDefault(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if catalog.Universe().Len() != 24 {
		t.Errorf("Expected default catalog, got %d objects", catalog.Universe().Len())
	}
}

func TestLoadCatalog_FromYAML(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `objects:
  - wrench
  - bolt
  - washer
grasp_types:
  - pinch grasp
definitions:
  - "Pinch grasp: thumb and index finger only."
`
	if err := os.WriteFile(catalogPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}

	catalog, err := LoadCatalog(catalogPath)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if catalog.Universe().Len() != 3 || !catalog.Universe().Contains("wrench") {
		t.Errorf("Unexpected universe: %s", catalog.Universe().String())
	}
	if len(catalog.GraspTypes) != 1 || catalog.GraspTypes[0] != "pinch grasp" {
		t.Errorf("Unexpected grasp types: %v", catalog.GraspTypes)
	}
}

func TestLoadCatalog_PartialFileFallsBackToDefaults(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "objects:\n  - wrench\n  - bolt\n"
	if err := os.WriteFile(catalogPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}

	catalog, err := LoadCatalog(catalogPath)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(catalog.GraspTypes) != 2 {
		t.Errorf("Expected default grasp types, got %v", catalog.GraspTypes)
	}
	if len(catalog.Definitions) != 2 {
		t.Errorf("Expected default definitions, got %v", catalog.Definitions)
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing catalog file")
	}
}

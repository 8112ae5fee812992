package infra

import (
	"fmt"
	"os"
)

// FileCatalogRepository reads an object catalog from a YAML file
type FileCatalogRepository struct {
	catalogPath string
}

// NewFileCatalogRepository creates a new file-based catalog repository
func NewFileCatalogRepository(catalogPath string) *FileCatalogRepository {
	return &FileCatalogRepository{
		catalogPath: catalogPath,
	}
}

func (cr *FileCatalogRepository) Load() ([]byte, error) {
	if _, err := os.Stat(cr.catalogPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog file does not exist: %s", cr.catalogPath)
	}

	data, err := os.ReadFile(cr.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return data, nil
}

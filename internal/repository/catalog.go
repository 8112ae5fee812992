package repository

// CatalogRepository abstracts object catalog persistence
type CatalogRepository interface {
	Load() ([]byte, error)
}

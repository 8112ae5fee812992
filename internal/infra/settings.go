package infra

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const settingsFileName = "settings.json"

// settingsSearchPaths returns candidate settings locations in precedence
// order: a project-local .agents directory first, then the per-user
// ~/.graspify directory.
func settingsSearchPaths() []string {
	paths := []string{filepath.Join(".agents", settingsFileName)}
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".graspify", settingsFileName))
	}
	return paths
}

// FileSettingsRepository persists settings as a JSON file on disk. An empty
// configPath means "search the standard locations".
type FileSettingsRepository struct {
	configPath string
}

// NewFileSettingsRepository creates a file-backed settings repository
func NewFileSettingsRepository(configPath string) *FileSettingsRepository {
	return &FileSettingsRepository{configPath: configPath}
}

func (fr *FileSettingsRepository) Load() ([]byte, error) {
	configPath := fr.configPath
	if configPath == "" {
		foundPath, err := fr.FindSettingsFile()
		if err != nil {
			return nil, err
		}
		if foundPath == "" {
			return nil, errors.New("no settings file found")
		}
		configPath = foundPath
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.Errorf("settings file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read settings file")
	}
	return data, nil
}

func (fr *FileSettingsRepository) Save(data []byte) error {
	configPath := fr.configPath
	if configPath == "" {
		// Overwrite an existing file if one is found, otherwise create the
		// project-local one.
		if foundPath, _ := fr.FindSettingsFile(); foundPath != "" {
			configPath = foundPath
		} else {
			configPath = filepath.Join(".agents", settingsFileName)
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write settings file")
	}
	return nil
}

// FindSettingsFile returns the first existing settings file on the search
// path, or "" when none exists.
func (fr *FileSettingsRepository) FindSettingsFile() (string, error) {
	for _, path := range settingsSearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// InMemorySettingsRepository keeps settings bytes in memory, for tests and
// repository-less defaults.
type InMemorySettingsRepository struct {
	data []byte
}

// NewInMemorySettingsRepository creates an empty in-memory settings repository
func NewInMemorySettingsRepository() *InMemorySettingsRepository {
	return &InMemorySettingsRepository{}
}

func (mr *InMemorySettingsRepository) Load() ([]byte, error) {
	if mr.data == nil {
		return nil, errors.New("no data stored in memory repository")
	}
	return mr.data, nil
}

func (mr *InMemorySettingsRepository) Save(data []byte) error {
	mr.data = append([]byte(nil), data...)
	return nil
}

func (mr *InMemorySettingsRepository) FindSettingsFile() (string, error) {
	return "", nil
}

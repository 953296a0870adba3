// Package storage provides functionality for persisting and restoring the
// ledger aggregate as a single YAML blob.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileStore persists the aggregate to a single file. Saving is
// best-effort: failures are logged and reported, never escalated, and the
// in-memory aggregate keeps working for the session.
type FileStore struct {
	Path          string
	BackupEnabled bool
}

// NewFileStore creates a store over the given path. An empty path falls
// back to DefaultPath.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{Path: path}
}

// DefaultPath is the standard ledger location under the user's home
// directory, with a working-directory fallback when home is unavailable.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "ledger.yaml"
	}
	return filepath.Join(homeDir, ".finance-tracker", "ledger.yaml")
}

// Load reads the persisted aggregate. A missing file is a fresh start and
// a malformed file is recovered from: both return a default aggregate
// seeded with the current calendar month instead of an error.
func (fs *FileStore) Load() (models.AppState, error) {
	data, err := os.ReadFile(fs.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Ledger file not found at %s, starting fresh", fs.Path)
			return initialState(), nil
		}
		return models.AppState{}, fmt.Errorf("error reading ledger file: %w", err)
	}

	var state models.AppState
	if err := yaml.Unmarshal(data, &state); err != nil {
		log.Warnf("Ledger file %s is malformed, reinitializing: %v", fs.Path, err)
		return initialState(), nil
	}

	migrate(&state)

	log.Debugf("Loaded ledger with %d months and %d accounts from %s",
		len(state.Months), len(state.Accounts), fs.Path)
	return state, nil
}

// Save writes the aggregate back to disk, creating the parent directory if
// needed. When BackupEnabled is set, the previous blob is kept as .bak
// before being overwritten.
func (fs *FileStore) Save(state models.AppState) error {
	dir := filepath.Dir(fs.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating ledger directory: %w", err)
	}

	if fs.BackupEnabled {
		if prev, err := os.ReadFile(fs.Path); err == nil {
			if err := os.WriteFile(fs.Path+".bak", prev, 0600); err != nil {
				log.Warnf("Failed to write ledger backup: %v", err)
			}
		}
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling ledger: %w", err)
	}

	if err := os.WriteFile(fs.Path, data, 0600); err != nil {
		return fmt.Errorf("error writing ledger file: %w", err)
	}

	log.Debugf("Saved ledger to %s", fs.Path)
	return nil
}

// migrate applies the backward-compatibility shims for blobs written by
// older versions. The only required one: aggregates predating savings
// goals lack the goals collection entirely.
func migrate(state *models.AppState) {
	if state.Goals == nil {
		state.Goals = []models.Goal{}
	}
	if state.Months == nil {
		state.Months = []models.Month{}
	}
	if state.Accounts == nil {
		state.Accounts = []models.Account{}
	}
	if state.Categories == nil {
		state.Categories = []models.Category{}
	}
}

func initialState() models.AppState {
	year, month := dateutils.CurrentYearMonth()
	return ledger.InitialState(year, month)
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	assert.NoError(t, err)
}

func TestNewFileStore_DefaultPath(t *testing.T) {
	fs := NewFileStore("")
	assert.NotEmpty(t, fs.Path)

	fs = NewFileStore("/tmp/custom.yaml")
	assert.Equal(t, "/tmp/custom.yaml", fs.Path)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "ledger.yaml"))

	state := ledger.InitialState(2026, 7)
	state.Accounts = []models.Account{
		{ID: "savings", Name: "Savings", Color: "#16a34a", IsSavings: true},
	}
	state.Goals = []models.Goal{
		{ID: "goal_1", Title: "Bike", TargetAmount: 300, CreatedDate: "2026-08-01"},
	}

	require.NoError(t, fs.Save(state))

	loaded, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestLoad_MissingFileStartsFresh(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "nope.yaml"))

	state, err := fs.Load()
	require.NoError(t, err)
	require.Len(t, state.Months, 1)
	assert.Equal(t, state.Months[0].ID, state.CurrentMonthID)
	assert.NotNil(t, state.Goals)
}

func TestLoad_MalformedFileReinitializes(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ledger.yaml")
	writeFile(t, file, "{not: valid: yaml: at all}")

	fs := NewFileStore(file)
	state, err := fs.Load()
	require.NoError(t, err)
	require.Len(t, state.Months, 1)
	assert.Equal(t, state.Months[0].ID, state.CurrentMonthID)
}

func TestLoad_MigratesMissingGoals(t *testing.T) {
	// Blobs written before savings goals existed have no goals key
	dir := t.TempDir()
	file := filepath.Join(dir, "ledger.yaml")

	old := map[string]interface{}{
		"accounts":   []map[string]interface{}{{"id": "a", "name": "Checking"}},
		"categories": []interface{}{},
		"months": []map[string]interface{}{
			{"id": "month_2026_0", "name": "January 2026", "year": 2026, "month": 0},
		},
		"currentMonthId": "month_2026_0",
	}
	data, err := yaml.Marshal(old)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0600))

	fs := NewFileStore(file)
	state, err := fs.Load()
	require.NoError(t, err)

	assert.NotNil(t, state.Goals)
	assert.Empty(t, state.Goals)
	assert.Equal(t, "month_2026_0", state.CurrentMonthID)
	assert.Len(t, state.Accounts, 1)
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "nested", "deeper", "ledger.yaml"))

	require.NoError(t, fs.Save(ledger.InitialState(2026, 0)))

	_, err := os.Stat(fs.Path)
	assert.NoError(t, err)
}

func TestSave_BackupKeepsPreviousBlob(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "ledger.yaml"))
	fs.BackupEnabled = true

	first := ledger.InitialState(2026, 0)
	require.NoError(t, fs.Save(first))

	second := ledger.CreateNextMonth(first)
	require.NoError(t, fs.Save(second))

	backup, err := os.ReadFile(fs.Path + ".bak")
	require.NoError(t, err)

	var restored models.AppState
	require.NoError(t, yaml.Unmarshal(backup, &restored))
	assert.Equal(t, first.CurrentMonthID, restored.CurrentMonthID)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FINANCE_LOG_LEVEL",
		"FINANCE_LOG_FORMAT",
		"FINANCE_DATA_FILE",
		"FINANCE_DATA_BACKUP_ENABLED",
		"FINANCE_CSV_DELIMITER",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "", config.Data.File)
	assert.True(t, config.Data.BackupEnabled)
	assert.Equal(t, ",", config.CSV.Delimiter)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	t.Setenv("FINANCE_LOG_LEVEL", "debug")
	t.Setenv("FINANCE_LOG_FORMAT", "json")
	t.Setenv("FINANCE_DATA_FILE", "/tmp/test-ledger.yaml")
	t.Setenv("FINANCE_CSV_DELIMITER", ";")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "/tmp/test-ledger.yaml", config.Data.File)
	assert.Equal(t, ";", config.CSV.Delimiter)
}

func TestInitializeConfig_InvalidLogLevel(t *testing.T) {
	clearTestEnvVars(t)
	t.Setenv("FINANCE_LOG_LEVEL", "shouting")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestInitializeConfig_InvalidDelimiter(t *testing.T) {
	clearTestEnvVars(t)
	t.Setenv("FINANCE_CSV_DELIMITER", ";;")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	dir := t.TempDir()
	content := `log:
  level: warn
  format: json
data:
  backup_enabled: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() {
		require.NoError(t, os.Chdir(cwd))
	}()

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.False(t, config.Data.BackupEnabled)
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	var config Config
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(&config)
	assert.Equal(t, "debug", logger.GetLevel().String())
}

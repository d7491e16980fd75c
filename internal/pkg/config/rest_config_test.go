//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeConfigFile writes yaml config content to a temporary file and returns its path
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "rest-app.yaml")
	err := os.WriteFile(configPath, []byte(content), 0600)
	require.NoError(t, err)

	return configPath
}

func TestInitializeRestConfig(t *testing.T) {
	content := `
port: "8080"
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: test.db
  db_name: testdb
`
	configPath := writeConfigFile(t, content)

	restConfig, err := InitializeRestConfig(configPath)

	require.NoError(t, err)
	require.Equal(t, "8080", restConfig.Port)
	require.Equal(t, "info", restConfig.Logger.LogLevel)
	require.Equal(t, "console", restConfig.Logger.LogType)
	require.Equal(t, SqliteDbType, restConfig.Database.Type)
	require.Equal(t, "test.db", restConfig.Database.DSN)
	require.Equal(t, "testdb", restConfig.Database.DBName)
}

func TestInitializeRestConfigMissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.Error(t, err)
}

func TestInitializeRestConfigInvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing port",
			content: `
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: test.db
  db_name: testdb
`,
		},
		{
			name: "invalid log level",
			content: `
port: "8080"
logger:
  log_level: verbose
  log_type: console
database:
  type: sqlite
  dsn: test.db
  db_name: testdb
`,
		},
		{
			name: "missing database dsn",
			content: `
port: "8080"
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  db_name: testdb
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeConfigFile(t, tt.content)

			_, err := InitializeRestConfig(configPath)

			require.Error(t, err)
		})
	}
}

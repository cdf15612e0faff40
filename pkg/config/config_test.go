package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("google_cloud:\n  project_id: til\n"))
	require.NoError(t, err)

	assert.Equal(t, "til", cfg.GoogleCloud.ProjectID)
	assert.Equal(t, StoreBackendFirestore, cfg.Store.Backend)
	assert.Equal(t, "facts", cfg.Store.Collection)
	assert.Equal(t, 1000, cfg.Store.Limit)
	assert.Equal(t, 8080, cfg.Web.Port)
	assert.Equal(t, LogBackendGCP, cfg.Log.Backend)
	assert.Equal(t, "facts", cfg.Log.ID)
	assert.False(t, cfg.Queue.Enabled)
}

func TestReadConfig(t *testing.T) {
	contents := `
google_cloud:
  project_id: til
  service_account_filename: sa.json
store:
  backend: memory
  collection: facts-staging
  limit: 50
queue:
  enabled: true
  topic: fact-events
  subscription: fact-events-notifier
web:
  port: 9000
  domain: til.example.com
  external_root_url: https://til.example.com
log:
  backend: console
  id: til-web
`
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o600))

	cfg, err := ReadConfig(filename)
	require.NoError(t, err)

	assert.Equal(t, "sa.json", cfg.GoogleCloud.ServiceAccountFilename)
	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
	assert.Equal(t, "facts-staging", cfg.Store.Collection)
	assert.Equal(t, 50, cfg.Store.Limit)
	assert.True(t, cfg.Queue.Enabled)
	assert.Equal(t, "fact-events", cfg.Queue.Topic)
	assert.Equal(t, "fact-events-notifier", cfg.Queue.Subscription)
	assert.Equal(t, 9000, cfg.Web.Port)
	assert.Equal(t, "https://til.example.com", cfg.Web.ExternalRootURL)
	assert.Equal(t, LogBackendConsole, cfg.Log.Backend)
	assert.Equal(t, "til-web", cfg.Log.ID)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

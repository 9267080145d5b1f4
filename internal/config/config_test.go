package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvData, "")
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvFetchTimeout, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		DataSource:   DefaultData,
		Addr:         DefaultAddr,
		LogLevel:     DefaultLogLevel,
		FetchTimeout: DefaultFetchTimeout,
	}, cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(EnvData, "https://example.com/attrs.json")
	t.Setenv(EnvAddr, ":9090")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvFetchTimeout, "5s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/attrs.json", cfg.DataSource)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv(EnvFetchTimeout, "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv(EnvFetchTimeout, "-1s")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ATTRBROWSER_ADDR=:7070\n"), 0o644))
	t.Setenv(EnvAddr, "")
	os.Unsetenv(EnvAddr)

	require.NoError(t, LoadDotEnv(path))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

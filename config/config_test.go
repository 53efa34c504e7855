package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	require.Equal(t, ":8000", cfg.Server.Addr)
	require.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	require.Equal(t, 20*time.Second, cfg.Fetch.Timeout)
	require.Equal(t, 8, cfg.Fetch.MaxRedirects)
	require.EqualValues(t, 8<<20, cfg.Fetch.MaxBodyBytes)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Otel.Endpoint)
	require.Equal(t, 30*time.Second, cfg.Render.Timeout)
	require.Equal(t, "public_profiles", cfg.Platform.ProfileMarker)
	require.Equal(t, "cloudskillsboost.google", cfg.Platform.CanonicalHost)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ARCADE_FETCH_TIMEOUT", "5s")
	t.Setenv("ARCADE_FETCH_MAX_REDIRECTS", "3")
	t.Setenv("ARCADE_LOG_LEVEL", "debug")
	t.Setenv("ARCADE_OTEL_ENDPOINT", "http://localhost:4318")

	cfg, err := Load(NewViper())
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	require.Equal(t, 3, cfg.Fetch.MaxRedirects)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "http://localhost:4318", cfg.Otel.Endpoint)
}

func TestLoadPort(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := Load(NewViper())
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Addr)

	t.Setenv("ARCADE_SERVER_ADDR", "127.0.0.1:7000")
	cfg, err = Load(NewViper())
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"ARCADE_FETCH_TIMEOUT":       "0s",
		"ARCADE_FETCH_MAX_REDIRECTS": "0",
		"ARCADE_LOG_LEVEL":           "loud",
		"ARCADE_PLATFORM":            "nowhere",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load(NewViper())
			require.Error(t, err)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	v := NewViper()
	require.NoError(t, ReadFile(v), "missing file is not an error")

	yaml := "fetch:\n  max_redirects: 4\nlog:\n  development: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arcadetracker.yaml"), []byte(yaml), 0o644))

	v = NewViper()
	require.NoError(t, ReadFile(v))
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Fetch.MaxRedirects)
	require.True(t, cfg.Log.Development)
}

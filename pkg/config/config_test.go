package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
}

func TestBackendURLResolutionOrder(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://fallback:5000")
	t.Setenv("BACKEND_API_URL", "http://primary:5000/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://primary:5000", cfg.Backend.BaseURL, "BACKEND_API_URL wins and trailing slash is trimmed")
}

func TestBackendURLSecondaryName(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://fallback:5000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://fallback:5000", cfg.Backend.BaseURL)
}

func TestUpstreamTimeoutZeroDisablesDeadline(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Backend.Timeout)
}

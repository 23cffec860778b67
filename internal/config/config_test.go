package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: "file-secret"
server:
  port: "9090"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	// Untouched values fall back to defaults
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "168h", cfg.JWT.TokenExpiration)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: "file-secret"
`)

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("MONGODB_NAME", "campusgate_test")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "campusgate_test", cfg.Database.Name)
}

func TestLoadConfigFailsWithoutJWTSecret(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "8080"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfigRejectsBadDurations(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: "s"
  token_expiration: "one week"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

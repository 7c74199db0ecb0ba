package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  app_env: dev
provider:
  issuer: https://id.example.com
  authorization_endpoint: https://id.example.com/oauth2/authorize
  token_endpoint: https://id.example.com/oauth2/token
  userinfo_endpoint: https://id.example.com/userinfo
  jwks_uri: https://id.example.com/.well-known/jwks.json
  response_types_supported: ["code", "code id_token token"]
  subject_types_supported: ["public"]
  id_token_signing_alg_values_supported: ["RS256"]
  scopes_supported: ["openid", "profile"]
codes:
  ttl: 5m
store:
  kind: redis
  redis:
    addr: localhost:6379
    db: 2
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, "redis", cfg.Store.Kind)
	assert.Equal(t, "localhost:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, 5*time.Minute, cfg.CodeTTL())

	pc := cfg.ProviderConfig()
	assert.Equal(t, "https://id.example.com", pc.Issuer)
	assert.Equal(t, []string{"code", "code id_token token"}, pc.ResponseTypesSupported)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "provider:\n  issuer: https://id.example.com\n"))
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Kind)
	assert.Equal(t, 32, cfg.Codes.Length)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10*time.Minute, cfg.CodeTTL())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OIDC_ISSUER", "https://override.example.com")
	t.Setenv("STORE_KIND", "MEMORY")
	t.Setenv("AUTH_CODE_TTL", "90s")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "https://override.example.com", cfg.Provider.Issuer)
	assert.Equal(t, "memory", cfg.Store.Kind)
	assert.Equal(t, 90*time.Second, cfg.CodeTTL())
}

func TestLoad_BadTTL(t *testing.T) {
	_, err := Load(writeConfig(t, "codes:\n  ttl: soon\n"))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/axonops-importer/internal/errors"
	"github.com/olusolaa/axonops-importer/internal/log"
)

func baseViper() *viper.Viper {
	v := viper.New()
	v.Set("server.host", "axonops.example.com:8080")
	v.Set("server.api_key", "secret-key")
	v.Set("cluster.org_id", "acme")
	v.Set("cluster.name", "prod")
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), baseViper())
	require.NoError(t, err)

	assert.Equal(t, "http", cfg.Server.Protocol)
	assert.Equal(t, "AxonApi", cfg.Server.TokenType)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 20, cfg.Server.RateLimitRPS)
	assert.Equal(t, "kafka", cfg.Cluster.Type)
	assert.Equal(t, DefaultOutputDir, cfg.Output.Dir)
	assert.Equal(t, log.LevelInfo, cfg.Settings.LogLevel)
	assert.Equal(t, "text", cfg.Settings.ReporterType)
	assert.Empty(t, cfg.Settings.Kinds)
	assert.Equal(t, "http://axonops.example.com:8080", cfg.BaseURL())
}

func TestLoad_StringValuesAreDecoded(t *testing.T) {
	v := baseViper()
	v.Set("server.timeout", "5s")
	v.Set("server.protocol", "HTTPS")
	v.Set("settings.kinds", "topics, acls")

	cfg, err := Load(context.Background(), v)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "https", cfg.Server.Protocol)
	assert.Equal(t, []string{"topics", "acls"}, cfg.Settings.Kinds)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "importer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: axonops.internal
  protocol: https
  api_key: from-file
  token_type: Bearer
  rate_limit_rps: 5
cluster:
  org_id: acme
  name: staging
output:
  dir: /tmp/out
settings:
  reporter: json
  kinds: [topics, schemas]
`), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", cfg.Server.TokenType)
	assert.Equal(t, 5, cfg.Server.RateLimitRPS)
	assert.Equal(t, "staging", cfg.Cluster.Name)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.Equal(t, "json", cfg.Settings.ReporterType)
	assert.Equal(t, []string{"topics", "schemas"}, cfg.Settings.Kinds)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
		field string
	}{
		{"missing host", "server.host", "", "Host"},
		{"bad protocol", "server.protocol", "ftp", "Protocol"},
		{"bad token type", "server.token_type", "Basic", "TokenType"},
		{"rps too high", "server.rate_limit_rps", 500, "RateLimitRPS"},
		{"rps too low", "server.rate_limit_rps", -1, "RateLimitRPS"},
		{"missing org", "cluster.org_id", "", "OrgID"},
		{"missing cluster", "cluster.name", "", "Name"},
		{"bad reporter", "settings.reporter", "xml", "ReporterType"},
		{"bad log level", "settings.log_level", "trace", "LogLevel"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := baseViper()
			v.Set(tc.key, tc.value)

			_, err := Load(context.Background(), v)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.CodeConfigValidation))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestValidate_MasksAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.APIKey = ""
	cfg.Server.Host = "h"
	cfg.Cluster.OrgID = "o"
	cfg.Cluster.Name = "c"

	err := cfg.Validate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIKey")

	cfg.Server.APIKey = "super-secret"
	cfg.Server.Protocol = "gopher"
	err = cfg.Validate(context.Background())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "super-secret")
}

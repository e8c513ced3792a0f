package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"FLUENTCRM_API_URL", "FLUENTCRM_API_USERNAME", "FLUENTCRM_API_PASSWORD",
		"MCP_AUTH_TOKEN", "PORT", "MCP_LANG", "KEEPALIVE_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Empty(t, cfg.APIUsername)
	assert.Empty(t, cfg.Port)
	assert.Equal(t, "en", cfg.Lang)
	assert.Zero(t, cfg.KeepAlive)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FLUENTCRM_API_URL", "https://crm.example.com/wp-json/fluent-crm/v2")
	t.Setenv("FLUENTCRM_API_USERNAME", "admin")
	t.Setenv("FLUENTCRM_API_PASSWORD", "app-password")
	t.Setenv("MCP_AUTH_TOKEN", "secret")
	t.Setenv("PORT", "8080")
	t.Setenv("MCP_LANG", "pl")
	t.Setenv("KEEPALIVE_INTERVAL", "5m")

	cfg := Load()
	assert.Equal(t, "https://crm.example.com/wp-json/fluent-crm/v2", cfg.APIURL)
	assert.Equal(t, "admin", cfg.APIUsername)
	assert.Equal(t, "app-password", cfg.APIPassword)
	assert.Equal(t, "secret", cfg.AuthToken)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "pl", cfg.Lang)
	assert.Equal(t, 5*time.Minute, cfg.KeepAlive)
}

func TestKeepAliveParsing(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"duration string", "45s", 45 * time.Second},
		{"bare seconds", "300", 300 * time.Second},
		{"garbage falls back", "soon", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KEEPALIVE_INTERVAL", tt.value)
			assert.Equal(t, tt.want, Load().KeepAlive)
		})
	}
}

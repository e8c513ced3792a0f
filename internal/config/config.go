// Package config loads process-level configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIURL is the placeholder FluentCRM REST base used when no URL is
// configured. Real deployments always override it.
const DefaultAPIURL = "https://your-domain.com/wp-json/fluent-crm/v2"

// Config contains server configuration values shared by both transports.
type Config struct {
	APIURL      string
	APIUsername string
	APIPassword string

	AuthToken string        // bearer token guarding /mcp; empty leaves the endpoint open
	Port      string        // empty selects stdio mode
	Lang      string        // locale used for tool descriptions
	KeepAlive time.Duration // self-probe interval; zero disables the probe
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		APIURL:      getEnv("FLUENTCRM_API_URL", DefaultAPIURL),
		APIUsername: os.Getenv("FLUENTCRM_API_USERNAME"),
		APIPassword: os.Getenv("FLUENTCRM_API_PASSWORD"),
		AuthToken:   os.Getenv("MCP_AUTH_TOKEN"),
		Port:        os.Getenv("PORT"),
		Lang:        getEnv("MCP_LANG", "en"),
		KeepAlive:   getEnvDuration("KEEPALIVE_INTERVAL", 0),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvDuration accepts either a Go duration string ("5m") or a bare number
// of seconds ("300").
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

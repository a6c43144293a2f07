package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, DefaultLocationConfig(), cfg.Location)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, "https://api.zippopotam.us", cfg.Providers.ZippopotamBaseURL)
	assert.Equal(t, 50, cfg.Providers.MaxRows)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
log:
  level: debug
  format: json
location:
  cacheExpiry: 30m
  maxRetries: 1
  enableTimezoneLookup: true
providers:
  geonamesUsername: workplace
`), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Location.CacheExpiry)
	assert.Equal(t, 1, cfg.Location.MaxRetries)
	assert.True(t, cfg.Location.EnableTimezoneLookup)
	assert.True(t, cfg.Location.CacheEnabled, "unset keys keep their defaults")
	assert.Equal(t, "workplace", cfg.Providers.GeonamesUsername)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WORKPLACE_GEO_SERVER_PORT", "7070")
	t.Setenv("WORKPLACE_GEO_LOCATION_REQUESTTIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Location.RequestTimeout)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080, GinMode: "release"},
			Location: DefaultLocationConfig(),
			Cache:    CacheConfig{Backend: "memory"},
			Providers: ProvidersConfig{
				ZippopotamBaseURL: "https://api.zippopotam.us",
				MaxRows:           10,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "bad gin mode", mutate: func(c *Config) { c.Server.GinMode = "loud" }, wantErr: true},
		{name: "zero expiry", mutate: func(c *Config) { c.Location.CacheExpiry = 0 }, wantErr: true},
		{name: "too many retries", mutate: func(c *Config) { c.Location.MaxRetries = 11 }, wantErr: true},
		{name: "redis without url", mutate: func(c *Config) { c.Cache.Backend = "redis" }, wantErr: true},
		{name: "redis with url", mutate: func(c *Config) {
			c.Cache.Backend = "redis"
			c.Cache.RedisURL = "redis://localhost:6379/0"
		}},
		{name: "unknown backend", mutate: func(c *Config) { c.Cache.Backend = "memcached" }, wantErr: true},
		{name: "bad provider url", mutate: func(c *Config) { c.Providers.ZippopotamBaseURL = "not a url" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level}}
			logger := cfg.NewLogger()
			assert.True(t, logger.Enabled(t.Context(), tt.want))
			if tt.want > slog.LevelDebug {
				assert.False(t, logger.Enabled(t.Context(), tt.want-4))
			}
		})
	}
}

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Location  LocationConfig
	Cache     CacheConfig
	Providers ProvidersConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            int    `validate:"min=1,max=65535"`
	GinMode         string `validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// LocationConfig tunes the location resolver. It can be changed at runtime
// through the admin API.
type LocationConfig struct {
	CacheEnabled   bool          `json:"cacheEnabled"`
	CacheExpiry    time.Duration `json:"cacheExpiry" validate:"gt=0" swaggertype:"integer"`
	RequestTimeout time.Duration `json:"requestTimeout" validate:"gt=0" swaggertype:"integer"`
	MaxRetries     int           `json:"maxRetries" validate:"min=0,max=10"`
	RetryDelay     time.Duration `json:"retryDelay" validate:"min=0" swaggertype:"integer"`

	EnablePostalCodeLookup bool `json:"enablePostalCodeLookup"`
	EnableCoordinates      bool `json:"enableCoordinates"`
	EnableTimezoneLookup   bool `json:"enableTimezoneLookup"`
}

// CacheConfig selects the postal code cache backend
type CacheConfig struct {
	Backend   string `validate:"oneof=memory redis"`
	RedisURL  string `validate:"required_if=Backend redis"`
	KeyPrefix string
}

// ProvidersConfig holds the upstream postal code providers
type ProvidersConfig struct {
	ZippopotamBaseURL string `validate:"required,url"`
	GeonamesBaseURL   string `validate:"omitempty,url"`
	GeonamesUsername  string // geonames is skipped when empty
	MaxRows           int    `validate:"min=1,max=1000"`
}

// Load reads configuration from the default search paths and environment variables
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from an explicit file, or from the default
// search paths when path is empty.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.workplace-geo")
	}

	setDefaults(v)

	// Read from environment variables, e.g. WORKPLACE_GEO_LOCATION_CACHEEXPIRY=1h
	v.SetEnvPrefix("WORKPLACE_GEO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.shutdowntimeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	d := DefaultLocationConfig()
	v.SetDefault("location.cacheenabled", d.CacheEnabled)
	v.SetDefault("location.cacheexpiry", d.CacheExpiry)
	v.SetDefault("location.requesttimeout", d.RequestTimeout)
	v.SetDefault("location.maxretries", d.MaxRetries)
	v.SetDefault("location.retrydelay", d.RetryDelay)
	v.SetDefault("location.enablepostalcodelookup", d.EnablePostalCodeLookup)
	v.SetDefault("location.enablecoordinates", d.EnableCoordinates)
	v.SetDefault("location.enabletimezonelookup", d.EnableTimezoneLookup)

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redisurl", "")
	v.SetDefault("cache.keyprefix", "workplace-geo:postal:")

	v.SetDefault("providers.zippopotambaseurl", "https://api.zippopotam.us")
	v.SetDefault("providers.geonamesbaseurl", "http://api.geonames.org")
	v.SetDefault("providers.geonamesusername", "")
	v.SetDefault("providers.maxrows", 50)
}

// DefaultLocationConfig returns the resolver defaults
func DefaultLocationConfig() LocationConfig {
	return LocationConfig{
		CacheEnabled:           true,
		CacheExpiry:            24 * time.Hour,
		RequestTimeout:         5 * time.Second,
		MaxRetries:             3,
		RetryDelay:             time.Second,
		EnablePostalCodeLookup: true,
		EnableCoordinates:      true,
		EnableTimezoneLookup:   false,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tag constraints of the whole configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks the resolver settings on their own, e.g. after a runtime update
func (c LocationConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid location config: %w", err)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

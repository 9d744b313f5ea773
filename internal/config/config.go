package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"daycast/internal/locale"
	"daycast/internal/providers/openmeteo"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Date anchors select which calendar "today" is computed in.
const (
	DateAnchorLocal    = "local"    // process-local calendar
	DateAnchorLocation = "location" // calendar of the queried coordinates
)

var ErrInvalidDateAnchor = errors.New("invalid date anchor")

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	App      AppConfig
	Upstream UpstreamConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Locale     string // BCP 47 identifier used for date labels
	DateAnchor string // local, location
}

// UpstreamConfig holds forecast API client configuration
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from a .env file, a config file and environment variables
func Load() (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.daycast")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.locale", locale.Default)
	v.SetDefault("app.dateanchor", DateAnchorLocal)
	v.SetDefault("upstream.baseurl", openmeteo.BaseForecastURL)
	v.SetDefault("upstream.timeout", 10*time.Second)

	// DAYCAST_SERVER_PORT, DAYCAST_APP_LOCALE, ...
	v.SetEnvPrefix("DAYCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
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

// Validate checks values that viper cannot type-check on its own
func (c *Config) Validate() error {
	if _, err := locale.New(c.App.Locale); err != nil {
		return fmt.Errorf("app.locale: %w", err)
	}

	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.ginmode must be debug, release or test, got %q", c.Server.GinMode)
	}

	switch strings.ToLower(c.App.DateAnchor) {
	case DateAnchorLocal, DateAnchorLocation:
	default:
		return fmt.Errorf("app.dateanchor: %w %q", ErrInvalidDateAnchor, c.App.DateAnchor)
	}

	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream.timeout must be positive, got %s", c.Upstream.Timeout)
	}

	return nil
}

// AnchorAtLocation reports whether dates are computed in the coordinates' timezone
func (c *Config) AnchorAtLocation() bool {
	return strings.EqualFold(c.App.DateAnchor, DateAnchorLocation)
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

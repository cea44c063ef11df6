// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// SpotlightMode controls whether display names are looked up with mdls.
type SpotlightMode string

// Spotlight modes.
const (
	SpotlightAuto SpotlightMode = "auto"
	SpotlightOn   SpotlightMode = "on"
	SpotlightOff  SpotlightMode = "off"
)

// Config holds the application configuration.
type Config struct {
	DatabasePath  string
	ExportDir     string
	LookupTimeout time.Duration
	Spotlight     SpotlightMode
	BarWidth      int
	LogLevel      string
	Notify        bool
}

// Default values
const (
	defaultLookupTimeout = 5 * time.Second
	defaultBarWidth      = 30
	defaultLogLevel      = "warn"
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		DatabasePath:  expandHome(getEnvString("SCREENTIME_DB_PATH", getDefaultDatabasePath())),
		ExportDir:     expandHome(getEnvString("SCREENTIME_EXPORT_DIR", ".")),
		LookupTimeout: getEnvDuration("SCREENTIME_LOOKUP_TIMEOUT", defaultLookupTimeout),
		Spotlight:     SpotlightMode(strings.ToLower(getEnvString("SCREENTIME_SPOTLIGHT", string(SpotlightAuto)))),
		BarWidth:      getEnvInt("SCREENTIME_BAR_WIDTH", defaultBarWidth),
		LogLevel:      getEnvString("SCREENTIME_LOG_LEVEL", defaultLogLevel),
		Notify:        getEnvBool("SCREENTIME_NOTIFY", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values for consistency.
func (c *Config) Validate() error {
	switch c.Spotlight {
	case SpotlightAuto, SpotlightOn, SpotlightOff:
	default:
		return fmt.Errorf("SCREENTIME_SPOTLIGHT must be auto, on or off, got %q", c.Spotlight)
	}
	if c.BarWidth < 1 {
		return fmt.Errorf("SCREENTIME_BAR_WIDTH must be positive, got %d", c.BarWidth)
	}
	if c.LookupTimeout <= 0 {
		return fmt.Errorf("SCREENTIME_LOOKUP_TIMEOUT must be positive, got %s", c.LookupTimeout)
	}
	return nil
}

// UseSpotlight reports whether mdls lookups should be enabled on this host.
func (c *Config) UseSpotlight() bool {
	switch c.Spotlight {
	case SpotlightOn:
		return true
	case SpotlightOff:
		return false
	default:
		return runtime.GOOS == "darwin"
	}
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "screentime", ".env"),
			filepath.Join(home, ".screentime", ".env"),
		)
	}

	return paths
}

// getDefaultDatabasePath returns the location of the macOS Knowledge store.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "knowledgeC.db"
	}
	return filepath.Join(home, "Library", "Application Support", "Knowledge", "knowledgeC.db")
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

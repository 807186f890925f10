package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FallbackBackendURL is used when BACKEND_URL is not set.
const FallbackBackendURL = "https://api.studio.example.com"

// EnvMarker selects which environment variable names show up in diagnostics.
const EnvMarker = "BACKEND"

type Config struct {
	BackendURL         string        `yaml:"backend_url,omitempty"`
	FallbackBackendURL string        `yaml:"-"`
	Port               string        `yaml:"port,omitempty"`
	Prefork            bool          `yaml:"prefork,omitempty"`
	LogRequests        bool          `yaml:"log_requests,omitempty"`
	Timeout            time.Duration `yaml:"-"`
	TimeoutSeconds     int           `yaml:"timeout,omitempty"`
	EnvMarker          string        `yaml:"-"`
	Quiet              bool          `yaml:"-"`

	Environ func() []string  `yaml:"-"`
	Now     func() time.Time `yaml:"-"`
}

// Default returns the built-in configuration, before env or file overrides.
func Default() Config {
	return Config{
		FallbackBackendURL: FallbackBackendURL,
		Port:               "8080",
		Timeout:            15 * time.Second,
		EnvMarker:          EnvMarker,
		Environ:            os.Environ,
		Now:                time.Now,
	}
}

// FromEnv builds a Config using lookup for environment access.
// Pass os.LookupEnv in production.
func FromEnv(lookup func(string) (string, bool)) Config {
	cfg := Default()

	if v, ok := lookup("BACKEND_URL"); ok {
		cfg.BackendURL = strings.TrimSpace(v)
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		cfg.Port = v
	}
	if v, ok := lookup("PREFORK"); ok {
		cfg.Prefork = v == "true"
	}
	if v, ok := lookup("LOG_REQUESTS"); ok {
		cfg.LogRequests = v == "true"
	}
	if v, ok := lookup("HTTP_TIMEOUT"); ok && v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

// LoadFile overlays the YAML file at path on top of cfg.
// An empty path or a missing file leaves cfg untouched.
func LoadFile(path string, cfg Config) (Config, error) {
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	overlay := cfg
	overlay.TimeoutSeconds = 0
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return cfg, fmt.Errorf("syntax error in config file '%s': %w", path, err)
	}
	if overlay.TimeoutSeconds > 0 {
		overlay.Timeout = time.Duration(overlay.TimeoutSeconds) * time.Second
	}
	overlay.BackendURL = strings.TrimSpace(overlay.BackendURL)

	return overlay, nil
}

// Origin is the backend origin proxy routes forward to.
func (c Config) Origin() string {
	origin := c.BackendURL
	if origin == "" {
		origin = c.FallbackBackendURL
	}
	return strings.TrimRight(origin, "/")
}

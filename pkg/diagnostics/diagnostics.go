package diagnostics

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/andesco/studio-gateway/pkg/config"
)

// NotSet is reported in place of an unset backend URL.
const NotSet = "NOT SET"

// TimestampLayout is RFC 3339 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Report struct {
	BackendURL  string   `json:"backendUrl"`
	FallbackURL string   `json:"fallbackUrl"`
	EnvVars     []string `json:"envVars"`
	Timestamp   string   `json:"timestamp"`
}

// Snapshot describes cfg and the current environment. Only variable names are
// reported, never their values.
func Snapshot(cfg config.Config) Report {
	environ := cfg.Environ
	if environ == nil {
		environ = os.Environ
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	backendURL := cfg.BackendURL
	if backendURL == "" {
		backendURL = NotSet
	}

	return Report{
		BackendURL:  backendURL,
		FallbackURL: cfg.FallbackBackendURL,
		EnvVars:     matchingNames(environ(), cfg.EnvMarker),
		Timestamp:   now().UTC().Format(TimestampLayout),
	}
}

func matchingNames(environ []string, marker string) []string {
	names := []string{}
	if marker == "" {
		return names
	}
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.Contains(name, marker) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

package version

import (
	"runtime"
	"strings"
)

// Overridden at build time with -ldflags "-X github.com/kedare/metro/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info contains metadata about the compiled binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	Platform  string
	GoVersion string
}

// Get returns build metadata, normalizing empty values.
func Get() Info {
	return Info{
		Version:   fallback(Version, "dev"),
		Commit:    fallback(Commit, "unknown"),
		BuildDate: fallback(BuildDate, "unknown"),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion: runtime.Version(),
	}
}

// UserAgent is sent with every request to the status endpoint.
func UserAgent() string {
	return "metro/" + strings.TrimPrefix(fallback(Version, "dev"), "v")
}

func fallback(value, defaultValue string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultValue
	}

	return value
}

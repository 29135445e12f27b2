// Package version holds build metadata injected via -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/HerbHall/salesdesk/internal/version.Version=v0.2.0 ..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Short returns just the version string.
func Short() string {
	return Version
}

// Info returns a one-line human readable build description.
func Info() string {
	return fmt.Sprintf("salesdesk %s (commit %s, built %s, %s/%s, %s)",
		Version, GitCommit, BuildDate, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// Map returns build metadata for JSON responses.
func Map() map[string]string {
	return map[string]string{
		"version":    Version,
		"git_commit": GitCommit,
		"build_date": BuildDate,
		"go_version": runtime.Version(),
	}
}

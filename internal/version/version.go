// Package version provides build version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the semantic version (injected at build time via -ldflags)
	version = "dev"
	// Commit is the git commit hash (injected at build time via -ldflags)
	commit = "none"
	// Date is the build date (injected at build time via -ldflags)
	date = "unknown"
)

// readBuildInfo is replaced in tests
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the release version. Builds without -ldflags fall back
// to the module version recorded by `go install`, then to "dev".
func GetVersion() string {
	if version != "dev" {
		return version
	}

	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}

	return version
}

// GetCommit returns the git commit hash, falling back to the VCS revision
// stamped by the Go toolchain.
func GetCommit() string {
	if commit != "none" {
		return commit
	}

	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}

	return commit
}

// GetDate returns the build date.
func GetDate() string {
	return date
}

// GetFullVersion returns version with commit, date and platform info
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s/%s)", GetVersion(), GetCommit(), GetDate(), runtime.GOOS, runtime.GOARCH)
}

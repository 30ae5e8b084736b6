// Package version derives the build identifier reported in logs, the
// health endpoint, and user-agent strings. An -ldflags override wins,
// then the VCS revision stamped by the Go toolchain, then "dev".
package version

import "runtime/debug"

// AppName prefixes version strings.
const AppName = "conveyor"

// commitOverride is injected with -ldflags for builds without a .git
// directory (container builds from a source tarball).
var commitOverride string

// GitCommit is the short commit hash, or "dev" when no revision is
// known (go test, non-git checkouts).
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commitOverride != "" {
		return shortCommit(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shortCommit(s.Value)
			}
		}
	}
	return "dev"
}

func shortCommit(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "conveyor/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}

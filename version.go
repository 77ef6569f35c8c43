// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package toolman holds the module-wide version information the CLI's
// version subcommand reports.
package toolman

import (
	"fmt"
	"runtime"
)

// Version information.
// These values can be overridden at build time using -ldflags.
//
// Example:
//
//	go build -ldflags "-X github.com/gizzahub/toolman.GitCommit=$(git rev-parse HEAD)"
var (
	// Version is the current release version, following semantic versioning.
	// Format: MAJOR.MINOR.PATCH[-PRERELEASE], without a leading "v"
	// (FullVersion adds it).
	Version = "0.1.0"

	// GitCommit is the git commit SHA of the build, set during the build
	// process.
	GitCommit = "unknown"

	// BuildDate is the date the binary was built, set during the build
	// process.
	BuildDate = "unknown"
)

// VersionInfo returns detailed version information as a map.
func VersionInfo() map[string]string {
	return map[string]string{
		"version":   Version,
		"gitCommit": GitCommit,
		"buildDate": BuildDate,
		"goVersion": runtime.Version(),
	}
}

// VersionString returns a formatted version string, e.g.
// "toolman version v0.1.0 (commit: a1b2c3d, built: 2026-01-02)".
func VersionString() string {
	return fmt.Sprintf("toolman version v%s (commit: %s, built: %s)",
		Version, GitCommit, BuildDate)
}

// ShortVersion returns just the version number without a "v" prefix.
func ShortVersion() string {
	return Version
}

// FullVersion returns the version with a "v" prefix.
func FullVersion() string {
	return "v" + Version
}

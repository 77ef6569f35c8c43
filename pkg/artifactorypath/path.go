// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package artifactorypath builds the canonical storage path an artifact
// repository stores a tool release under, and validates the inputs that
// feed it.
package artifactorypath

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var validOS = []string{"windows", "macos", "linux"}
var validArch = []string{"x86_64", "arm64", "aarch64", "i686"}

// Generate builds "artifactory/<repo>/<tool>/<version>/<tool>-<version>-<os>[-<arch>].zip",
// validating version, os and arch along the way. arch may be empty to omit
// the architecture segment.
func Generate(repo, tool, version, operatingSystem, arch string) (string, error) {
	if err := checkVersion(version); err != nil {
		return "", err
	}
	if err := checkOneOf("operating system", operatingSystem, validOS); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%s-%s-%s", tool, version, operatingSystem)
	if arch != "" {
		if err := checkOneOf("architecture", arch, validArch); err != nil {
			return "", err
		}
		fileName += "-" + arch
	}
	fileName += ".zip"

	return fmt.Sprintf("artifactory/%s/%s/%s/%s", repo, tool, version, fileName), nil
}

func checkVersion(version string) error {
	if !strings.HasPrefix(version, "v") {
		return fmt.Errorf("invalid version: %s. versions must start with a v", version)
	}
	if _, err := semver.StrictNewVersion(version[1:]); err != nil {
		return fmt.Errorf("invalid version: %s: %w", version, err)
	}
	return nil
}

func checkOneOf(label, value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("invalid %s: %s. must be one of: %s", label, value, strings.Join(allowed, ", "))
}

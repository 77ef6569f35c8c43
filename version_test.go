// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package toolman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionStringIncludesCommitAndDate(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	Version, GitCommit, BuildDate = "1.2.3", "abc123", "2026-01-02"
	assert.Equal(t, "toolman version v1.2.3 (commit: abc123, built: 2026-01-02)", VersionString())
}

func TestFullVersionAddsVPrefix(t *testing.T) {
	defer func(v string) { Version = v }(Version)

	Version = "1.2.3"
	assert.Equal(t, "v1.2.3", FullVersion())
}

func TestVersionInfoIncludesGoVersion(t *testing.T) {
	info := VersionInfo()
	assert.NotEmpty(t, info["goVersion"])
	assert.Equal(t, Version, info["version"])
}

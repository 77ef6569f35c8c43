// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package artifactorypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSimplePath(t *testing.T) {
	path, err := Generate("repo", "tool_name", "v0.1.0", "macos", "")
	require.NoError(t, err)
	assert.Equal(t, "artifactory/repo/tool_name/v0.1.0/tool_name-v0.1.0-macos.zip", path)
}

func TestGeneratePathWithArch(t *testing.T) {
	path, err := Generate("repo", "tool_name", "v0.1.0", "macos", "arm64")
	require.NoError(t, err)
	assert.Equal(t, "artifactory/repo/tool_name/v0.1.0/tool_name-v0.1.0-macos-arm64.zip", path)
}

func TestGenerateRejectsVersionWithoutVPrefix(t *testing.T) {
	_, err := Generate("repo", "tool_name", "0.1.0", "macos", "arm64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start with a v")
}

func TestGenerateRejectsIncompleteVersion(t *testing.T) {
	_, err := Generate("repo", "tool_name", "v0.1", "macos", "arm64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid version")
}

func TestGenerateRejectsUnknownOS(t *testing.T) {
	_, err := Generate("repo", "tool_name", "v0.1.0", "fake_os", "arm64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid operating system")
	assert.Contains(t, err.Error(), "windows, macos, linux")
}

func TestGenerateRejectsUnknownArch(t *testing.T) {
	_, err := Generate("repo", "tool_name", "v0.1.0", "macos", "fake_arch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid architecture")
	assert.Contains(t, err.Error(), "x86_64, arm64, aarch64, i686")
}

// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package clierr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigParseErrorIncludesHelpAndUnwraps(t *testing.T) {
	underlying := errors.New("bare key without value")
	err := &ConfigParseError{Path: "/tmp/toolman.toml", Err: underlying}

	assert.Contains(t, err.Error(), "/tmp/toolman.toml")
	assert.Contains(t, err.Error(), "bare key without value")
	assert.Contains(t, err.Error(), "[tools]")
	assert.Same(t, underlying, errors.Unwrap(err))
}

func TestAuthParseErrorIncludesHelpAndUnwraps(t *testing.T) {
	underlying := errors.New("invalid TOML")
	err := &AuthParseError{Path: "/tmp/auth.toml", Err: underlying}

	assert.Contains(t, err.Error(), "/tmp/auth.toml")
	assert.Contains(t, err.Error(), "github = ")
	assert.Same(t, underlying, errors.Unwrap(err))
}

func TestToolCacheParseErrorUnwraps(t *testing.T) {
	underlying := errors.New("unexpected end of JSON input")
	err := &ToolCacheParseError{Path: "/tmp/tool-cache.json", Err: underlying}

	assert.Contains(t, err.Error(), "/tmp/tool-cache.json")
	assert.Same(t, underlying, errors.Unwrap(err))
}

func TestToolNotInstalledErrorListsKnownAliases(t *testing.T) {
	err := &ToolNotInstalledError{
		Name:         "stylua",
		Cwd:          "/home/user/project",
		KnownAliases: []string{"darklua", "selene"},
	}

	msg := err.Error()
	assert.Contains(t, msg, `"stylua"`)
	assert.Contains(t, msg, "/home/user/project")
	assert.Contains(t, msg, "darklua, selene")
}

func TestToolNotInstalledErrorOmitsHintWhenNoAliasesKnown(t *testing.T) {
	err := &ToolNotInstalledError{Name: "stylua", Cwd: "/home/user/project"}

	assert.NotContains(t, err.Error(), "Tools known from this directory")
}

func TestInstallFailedErrorListsEachAliasSorted(t *testing.T) {
	err := &InstallFailedError{Failures: map[string]error{
		"zed":   errors.New("no compatible version"),
		"apple": errors.New("request failed"),
	}}

	msg := err.Error()
	assert.Contains(t, msg, "failed to install 2 tool(s)")
	assert.Less(t, indexOf(msg, "apple"), indexOf(msg, "zed"))
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

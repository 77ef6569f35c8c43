// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package clierr

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigParseError reports a manifest file that exists but failed to
// deserialize. Its Error text includes a worked example so the user can fix
// the file without consulting documentation.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("unable to parse manifest file (at %s): %s\n\n%s", e.Path, e.Err, configHelp)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// AuthParseError reports an auth.toml or artifactory-auth.json file that
// exists but failed to deserialize.
type AuthParseError struct {
	Path string
	Err  error
}

func (e *AuthParseError) Error() string {
	return fmt.Sprintf("unable to parse authentication file (at %s): %s\n\n%s", e.Path, e.Err, authHelp)
}

func (e *AuthParseError) Unwrap() error {
	return e.Err
}

// ToolCacheParseError reports an unreadable tool-cache.json index.
type ToolCacheParseError struct {
	Path string
	Err  error
}

func (e *ToolCacheParseError) Error() string {
	return fmt.Sprintf("unable to parse tool cache file (at %s): %s", e.Path, e.Err)
}

func (e *ToolCacheParseError) Unwrap() error {
	return e.Err
}

// InvalidReleaseAssetError reports a release asset that was selected for the
// current platform but could not be opened or extracted.
type InvalidReleaseAssetError struct {
	Alias   string
	Version string
	Err     error
}

func (e *InvalidReleaseAssetError) Error() string {
	return fmt.Sprintf("invalid release asset for %s (%s): %s", e.Alias, e.Version, e.Err)
}

func (e *InvalidReleaseAssetError) Unwrap() error {
	return e.Err
}

// ToolNotInstalledError is raised in shim mode when the invoked name has no
// entry in the aggregated manifest. KnownAliases lists every alias the
// manifest did define, so the rendered message doubles as a hint.
type ToolNotInstalledError struct {
	Name         string
	Cwd          string
	KnownAliases []string
}

func (e *ToolNotInstalledError) Error() string {
	var knownLine string
	if len(e.KnownAliases) > 0 {
		aliases := make([]string, len(e.KnownAliases))
		copy(aliases, e.KnownAliases)
		sort.Strings(aliases)
		knownLine = fmt.Sprintf("\n\nTools known from this directory: %s", strings.Join(aliases, ", "))
	}

	return fmt.Sprintf(
		"%q is not a known tool, but toolman was invoked with its name.\n\n"+
			"To use this tool from %s, declare it in a toolman.toml file in the "+
			"current directory or a parent directory.%s",
		e.Name, e.Cwd, knownLine,
	)
}

// InstallFailedError is the aggregate failure `install` reports when one or
// more aliases failed to resolve or download; each failure keeps its own
// underlying error so Render can print them individually.
type InstallFailedError struct {
	Failures map[string]error
}

func (e *InstallFailedError) Error() string {
	aliases := make([]string, 0, len(e.Failures))
	for alias := range e.Failures {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	lines := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		lines = append(lines, fmt.Sprintf("  %s: %s", alias, e.Failures[alias]))
	}
	return fmt.Sprintf("failed to install %d tool(s):\n%s", len(aliases), strings.Join(lines, "\n"))
}

const configHelp = `A manifest file looks like this:

[tools] # list the tools you want to install under this header

# each tool is on its own line, the alias is on the left side of "="
# and the right side tells toolman where to find it and which version
# to install

stylua = { github = "JohnnyMorganz/StyLua", version = "0.11.3" }
darklua = { gitlab = "seaofvoices/darklua", version = "0.7.0" }`

const authHelp = `An authentication file looks like this:

# For authenticating with the default GitHub-style host, put a personal
# access token here under the "github" key. This helps with API rate
# limits and lets you access private tools.

github = "YOUR_TOKEN_HERE"

# For authenticating with the default GitLab-style host, put a personal
# access token here under the "gitlab" key.

gitlab = "YOUR_TOKEN_HERE"`

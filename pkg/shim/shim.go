// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package shim implements the behavior toolman exhibits when invoked under
// any name other than its own: look the invoked name up as a tool alias in
// the aggregated manifest, ensure it is downloaded, and run it.
package shim

import (
	"context"
	"sort"

	"github.com/gizzahub/toolman/pkg/clierr"
	"github.com/gizzahub/toolman/pkg/installer"
	"github.com/gizzahub/toolman/pkg/logging"
	"github.com/gizzahub/toolman/pkg/manifest"
	"github.com/gizzahub/toolman/pkg/paths"
	"github.com/gizzahub/toolman/pkg/procrun"
	"github.com/gizzahub/toolman/pkg/toolcache"
)

// Run aggregates the manifest from cwd, resolves invokedName as a tool
// alias, ensures it's downloaded, and runs it with args. It returns the
// child's exit code on success; a *clierr.ToolNotInstalledError if
// invokedName isn't a known alias.
func Run(ctx context.Context, p paths.Paths, cwd, invokedName string, args []string) (int, error) {
	m, err := manifest.Aggregate(cwd, p.ManifestFile())
	if err != nil {
		return 0, err
	}

	spec, ok := m.Tools[invokedName]
	if !ok {
		return 0, &clierr.ToolNotInstalledError{Name: invokedName, Cwd: cwd, KnownAliases: knownAliases(m)}
	}

	logging.Debug("resolving shim target", "alias", invokedName)
	version, err := installer.EnsureDownloaded(ctx, p, invokedName, spec)
	if err != nil {
		return 0, err
	}

	exePath := toolcache.ExecutablePath(p, spec.CacheKey(), version)
	return procrun.Run(exePath, args)
}

func knownAliases(m manifest.Manifest) []string {
	aliases := make([]string, 0, len(m.Tools))
	for alias := range m.Tools {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package installer drives the `install` subcommand: aggregate the
// manifest, ensure every tool is downloaded, and leave a shim copy of the
// manager under bin/ for each alias.
package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gizzahub/toolman/pkg/clierr"
	"github.com/gizzahub/toolman/pkg/fsx"
	"github.com/gizzahub/toolman/pkg/logging"
	"github.com/gizzahub/toolman/pkg/manifest"
	"github.com/gizzahub/toolman/pkg/paths"
	"github.com/gizzahub/toolman/pkg/resolve"
	"github.com/gizzahub/toolman/pkg/toolcache"
)

// Result is one alias's successful install outcome.
type Result struct {
	Alias   string
	Version string
}

// InstallAll aggregates the manifest from cwd, downloads every tool that
// isn't already cached, and writes a bin/<alias> shim for each. Failures
// are collected rather than aborting the walk, and surfaced together as a
// single *clierr.InstallFailedError when any occur.
func InstallAll(ctx context.Context, p paths.Paths, cwd string) ([]Result, error) {
	m, err := manifest.Aggregate(cwd, p.ManifestFile())
	if err != nil {
		return nil, err
	}

	aliases := make([]string, 0, len(m.Tools))
	for alias := range m.Tools {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locating own executable: %w", err)
	}

	var results []Result
	failures := map[string]error{}

	for _, alias := range aliases {
		spec := m.Tools[alias]
		logging.Info("installing", "alias", alias, "spec", spec.String())

		version, err := EnsureDownloaded(ctx, p, alias, spec)
		if err != nil {
			logging.Error("install failed", "alias", alias, "err", err)
			failures[alias] = err
			continue
		}

		if err := writeShim(self, p.Bin(), alias); err != nil {
			failures[alias] = err
			continue
		}

		results = append(results, Result{Alias: alias, Version: version})
	}

	if len(failures) > 0 {
		return results, &clierr.InstallFailedError{Failures: failures}
	}
	return results, nil
}

// EnsureDownloaded resolves spec's backend provider and downloads it if
// the cache doesn't already satisfy the requirement.
func EnsureDownloaded(ctx context.Context, p paths.Paths, alias string, spec manifest.Spec) (string, error) {
	prov, err := resolve.ProviderFor(spec, p)
	if err != nil {
		return "", err
	}
	return toolcache.DownloadIfNecessary(ctx, p, alias, spec, prov)
}

func writeShim(self, binDir, alias string) error {
	dest := filepath.Join(binDir, alias+paths.ExeSuffix())
	if err := fsx.Copy(self, dest); err != nil {
		return err
	}
	return fsx.SetExecutable(dest)
}

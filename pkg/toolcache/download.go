// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package toolcache

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/gizzahub/toolman/pkg/ciname"
	"github.com/gizzahub/toolman/pkg/clierr"
	"github.com/gizzahub/toolman/pkg/fsx"
	"github.com/gizzahub/toolman/pkg/paths"
	"github.com/gizzahub/toolman/pkg/platform"
	"github.com/gizzahub/toolman/pkg/provider"
)

// Spec is the subset of a resolved manifest tool specification the
// downloader needs; manifest.Spec satisfies it.
type Spec interface {
	CacheKey() ciname.Key
	SourcePath() string
	Constraint() *semver.Constraints
}

// NoCompatibleVersionError is returned when no release satisfies a spec's
// version requirement; it carries every candidate considered so the caller
// can render them.
type NoCompatibleVersionError struct {
	Alias      string
	Candidates []string
}

func (e *NoCompatibleVersionError) Error() string {
	return fmt.Sprintf("no compatible version of %s found (candidates: %s)", e.Alias, strings.Join(e.Candidates, ", "))
}

type candidate struct {
	version    *semver.Version
	assetIndex int
	release    provider.Release
}

// DownloadIfNecessary returns an already-installed version satisfying spec
// if one exists, otherwise downloads and extracts a fresh one.
func DownloadIfNecessary(ctx context.Context, p paths.Paths, alias string, spec Spec, prov provider.Provider) (string, error) {
	cache, err := Load(p.IndexFile())
	if err != nil {
		return "", err
	}

	if version, ok := cache.BestInstalled(spec.CacheKey(), spec.Constraint()); ok {
		return version, nil
	}

	return Download(ctx, p, alias, spec, prov)
}

// Download fetches releases, resolves the requirement against them, extracts
// the chosen asset, and records the new version in the index.
func Download(ctx context.Context, p paths.Paths, alias string, spec Spec, prov provider.Provider) (string, error) {
	releases, err := prov.ListReleases(ctx, spec.SourcePath())
	if err != nil {
		return "", err
	}

	candidates := evaluateReleases(releases)
	sortDescending(candidates)

	var chosen *candidate
	candidateVersions := make([]string, 0, len(candidates))
	for i := range candidates {
		candidateVersions = append(candidateVersions, candidates[i].version.String())
		if chosen == nil && spec.Constraint().Check(candidates[i].version) {
			chosen = &candidates[i]
		}
	}
	if chosen == nil {
		return "", &NoCompatibleVersionError{Alias: alias, Candidates: candidateVersions}
	}

	asset := chosen.release.Assets[chosen.assetIndex]
	body, err := prov.DownloadAsset(ctx, asset.URL)
	if err != nil {
		return "", err
	}

	version := chosen.version.String()
	exePath := filepath.Join(p.Tools(), toolExecutableName(string(spec.CacheKey()), version))
	if err := extractFirstEntry(body, exePath); err != nil {
		return "", &clierr.InvalidReleaseAssetError{Alias: alias, Version: version, Err: err}
	}
	if err := fsx.SetExecutable(exePath); err != nil {
		return "", err
	}

	cache, err := Load(p.IndexFile())
	if err != nil {
		return "", err
	}
	cache.Record(spec.CacheKey(), version)
	if err := Save(p.IndexFile(), cache); err != nil {
		return "", err
	}

	return version, nil
}

// evaluateReleases parses each release's tag as a semantic version,
// accepting an optional leading "v", and keeps only those with an asset
// matching the current platform. Order is not assumed to be meaningful.
func evaluateReleases(releases []provider.Release) []candidate {
	keywords := platform.Keywords()

	var out []candidate
	for _, release := range releases {
		version, err := parseTag(release.TagName)
		if err != nil {
			continue
		}

		names := make([]string, len(release.Assets))
		for i, a := range release.Assets {
			names[i] = a.Name
		}
		match, ok := platform.SelectAsset(names, keywords)
		if !ok {
			continue
		}

		out = append(out, candidate{version: version, assetIndex: match.Index, release: release})
	}
	return out
}

func parseTag(tag string) (*semver.Version, error) {
	if v, err := semver.NewVersion(tag); err == nil {
		return v, nil
	}
	if strings.HasPrefix(tag, "v") {
		return semver.NewVersion(tag[1:])
	}
	return nil, fmt.Errorf("tag %q is not a semantic version", tag)
}

// sortDescending orders candidates strictly by version, highest first;
// server-reported order is never trusted.
func sortDescending(candidates []candidate) {
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].version.GreaterThan(candidates[j-1].version); j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}
}

// toolExecutableName matches the deterministic path a cache key and version
// resolve to, with path separators flattened so the result is one filename.
func toolExecutableName(cacheKey, version string) string {
	name := cacheKey + "-" + version + paths.ExeSuffix()
	name = strings.ReplaceAll(name, "/", "__")
	return strings.ReplaceAll(name, "\\", "__")
}

// ExecutablePath returns the deterministic path a given cache key and
// version were (or will be) extracted to, for callers that already know a
// version is installed and just need to find it again.
func ExecutablePath(p paths.Paths, cacheKey ciname.Key, version string) string {
	return filepath.Join(p.Tools(), toolExecutableName(string(cacheKey), version))
}

// extractFirstEntry reads body as a zip archive and writes only its first
// entry to destPath.
func extractFirstEntry(body []byte, destPath string) error {
	archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return fmt.Errorf("opening downloaded archive: %w", err)
	}
	if len(archive.File) == 0 {
		return fmt.Errorf("downloaded archive is empty")
	}

	first, err := archive.File[0].Open()
	if err != nil {
		return err
	}
	defer first.Close()

	return fsx.CopyFromReader(first, destPath)
}

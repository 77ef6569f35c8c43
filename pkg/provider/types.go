// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package provider

import "context"

// Release is the normalized form every backend returns regardless of its
// native response shape.
type Release struct {
	TagName    string
	Prerelease bool
	Assets     []ReleaseAsset
}

// ReleaseAsset is one downloadable file within a Release.
type ReleaseAsset struct {
	URL  string
	Name string
}

// Provider is the uniform contract every release-hosting backend
// implements: list a repository's releases, and fetch one asset's bytes.
type Provider interface {
	// ListReleases returns every release for repo, unfiltered and in
	// whatever order the backend returns them.
	ListReleases(ctx context.Context, repo string) ([]Release, error)

	// DownloadAsset fetches the raw bytes behind a ReleaseAsset.URL
	// returned from ListReleases.
	DownloadAsset(ctx context.Context, url string) ([]byte, error)
}

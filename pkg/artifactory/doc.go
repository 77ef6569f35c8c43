// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package artifactory implements the provider interface for the
// artifact-repo protocol, synthesizing releases from a storage API listing
// rather than consuming a native release endpoint.
//
// # Features
//
//   - Flat storage-listing traversal, grouped into synthetic releases by
//     version segment
//   - API-key header authentication for listing, bearer-token for download
//
// # Usage
//
//	p := artifactory.NewProvider("https://artifactory.example.com/", authPath)
//	releases, err := p.ListReleases(ctx, "generic-local/tools/mytool")
package artifactory

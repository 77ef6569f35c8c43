// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package github implements the provider interface for forge-A, a
// GitHub-like release-hosting API.
//
// # Features
//
//   - Release listing with manual Link-header pagination
//   - Token authentication via the "Authorization: token …" header
//   - Authenticated asset download
//
// # Usage
//
//	p := github.NewProvider("https://github.com", token)
//	releases, err := p.ListReleases(ctx, "owner/repo")
package github

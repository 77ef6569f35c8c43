// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package gitlab implements the provider interface for forge-B, a
// GitLab-like release-hosting API.
//
// # Features
//
//   - Release listing via the xanzy/go-gitlab client
//   - Token authentication via the "PRIVATE-TOKEN" header
//   - Authenticated asset download
//
// # Usage
//
//	p, err := gitlab.NewProvider("https://gitlab.com", token)
//	releases, err := p.ListReleases(ctx, "group/project")
package gitlab

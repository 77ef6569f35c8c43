// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package artifactory implements the provider interface for the
// artifact-repo protocol: a generic artifact repository manager queried
// through its storage API rather than a release API.
package artifactory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/gizzahub/toolman/pkg/authstore"
	"github.com/gizzahub/toolman/pkg/httpx"
	"github.com/gizzahub/toolman/pkg/provider"
)

const apiKeyHeader = "X-JFrog-Art-Api"

// Provider talks to a single artifact-repo host. Unlike forge-A/forge-B,
// there is no native concept of a "release" here: one is synthesized by
// grouping the storage listing's flat file URIs by their leading version
// segment.
type Provider struct {
	client   *http.Client
	host     string
	authPath string
}

// NewProvider builds a provider for host (e.g. "https://artifactory.example.com/"),
// reading artifact-repo credentials from authPath (the artifact-repo auth
// file) on every call, so a credential written mid-run takes effect without
// restarting.
func NewProvider(host, authPath string) *Provider {
	return &Provider{client: httpx.NewClient(), host: host, authPath: authPath}
}

type storageListing struct {
	Files []struct {
		URI string `json:"uri"`
	} `json:"files"`
}

// ListReleases lists repoPath's storage contents and groups the flat file
// listing into synthetic releases, one per version segment. A URI with a
// segment count other than 2 is silently skipped, per the storage API's
// listing format mixing in directories alongside files.
func (p *Provider) ListReleases(ctx context.Context, repoPath string) ([]provider.Release, error) {
	requestURL := fmt.Sprintf("%sartifactory/api/storage/%s?list&deep=1", p.host, repoPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	if store, err := authstore.LoadArtifactoryStore(p.authPath); err == nil {
		if creds, ok := store.Credentials(p.host); ok {
			req.Header.Set(apiKeyHeader, creds.Token)
		}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &httpx.RequestFailedError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &httpx.RequestFailedError{URL: requestURL, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &httpx.UnexpectedBodyError{URL: requestURL, Body: string(body), Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var listing storageListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, &httpx.UnexpectedBodyError{URL: requestURL, Body: string(body), Err: err}
	}

	byVersion := map[string][]provider.ReleaseAsset{}
	var versions []string
	for _, f := range listing.Files {
		segments := strings.Split(strings.TrimPrefix(f.URI, "/"), "/")
		if len(segments) != 2 {
			continue
		}
		version, assetName := segments[0], segments[1]
		if _, seen := byVersion[version]; !seen {
			versions = append(versions, version)
		}
		assetURL := fmt.Sprintf("%sartifactory/%s/%s/%s", p.host, repoPath, version, assetName)
		byVersion[version] = append(byVersion[version], provider.ReleaseAsset{URL: assetURL, Name: assetName})
	}

	sort.Strings(versions)
	releases := make([]provider.Release, 0, len(versions))
	for _, version := range versions {
		releases = append(releases, provider.Release{
			TagName:    version,
			Prerelease: false,
			Assets:     byVersion[version],
		})
	}
	return releases, nil
}

// DownloadAsset fetches a release asset's bytes, authenticating with a
// bearer token rather than the listing endpoint's API-key header.
func (p *Provider) DownloadAsset(ctx context.Context, assetURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return nil, err
	}

	if store, err := authstore.LoadArtifactoryStore(p.authPath); err == nil {
		if creds, ok := store.Credentials(assetURL); ok {
			req.Header.Set("Authorization", "bearer "+creds.Token)
		}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &httpx.RequestFailedError{URL: assetURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &httpx.RequestFailedError{URL: assetURL, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &httpx.UnexpectedBodyError{URL: assetURL, Body: string(body), Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	return body, nil
}

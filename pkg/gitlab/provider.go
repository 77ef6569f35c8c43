// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package gitlab

import (
	"context"
	"fmt"
	"io"
	"net/http"

	glsdk "github.com/xanzy/go-gitlab"

	"github.com/gizzahub/toolman/pkg/httpx"
	"github.com/gizzahub/toolman/pkg/provider"
)

// Provider talks to a forge-B (GitLab-like) host. Listing goes through the
// go-gitlab client, reusing its Release/ReleaseLink types directly; the
// response is not paginated (this endpoint returns the full list), so no
// page loop is needed. Asset download is a plain request carrying the
// PRIVATE-TOKEN header, since the library's client has no method for
// fetching an arbitrary asset URL.
type Provider struct {
	client     *glsdk.Client
	httpClient *http.Client
	token      string
}

// NewProvider builds a provider for host (e.g. "https://gitlab.com"),
// authenticating with token if non-empty.
func NewProvider(host, token string) (*Provider, error) {
	httpClient := httpx.NewClient()
	client, err := glsdk.NewClient(token, glsdk.WithBaseURL(host), glsdk.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("creating gitlab client: %w", err)
	}
	return &Provider{client: client, httpClient: httpClient, token: token}, nil
}

// ListReleases fetches every release of repo ("group/project").
func (p *Provider) ListReleases(ctx context.Context, repo string) ([]provider.Release, error) {
	releases, _, err := p.client.Releases.ListReleases(repo, &glsdk.ListReleasesOptions{}, glsdk.WithContext(ctx))
	if err != nil {
		return nil, &httpx.RequestFailedError{URL: repo, Err: err}
	}

	out := make([]provider.Release, 0, len(releases))
	for _, r := range releases {
		out = append(out, convertRelease(r))
	}
	return out, nil
}

func convertRelease(r *glsdk.Release) provider.Release {
	assets := make([]provider.ReleaseAsset, 0, len(r.Assets.Links))
	for _, link := range r.Assets.Links {
		assets = append(assets, provider.ReleaseAsset{URL: link.URL, Name: link.Name})
	}
	return provider.Release{
		TagName:    r.TagName,
		Prerelease: r.UpcomingRelease,
		Assets:     assets,
	}
}

// DownloadAsset fetches a release asset's bytes. Setting Accept is required
// to make the API return the asset bytes instead of JSON release metadata.
func (p *Provider) DownloadAsset(ctx context.Context, assetURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/octet-stream")
	if p.token != "" {
		req.Header.Set("PRIVATE-TOKEN", p.token)
	}

	resp, err := p.httpClient.Do(req)
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

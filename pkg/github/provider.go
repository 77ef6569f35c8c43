// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	ghsdk "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"github.com/gizzahub/toolman/pkg/httpx"
	"github.com/gizzahub/toolman/pkg/provider"
)

// Provider talks to a forge-A (GitHub-like) host. The endpoint is built
// from an arbitrary host URL rather than assumed to be api.github.com, so
// pagination is done by hand instead of through the go-github client's own
// pager; go-github's response types are reused only as JSON decode targets.
type Provider struct {
	client *http.Client
	host   string
}

// NewProvider builds a provider for host (e.g. "https://github.com"),
// authenticating with token if non-empty.
func NewProvider(host, token string) *Provider {
	client := httpx.NewClient()
	if token != "" {
		source := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   "token",
		})
		client.Transport = &oauth2.Transport{Source: source, Base: client.Transport}
	}
	return &Provider{client: client, host: host}
}

func (p *Provider) apiHost() string {
	parsed, err := url.Parse(p.host)
	if err != nil || parsed.Hostname() == "" {
		return "api.github.com"
	}
	return "api." + parsed.Hostname()
}

// ListReleases fetches every release of repo, following the Link header's
// "next" relation until it is absent.
func (p *Provider) ListReleases(ctx context.Context, repo string) ([]provider.Release, error) {
	start := fmt.Sprintf("https://%s/repos/%s/releases?per_page=100", p.apiHost(), repo)
	return p.listReleasesFrom(ctx, start)
}

func (p *Provider) listReleasesFrom(ctx context.Context, start string) ([]provider.Release, error) {
	var releases []provider.Release

	next := start
	for next != "" {
		page, link, err := p.fetchPage(ctx, next)
		if err != nil {
			return nil, err
		}
		releases = append(releases, page...)

		ref := nextLink(link)
		if ref == "" {
			break
		}
		base, err := url.Parse(next)
		if err != nil {
			return nil, err
		}
		target, err := url.Parse(ref)
		if err != nil {
			return nil, err
		}
		next = base.ResolveReference(target).String()
	}

	return releases, nil
}

func (p *Provider) fetchPage(ctx context.Context, requestURL string) ([]provider.Release, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, "", &httpx.RequestFailedError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &httpx.RequestFailedError{URL: requestURL, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", &httpx.UnexpectedBodyError{URL: requestURL, Body: string(body), Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var raw []*ghsdk.RepositoryRelease
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, "", &httpx.UnexpectedBodyError{URL: requestURL, Body: string(body), Err: err}
	}

	releases := make([]provider.Release, 0, len(raw))
	for _, r := range raw {
		releases = append(releases, convertRelease(r))
	}
	return releases, resp.Header.Get("Link"), nil
}

func convertRelease(r *ghsdk.RepositoryRelease) provider.Release {
	assets := make([]provider.ReleaseAsset, 0, len(r.Assets))
	for _, asset := range r.Assets {
		assets = append(assets, provider.ReleaseAsset{URL: asset.GetURL(), Name: asset.GetName()})
	}
	return provider.Release{
		TagName:    r.GetTagName(),
		Prerelease: r.GetPrerelease(),
		Assets:     assets,
	}
}

// nextLink tokenizes a Link header by comma, then scans each segment for
// rel="next" and an angle-bracketed URL. Robust to the full prev/next/
// first/last rel set the API returns.
func nextLink(header string) string {
	if header == "" {
		return ""
	}
	for _, segment := range strings.Split(header, ",") {
		if !strings.Contains(segment, `rel="next"`) {
			continue
		}
		start := strings.Index(segment, "<")
		end := strings.Index(segment, ">")
		if start == -1 || end == -1 || end < start {
			continue
		}
		return segment[start+1 : end]
	}
	return ""
}

// DownloadAsset fetches a release asset's bytes, using the API asset URL
// with an octet-stream accept header (the browser download URL would
// redirect away from the authenticated request).
func (p *Provider) DownloadAsset(ctx context.Context, assetURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/octet-stream")

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

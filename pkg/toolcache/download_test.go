// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package toolcache

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizzahub/toolman/pkg/ciname"
	"github.com/gizzahub/toolman/pkg/paths"
	"github.com/gizzahub/toolman/pkg/platform"
	"github.com/gizzahub/toolman/pkg/provider"
)

type fakeSpec struct {
	key        string
	sourcePath string
	constraint *semver.Constraints
}

func (s fakeSpec) CacheKey() ciname.Key            { return ciname.New(s.key) }
func (s fakeSpec) SourcePath() string              { return s.sourcePath }
func (s fakeSpec) Constraint() *semver.Constraints { return s.constraint }

type fakeProvider struct {
	releases    []provider.Release
	assetBodies map[string][]byte
	listErr     error
}

func (p *fakeProvider) ListReleases(ctx context.Context, repo string) ([]provider.Release, error) {
	return p.releases, p.listErr
}

func (p *fakeProvider) DownloadAsset(ctx context.Context, url string) ([]byte, error) {
	body, ok := p.assetBodies[url]
	if !ok {
		return nil, fmt.Errorf("no fixture for %s", url)
	}
	return body, nil
}

func zipWith(entryName string, contents string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create(entryName)
	if err != nil {
		panic(err)
	}
	if _, err := f.Write([]byte(contents)); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func matchingKeyword(t *testing.T) string {
	t.Helper()
	keywords := platform.Keywords()
	require.NotEmpty(t, keywords)
	return keywords[0]
}

func newTestPaths(t *testing.T) paths.Paths {
	t.Helper()
	root := t.TempDir()
	p := paths.Paths{Root: root}
	require.NoError(t, p.Create())
	return p
}

func TestDownloadPicksHighestSatisfyingPlatformMatchedRelease(t *testing.T) {
	p := newTestPaths(t)
	keyword := matchingKeyword(t)

	constraint, err := semver.NewConstraint("<2.0.0")
	require.NoError(t, err)
	spec := fakeSpec{key: "owner/repo", sourcePath: "owner/repo", constraint: constraint}

	body := zipWith("tool"+paths.ExeSuffix(), "fake-binary")
	prov := &fakeProvider{
		releases: []provider.Release{
			{TagName: "v2.0.0", Assets: []provider.ReleaseAsset{{URL: "https://example.com/2.0.0", Name: "tool-" + keyword + ".zip"}}},
			{TagName: "v1.5.0", Assets: []provider.ReleaseAsset{{URL: "https://example.com/1.5.0", Name: "tool-" + keyword + ".zip"}}},
			{TagName: "v1.0.0", Assets: []provider.ReleaseAsset{{URL: "https://example.com/1.0.0", Name: "tool-" + keyword + ".zip"}}},
			{TagName: "not-a-version", Assets: []provider.ReleaseAsset{{URL: "https://example.com/bad", Name: "tool-" + keyword + ".zip"}}},
		},
		assetBodies: map[string][]byte{
			"https://example.com/1.5.0": body,
		},
	}

	version, err := Download(context.Background(), p, "tool", spec, prov)
	require.NoError(t, err)
	assert.Equal(t, "1.5.0", version)

	exePath := filepath.Join(p.Tools(), "owner__repo-1.5.0"+paths.ExeSuffix())
	assert.FileExists(t, exePath)
	contents, err := os.ReadFile(exePath)
	require.NoError(t, err)
	assert.Equal(t, "fake-binary", string(contents))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(exePath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o777), info.Mode().Perm())
	}

	cache, err := Load(p.IndexFile())
	require.NoError(t, err)
	assert.Equal(t, []string{"1.5.0"}, cache.Tools[ciname.New("owner/repo").Fold()].Versions)
}

func TestDownloadReturnsNoCompatibleVersionError(t *testing.T) {
	p := newTestPaths(t)
	keyword := matchingKeyword(t)

	constraint, err := semver.NewConstraint(">=5.0.0")
	require.NoError(t, err)
	spec := fakeSpec{key: "owner/repo", sourcePath: "owner/repo", constraint: constraint}

	prov := &fakeProvider{
		releases: []provider.Release{
			{TagName: "v1.0.0", Assets: []provider.ReleaseAsset{{URL: "https://example.com/1.0.0", Name: "tool-" + keyword + ".zip"}}},
		},
	}

	_, err = Download(context.Background(), p, "tool", spec, prov)
	require.Error(t, err)

	var noCompat *NoCompatibleVersionError
	require.ErrorAs(t, err, &noCompat)
	assert.Equal(t, []string{"1.0.0"}, noCompat.Candidates)
}

func TestDownloadIfNecessaryReusesInstalledVersion(t *testing.T) {
	p := newTestPaths(t)

	constraint, err := semver.NewConstraint("^1.0.0")
	require.NoError(t, err)
	spec := fakeSpec{key: "owner/repo", sourcePath: "owner/repo", constraint: constraint}

	cache, err := Load(p.IndexFile())
	require.NoError(t, err)
	cache.Record(ciname.New("owner/repo"), "1.2.0")
	require.NoError(t, Save(p.IndexFile(), cache))

	prov := &fakeProvider{listErr: fmt.Errorf("should not be called")}

	version, err := DownloadIfNecessary(context.Background(), p, "tool", spec, prov)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", version)
}

func TestEvaluateReleasesDropsUnmatchedPlatform(t *testing.T) {
	releases := []provider.Release{
		{TagName: "v1.0.0", Assets: []provider.ReleaseAsset{{URL: "u", Name: "tool-totally-unknown-platform.zip"}}},
	}
	assert.Empty(t, evaluateReleases(releases))
}

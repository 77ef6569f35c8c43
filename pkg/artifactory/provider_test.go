// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package artifactory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizzahub/toolman/pkg/authstore"
)

func writeAuth(t *testing.T, host, username, token string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artifactory-auth.json")
	parsed, err := url.Parse(host)
	require.NoError(t, err)
	require.NoError(t, authstore.SetArtifactoryCredentials(path, parsed.Hostname(), username, token))
	return path
}

func TestListReleasesGroupsAssetsByVersion(t *testing.T) {
	var gotAPIKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("X-JFrog-Art-Api")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"files":[
			{"uri":"/v1.0.0/tool-linux.zip"},
			{"uri":"/v1.0.0/tool-macos.zip"},
			{"uri":"/v2.0.0/tool-linux.zip"},
			{"uri":"/bogus"},
			{"uri":"/too/many/segments/here"}
		]}`))
	}))
	defer server.Close()

	authPath := writeAuth(t, server.URL, "alice", "secret-key")
	p := NewProvider(server.URL+"/", authPath)

	releases, err := p.ListReleases(context.Background(), "generic-local/tool")
	require.NoError(t, err)
	require.Len(t, releases, 2)

	assert.Equal(t, "v1.0.0", releases[0].TagName)
	assert.False(t, releases[0].Prerelease)
	require.Len(t, releases[0].Assets, 2)
	assert.Equal(t, server.URL+"/artifactory/generic-local/tool/v1.0.0/tool-linux.zip", releases[0].Assets[0].URL)

	assert.Equal(t, "v2.0.0", releases[1].TagName)
	require.Len(t, releases[1].Assets, 1)

	assert.Equal(t, "secret-key", gotAPIKey)
}

func TestListReleasesWithoutCredentialsOmitsHeader(t *testing.T) {
	var gotAPIKey string
	var sawHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey, sawHeader = r.Header.Get("X-JFrog-Art-Api"), r.Header.Get("X-JFrog-Art-Api") != ""
		w.Write([]byte(`{"files":[]}`))
	}))
	defer server.Close()

	authPath := filepath.Join(t.TempDir(), "artifactory-auth.json")
	p := NewProvider(server.URL+"/", authPath)

	releases, err := p.ListReleases(context.Background(), "generic-local/tool")
	require.NoError(t, err)
	assert.Empty(t, releases)
	assert.False(t, sawHeader)
	assert.Equal(t, "", gotAPIKey)
}

func TestDownloadAssetSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("zip-bytes"))
	}))
	defer server.Close()

	authPath := writeAuth(t, server.URL, "alice", "secret-key")
	p := NewProvider(server.URL+"/", authPath)
	p.client = server.Client()

	body, err := p.DownloadAsset(context.Background(), server.URL+"/artifactory/generic-local/tool/v1.0.0/tool-linux.zip")
	require.NoError(t, err)
	assert.Equal(t, "zip-bytes", string(body))
	assert.Equal(t, "bearer secret-key", gotAuth)
}

func TestDownloadAssetSurfacesNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("denied"))
	}))
	defer server.Close()

	authPath := filepath.Join(t.TempDir(), "artifactory-auth.json")
	p := NewProvider(server.URL+"/", authPath)
	p.client = server.Client()

	_, err := p.DownloadAsset(context.Background(), server.URL+"/artifactory/generic-local/tool/v1.0.0/tool-linux.zip")
	assert.Error(t, err)
}

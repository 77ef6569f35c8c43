// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizzahub/toolman/pkg/authstore"
	"github.com/gizzahub/toolman/pkg/paths"
)

func TestHostOfExtractsDomain(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		want    string
		wantErr bool
	}{
		{name: "https URL", rawURL: "https://artifactory.example.com", want: "artifactory.example.com"},
		{name: "https URL with path", rawURL: "https://artifactory.example.com/some/repo", want: "artifactory.example.com"},
		{name: "no host", rawURL: "not-a-url", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hostOf(tt.rawURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunArtifactoryAuthStoresTokenAgainstHost(t *testing.T) {
	t.Setenv(paths.EnvVar, t.TempDir())

	cmd := artifactoryAuthCmd
	err := runArtifactoryAuth(cmd, []string{"https://artifactory.example.com", "s3cr3t"})
	require.NoError(t, err)

	p, err := paths.New()
	require.NoError(t, err)

	store, err := authstore.LoadArtifactoryStore(p.ArtifactoryAuthFile())
	require.NoError(t, err)

	creds, ok := store.Credentials("https://artifactory.example.com")
	require.True(t, ok)
	assert.Equal(t, "s3cr3t", creds.Token)
}

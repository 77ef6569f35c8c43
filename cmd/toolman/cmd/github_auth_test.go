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

func TestRunGitHubAuthStoresTokenFromArg(t *testing.T) {
	t.Setenv(paths.EnvVar, t.TempDir())

	err := runGitHubAuth(githubAuthCmd, []string{"gh-token"})
	require.NoError(t, err)

	p, err := paths.New()
	require.NoError(t, err)
	store, err := authstore.LoadForgeStore(p.AuthFile())
	require.NoError(t, err)
	assert.Equal(t, "gh-token", store.GitHub)
}

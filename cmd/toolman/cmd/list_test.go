// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizzahub/toolman/pkg/ciname"
	"github.com/gizzahub/toolman/pkg/manifest"
	"github.com/gizzahub/toolman/pkg/paths"
	"github.com/gizzahub/toolman/pkg/toolcache"
)

func TestRunListShowsInstalledVersionsAndMissingTools(t *testing.T) {
	t.Setenv(paths.EnvVar, t.TempDir())
	p, err := paths.New()
	require.NoError(t, err)
	require.NoError(t, p.Create())

	projectDir := t.TempDir()
	manifestContents := `[tools]
stylua = { github = "JohnnyMorganz/StyLua", version = "0.11.3" }
missingtool = { github = "someuser/missingtool", version = "1.0.0" }
`
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, manifest.FileName), []byte(manifestContents), 0o644))

	cache, err := toolcache.Load(p.IndexFile())
	require.NoError(t, err)
	cache.Record(ciname.New("JohnnyMorganz/StyLua"), "0.11.3")
	require.NoError(t, toolcache.Save(p.IndexFile(), cache))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(projectDir))
	defer func() { require.NoError(t, os.Chdir(cwd)) }()

	var out bytes.Buffer
	listCmd.SetOut(&out)
	require.NoError(t, runList(listCmd, nil))

	output := out.String()
	assert.Contains(t, output, "stylua")
	assert.Contains(t, output, "0.11.3")
	assert.Contains(t, output, "missingtool")
	assert.Contains(t, output, "(not installed)")
}

// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package paths resolves the toolman root directory and the files and
// directories that live under it.
package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/gizzahub/toolman/pkg/fsx"
)

// EnvVar is the environment variable that overrides the root directory.
const EnvVar = "TOOLMAN_HOME"

const rootDirName = ".toolman"

// Paths carries the single root directory and exposes the files and
// subdirectories toolman reads and writes under it.
type Paths struct {
	Root string
}

// New resolves the root directory: TOOLMAN_HOME if it names an existing
// directory, otherwise ~/.toolman.
func New() (Paths, error) {
	if dir := os.Getenv(EnvVar); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return Paths{Root: dir}, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, err
	}
	return Paths{Root: filepath.Join(home, rootDirName)}, nil
}

// Tools is the directory that holds extracted tool executables.
func (p Paths) Tools() string {
	return filepath.Join(p.Root, "tools")
}

// Bin is the directory the user is expected to add to PATH; it holds shim
// copies of the manager binary.
func (p Paths) Bin() string {
	return filepath.Join(p.Root, "bin")
}

// AuthFile is the forge credentials file (github/gitlab tokens).
func (p Paths) AuthFile() string {
	return filepath.Join(p.Root, "auth.toml")
}

// ManifestFile is the user-global manifest, folded in last during
// aggregation.
func (p Paths) ManifestFile() string {
	return filepath.Join(p.Root, "toolman.toml")
}

// IndexFile is the persisted tool cache index.
func (p Paths) IndexFile() string {
	return filepath.Join(p.Root, "tool-cache.json")
}

// ArtifactoryAuthFile is the JSON credential store keyed by host domain.
func (p Paths) ArtifactoryAuthFile() string {
	return filepath.Join(p.Root, "artifactory-auth.json")
}

// ExeSuffix is ".exe" on Windows and empty everywhere else.
func ExeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

const defaultManifest = `[tools]
# each tool is on its own line; the alias is on the left of "=" and the
# right side tells toolman where to find it and which version to install
#
# stylua = { github = "JohnnyMorganz/StyLua", version = "0.11.3" }
# darklua = { gitlab = "seaofvoices/darklua", version = "0.7.0" }
`

const defaultAuth = `# For authenticating with the default GitHub-style host, put a personal
# access token here under the "github" key.
#
# github = "YOUR_TOKEN_HERE"

# For authenticating with the default GitLab-style host, put a personal
# access token here under the "gitlab" key.
#
# gitlab = "YOUR_TOKEN_HERE"
`

// Create ensures the root, bin/, and tools/ directories exist, and writes
// the default manifest and auth files only if they are currently absent.
func (p Paths) Create() error {
	for _, dir := range []string{p.Root, p.Bin(), p.Tools()} {
		if err := fsx.CreateDirAll(dir); err != nil {
			return err
		}
	}

	if err := fsx.WriteIfNotExists(p.ManifestFile(), []byte(defaultManifest)); err != nil {
		return err
	}
	return fsx.WriteIfNotExists(p.AuthFile(), []byte(defaultAuth))
}

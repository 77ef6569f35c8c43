// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package authstore reads and writes the credential files toolman uses to
// authenticate against forges and artifact repositories.
package authstore

import (
	"regexp"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/gizzahub/toolman/pkg/clierr"
	"github.com/gizzahub/toolman/pkg/fsx"
)

// ForgeStore holds the tokens toolman uses to authenticate against the two
// forge-style backends.
type ForgeStore struct {
	GitHub string `toml:"github"`
	GitLab string `toml:"gitlab"`
}

const defaultForgeAuth = `# For authenticating with the default GitHub-style host, put a personal
# access token here under the "github" key.
#
# github = "YOUR_TOKEN_HERE"

# For authenticating with the default GitLab-style host, put a personal
# access token here under the "gitlab" key.
#
# gitlab = "YOUR_TOKEN_HERE"
`

// LoadForgeStore reads the auth file, returning a zero-value store if it
// does not exist yet.
func LoadForgeStore(path string) (ForgeStore, error) {
	contents, err := fsx.TryRead(path)
	if err != nil {
		return ForgeStore{}, err
	}
	if contents == nil {
		return ForgeStore{}, nil
	}

	var store ForgeStore
	if _, err := toml.Decode(string(contents), &store); err != nil {
		return ForgeStore{}, &clierr.AuthParseError{Path: path, Err: err}
	}
	return store, nil
}

// SetGitHubToken writes or replaces the github key.
func SetGitHubToken(path, token string) error {
	return setToken(path, "github", token)
}

// SetGitLabToken writes or replaces the gitlab key.
func SetGitLabToken(path, token string) error {
	return setToken(path, "gitlab", token)
}

// setToken patches a single top-level key in place, preserving every other
// line of the file byte-for-byte (comments included). A full decode/encode
// round trip through a TOML struct would silently drop the comments in the
// default file, so the key assignment is done as a textual patch instead.
func setToken(path, key, token string) error {
	contents, ok, err := fsx.TryReadString(path)
	if err != nil {
		return err
	}
	if !ok {
		contents = defaultForgeAuth
	}

	return fsx.Write(path, []byte(patchKey(contents, key, token)))
}

func patchKey(contents, key, value string) string {
	line := key + ` = ` + strconv.Quote(value)
	pattern := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `\s*=.*$`)

	if pattern.MatchString(contents) {
		return pattern.ReplaceAllLiteralString(contents, line)
	}

	if len(contents) > 0 && contents[len(contents)-1] != '\n' {
		contents += "\n"
	}
	return contents + line + "\n"
}

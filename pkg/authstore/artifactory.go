// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package authstore

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/gizzahub/toolman/pkg/clierr"
	"github.com/gizzahub/toolman/pkg/fsx"
)

// ArtifactoryCredentials is a single host's username/token pair.
type ArtifactoryCredentials struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// ArtifactoryStore maps a host domain to the credentials used against it.
type ArtifactoryStore struct {
	Tokens map[string]ArtifactoryCredentials `json:"tokens"`
}

// LoadArtifactoryStore reads the JSON credential file, returning an empty
// store if it does not exist yet.
func LoadArtifactoryStore(path string) (ArtifactoryStore, error) {
	contents, err := fsx.TryRead(path)
	if err != nil {
		return ArtifactoryStore{}, err
	}
	if contents == nil {
		return ArtifactoryStore{Tokens: map[string]ArtifactoryCredentials{}}, nil
	}

	var store ArtifactoryStore
	if err := json.Unmarshal(contents, &store); err != nil {
		return ArtifactoryStore{}, &clierr.AuthParseError{Path: path, Err: err}
	}
	if err := store.validate(); err != nil {
		return ArtifactoryStore{}, &clierr.AuthParseError{Path: path, Err: err}
	}
	if store.Tokens == nil {
		store.Tokens = map[string]ArtifactoryCredentials{}
	}
	return store, nil
}

// validate checks that every entry carries a token. Username is stored for
// parity with the original schema but is never read back out by any
// protocol — toolman authenticates to artifact-repository hosts by bearer
// token alone — so an empty username is allowed.
func (s ArtifactoryStore) validate() error {
	for host, creds := range s.Tokens {
		if creds.Token == "" {
			return fmt.Errorf("tokens.%s: missing token", host)
		}
	}
	return nil
}

// Credentials looks up the credentials for rawURL's host domain. It reports
// ok=false if the URL has no domain or no entry exists for it.
func (s ArtifactoryStore) Credentials(rawURL string) (creds ArtifactoryCredentials, ok bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return ArtifactoryCredentials{}, false
	}
	creds, ok = s.Tokens[parsed.Hostname()]
	return creds, ok
}

// SetArtifactoryCredentials stores (or replaces) the credentials for a host domain and
// persists the whole file.
func SetArtifactoryCredentials(path, host, username, token string) error {
	store, err := LoadArtifactoryStore(path)
	if err != nil {
		return err
	}
	store.Tokens[host] = ArtifactoryCredentials{Username: username, Token: token}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return fsx.Write(path, data)
}

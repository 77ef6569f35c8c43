// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package resolve picks and constructs the provider backend a manifest
// spec's protocol calls for, loading whatever credentials that backend
// needs from the auth files under the toolman root.
package resolve

import (
	"fmt"

	"github.com/gizzahub/toolman/pkg/artifactory"
	"github.com/gizzahub/toolman/pkg/authstore"
	"github.com/gizzahub/toolman/pkg/github"
	"github.com/gizzahub/toolman/pkg/gitlab"
	"github.com/gizzahub/toolman/pkg/manifest"
	"github.com/gizzahub/toolman/pkg/paths"
	"github.com/gizzahub/toolman/pkg/provider"
)

// ProviderFor builds the provider backend spec's protocol requires,
// authenticating it from the forge or artifact-repo auth file under p.
func ProviderFor(spec manifest.Spec, p paths.Paths) (provider.Provider, error) {
	switch spec.Protocol {
	case manifest.ProtocolForgeA:
		forge, err := authstore.LoadForgeStore(p.AuthFile())
		if err != nil {
			return nil, err
		}
		return github.NewProvider(spec.Host, forge.GitHub), nil

	case manifest.ProtocolForgeB:
		forge, err := authstore.LoadForgeStore(p.AuthFile())
		if err != nil {
			return nil, err
		}
		return gitlab.NewProvider(spec.Host, forge.GitLab)

	case manifest.ProtocolArtifactRepo:
		return artifactory.NewProvider(spec.Host, p.ArtifactoryAuthFile()), nil

	default:
		return nil, fmt.Errorf("unsupported protocol %q for alias %q", spec.Protocol, spec.Alias)
	}
}

// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package manifest models the tool manifest: host table, per-alias tool
// specifications, and the hierarchical aggregation walk that merges them.
package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/gizzahub/toolman/pkg/ciname"
)

// Protocol names one of the three supported release-hosting backends.
type Protocol string

const (
	ProtocolForgeA       Protocol = "github"
	ProtocolForgeB       Protocol = "gitlab"
	ProtocolArtifactRepo Protocol = "artifactory"
)

func parseProtocol(s string) (Protocol, error) {
	switch Protocol(s) {
	case ProtocolForgeA, ProtocolForgeB, ProtocolArtifactRepo:
		return Protocol(s), nil
	default:
		return "", fmt.Errorf("unknown host protocol %q", s)
	}
}

// HostEntry names one backend instance: its base URL and which protocol
// speaks to it.
type HostEntry struct {
	Source   string
	Protocol Protocol
}

func defaultHosts() map[string]HostEntry {
	forgeA := HostEntry{Source: "https://github.com", Protocol: ProtocolForgeA}
	return map[string]HostEntry{
		"source": forgeA,
		"github": forgeA,
		"gitlab": HostEntry{Source: "https://gitlab.com", Protocol: ProtocolForgeB},
	}
}

// Spec is a fully resolved tool specification: which backend, which
// repository or artifact path on it, and which version range satisfies it.
type Spec struct {
	Alias          string
	Protocol       Protocol
	Host           string
	Repo           string
	Path           string
	RequirementRaw string
	Requirement    *semver.Constraints
}

// CacheKey derives the cache-key identity for this spec, per protocol.
//
// The forge-A form is kept byte-for-byte equal to Repo so that indexes
// written by the original single-backend tool remain valid.
func (s Spec) CacheKey() ciname.Key {
	switch s.Protocol {
	case ProtocolForgeB:
		return ciname.New("gitlab@" + s.Repo)
	case ProtocolArtifactRepo:
		return ciname.New(s.Host + "@" + s.Path)
	default:
		return ciname.New(s.Repo)
	}
}

// SourcePath is the identifier passed to the provider's release listing:
// the repository slug for forge-A/forge-B, the artifact path for
// artifact-repo hosts.
func (s Spec) SourcePath() string {
	if s.Protocol == ProtocolArtifactRepo {
		return s.Path
	}
	return s.Repo
}

// Constraint is the parsed version requirement.
func (s Spec) Constraint() *semver.Constraints {
	return s.Requirement
}

// String renders a spec as "<host>/<path>@<requirement>".
func (s Spec) String() string {
	path := s.Repo
	if s.Protocol == ProtocolArtifactRepo {
		path = s.Path
	}
	return fmt.Sprintf("%s/%s@%s", s.Host, path, s.RequirementRaw)
}

// parseSpec resolves a raw TOML tool-entry map (alias -> {host-key, version,
// path?}) into a Spec, given the manifest's already-merged host table.
func parseSpec(alias string, hosts map[string]HostEntry, raw map[string]string) (Spec, error) {
	versionRaw, hasVersion := raw["version"]
	if !hasVersion || versionRaw == "" {
		return Spec{}, fmt.Errorf("tool %q: missing version", alias)
	}
	pathVal, hasPath := raw["path"]

	var hostKey, repoValue string
	for key, value := range raw {
		if key == "version" || key == "path" {
			continue
		}
		if hostKey != "" {
			return Spec{}, fmt.Errorf("tool %q: extraneous key %q", alias, key)
		}
		hostKey = key
		repoValue = value
	}
	if hostKey == "" {
		return Spec{}, fmt.Errorf("tool %q: missing a host key", alias)
	}

	host, ok := hosts[hostKey]
	if !ok {
		return Spec{}, fmt.Errorf("tool %q: unknown host key %q", alias, hostKey)
	}

	if host.Protocol == ProtocolArtifactRepo {
		if !hasPath {
			return Spec{}, fmt.Errorf("tool %q: artifactory tools require a path", alias)
		}
	} else if hasPath {
		return Spec{}, fmt.Errorf("tool %q: path is not allowed for %s hosts", alias, host.Protocol)
	}

	constraint, err := semver.NewConstraint(versionRaw)
	if err != nil {
		return Spec{}, fmt.Errorf("tool %q: invalid version requirement %q: %w", alias, versionRaw, err)
	}

	return Spec{
		Alias:          alias,
		Protocol:       host.Protocol,
		Host:           host.Source,
		Repo:           repoValue,
		Path:           pathVal,
		RequirementRaw: versionRaw,
		Requirement:    constraint,
	}, nil
}

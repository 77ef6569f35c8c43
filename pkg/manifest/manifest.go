// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/gizzahub/toolman/pkg/clierr"
)

// FileName is the manifest file's name, looked for in every ancestor of the
// working directory and in the user-global root.
const FileName = "toolman.toml"

// Manifest is the fully aggregated set of tool aliases and host entries.
type Manifest struct {
	Tools map[string]Spec
	Hosts map[string]HostEntry
}

type rawHostEntry struct {
	Source   string `toml:"source"`
	Protocol string `toml:"protocol"`
}

type rawManifest struct {
	Tools map[string]map[string]string `toml:"tools"`
	Hosts map[string]rawHostEntry      `toml:"hosts"`
}

func decodeManifest(contents []byte) (rawManifest, error) {
	var raw rawManifest
	if _, err := toml.Decode(string(contents), &raw); err != nil {
		return rawManifest{}, err
	}
	return raw, nil
}

func readLayer(path string) (rawManifest, bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rawManifest{}, false, nil
		}
		return rawManifest{}, false, fmt.Errorf("reading %s: %w", path, err)
	}
	raw, err := decodeManifest(contents)
	if err != nil {
		return rawManifest{}, false, &clierr.ConfigParseError{Path: path, Err: err}
	}
	return raw, true, nil
}

// Aggregate walks every ancestor directory of cwd (innermost first, no
// short-circuit on the first match) looking for FileName, folds each one it
// finds into the result with first-write-wins semantics, then folds in the
// user-global manifest at userManifestPath last.
//
// The walk intentionally keeps going past the first ancestor that defines
// the file; a project's grandparent manifest can still contribute entries
// the closer ones didn't define.
func Aggregate(cwd, userManifestPath string) (Manifest, error) {
	var layers []rawManifest

	dir := cwd
	for {
		raw, found, err := readLayer(filepath.Join(dir, FileName))
		if err != nil {
			return Manifest{}, err
		}
		if found {
			layers = append(layers, raw)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if raw, found, err := readLayer(userManifestPath); err != nil {
		return Manifest{}, err
	} else if found {
		layers = append(layers, raw)
	}

	hosts, err := mergeHosts(layers)
	if err != nil {
		return Manifest{}, err
	}

	tools := map[string]Spec{}
	for _, layer := range layers {
		for alias, rawSpec := range layer.Tools {
			if _, already := tools[alias]; already {
				continue
			}
			spec, err := parseSpec(alias, hosts, rawSpec)
			if err != nil {
				return Manifest{}, err
			}
			tools[alias] = spec
		}
	}

	return Manifest{Tools: tools, Hosts: hosts}, nil
}

// mergeHosts initializes the three default host keys first, then folds each
// layer's [hosts] table in first-write-wins order: an already-present key
// (default or from an earlier layer) is kept, so a project manifest cannot
// redefine "source", "github" or "gitlab".
func mergeHosts(layers []rawManifest) (map[string]HostEntry, error) {
	hosts := defaultHosts()

	for _, layer := range layers {
		for key, entry := range layer.Hosts {
			if _, already := hosts[key]; already {
				continue
			}
			protocol, err := parseProtocol(entry.Protocol)
			if err != nil {
				return nil, fmt.Errorf("host %q: %w", key, err)
			}
			if entry.Source == "" {
				return nil, fmt.Errorf("host %q: missing source", key)
			}
			hosts[key] = HostEntry{Source: entry.Source, Protocol: protocol}
		}
	}

	return hosts, nil
}

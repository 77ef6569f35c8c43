// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package toolcache tracks which tool versions are already extracted to
// disk, and drives the download-resolve-extract sequence for ones that
// aren't.
package toolcache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"

	"github.com/gizzahub/toolman/pkg/ciname"
	"github.com/gizzahub/toolman/pkg/clierr"
	"github.com/gizzahub/toolman/pkg/fsx"
)

// Entry is one cache key's set of installed versions. Key carries the
// display-cased form of the cache key that was first recorded, so the
// persisted index preserves case even though lookups fold it.
type Entry struct {
	Key      string   `json:"-"`
	Versions []string `json:"versions"`
}

// Cache is the persisted tool-version index, looked up by cache-key fold
// value so reads are case-insensitive regardless of manifest casing, but
// serialized under each entry's original display-cased key so the on-disk
// file preserves case (spec: case-insensitive, case-preserving identity).
type Cache struct {
	Tools map[string]*Entry `json:"-"`
}

// MarshalJSON emits {"tools": {"<display-cased key>": entry, ...}}.
func (c *Cache) MarshalJSON() ([]byte, error) {
	byDisplayKey := make(map[string]*Entry, len(c.Tools))
	for fold, entry := range c.Tools {
		displayKey := entry.Key
		if displayKey == "" {
			displayKey = fold
		}
		byDisplayKey[displayKey] = entry
	}
	return json.Marshal(struct {
		Tools map[string]*Entry `json:"tools"`
	}{Tools: byDisplayKey})
}

// UnmarshalJSON reads {"tools": {"<display-cased key>": entry, ...}},
// re-keying the in-memory map by each key's fold value while keeping the
// original casing on the entry itself.
func (c *Cache) UnmarshalJSON(data []byte) error {
	var raw struct {
		Tools map[string]*Entry `json:"tools"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Tools = make(map[string]*Entry, len(raw.Tools))
	for displayKey, entry := range raw.Tools {
		entry.Key = displayKey
		c.Tools[ciname.New(displayKey).Fold()] = entry
	}
	return nil
}

// Load reads the index file, returning an empty cache if it does not exist.
// A present-but-unparsable file fails rather than being silently discarded.
func Load(path string) (*Cache, error) {
	contents, err := fsx.TryRead(path)
	if err != nil {
		return nil, err
	}
	if contents == nil {
		return &Cache{Tools: map[string]*Entry{}}, nil
	}

	var c Cache
	if err := json.Unmarshal(contents, &c); err != nil {
		return nil, &clierr.ToolCacheParseError{Path: path, Err: err}
	}
	if c.Tools == nil {
		c.Tools = map[string]*Entry{}
	}
	return &c, nil
}

// Save atomically persists the cache as pretty-printed JSON: it writes to a
// sibling temp file and renames over the destination so a crash mid-write
// never leaves a truncated index.
func Save(path string, c *Cache) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tool-cache-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// BestInstalled returns the highest installed version satisfying req, if
// any is already present for key.
func (c *Cache) BestInstalled(key ciname.Key, req *semver.Constraints) (string, bool) {
	entry, ok := c.Tools[key.Fold()]
	if !ok {
		return "", false
	}

	versions := sortedDescending(entry.Versions)
	for _, raw := range versions {
		v, err := semver.NewVersion(raw)
		if err != nil {
			continue
		}
		if req.Check(v) {
			return raw, true
		}
	}
	return "", false
}

// Record inserts version into key's entry, preserving key's original
// casing the first time it's recorded.
func (c *Cache) Record(key ciname.Key, version string) {
	entry, ok := c.Tools[key.Fold()]
	if !ok {
		entry = &Entry{Key: string(key)}
		c.Tools[key.Fold()] = entry
	}
	for _, v := range entry.Versions {
		if v == version {
			return
		}
	}
	entry.Versions = append(entry.Versions, version)
}

func sortedDescending(versions []string) []string {
	out := make([]string, len(versions))
	copy(out, versions)
	sort.Slice(out, func(i, j int) bool {
		vi, erri := semver.NewVersion(out[i])
		vj, errj := semver.NewVersion(out[j])
		if erri != nil || errj != nil {
			return out[i] > out[j]
		}
		return vi.GreaterThan(vj)
	})
	return out
}

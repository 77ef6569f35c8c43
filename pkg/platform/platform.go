// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package platform picks the release asset matching the current OS and
// architecture out of an ordered list of substrings, most specific first.
package platform

import (
	"runtime"
	"strings"
)

// Keywords returns the ordered, most-specific-first list of substrings that
// identify the current platform's asset name.
func Keywords() []string {
	return keywordsFor(runtime.GOOS, runtime.GOARCH)
}

func keywordsFor(goos, goarch string) []string {
	switch goos {
	case "darwin":
		if goarch == "arm64" {
			return []string{"macos-arm64", "darwin-arm64", "macos-x86_64", "darwin-x86_64", "macos", "darwin"}
		}
		return []string{"macos-x86_64", "darwin-x86_64", "macos", "darwin"}
	case "windows":
		if goarch == "amd64" {
			return []string{"win64", "windows-x86_64", "windows"}
		}
		return []string{"windows"}
	case "linux":
		if goarch == "arm64" {
			return []string{"linux-arm64", "linux-aarch64"}
		}
		return []string{"linux-x86_64", "linux"}
	default:
		return nil
	}
}

// AssetMatch pairs the selected asset with the keyword that matched it.
type AssetMatch struct {
	Index   int
	Name    string
	Keyword string
}

// SelectAsset iterates keywords in order; for each one, it scans assetNames
// in their listed order and returns the first whose name contains that
// keyword. It reports ok=false if no keyword matches any asset.
func SelectAsset(assetNames []string, keywords []string) (match AssetMatch, ok bool) {
	for _, keyword := range keywords {
		for i, name := range assetNames {
			if strings.Contains(name, keyword) {
				return AssetMatch{Index: i, Name: name, Keyword: keyword}, true
			}
		}
	}
	return AssetMatch{}, false
}

// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package provider

import "testing"

func TestRelease(t *testing.T) {
	release := Release{
		TagName:    "v1.1.0",
		Prerelease: false,
		Assets: []ReleaseAsset{
			{URL: "https://example.com/a.zip", Name: "tool-linux.zip"},
		},
	}

	if release.TagName != "v1.1.0" {
		t.Errorf("TagName = %q, want %q", release.TagName, "v1.1.0")
	}
	if len(release.Assets) != 1 {
		t.Errorf("Assets length = %d, want 1", len(release.Assets))
	}
	if release.Assets[0].Name != "tool-linux.zip" {
		t.Errorf("Assets[0].Name = %q, want %q", release.Assets[0].Name, "tool-linux.zip")
	}
}

func TestReleasePrerelease(t *testing.T) {
	release := Release{TagName: "v2.0.0-beta.1", Prerelease: true}
	if !release.Prerelease {
		t.Error("Prerelease should be true")
	}
}

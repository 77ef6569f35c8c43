// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gizzahub/toolman/pkg/manifest"
	"github.com/gizzahub/toolman/pkg/paths"
	"github.com/gizzahub/toolman/pkg/style"
	"github.com/gizzahub/toolman/pkg/toolcache"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print each manifest alias with its cache key and installed versions",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// runList prints one block per alias of the aggregated manifest, sorted by
// alias, with that alias's cache key and installed versions. Versions in the
// index under a cache key that no alias refers to are not printed.
func runList(cmd *cobra.Command, args []string) error {
	p, err := paths.New()
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	m, err := manifest.Aggregate(cwd, p.ManifestFile())
	if err != nil {
		return err
	}

	cache, err := toolcache.Load(p.IndexFile())
	if err != nil {
		return err
	}

	aliases := make([]string, 0, len(m.Tools))
	for alias := range m.Tools {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	out := cmd.OutOrStdout()
	for _, alias := range aliases {
		spec := m.Tools[alias]
		entry, ok := cache.Tools[spec.CacheKey().Fold()]

		fmt.Fprintf(out, "%s  %s\n", style.Alias.Render(alias), style.Subtle.Render(spec.CacheKey().String()))
		if !ok || len(entry.Versions) == 0 {
			fmt.Fprintf(out, "  %s\n", style.Subtle.Render("(not installed)"))
			continue
		}
		fmt.Fprintf(out, "  %s\n", strings.Join(entry.Versions, ", "))
	}
	return nil
}

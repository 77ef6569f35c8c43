// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gizzahub/toolman/pkg/installer"
	"github.com/gizzahub/toolman/pkg/paths"
	"github.com/gizzahub/toolman/pkg/style"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Download every tool in the aggregated manifest and create its shim",
	RunE:  runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	p, err := paths.New()
	if err != nil {
		return err
	}
	if err := p.Create(); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	results, err := installer.InstallAll(context.Background(), p, cwd)
	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), style.Success.Render(fmt.Sprintf("✓ %s %s", r.Alias, r.Version)))
	}
	return err
}

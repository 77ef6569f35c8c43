// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gizzahub/toolman/pkg/artifactorypath"
)

var generateArtifactoryPathCmd = &cobra.Command{
	Use:   "generate-artifactory-path <repo> <tool> <version> <os> [arch]",
	Short: "Print the canonical artifact-repository storage path for a release",
	Args:  cobra.RangeArgs(4, 5),
	RunE:  runGenerateArtifactoryPath,
}

func init() {
	rootCmd.AddCommand(generateArtifactoryPathCmd)
}

func runGenerateArtifactoryPath(cmd *cobra.Command, args []string) error {
	var arch string
	if len(args) == 5 {
		arch = args[4]
	}

	path, err := artifactorypath.Generate(args[0], args[1], args[2], args[3], arch)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gizzahub/toolman/pkg/authstore"
	"github.com/gizzahub/toolman/pkg/paths"
)

var gitlabAuthCmd = &cobra.Command{
	Use:   "gitlab-auth [token]",
	Short: "Set the personal access token used against the default GitLab-style host",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGitLabAuth,
}

func init() {
	rootCmd.AddCommand(gitlabAuthCmd)
}

func runGitLabAuth(cmd *cobra.Command, args []string) error {
	token, err := tokenArgOrPrompt(args, "GitLab Token", "Personal access token for the default GitLab-style host")
	if err != nil {
		return err
	}

	p, err := paths.New()
	if err != nil {
		return err
	}
	if err := p.Create(); err != nil {
		return err
	}

	return authstore.SetGitLabToken(p.AuthFile(), token)
}

// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gizzahub/toolman/pkg/authstore"
	"github.com/gizzahub/toolman/pkg/paths"
	"github.com/gizzahub/toolman/pkg/prompt"
)

var githubAuthCmd = &cobra.Command{
	Use:   "github-auth [token]",
	Short: "Set the personal access token used against the default GitHub-style host",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGitHubAuth,
}

func init() {
	rootCmd.AddCommand(githubAuthCmd)
}

func runGitHubAuth(cmd *cobra.Command, args []string) error {
	token, err := tokenArgOrPrompt(args, "GitHub Token", "Personal access token for the default GitHub-style host")
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

	return authstore.SetGitHubToken(p.AuthFile(), token)
}

func tokenArgOrPrompt(args []string, title, description string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return prompt.Token(title, description)
}

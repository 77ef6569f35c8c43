// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/gizzahub/toolman/pkg/authstore"
	"github.com/gizzahub/toolman/pkg/paths"
	"github.com/gizzahub/toolman/pkg/prompt"
)

var artifactoryAuthCmd = &cobra.Command{
	Use:   "artifactory-auth [url] [token]",
	Short: "Set the access token used against an artifact-repository host",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runArtifactoryAuth,
}

func init() {
	rootCmd.AddCommand(artifactoryAuthCmd)
}

func runArtifactoryAuth(cmd *cobra.Command, args []string) error {
	rawURL, err := positionalOrPrompt(args, 0, "Artifactory URL", "Base URL of the artifact-repository host, e.g. https://artifactory.example.com")
	if err != nil {
		return err
	}

	host, err := hostOf(rawURL)
	if err != nil {
		return err
	}

	token := ""
	if len(args) > 1 {
		token = args[1]
	} else {
		token, err = prompt.Token("Artifactory Token", "Personal access token for "+host)
		if err != nil {
			return err
		}
	}

	p, err := paths.New()
	if err != nil {
		return err
	}
	if err := p.Create(); err != nil {
		return err
	}

	return authstore.SetArtifactoryCredentials(p.ArtifactoryAuthFile(), host, "", token)
}

func hostOf(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", rawURL, err)
	}
	if parsed.Hostname() == "" {
		return "", fmt.Errorf("%q has no host", rawURL)
	}
	return parsed.Hostname(), nil
}

func positionalOrPrompt(args []string, index int, title, description string) (string, error) {
	if len(args) > index {
		return args[index], nil
	}
	return prompt.Text(title, description)
}

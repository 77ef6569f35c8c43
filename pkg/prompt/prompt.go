// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package prompt asks for a masked token or password on the terminal when
// a CLI subcommand wasn't given one as an argument.
package prompt

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// Token runs a masked huh input with title and returns what the user typed.
func Token(title, description string) (string, error) {
	return input(title, description, huh.EchoModePassword)
}

// Text runs a plain (unmasked) huh input with title and returns what the
// user typed.
func Text(title, description string) (string, error) {
	return input(title, description, huh.EchoModeNormal)
}

func input(title, description string, echo huh.EchoMode) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				EchoMode(echo).
				Validate(nonEmpty).
				Value(&value),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("reading %s: %w", title, err)
	}
	return value, nil
}

func nonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

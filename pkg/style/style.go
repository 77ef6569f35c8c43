// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package style centralizes the lipgloss styles the CLI applies to its
// output: status lines, errors, and the tool table printed by `list`.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Header decorates a command's summary line (e.g. "Installed tools:").
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("62")).
		Padding(0, 1)

	// Success marks a completed install or a satisfied check.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	// Failure marks a failed install, in the aggregate install-failure report.
	Failure = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))

	// Subtle is used for secondary detail: paths, versions, hints.
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	// Alias highlights a tool alias in table-style output.
	Alias = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6"))
)

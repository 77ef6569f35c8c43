// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package cliutil provides small CLI utility helpers shared across
// subcommands: ANSI color constants and the "Quick Start" help-text
// formatter used in the root command's Long description.
package cliutil

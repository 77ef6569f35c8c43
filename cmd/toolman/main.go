// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package main is the entry point for the toolman CLI application. Invoked
// as "toolman", it runs the manager's own command tree; invoked under any
// other name, it acts as a shim for the tool alias matching that name.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gizzahub/toolman"
	"github.com/gizzahub/toolman/cmd/toolman/cmd"
	"github.com/gizzahub/toolman/pkg/clierr"
	"github.com/gizzahub/toolman/pkg/paths"
	"github.com/gizzahub/toolman/pkg/shim"
)

const managerName = "toolman"

func main() {
	stem := invokedStem(os.Args[0])
	if stem == managerName {
		cmd.Execute(toolman.FullVersion())
		return
	}

	os.Exit(runShim(stem))
}

// invokedStem returns argv[0]'s file stem, with any platform executable
// suffix removed, so a shim copy named "stylua.exe" is still recognized as
// the "stylua" alias.
func invokedStem(argv0 string) string {
	base := filepath.Base(argv0)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func runShim(alias string) int {
	p, err := paths.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, clierr.Render(err))
		return 1
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, clierr.Render(err))
		return 1
	}

	code, err := shim.Run(context.Background(), p, cwd, alias, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, clierr.Render(err))
		return 1
	}
	return code
}

// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package clierr

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gizzahub/toolman/pkg/style"
)

// Render formats err for stderr: the aggregate install failure gets its
// per-alias lines colored individually, everything else gets a single
// failure-styled line. The CLI entry point calls this right before
// os.Exit(1).
func Render(err error) string {
	var installErr *InstallFailedError
	if errors.As(err, &installErr) {
		return renderInstallFailure(installErr)
	}
	return style.Failure.Render(fmt.Sprintf("error: %s", err))
}

func renderInstallFailure(err *InstallFailedError) string {
	header := style.Failure.Render(fmt.Sprintf("error: failed to install %d tool(s):", len(err.Failures)))

	aliases := sortedKeys(err.Failures)
	out := header
	for _, alias := range aliases {
		out += "\n" + style.Alias.Render(alias) + ": " + style.Subtle.Render(err.Failures[alias].Error())
	}
	return out
}

func sortedKeys(m map[string]error) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package clierr holds the error types the CLI renders specially: the ones
// that need more than "print err.Error() and exit 1" to be useful. Plain
// I/O failures are already path-annotated by fsx.PathError, and transport
// failures are already annotated by httpx.RequestFailedError and
// httpx.UnexpectedBodyError; this package adds the remaining taxonomy
// entries (config parse help text, tool-cache parse, not-installed,
// aggregate install failure) and the top-level Render used by the CLI
// entry point.
package clierr

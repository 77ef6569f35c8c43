// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package procrun spawns a tool's executable as a process group (Unix) or
// job object (Windows), forwards termination signals to it, and returns its
// exit code. See runner_unix.go and runner_windows.go for the per-platform
// Run implementation.
package procrun

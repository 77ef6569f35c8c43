// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package logging wraps a single package-level charmbracelet/log logger
// every other component writes through, so the CLI's -v/-q flags control
// verbosity in one place.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the shared logger every package should log through instead of
// constructing its own.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// SetVerbose lowers the level to debug. A repeated -v has nothing further to
// reach (charmbracelet/log has no level below debug), so the second and
// later calls are no-ops.
func SetVerbose() {
	Logger.SetLevel(log.DebugLevel)
}

// SetQuiet raises the level to warn, suppressing info and debug output.
func SetQuiet() {
	Logger.SetLevel(log.WarnLevel)
}

// Debug logs at debug level.
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs at info level.
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs at warn level.
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs at error level.
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

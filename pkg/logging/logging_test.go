// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package logging

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetVerboseLowersLevelToDebug(t *testing.T) {
	defer Logger.SetLevel(log.InfoLevel)

	SetVerbose()
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
}

func TestSetQuietRaisesLevelToWarn(t *testing.T) {
	defer Logger.SetLevel(log.InfoLevel)

	SetQuiet()
	assert.Equal(t, log.WarnLevel, Logger.GetLevel())
}

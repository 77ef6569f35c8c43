// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonEmptyRejectsBlankValue(t *testing.T) {
	assert.Error(t, nonEmpty(""))
	assert.NoError(t, nonEmpty("a-token"))
}

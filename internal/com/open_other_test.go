//go:build !windows

package com

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

func TestOpen_UnavailableOffWindows(t *testing.T) {
	backend, err := Open(logger.NewNoOpLogger(), Options{})

	assert.Nil(t, backend)
	assert.ErrorIs(t, err, autoit.ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "requires Windows")
}

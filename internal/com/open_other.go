//go:build !windows

package com

import (
	"fmt"
	"runtime"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

// Open always fails: AutoItX3 is a Windows COM server
func Open(log logger.LoggerInterface, opts Options) (interfaces.Backend, error) {
	if log != nil {
		log.Debug("AutoItX3 is not available on this platform")
	}

	return nil, fmt.Errorf("%w: %s requires Windows (running on %s)", autoit.ErrBackendUnavailable, opts.progID(), runtime.GOOS)
}

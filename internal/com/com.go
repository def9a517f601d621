// Package com implements the AutoItX3 backend over COM late binding.
//
// The AutoItX3 server is apartment threaded, so every call is made from one
// goroutine locked to its OS thread. On platforms other than Windows, Open
// always fails with autoit.ErrBackendUnavailable.
package com

import (
	"github.com/Norgate-AV/autoitx/internal/config"
)

// Options configures Open
type Options struct {
	// ProgID is the COM class to create (default config.DefaultProgID)
	ProgID string
}

func (o Options) progID() string {
	if o.ProgID == "" {
		return config.DefaultProgID
	}

	return o.ProgID
}

// CLASSIFICATION: COMMUNITY
// Filename: dashboard.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-10-17
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package dashboard serves the SPOT parking dashboard front end.
package dashboard

import (
	"context"
	"net/http"

	dashhttp "spot/dashboard/http"
)

// Controller defines the methods the dashboard server exposes.
type Controller interface {
	Start(context.Context) error
	Router() http.Handler
	Addr() string
}

// New returns a Controller backed by the HTTP server implementation.
func New(cfg dashhttp.Config) (Controller, error) {
	srv, err := dashhttp.New(cfg)
	if err != nil {
		return nil, err
	}
	return srv, nil
}

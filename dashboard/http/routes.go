// CLASSIFICATION: COMMUNITY
// Filename: routes.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-10-17
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"spot/dashboard/static"
)

func routes(cfg Config, onReadError func(*stdhttp.Request, error)) *chi.Mux {
	files := static.FileHandler(cfg.StaticDir)
	files.ErrorLog = onReadError

	r := chi.NewRouter()
	r.Use(CORS)
	r.Use(middleware.Recoverer)

	r.Get("/*", files.ServeHTTP)
	r.Head("/*", files.ServeHTTP)
	r.Options("/*", preflight)
	return r
}

// CLASSIFICATION: COMMUNITY
// Filename: server.go v0.3
// Author: Lukas Bower
// Date Modified: 2026-10-17
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

const shutdownTimeout = time.Second

// Config holds server configuration.
type Config struct {
	// Bind is the listen host; empty binds all interfaces.
	Bind      string
	Port      int
	StaticDir string
	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
	// Out receives the startup banner. Defaults to os.Stdout.
	Out io.Writer
}

// Server wraps the HTTP server and router.
type Server struct {
	cfg      Config
	router   *chi.Mux
	log      *slog.Logger
	errLimit *rate.Limiter
}

// New validates cfg and returns an initialized server.
func New(cfg Config) (*Server, error) {
	if cfg.StaticDir == "" {
		return nil, errors.New("static dir not set")
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	dir, err := filepath.Abs(cfg.StaticDir)
	if err != nil {
		return nil, fmt.Errorf("resolve static dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static dir %s: not a directory", dir)
	}
	cfg.StaticDir = dir
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	s := &Server{
		cfg:      cfg,
		log:      cfg.Logger,
		errLimit: rate.NewLimiter(rate.Every(time.Second), 5),
	}
	s.router = routes(cfg, s.logReadError)
	return s, nil
}

// Router returns the underlying router, useful for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// StaticDir returns the absolute root directory being served.
func (s *Server) StaticDir() string {
	return s.cfg.StaticDir
}

// Addr returns the listening address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Bind, strconv.Itoa(s.cfg.Port))
}

// Listen binds the configured address. Failures are returned as *BindError.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return nil, &BindError{Addr: s.Addr(), Err: err}
	}
	return ln, nil
}

// Start binds the listener, prints the banner and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done. A shutdown triggered by ctx returns
// nil; ln is closed in every case.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
	}

	served := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
		case <-served:
			return
		}
		ctxTo, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctxTo); err != nil {
			s.log.Warn("graceful shutdown failed", slog.String("error", err.Error()))
			srv.Close()
		}
	}()

	writeBanner(s.cfg.Out, listenPort(ln), s.cfg.StaticDir)

	err := srv.Serve(ln)
	close(served)
	<-stopped
	if errors.Is(err, http.ErrServerClosed) {
		s.log.Info("server stopped", slog.String("addr", ln.Addr().String()))
		return nil
	}
	return err
}

func (s *Server) logReadError(r *http.Request, err error) {
	if !s.errLimit.Allow() {
		return
	}
	s.log.Error("read failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
}

func listenPort(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// CLASSIFICATION: COMMUNITY
// Filename: main.go v0.6
// Author: Lukas Bower
// Date Modified: 2026-10-17
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"spot/dashboard"
	dashhttp "spot/dashboard/http"
	"spot/internal/tooling"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, cancel := newSignalContext(context.Background())
	err := tooling.Execute(ctx, func(ctx context.Context) error {
		return run(ctx, logger, os.Stdout)
	})
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, out io.Writer) error {
	dir, err := dashboard.StaticDir()
	if err != nil {
		return err
	}
	return serve(ctx, dashhttp.Config{
		Port:      dashboard.Port,
		StaticDir: dir,
		Logger:    logger,
		Out:       out,
	})
}

func serve(ctx context.Context, cfg dashhttp.Config) error {
	srv, err := dashboard.New(cfg)
	if err != nil {
		return err
	}
	return srv.Start(ctx)
}

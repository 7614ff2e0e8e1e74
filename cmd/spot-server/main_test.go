// CLASSIFICATION: COMMUNITY
// Filename: main_test.go v0.3
// Author: Lukas Bower
// Date Modified: 2026-10-17
package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dashhttp "spot/dashboard/http"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServeReportsBindError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	out := &bytes.Buffer{}
	done := make(chan error, 1)
	go func() {
		done <- serve(context.Background(), dashhttp.Config{
			Bind:      "127.0.0.1",
			Port:      port,
			StaticDir: t.TempDir(),
			Logger:    quietLogger(),
			Out:       out,
		})
	}()

	select {
	case err := <-done:
		var bindErr *dashhttp.BindError
		require.ErrorAs(t, err, &bindErr)
		assert.Equal(t, net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), bindErr.Addr)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not fail fast")
	}
	assert.Zero(t, out.Len(), "banner printed on bind failure")
}

func TestServeRejectsMissingStaticDir(t *testing.T) {
	err := serve(context.Background(), dashhttp.Config{
		StaticDir: filepath.Join(t.TempDir(), "absent"),
		Logger:    quietLogger(),
		Out:       io.Discard,
	})
	require.Error(t, err)

	var bindErr *dashhttp.BindError
	assert.NotErrorAs(t, err, &bindErr)
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()
	err := serve(ctx, dashhttp.Config{
		Bind:      "127.0.0.1",
		StaticDir: t.TempDir(),
		Logger:    quietLogger(),
		Out:       io.Discard,
	})
	assert.NoError(t, err)
}

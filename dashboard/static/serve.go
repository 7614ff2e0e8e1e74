// CLASSIFICATION: COMMUNITY
// Filename: serve.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-10-17
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package static serves the dashboard front end from a single root directory.
package static

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// IndexPage is served for requests that resolve to a directory.
const IndexPage = "index.html"

var (
	// ErrNotFound reports a path that does not map to a file under the root.
	ErrNotFound = errors.New("not found")
	// ErrRead reports a file that exists but could not be opened or read.
	ErrRead = errors.New("read failed")
)

// Handler serves files below a root directory. Paths are cleaned before
// lookup so that ".." segments cannot leave the root.
type Handler struct {
	root http.FileSystem

	// ErrorLog, if set, observes requests that failed with ErrRead.
	ErrorLog func(r *http.Request, err error)
}

// FileHandler returns an HTTP handler that serves files from dir.
func FileHandler(dir string) *Handler {
	return &Handler{root: http.Dir(dir)}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upath := r.URL.Path
	if !strings.HasPrefix(upath, "/") {
		upath = "/" + upath
	}
	name := path.Clean(upath)
	if strings.IndexByte(name, 0) >= 0 {
		h.fail(w, r, fmt.Errorf("%w: NUL in path", ErrNotFound))
		return
	}

	f, info, err := h.open(name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer f.Close()

	if !info.IsDir() && strings.HasSuffix(upath, "/") {
		h.fail(w, r, fmt.Errorf("%w: %s is not a directory", ErrNotFound, name))
		return
	}

	if info.IsDir() {
		if !strings.HasSuffix(upath, "/") {
			localRedirect(w, r, path.Base(upath)+"/")
			return
		}
		idx, idxInfo, err := h.open(path.Join(name, IndexPage))
		if err == nil && idxInfo.IsDir() {
			idx.Close()
			err = fmt.Errorf("%w: %s is a directory", ErrNotFound, IndexPage)
		}
		if err != nil {
			h.fail(w, r, err)
			return
		}
		defer idx.Close()
		f, info = idx, idxInfo
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func (h *Handler) open(name string) (http.File, fs.FileInfo, error) {
	f, err := h.root.Open(name)
	if err != nil {
		return nil, nil, Classify(err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, Classify(err)
	}
	return f, info, nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)
	if status == http.StatusInternalServerError && h.ErrorLog != nil {
		h.ErrorLog(r, err)
	}
	http.Error(w, http.StatusText(status), status)
}

// localRedirect sends a relative redirect, keeping the query string.
func localRedirect(w http.ResponseWriter, r *http.Request, target string) {
	if q := r.URL.RawQuery; q != "" {
		target += "?" + q
	}
	w.Header().Set("Location", target)
	w.WriteHeader(http.StatusMovedPermanently)
}

// Classify wraps a filesystem error in ErrNotFound or ErrRead. Names the
// OS rejects outright cannot exist and count as not found. Errors that are
// already classified are returned unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrRead):
		return err
	case errors.Is(err, fs.ErrNotExist), isBadName(err):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
}

// StatusCode maps a classified error to the HTTP status sent to the client.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// CLASSIFICATION: COMMUNITY
// Filename: root.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-17
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package dashboard

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Port is the fixed listening port.
	Port = 8080
	// StaticSubdir is the served directory, relative to the program.
	StaticSubdir = "src/main/resources/static"
)

// StaticDir returns the root directory next to the running executable.
// When that directory is missing (as under "go run") the working
// directory is tried instead.
func StaticDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	wd, _ := os.Getwd()
	return resolveStaticDir(filepath.Dir(exe), wd), nil
}

func resolveStaticDir(exeDir, workDir string) string {
	primary := filepath.Join(exeDir, filepath.FromSlash(StaticSubdir))
	if isDir(primary) || workDir == "" {
		return primary
	}
	if fallback := filepath.Join(workDir, filepath.FromSlash(StaticSubdir)); isDir(fallback) {
		return fallback
	}
	return primary
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

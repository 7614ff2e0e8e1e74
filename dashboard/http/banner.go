// CLASSIFICATION: COMMUNITY
// Filename: banner.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-17
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

func writeBanner(w io.Writer, port int, dir string) {
	url := fmt.Sprintf("http://localhost:%d", port)
	color.New(color.FgGreen, color.Bold).Fprintln(w, "✅ SPOT Parking System is running!")
	fmt.Fprintf(w, "📱 Open your browser: %s\n", color.CyanString(url))
	fmt.Fprintf(w, "📁 Serving files from: %s\n", dir)
	fmt.Fprintln(w, "⏹️  Press Ctrl+C to stop the server")
}

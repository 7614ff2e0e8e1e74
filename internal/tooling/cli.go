// CLASSIFICATION: COMMUNITY
// Filename: cli.go v0.3
// Date Modified: 2026-10-17
// Author: Lukas Bower
//
// ─────────────────────────────────────────────────────────────
// SPOT · Go CLI Scaffold
//
// Cobra root command for the dashboard server. Running the bare
// command serves the dashboard; it takes no flags or arguments.
//
// Example:
//
//   package main
//
//   import "spot/internal/tooling"
//
//   func main() { tooling.Execute(ctx, serve) }
// ─────────────────────────────────────────────────────────────
package tooling

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "0.1.0"

// ServeFunc runs the server until ctx is done.
type ServeFunc func(ctx context.Context) error

// NewRootCommand builds the spot-server command tree around serve.
func NewRootCommand(serve ServeFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "spot-server",
		Short: "Serve the SPOT parking dashboard",
		Long: `Serve the SPOT parking dashboard on http://localhost:8080.

Files are read from src/main/resources/static next to the binary.
Press Ctrl+C to stop.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	// Built‑in `version` sub‑command.
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print spot-server version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "spot-server v%s\n", Version)
		},
	})
	return root
}

// Execute runs the CLI with os.Args. Typically called from main().
func Execute(ctx context.Context, serve ServeFunc) error {
	return NewRootCommand(serve).ExecuteContext(ctx)
}

// Package cmd provides the CLI entry point for repodeck.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/repodeck/repodeck/internal"
)

// NewRootCmd creates the root command for repodeck.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repodeck <config>",
		Short: "Serve a dashboard of local Git repository synchronization state",
		Long: `repodeck serves a read-only HTML dashboard reporting the synchronization
state of a configured set of local Git working directories: untracked files,
uncommitted changes, and divergence from the configured upstream.

The single argument is the path to a YAML configuration document listing the
projects (optionally nested under groups) to watch.

Example:
  repodeck /etc/repodeck/config.yml`,
		Args: cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			internal.Run(args[0])
		},
	}
}

// Execute runs the root command. A wrong argument count prints usage and
// exits non-zero without serving.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

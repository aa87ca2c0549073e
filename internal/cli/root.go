// Package cli implements the agl command line interface. Service
// dependencies are package-level variables assigned during app
// initialization in internal/app.go.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "agl",
	Short: "Agent Gallery - browse, search, and export curated agent templates",
	Long: `Agent Gallery (agl) manages a curated catalog of agent templates:
prompt definitions with domains, tags, and declared tool requirements.

It provides CLI commands for listing and searching the catalog, viewing
and exporting individual agents, an interactive terminal gallery, and an
HTTP server for the browser gallery.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("agl %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/agent-gallery/internal/storage"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog for integrity problems",
	Long: `Validate the catalog source: every record must have a unique id and a
non-empty title. Reports all problems at once and exits non-zero if any are
found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}

		// Reload from source so stale in-memory state cannot mask a problem.
		if err := Catalog.Load(); err != nil {
			return err
		}

		agents := Catalog.Agents()
		if err := storage.ValidateAgents(agents); err != nil {
			return err
		}

		fmt.Printf("Catalog OK: %d agent(s) in %s.\n", len(agents), Catalog.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

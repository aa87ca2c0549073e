package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/agent-gallery/internal/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a starter catalog in the current directory",
	Long: `Write the embedded starter catalog to agents.json in the base path,
ready to be edited and served. Refuses to overwrite an existing catalog.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(BasePath, "agents.json")
		if err := storage.WriteSeedCatalog(path); err != nil {
			return err
		}
		fmt.Printf("Created starter catalog at %s.\n", path)
		fmt.Println("Run 'agl list' to browse it, or 'agl serve' to open the gallery.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

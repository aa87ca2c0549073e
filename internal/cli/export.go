package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/agent-gallery/internal/core"
	"github.com/valter-silva-au/agent-gallery/internal/observability"
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write an agent to a file named after its id",
	Long: `Export an agent to a file. The markdown format is the textual export
form (header block plus prompt body); the json format is a structured dump
of every field. The file is named <id>.md or <id>.json and written to the
current directory unless --out is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}

		agent, err := Catalog.Get(args[0])
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		format, err := core.ParseFormat(formatName)
		if err != nil {
			return err
		}

		content, err := core.Export(*agent, format)
		if err != nil {
			return err
		}

		outDir, _ := cmd.Flags().GetString("out")
		path := filepath.Join(outDir, core.ExportFileName(*agent, format))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing export file: %w", err)
		}

		observability.Record(EventLog, observability.EventAgentExported, map[string]any{
			"agent":  agent.ID,
			"format": string(format),
		})

		fmt.Printf("Exported %s to %s.\n", agent.ID, path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "markdown", "export format: markdown or json")
	exportCmd.Flags().StringP("out", "o", ".", "output directory")
	rootCmd.AddCommand(exportCmd)
}

package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/agent-gallery/internal/core"
	"github.com/valter-silva-au/agent-gallery/internal/observability"
)

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy an agent's textual export form to the system clipboard",
	Long: `Serialize an agent into its textual export form (a header block with
id, summary, and tools, a blank line, then the prompt body) and place it on
the system clipboard.

If clipboard access is unavailable, pass --stdout to print the export form
instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}

		agent, err := Catalog.Get(args[0])
		if err != nil {
			return err
		}

		content, err := core.ExportText(*agent)
		if err != nil {
			return err
		}

		toStdout, _ := cmd.Flags().GetBool("stdout")
		if toStdout {
			fmt.Print(content)
			return nil
		}

		if err := writeClipboard(content); err != nil {
			return fmt.Errorf("clipboard unavailable (%v); re-run with --stdout", err)
		}

		observability.Record(EventLog, observability.EventAgentCopied, map[string]any{"agent": agent.ID})
		fmt.Printf("Copied %s to the clipboard.\n", agent.ID)
		return nil
	},
}

func init() {
	copyCmd.Flags().Bool("stdout", false, "print the export form instead of using the clipboard")
	rootCmd.AddCommand(copyCmd)
}

func defaultWriteClipboard(content string) error {
	return clipboard.WriteAll(content)
}

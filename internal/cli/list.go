package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/agent-gallery/internal/core"
	"github.com/valter-silva-au/agent-gallery/internal/observability"
	"github.com/valter-silva-au/agent-gallery/pkg/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog agents with optional filters",
	Long: `List the agents in the catalog, optionally narrowed by a free-text
query (matched case-insensitively against title, summary, and tags), one or
more required tags (an agent must carry every one), and a single domain.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}

		query, _ := cmd.Flags().GetString("query")
		tags, _ := cmd.Flags().GetStringArray("tag")
		domain, _ := cmd.Flags().GetString("domain")
		asJSON, _ := cmd.Flags().GetBool("json")

		state := models.FilterState{
			Query:        query,
			RequiredTags: tags,
			Domain:       domain,
		}

		visible := Selector.Visible(Catalog, state)

		if query != "" {
			observability.Record(EventLog, observability.EventSearchPerformed, map[string]any{
				"query":   query,
				"results": len(visible),
			})
		}

		if asJSON {
			data, err := json.MarshalIndent(visible, "", "  ")
			if err != nil {
				return fmt.Errorf("marshalling agent list: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if len(visible) == 0 {
			fmt.Println("No agents match the current filters.")
			return nil
		}

		fmt.Print(renderAgentTable(visible))
		fmt.Printf("\n%d of %d agent(s) shown.\n", len(visible), len(Catalog.Agents()))
		return nil
	},
}

// renderAgentTable formats agents as an aligned table with domain-colored
// labels from the shared style mapping.
func renderAgentTable(agents []models.Agent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-22s %-24s %-28s %s\n", "ID", "TITLE", "DOMAINS", "TAGS")
	for _, a := range agents {
		domains := make([]string, len(a.Domains))
		for i, d := range a.Domains {
			style := lipgloss.NewStyle().Foreground(core.StyleForDomain(d).Color)
			domains[i] = style.Render(d)
		}
		fmt.Fprintf(&b, "  %-22s %-24s %-28s %s\n",
			a.ID,
			truncate(a.Title, 24),
			strings.Join(domains, ", "),
			strings.Join(a.Tags, ", "),
		)
	}
	return b.String()
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func init() {
	listCmd.Flags().StringP("query", "q", "", "free-text search over title, summary, and tags")
	listCmd.Flags().StringArrayP("tag", "t", nil, "required tag (repeatable; all must match)")
	listCmd.Flags().StringP("domain", "d", models.DomainAll, "restrict to a single domain")
	listCmd.Flags().Bool("json", false, "output the matching agents as JSON")
	rootCmd.AddCommand(listCmd)
}

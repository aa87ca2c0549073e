package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/agent-gallery/internal/core"
	"github.com/valter-silva-au/agent-gallery/internal/observability"
	"github.com/valter-silva-au/agent-gallery/pkg/models"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an agent's full detail, including its prompt body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}

		agent, err := Catalog.Get(args[0])
		if err != nil {
			return err
		}

		observability.Record(EventLog, observability.EventAgentViewed, map[string]any{"agent": agent.ID})

		plain, _ := cmd.Flags().GetBool("plain")
		fmt.Print(renderAgentDetail(*agent, plain, theme()))
		return nil
	},
}

// theme returns the configured glamour style name.
func theme() string {
	if Config != nil && Config.Theme != "" {
		return Config.Theme
	}
	return "dark"
}

// renderAgentDetail formats the metadata header and the prompt body.
// Unless plain is set, the body is rendered as markdown via glamour.
func renderAgentDetail(agent models.Agent, plain bool, style string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  (%s)\n", agent.Title, agent.ID)
	fmt.Fprintf(&b, "%s\n\n", agent.Summary)

	domains := make([]string, len(agent.Domains))
	for i, d := range agent.Domains {
		domains[i] = lipgloss.NewStyle().Foreground(core.StyleForDomain(d).Color).Render(d)
	}
	fmt.Fprintf(&b, "Domains: %s\n", strings.Join(domains, ", "))

	tools := make([]string, len(agent.Tools))
	for i, t := range agent.Tools {
		tools[i] = core.IconForTool(t) + " " + t
	}
	fmt.Fprintf(&b, "Tools:   %s\n", strings.Join(tools, "  "))
	fmt.Fprintf(&b, "Tags:    %s\n\n", strings.Join(agent.Tags, ", "))

	if plain {
		b.WriteString(agent.Body)
		b.WriteString("\n")
		return b.String()
	}

	rendered, err := glamour.Render(agent.Body, style)
	if err != nil {
		// Fall back to the raw body if the terminal renderer fails.
		b.WriteString(agent.Body)
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(rendered)
	return b.String()
}

func init() {
	showCmd.Flags().Bool("plain", false, "print the raw body without markdown rendering")
	rootCmd.AddCommand(showCmd)
}

package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show gallery usage metrics from the event log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if MetricsCalc == nil {
			return fmt.Errorf("metrics not available (observability may be disabled)")
		}

		days, _ := cmd.Flags().GetInt("days")
		since := time.Now().UTC().AddDate(0, 0, -days)

		metrics, err := MetricsCalc.Calculate(since)
		if err != nil {
			return fmt.Errorf("calculating metrics: %w", err)
		}

		fmt.Printf("Usage over the last %d day(s):\n\n", days)
		fmt.Printf("  %-16s %d\n", "Views", metrics.TotalViews)
		fmt.Printf("  %-16s %d\n", "Copies", metrics.TotalCopies)
		fmt.Printf("  %-16s %d\n", "Exports", metrics.TotalExports)
		fmt.Printf("  %-16s %d\n", "Searches", metrics.Searches)
		fmt.Printf("  %-16s %d\n", "Catalog loads", metrics.CatalogLoads)
		fmt.Printf("  %-16s %d\n", "Events", metrics.EventCount)

		if len(metrics.ViewsByAgent) > 0 {
			fmt.Println("\nMost viewed agents:")
			type viewCount struct {
				id    string
				count int
			}
			views := make([]viewCount, 0, len(metrics.ViewsByAgent))
			for id, count := range metrics.ViewsByAgent {
				views = append(views, viewCount{id, count})
			}
			sort.Slice(views, func(i, j int) bool {
				if views[i].count != views[j].count {
					return views[i].count > views[j].count
				}
				return views[i].id < views[j].id
			})
			for _, v := range views {
				fmt.Printf("  %-24s %d\n", v.id, v.count)
			}
		}

		if len(metrics.ExportsByFormat) > 0 {
			fmt.Println("\nExports by format:")
			formats := make([]string, 0, len(metrics.ExportsByFormat))
			for f := range metrics.ExportsByFormat {
				formats = append(formats, f)
			}
			sort.Strings(formats)
			for _, f := range formats {
				fmt.Printf("  %-24s %d\n", f, metrics.ExportsByFormat[f])
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().Int("days", 7, "metrics window in days")
	rootCmd.AddCommand(statsCmd)
}

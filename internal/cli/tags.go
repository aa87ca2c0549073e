package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every distinct tag in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}

		tags := Selector.Tags(Catalog)
		if len(tags) == 0 {
			fmt.Println("No tags in the catalog.")
			return nil
		}
		for _, t := range tags {
			fmt.Println(t)
		}
		return nil
	},
}

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List every distinct domain in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}

		domains := Selector.Domains(Catalog)
		if len(domains) == 0 {
			fmt.Println("No domains in the catalog.")
			return nil
		}
		for _, d := range domains {
			fmt.Println(d)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(domainsCmd)
}

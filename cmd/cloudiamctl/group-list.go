package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// groupListCmd represents the group list command
var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all groups",
	Long: `List every group in the provider directory, draining all pages.

Example:
  cloudiamctl group list`,
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		groups, err := client.ListGroups(cmd.Context())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list groups: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPATH")
		for _, g := range groups {
			fmt.Fprintf(w, "%s\t%s\t%s\n", g.ID, g.Name, g.Path)
		}
		_ = w.Flush()
	},
}

func init() {
	groupCmd.AddCommand(groupListCmd)
}

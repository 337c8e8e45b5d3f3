package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/audit"
)

// groupDeleteCmd represents the group delete command
var groupDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a group",
	Long: `Delete a group from the provider directory.

Example:
  cloudiamctl group delete devs`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		err = client.DeleteGroup(cmd.Context(), name)
		audit.Log(audit.PrincipalEvent{
			Actor:        actor(),
			Kind:         "group",
			Name:         name,
			Delete:       true,
			Success:      err == nil,
			ErrorMessage: errMessage(err),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete group: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Deleted group %s\n", name)
	},
}

func init() {
	groupCmd.AddCommand(groupDeleteCmd)
}

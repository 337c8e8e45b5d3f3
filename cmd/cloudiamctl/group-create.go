package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/audit"
)

// groupCreateCmd represents the group create command
var groupCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a group",
	Long: `Create a group in the provider directory.

Example:
  cloudiamctl group create devs`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		created, err := client.CreateGroup(cmd.Context(), name)
		audit.Log(audit.PrincipalEvent{
			Actor:        actor(),
			Kind:         "group",
			Name:         name,
			Success:      err == nil,
			ErrorMessage: errMessage(err),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create group: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created group %s (id %s)\n", created.Name, created.ID)
	},
}

func init() {
	groupCmd.AddCommand(groupCreateCmd)
}

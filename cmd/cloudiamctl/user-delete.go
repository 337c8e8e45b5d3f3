package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/audit"
)

// userDeleteCmd represents the user delete command
var userDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a user",
	Long: `Delete a user from the provider directory.

Example:
  cloudiamctl user delete alice`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		err = client.DeleteUser(cmd.Context(), name)
		audit.Log(audit.PrincipalEvent{
			Actor:        actor(),
			Kind:         "user",
			Name:         name,
			Delete:       true,
			Success:      err == nil,
			ErrorMessage: errMessage(err),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete user: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Deleted user %s\n", name)
	},
}

func init() {
	userCmd.AddCommand(userDeleteCmd)
}

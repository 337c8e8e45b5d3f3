package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/audit"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a user",
	Long: `Create a user in the provider directory.

Example:
  cloudiamctl user create alice`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		created, err := client.CreateUser(cmd.Context(), name)
		audit.Log(audit.PrincipalEvent{
			Actor:        actor(),
			Kind:         "user",
			Name:         name,
			Success:      err == nil,
			ErrorMessage: errMessage(err),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created user %s (id %s)\n", created.Name, created.ID)
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/audit"
)

// policyDeleteCmd represents the policy delete command
var policyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a policy",
	Long: `Delete a policy. A managed policy must be detached from every
principal first.

Example:
  cloudiamctl policy delete arn:aws:iam::123456789012:policy/deployers
  cloudiamctl policy delete limits --user AIDA1234567890EXAMPLE`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		target, err := targetFromFlags(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		err = client.RemovePolicy(cmd.Context(), id, target)
		audit.Log(audit.PolicyEvent{
			Actor:        actor(),
			PolicyID:     id,
			Scope:        targetScope(target),
			Operation:    "remove",
			Success:      err == nil,
			ErrorMessage: errMessage(err),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete policy: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Deleted policy %s\n", id)
	},
}

func init() {
	policyCmd.AddCommand(policyDeleteCmd)
	addTargetFlags(policyDeleteCmd)
}

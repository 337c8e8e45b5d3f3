package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// policyGetCmd represents the policy get command
var policyGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show policy metadata",
	Long: `Show metadata for a single policy.

Example:
  cloudiamctl policy get arn:aws:iam::123456789012:policy/deployers
  cloudiamctl policy get limits --user AIDA1234567890EXAMPLE`,
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

		found, err := client.GetPolicy(cmd.Context(), id, target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get policy: %v\n", err)
			os.Exit(1)
		}
		if found == nil {
			fmt.Fprintf(os.Stderr, "Policy %s not found\n", id)
			os.Exit(1)
		}

		fmt.Printf("ID:          %s\n", found.ID)
		fmt.Printf("Name:        %s\n", found.Name)
		fmt.Printf("Scope:       %s\n", found.Scope)
		if found.Description != "" {
			fmt.Printf("Description: %s\n", found.Description)
		}
		if found.Owner != nil {
			fmt.Printf("Owner:       %s %s\n", found.Owner.Kind, found.Owner.ID)
		}
	},
}

func init() {
	policyCmd.AddCommand(policyGetCmd)
	addTargetFlags(policyGetCmd)
}

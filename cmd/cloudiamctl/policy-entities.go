package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/policy"
)

// policyEntitiesCmd represents the policy entities command
var policyEntitiesCmd = &cobra.Command{
	Use:   "entities <policy-id>",
	Short: "List principals a managed policy is attached to",
	Long: `List the names of principals a managed policy is attached to,
one kind at a time.

Example:
  cloudiamctl policy entities arn:aws:iam::123456789012:policy/deployers --kind group`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		policyID := args[0]
		kindName, _ := cmd.Flags().GetString("kind")

		kind, err := policy.KindString(kindName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unknown principal kind %q (want user or group)\n", kindName)
			os.Exit(1)
		}

		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		names, err := client.ListEntitiesForPolicy(cmd.Context(), policyID, kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list entities: %v\n", err)
			os.Exit(1)
		}

		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	policyCmd.AddCommand(policyEntitiesCmd)
	policyEntitiesCmd.Flags().StringP("kind", "k", "user", "principal kind (user or group)")
}

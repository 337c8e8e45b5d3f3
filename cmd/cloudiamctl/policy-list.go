package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/iam"
)

// policyListCmd represents the policy list command
var policyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List policies",
	Long: `List policies, draining all pages.

Without flags both managed scopes are listed. --provider and --account
narrow the managed listing; --user and --group add a principal's inline
policies.

Example:
  cloudiamctl policy list
  cloudiamctl policy list --account
  cloudiamctl policy list --user AIDA1234567890EXAMPLE`,
	Run: func(cmd *cobra.Command, args []string) {
		provider, _ := cmd.Flags().GetBool("provider")
		account, _ := cmd.Flags().GetBool("account")
		userID, _ := cmd.Flags().GetString("user")
		groupID, _ := cmd.Flags().GetString("group")

		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		policies, err := client.ListPolicies(cmd.Context(), iam.ListFilter{
			Provider: provider,
			Account:  account,
			UserID:   userID,
			GroupID:  groupID,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list policies: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSCOPE")
		for _, p := range policies {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.Scope)
		}
		_ = w.Flush()
	},
}

func init() {
	policyCmd.AddCommand(policyListCmd)
	policyListCmd.Flags().Bool("provider", false, "include provider-published policies")
	policyListCmd.Flags().Bool("account", false, "include account-managed policies")
	policyListCmd.Flags().StringP("user", "u", "", "include policies inline in this user (stable id)")
	policyListCmd.Flags().StringP("group", "g", "", "include policies inline in this group (stable id)")
}

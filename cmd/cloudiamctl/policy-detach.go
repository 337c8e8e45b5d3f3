package main

import (
	"github.com/spf13/cobra"
)

// policyDetachCmd represents the policy detach command
var policyDetachCmd = &cobra.Command{
	Use:   "detach <policy-id>",
	Short: "Detach a managed policy from a principal",
	Long: `Detach a managed policy from exactly one principal, given with
--user or --group.

Example:
  cloudiamctl policy detach arn:aws:iam::123456789012:policy/deployers --group AGPA1234567890EXAMPLE`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		attachOrDetach(cmd, args[0], true)
	},
}

func init() {
	policyCmd.AddCommand(policyDetachCmd)
	addPrincipalFlags(policyDetachCmd)
}

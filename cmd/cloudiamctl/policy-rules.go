package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/policy"
)

// policyRulesCmd represents the policy rules command
var policyRulesCmd = &cobra.Command{
	Use:   "rules <id>",
	Short: "Show a policy's rules",
	Long: `Fetch a policy's default document and print its rules as YAML.

Example:
  cloudiamctl policy rules arn:aws:iam::123456789012:policy/deployers`,
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

		rules, err := client.GetPolicyRules(cmd.Context(), id, target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get policy rules: %v\n", err)
			os.Exit(1)
		}
		if rules == nil {
			fmt.Fprintf(os.Stderr, "Policy %s not found\n", id)
			os.Exit(1)
		}

		if err := policy.WriteRules(os.Stdout, rules); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write rules: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	policyCmd.AddCommand(policyRulesCmd)
	addTargetFlags(policyRulesCmd)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/audit"
	"github.com/mirrorops/cloudiam/pkg/policy"
)

// policyCreateCmd represents the policy create command
var policyCreateCmd = &cobra.Command{
	Use:   "create <name> <rules-file>",
	Short: "Create a policy from a rules file",
	Long: `Create a policy from a YAML rules file. Use "-" to read the
rules from stdin.

Example:
  cloudiamctl policy create deployers rules.yml --description "CI deploy access"
  cloudiamctl policy create limits rules.yml --user AIDA1234567890EXAMPLE`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name, rulesPath := args[0], args[1]
		description, _ := cmd.Flags().GetString("description")

		target, err := targetFromFlags(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		rules, err := readRules(rulesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read rules: %v\n", err)
			os.Exit(1)
		}

		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		created, err := client.CreatePolicy(cmd.Context(), name, description, rules, target)
		audit.Log(audit.PolicyEvent{
			Actor:        actor(),
			PolicyID:     name,
			Scope:        targetScope(target),
			Operation:    "create",
			Success:      err == nil,
			ErrorMessage: errMessage(err),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create policy: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created policy %s (id %s)\n", created.Name, created.ID)
	},
}

func init() {
	policyCmd.AddCommand(policyCreateCmd)
	policyCreateCmd.Flags().StringP("description", "d", "", "policy description")
	addTargetFlags(policyCreateCmd)
}

// readRules parses a YAML rules file, with "-" meaning stdin.
func readRules(path string) ([]policy.Rule, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Close() }()
		r = file
	}
	return policy.ParseRules(r)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/audit"
)

// policyAttachCmd represents the policy attach command
var policyAttachCmd = &cobra.Command{
	Use:   "attach <policy-id>",
	Short: "Attach a managed policy to a principal",
	Long: `Attach a managed policy to exactly one principal, given with
--user or --group.

Example:
  cloudiamctl policy attach arn:aws:iam::123456789012:policy/deployers --user AIDA1234567890EXAMPLE`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		attachOrDetach(cmd, args[0], false)
	},
}

func init() {
	policyCmd.AddCommand(policyAttachCmd)
	addPrincipalFlags(policyAttachCmd)
}

// addPrincipalFlags registers the principal selection flags for the
// attach and detach commands.
func addPrincipalFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("user", "u", "", "principal user (stable id)")
	cmd.Flags().StringP("group", "g", "", "principal group (stable id)")
}

func attachOrDetach(cmd *cobra.Command, policyID string, detach bool) {
	userID, _ := cmd.Flags().GetString("user")
	groupID, _ := cmd.Flags().GetString("group")

	var kind, principalID string
	switch {
	case userID != "" && groupID != "":
		fmt.Fprintln(os.Stderr, "--user and --group are mutually exclusive")
		os.Exit(1)
	case userID != "":
		kind, principalID = "user", userID
	case groupID != "":
		kind, principalID = "group", groupID
	default:
		fmt.Fprintln(os.Stderr, "one of --user or --group is required")
		os.Exit(1)
	}

	client, err := newIAMClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
		os.Exit(1)
	}

	switch {
	case detach && kind == "user":
		err = client.DetachPolicyFromUser(cmd.Context(), policyID, principalID)
	case detach:
		err = client.DetachPolicyFromGroup(cmd.Context(), policyID, principalID)
	case kind == "user":
		err = client.AttachPolicyToUser(cmd.Context(), policyID, principalID)
	default:
		err = client.AttachPolicyToGroup(cmd.Context(), policyID, principalID)
	}

	audit.Log(audit.AttachmentEvent{
		Actor:         actor(),
		PolicyID:      policyID,
		PrincipalKind: kind,
		PrincipalID:   principalID,
		Detach:        detach,
		Success:       err == nil,
		ErrorMessage:  errMessage(err),
	})

	verb, done := "attach", "Attached"
	prep := "to"
	if detach {
		verb, done = "detach", "Detached"
		prep = "from"
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to %s policy: %v\n", verb, err)
		os.Exit(1)
	}

	fmt.Printf("%s policy %s %s %s %s\n", done, policyID, prep, kind, principalID)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/audit"
)

// groupAddMemberCmd represents the group add-member command
var groupAddMemberCmd = &cobra.Command{
	Use:   "add-member <group> <user>",
	Short: "Add a user to a group",
	Long: `Add a user to a group, both referenced by name.

Example:
  cloudiamctl group add-member devs alice`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		groupName, userName := args[0], args[1]

		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		err = client.AddUserToGroup(cmd.Context(), userName, groupName)
		audit.Log(audit.MembershipEvent{
			Actor:        actor(),
			UserName:     userName,
			GroupName:    groupName,
			Success:      err == nil,
			ErrorMessage: errMessage(err),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to add member: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Added %s to %s\n", userName, groupName)
	},
}

// groupRemoveMemberCmd represents the group remove-member command
var groupRemoveMemberCmd = &cobra.Command{
	Use:   "remove-member <group> <user>",
	Short: "Remove a user from a group",
	Long: `Remove a user from a group, both referenced by name.

Example:
  cloudiamctl group remove-member devs alice`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		groupName, userName := args[0], args[1]

		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		err = client.RemoveUserFromGroup(cmd.Context(), userName, groupName)
		audit.Log(audit.MembershipEvent{
			Actor:        actor(),
			UserName:     userName,
			GroupName:    groupName,
			Remove:       true,
			Success:      err == nil,
			ErrorMessage: errMessage(err),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to remove member: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Removed %s from %s\n", userName, groupName)
	},
}

func init() {
	groupCmd.AddCommand(groupAddMemberCmd)
	groupCmd.AddCommand(groupRemoveMemberCmd)
}

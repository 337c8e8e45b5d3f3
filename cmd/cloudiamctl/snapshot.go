package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage the local directory snapshot",
	Long:  `Manage the database snapshot of the provider directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'snapshot' requires a subcommand (sync)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

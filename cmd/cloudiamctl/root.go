package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cloudiamctl",
	Short: "Manage provider identities and access policies",
	Long: `cloudiamctl manages users, groups and access policies through the
provider's identity API, and mirrors them into a local snapshot store
for offline audit.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

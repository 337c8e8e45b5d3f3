package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/audit"
	"github.com/mirrorops/cloudiam/pkg/config"
	"github.com/mirrorops/cloudiam/pkg/db"
	"github.com/mirrorops/cloudiam/pkg/snapshot"
)

// snapshotSyncCmd represents the snapshot sync command
var snapshotSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the provider directory into the database",
	Long: `Fetch the full provider directory and replace the database
snapshot with it in a single transaction.

Requires DATABASE_URL (or the database_url config key) to point at
the snapshot database.

Example:
  cloudiamctl snapshot sync`,
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		database, err := db.Connect(db.Config{URL: config.Get().DatabaseURL})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
			os.Exit(1)
		}

		syncer := snapshot.NewSyncer(client, snapshot.NewGormStore(database))
		run, err := syncer.Sync(cmd.Context())

		event := audit.SyncEvent{
			Actor:        actor(),
			Success:      err == nil,
			ErrorMessage: errMessage(err),
		}
		if run != nil {
			event.UserCount = run.UserCount
			event.GroupCount = run.GroupCount
			event.PolicyCount = run.PolicyCount
		}
		audit.Log(event)

		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to sync snapshot: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Synced %d users, %d groups, %d policies\n",
			run.UserCount, run.GroupCount, run.PolicyCount)
	},
}

func init() {
	snapshotCmd.AddCommand(snapshotSyncCmd)
}

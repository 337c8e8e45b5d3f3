package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/audit"
	"github.com/mirrorops/cloudiam/pkg/config"
	"github.com/mirrorops/cloudiam/pkg/iam"
)

// policyWatchCmd represents the policy watch command
var policyWatchCmd = &cobra.Command{
	Use:   "watch <id> [rules-file]",
	Short: "Watch a rules file and re-apply the policy when it changes",
	Long: `Watch a YAML rules file and re-apply the policy whenever the
file is written. The file must be visible to the process running
"cloudiamctl policy watch". Without a file argument the configured
rules_path is used.

Example:
  cloudiamctl policy watch arn:aws:iam::123456789012:policy/deployers rules.yml`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		filename := config.Get().RulesPath
		if len(args) > 1 {
			filename = args[1]
		}

		target, err := targetFromFlags(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		if err := watchPolicy(cmd.Context(), id, filename, target); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch policy: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	policyCmd.AddCommand(policyWatchCmd)
	addTargetFlags(policyWatchCmd)
}

func watchPolicy(ctx context.Context, id, filename string, target iam.Target) error {
	client, err := newIAMClient()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for changes to policy %s\n", filename, id)

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, re-applying policy...\n", time.Now().Format(time.RFC3339))

				rules, err := readRules(filename)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error reading rules: %v\n", err)
					continue
				}

				err = client.ModifyPolicy(ctx, id, rules, target)
				audit.Log(audit.PolicyEvent{
					Actor:        actor(),
					PolicyID:     id,
					Scope:        targetScope(target),
					Operation:    "modify",
					Success:      err == nil,
					ErrorMessage: errMessage(err),
				})
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error applying policy: %v\n", err)
				} else {
					fmt.Printf("Applied %d rules to policy %s\n", len(rules), id)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mirrorops/cloudiam/pkg/config"
	"github.com/mirrorops/cloudiam/pkg/server"
	"github.com/mirrorops/cloudiam/pkg/server/endpoints"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the directory read API server",
	Long: `Run the HTTP server exposing the provider directory read API.

Requires provider credentials and CLOUDIAM_JWT_SECRET. All endpoints
except /status require a bearer token signed with that secret.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		secret := cfg.JWTSecret
		if secret == "" {
			fmt.Fprintln(os.Stderr, "CLOUDIAM_JWT_SECRET environment variable is required")
			os.Exit(1)
		}

		client, err := newIAMClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
			os.Exit(1)
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(client, host, port)

		endpoints.RegisterAll(s, []byte(secret))

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	cfg := config.Get()
	serverCmd.Flags().StringP("port", "p", strconv.Itoa(cfg.Port), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", cfg.BindAddress, "server bind address")
}

// Package config provides configuration management for cloudiam.
//
// This package handles loading and validating configuration from
// environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - CLOUDIAM_ACCESS_KEY_ID / CLOUDIAM_SECRET_ACCESS_KEY: provider credentials
//   - CLOUDIAM_REGION: signing region
//   - CLOUDIAM_ENDPOINT: provider API endpoint override
//   - CLOUDIAM_JWT_SECRET: HTTP facade bearer token secret
//   - DATABASE_URL: snapshot store connection
//   - CLOUDIAM_PORT: facade listen port
package config

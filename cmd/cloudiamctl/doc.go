// cloudiamctl is the command line interface for cloudiam, a policy
// translation and directory mirroring tool for an IAM-style identity
// provider.
//
// # Architecture
//
// The tool is organized into several packages:
//
//   - pkg/arn: identifier classification
//   - pkg/policy: the neutral permission model and its codecs
//   - pkg/provider: signed Query API transport
//   - pkg/iam: typed directory and policy operations
//   - pkg/snapshot: PostgreSQL mirror of the provider directory
//   - pkg/server: read-only HTTP facade
//   - pkg/audit: RFC5424 audit trail
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Configure provider credentials
//	export CLOUDIAM_ACCESS_KEY_ID=...
//	export CLOUDIAM_SECRET_ACCESS_KEY=...
//
//	# Run database migrations for the snapshot store
//	export DATABASE_URL=postgres://...
//	cloudiamctl db migrate
//
//	# Pull a directory snapshot
//	cloudiamctl snapshot sync
//
//	# Start the read-only HTTP facade
//	export CLOUDIAM_JWT_SECRET=...
//	cloudiamctl server
//
// # Environment Variables
//
//   - CLOUDIAM_ACCESS_KEY_ID / CLOUDIAM_SECRET_ACCESS_KEY: provider credentials
//   - CLOUDIAM_REGION: signing region (default us-east-1)
//   - CLOUDIAM_ENDPOINT: provider endpoint override
//   - CLOUDIAM_JWT_SECRET: bearer token secret for the facade
//   - DATABASE_URL: PostgreSQL connection string
//   - CLOUDIAM_AUDIT_ENABLED: set to false to disable the audit trail
package main

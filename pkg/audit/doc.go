// Package audit provides audit logging for cloudiam operations.
//
// This package implements structured audit logging for security-relevant
// operations such as policy mutations, attachments and principal
// lifecycle changes.
//
// # Event Types
//
// The package defines event types for various operations:
//
//   - Policy create/modify/remove events
//   - Policy attach/detach events
//   - User and group lifecycle events
//   - Group membership events
//   - Snapshot sync events
//
// # Usage
//
//	audit.Log(audit.PolicyEvent{Actor: actor, PolicyID: id, Operation: "create", Success: true})
//
// Audit events are logged in RFC5424 syslog format suitable for security
// monitoring and compliance requirements, and optionally persisted to a
// database when AUDIT_DATABASE_URL is set.
package audit

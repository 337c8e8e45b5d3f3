// Package snapshot mirrors the provider's directory into a local
// database for offline audit queries.
//
// The Syncer drains users, groups, memberships, policies and
// attachments through the provider client and swaps them into the
// Store in a single transaction, so readers always observe a complete
// snapshot. Store is an interface; GormStore is the PostgreSQL
// implementation.
package snapshot

package snapshot

import "github.com/mirrorops/cloudiam/pkg/model"

// Store abstracts the storage operations for snapshot sync.
// This allows the syncer to work with different backends (e.g., database, mock for testing).
type Store interface {
	// Transaction wraps operations in a database transaction.
	// The provided function receives a transactional Store.
	// If the function returns an error, the transaction is rolled back.
	Transaction(fn func(Store) error) error

	// ReplaceUsers swaps the stored user set for the given one.
	ReplaceUsers(users []model.User) error

	// ReplaceGroups swaps the stored group set for the given one.
	ReplaceGroups(groups []model.Group) error

	// ReplaceMemberships swaps the stored group membership edges.
	ReplaceMemberships(memberships []model.GroupMembership) error

	// ReplaceManagedPolicies swaps the stored managed policy set.
	ReplaceManagedPolicies(policies []model.ManagedPolicy) error

	// ReplaceInlinePolicies swaps the stored inline policy set.
	ReplaceInlinePolicies(policies []model.InlinePolicy) error

	// ReplaceAttachments swaps the stored policy attachment edges.
	ReplaceAttachments(attachments []model.PolicyAttachment) error

	// RecordSyncRun appends a bookkeeping record for a completed pull.
	RecordSyncRun(run *model.SyncRun) error
}

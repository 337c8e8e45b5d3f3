package snapshot

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mirrorops/cloudiam/pkg/model"
)

const createBatchSize = 500

// Ensure GormStore implements Store
var _ Store = (*GormStore)(nil)

// GormStore implements Store using GORM for database operations.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Transaction wraps operations in a database transaction.
func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// ReplaceUsers swaps the stored user set for the given one.
func (s *GormStore) ReplaceUsers(users []model.User) error {
	return replaceAll(s.db, model.User{}.TableName(), users)
}

// ReplaceGroups swaps the stored group set for the given one.
func (s *GormStore) ReplaceGroups(groups []model.Group) error {
	return replaceAll(s.db, model.Group{}.TableName(), groups)
}

// ReplaceMemberships swaps the stored group membership edges.
func (s *GormStore) ReplaceMemberships(memberships []model.GroupMembership) error {
	return replaceAll(s.db, model.GroupMembership{}.TableName(), memberships)
}

// ReplaceManagedPolicies swaps the stored managed policy set.
func (s *GormStore) ReplaceManagedPolicies(policies []model.ManagedPolicy) error {
	return replaceAll(s.db, model.ManagedPolicy{}.TableName(), policies)
}

// ReplaceInlinePolicies swaps the stored inline policy set.
func (s *GormStore) ReplaceInlinePolicies(policies []model.InlinePolicy) error {
	return replaceAll(s.db, model.InlinePolicy{}.TableName(), policies)
}

// ReplaceAttachments swaps the stored policy attachment edges.
func (s *GormStore) ReplaceAttachments(attachments []model.PolicyAttachment) error {
	return replaceAll(s.db, model.PolicyAttachment{}.TableName(), attachments)
}

// RecordSyncRun appends a bookkeeping record for a completed pull.
func (s *GormStore) RecordSyncRun(run *model.SyncRun) error {
	if err := s.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to record sync run: %w", err)
	}
	return nil
}

// replaceAll clears a table and bulk-inserts the replacement rows.
// Callers are expected to run it inside Transaction so readers never
// observe the empty intermediate state.
func replaceAll[T any](db *gorm.DB, table string, rows []T) error {
	if err := db.Exec("DELETE FROM " + table).Error; err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := db.CreateInBatches(rows, createBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

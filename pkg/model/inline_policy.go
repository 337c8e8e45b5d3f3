package model

import "time"

// InlinePolicy mirrors a policy embedded in a user or group. Inline
// policies have no identity of their own, so the owner and name form
// the key.
type InlinePolicy struct {
	OwnerKind string    `gorm:"column:owner_kind;primaryKey"`
	OwnerID   string    `gorm:"column:owner_id;primaryKey"`
	Name      string    `gorm:"column:name;primaryKey"`
	Document  string    `gorm:"column:document"`
	SyncedAt  time.Time `gorm:"column:synced_at;not null"`
}

func (InlinePolicy) TableName() string {
	return "inline_policies"
}

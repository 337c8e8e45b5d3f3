package model

import "time"

// ManagedPolicy mirrors a standalone provider policy. Scope records
// whether the provider or the account owns it. Document holds the
// default version's rules serialized as JSON.
type ManagedPolicy struct {
	PolicyID    string    `gorm:"column:policy_id;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description"`
	Scope       string    `gorm:"column:scope;not null"`
	Document    string    `gorm:"column:document"`
	SyncedAt    time.Time `gorm:"column:synced_at;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ManagedPolicy) TableName() string {
	return "managed_policies"
}

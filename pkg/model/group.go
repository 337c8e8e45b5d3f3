package model

import "time"

// Group mirrors a provider group as of the last snapshot.
type Group struct {
	GroupID   string    `gorm:"column:group_id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Path      string    `gorm:"column:path;not null;default:'/'"`
	SyncedAt  time.Time `gorm:"column:synced_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Group) TableName() string {
	return "groups"
}

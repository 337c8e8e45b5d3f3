package model

import "time"

// User mirrors a provider user as of the last snapshot.
type User struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Path      string    `gorm:"column:path;not null;default:'/'"`
	SyncedAt  time.Time `gorm:"column:synced_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

package model

import "time"

// SyncRun records one completed snapshot pull and what it counted.
type SyncRun struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement"`
	StartedAt   time.Time `gorm:"column:started_at;not null"`
	FinishedAt  time.Time `gorm:"column:finished_at;not null"`
	UserCount   int       `gorm:"column:user_count;not null"`
	GroupCount  int       `gorm:"column:group_count;not null"`
	PolicyCount int       `gorm:"column:policy_count;not null"`
}

func (SyncRun) TableName() string {
	return "sync_runs"
}

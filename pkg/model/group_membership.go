package model

// GroupMembership records a user's membership in a group.
type GroupMembership struct {
	GroupID string `gorm:"column:group_id;primaryKey"`
	UserID  string `gorm:"column:user_id;primaryKey"`
}

func (GroupMembership) TableName() string {
	return "group_memberships"
}

package model

// PolicyAttachment records a managed policy attached to a principal.
// PrincipalKind is "user" or "group".
type PolicyAttachment struct {
	PolicyID      string `gorm:"column:policy_id;primaryKey"`
	PrincipalKind string `gorm:"column:principal_kind;primaryKey"`
	PrincipalID   string `gorm:"column:principal_id;primaryKey"`
}

func (PolicyAttachment) TableName() string {
	return "policy_attachments"
}

package policy

// Rule is one vendor-neutral statement of access control.
//
// An empty Actions list means "all actions" and an empty Resources list
// means "all resources". When ExcludeActions is set the listed actions are
// the ones excluded from the rule's effect; the rule applies to everything
// else.
type Rule struct {
	Effect         Effect   `yaml:"effect" json:"effect"`
	ExcludeActions bool     `yaml:"exclude_actions,omitempty" json:"exclude_actions,omitempty"`
	Actions        []string `yaml:"actions,omitempty" json:"actions,omitempty"`
	Resources      []string `yaml:"resources,omitempty" json:"resources,omitempty"`
}

// PrincipalRef identifies the principal an inline policy belongs to.
type PrincipalRef struct {
	Kind Kind   `yaml:"kind" json:"kind"`
	ID   string `yaml:"id" json:"id"`
}

// UserRef creates a PrincipalRef for a user.
func UserRef(id string) PrincipalRef {
	return PrincipalRef{
		Kind: KindUser,
		ID:   id,
	}
}

// GroupRef creates a PrincipalRef for a group.
func GroupRef(id string) PrincipalRef {
	return PrincipalRef{
		Kind: KindGroup,
		ID:   id,
	}
}

// Policy identifies a named bundle of permission rules at a given scope.
//
// For managed scopes ID is the structured resource identifier; for inline
// scope it is the policy's simple name and Owner names the principal the
// document is embedded in.
type Policy struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Scope       Scope         `json:"scope"`
	Owner       *PrincipalRef `json:"owner,omitempty"`
}

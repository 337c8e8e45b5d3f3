package iam

import (
	"github.com/mirrorops/cloudiam/pkg/policy"
)

// Target selects the code path a policy operation takes: the managed
// policy store, or a policy inlined in one principal's record. It is a
// closed variant; policy operations switch exhaustively on it instead of
// probing optional principal fields.
type Target struct {
	inline    bool
	principal policy.PrincipalRef
}

// Managed targets the account's managed policy store.
func Managed() Target {
	return Target{}
}

// InlineUser targets the policy inlined in the user with the given id.
func InlineUser(userID string) Target {
	return Target{inline: true, principal: policy.UserRef(userID)}
}

// InlineGroup targets the policy inlined in the group with the given id.
func InlineGroup(groupID string) Target {
	return Target{inline: true, principal: policy.GroupRef(groupID)}
}

// Inline reports whether the target is a principal's inline policy.
func (t Target) Inline() bool {
	return t.inline
}

// Principal returns the owning principal for inline targets; ok is false
// for the managed target.
func (t Target) Principal() (ref policy.PrincipalRef, ok bool) {
	return t.principal, t.inline
}

package audit

import "fmt"

// PolicyEvent represents a policy mutation audit event
type PolicyEvent struct {
	Actor        string
	PolicyID     string
	Scope        string
	Operation    string // "create", "modify", "remove"
	Success      bool
	ErrorMessage string
}

func (e PolicyEvent) MessageID() string {
	return "policy"
}

func (e PolicyEvent) Message() string {
	var verb string
	switch e.Operation {
	case "create":
		verb = "created"
	case "modify":
		verb = "modified"
	case "remove":
		verb = "removed"
	default:
		verb = e.Operation + "d"
	}
	if e.Success {
		return fmt.Sprintf("%s %s %s policy %s", e.Actor, verb, e.Scope, e.PolicyID)
	}
	msg := fmt.Sprintf("%s tried to %s %s policy %s", e.Actor, e.Operation, e.Scope, e.PolicyID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e PolicyEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e PolicyEvent) Facility() int {
	return FacilityAuthPriv
}

func (e PolicyEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDActor: {
			"user": e.Actor,
		},
		SDIDPolicy: {
			"id":    e.PolicyID,
			"scope": e.Scope,
		},
		SDIDAction: {
			"operation": e.Operation,
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// AttachmentEvent represents a policy attach or detach audit event
type AttachmentEvent struct {
	Actor         string
	PolicyID      string
	PrincipalKind string // "user" or "group"
	PrincipalID   string
	Detach        bool
	Success       bool
	ErrorMessage  string
}

func (e AttachmentEvent) MessageID() string {
	if e.Detach {
		return "detach"
	}
	return "attach"
}

func (e AttachmentEvent) Message() string {
	verb, done := "attach", "attached"
	prep := "to"
	if e.Detach {
		verb, done = "detach", "detached"
		prep = "from"
	}
	if e.Success {
		return fmt.Sprintf("%s %s policy %s %s %s %s", e.Actor, done, e.PolicyID, prep, e.PrincipalKind, e.PrincipalID)
	}
	msg := fmt.Sprintf("%s tried to %s policy %s %s %s %s", e.Actor, verb, e.PolicyID, prep, e.PrincipalKind, e.PrincipalID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AttachmentEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AttachmentEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AttachmentEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDActor: {
			"user": e.Actor,
		},
		SDIDPolicy: {
			"id": e.PolicyID,
		},
		SDIDSubject: {
			"kind": e.PrincipalKind,
			"id":   e.PrincipalID,
		},
		SDIDAction: {
			"operation": e.MessageID(),
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// PrincipalEvent represents a user or group lifecycle audit event
type PrincipalEvent struct {
	Actor        string
	Kind         string // "user" or "group"
	Name         string
	Delete       bool
	Success      bool
	ErrorMessage string
}

func (e PrincipalEvent) MessageID() string {
	return e.Kind
}

func (e PrincipalEvent) Message() string {
	verb, done := "create", "created"
	if e.Delete {
		verb, done = "delete", "deleted"
	}
	if e.Success {
		return fmt.Sprintf("%s %s %s %s", e.Actor, done, e.Kind, e.Name)
	}
	msg := fmt.Sprintf("%s tried to %s %s %s", e.Actor, verb, e.Kind, e.Name)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e PrincipalEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e PrincipalEvent) Facility() int {
	return FacilityAuthPriv
}

func (e PrincipalEvent) StructuredData() map[string]map[string]string {
	operation := "create"
	if e.Delete {
		operation = "delete"
	}
	sd := map[string]map[string]string{
		SDIDActor: {
			"user": e.Actor,
		},
		SDIDSubject: {
			"kind": e.Kind,
			"name": e.Name,
		},
		SDIDAction: {
			"operation": operation,
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// MembershipEvent represents a group membership change audit event
type MembershipEvent struct {
	Actor        string
	UserName     string
	GroupName    string
	Remove       bool
	Success      bool
	ErrorMessage string
}

func (e MembershipEvent) MessageID() string {
	return "membership"
}

func (e MembershipEvent) Message() string {
	if e.Remove {
		if e.Success {
			return fmt.Sprintf("%s removed %s from group %s", e.Actor, e.UserName, e.GroupName)
		}
		return failureMessage(fmt.Sprintf("%s tried to remove %s from group %s", e.Actor, e.UserName, e.GroupName), e.ErrorMessage)
	}
	if e.Success {
		return fmt.Sprintf("%s added %s to group %s", e.Actor, e.UserName, e.GroupName)
	}
	return failureMessage(fmt.Sprintf("%s tried to add %s to group %s", e.Actor, e.UserName, e.GroupName), e.ErrorMessage)
}

func (e MembershipEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e MembershipEvent) Facility() int {
	return FacilityAuthPriv
}

func (e MembershipEvent) StructuredData() map[string]map[string]string {
	operation := "add-member"
	if e.Remove {
		operation = "remove-member"
	}
	sd := map[string]map[string]string{
		SDIDActor: {
			"user": e.Actor,
		},
		SDIDSubject: {
			"user":  e.UserName,
			"group": e.GroupName,
		},
		SDIDAction: {
			"operation": operation,
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// SyncEvent represents a snapshot sync audit event
type SyncEvent struct {
	Actor        string
	UserCount    int
	GroupCount   int
	PolicyCount  int
	Success      bool
	ErrorMessage string
}

func (e SyncEvent) MessageID() string {
	return "sync"
}

func (e SyncEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s synced snapshot: %d users, %d groups, %d policies",
			e.Actor, e.UserCount, e.GroupCount, e.PolicyCount)
	}
	return failureMessage(fmt.Sprintf("%s tried to sync snapshot", e.Actor), e.ErrorMessage)
}

func (e SyncEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e SyncEvent) Facility() int {
	return FacilityAuth
}

func (e SyncEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDActor: {
			"user": e.Actor,
		},
		SDIDAction: {
			"operation": "sync",
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
		sd[SDIDSubject] = map[string]string{
			"users":    fmt.Sprintf("%d", e.UserCount),
			"groups":   fmt.Sprintf("%d", e.GroupCount),
			"policies": fmt.Sprintf("%d", e.PolicyCount),
		}
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

func failureMessage(msg, errMsg string) string {
	if errMsg != "" {
		return msg + ": " + errMsg
	}
	return msg
}

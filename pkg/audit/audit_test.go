package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := PolicyEvent{
		Actor:     "ops-admin",
		PolicyID:  "arn:aws:iam::123456789012:policy/deployers",
		Scope:     "account_managed",
		Operation: "create",
		Success:   true,
	}

	logger.Log(event)

	output := buf.String()

	if !strings.HasPrefix(output, "<86>1 ") {
		t.Errorf("Expected PRI <86> (authpriv.info) prefix, got %q", output)
	}
	if !strings.Contains(output, "cloudiam") {
		t.Error("Expected app name 'cloudiam' in output")
	}
	if !strings.Contains(output, "policy") {
		t.Error("Expected message ID 'policy' in output")
	}
	if !strings.Contains(output, "ops-admin created account_managed policy") {
		t.Errorf("Expected success message in output, got %q", output)
	}
}

func TestPolicyEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   PolicyEvent
		wantMsg string
		wantSev Severity
	}{
		{
			name: "successful create",
			event: PolicyEvent{
				Actor:     "ops-admin",
				PolicyID:  "deployers",
				Scope:     "inline",
				Operation: "create",
				Success:   true,
			},
			wantMsg: "ops-admin created inline policy deployers",
			wantSev: SeverityInfo,
		},
		{
			name: "failed remove",
			event: PolicyEvent{
				Actor:        "ops-admin",
				PolicyID:     "deployers",
				Scope:        "account_managed",
				Operation:    "remove",
				Success:      false,
				ErrorMessage: "access denied",
			},
			wantMsg: "ops-admin tried to remove account_managed policy deployers: access denied",
			wantSev: SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Message(); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.event.Severity(); got != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", got, tt.wantSev)
			}
			sd := tt.event.StructuredData()
			if sd[SDIDPolicy]["id"] != tt.event.PolicyID {
				t.Errorf("StructuredData policy id = %q, want %q", sd[SDIDPolicy]["id"], tt.event.PolicyID)
			}
		})
	}
}

func TestAttachmentEvent(t *testing.T) {
	attach := AttachmentEvent{
		Actor:         "ops-admin",
		PolicyID:      "arn:aws:iam::123456789012:policy/deployers",
		PrincipalKind: "group",
		PrincipalID:   "AGPA1",
		Success:       true,
	}
	if got := attach.MessageID(); got != "attach" {
		t.Errorf("MessageID() = %q, want attach", got)
	}
	if !strings.Contains(attach.Message(), "attached") || !strings.Contains(attach.Message(), "to group AGPA1") {
		t.Errorf("unexpected message %q", attach.Message())
	}

	detach := attach
	detach.Detach = true
	if got := detach.MessageID(); got != "detach" {
		t.Errorf("MessageID() = %q, want detach", got)
	}
	if !strings.Contains(detach.Message(), "detached") || !strings.Contains(detach.Message(), "from group AGPA1") {
		t.Errorf("unexpected message %q", detach.Message())
	}
}

func TestMembershipEvent(t *testing.T) {
	event := MembershipEvent{
		Actor:     "ops-admin",
		UserName:  "alice",
		GroupName: "devs",
		Remove:    true,
		Success:   false,
	}
	if got := event.Message(); got != "ops-admin tried to remove alice from group devs" {
		t.Errorf("Message() = %q", got)
	}
	sd := event.StructuredData()
	if sd[SDIDAction]["operation"] != "remove-member" {
		t.Errorf("operation = %q, want remove-member", sd[SDIDAction]["operation"])
	}
	if sd[SDIDAction]["result"] != "failure" {
		t.Errorf("result = %q, want failure", sd[SDIDAction]["result"])
	}
}

func TestSyncEvent(t *testing.T) {
	event := SyncEvent{
		Actor:       "ops-admin",
		UserCount:   10,
		GroupCount:  3,
		PolicyCount: 7,
		Success:     true,
	}
	want := "ops-admin synced snapshot: 10 users, 3 groups, 7 policies"
	if got := event.Message(); got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
	sd := event.StructuredData()
	if sd[SDIDSubject]["policies"] != "7" {
		t.Errorf("policies = %q, want 7", sd[SDIDSubject]["policies"])
	}
}

func TestEscapeSDValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `"plain"`},
		{`has"quote`, `"has\"quote"`},
		{`has]bracket`, `"has\]bracket"`},
		{`has\backslash`, `"has\\backslash"`},
	}
	for _, tt := range tests {
		if got := escapeSDValue(tt.in); got != tt.want {
			t.Errorf("escapeSDValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

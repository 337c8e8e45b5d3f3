package query

import (
	"strings"
	"testing"
)

const listResponse = `<?xml version="1.0"?>
<ListUsersResponse xmlns="https://iam.amazonaws.com/doc/2010-05-08/">
  <ListUsersResult>
    <Users>
      <member>
        <UserName>alice</UserName>
        <UserId>AIDA1</UserId>
      </member>
      <member>
        <UserName>bob</UserName>
        <UserId>AIDA2</UserId>
      </member>
    </Users>
    <IsTruncated>false</IsTruncated>
  </ListUsersResult>
</ListUsersResponse>`

func TestParse(t *testing.T) {
	root, err := Parse(strings.NewReader(listResponse))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Name != "ListUsersResponse" {
		t.Fatalf("expected ListUsersResponse root, got %q", root.Name)
	}

	users := root.Descend("ListUsersResult", "Users")
	if users == nil {
		t.Fatal("expected Users node")
	}
	members := users.ChildrenNamed("member")
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if got := members[0].ChildText("UserName"); got != "alice" {
		t.Errorf("expected alice, got %q", got)
	}
	if got := members[1].ChildText("UserId"); got != "AIDA2" {
		t.Errorf("expected AIDA2, got %q", got)
	}
}

func TestChildIsCaseInsensitive(t *testing.T) {
	root, err := Parse(strings.NewReader(listResponse))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Child("listusersresult") == nil {
		t.Error("lowercased lookup should match")
	}
	if root.Descend("LISTUSERSRESULT", "users") == nil {
		t.Error("uppercased path lookup should match")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Error("expected error for empty body")
	}
	if _, err := Parse(strings.NewReader("<a><b></a>")); err == nil {
		t.Error("expected error for mismatched tags")
	}
}

func TestNilSafety(t *testing.T) {
	var n *Node
	if n.Child("x") != nil {
		t.Error("Child on nil node should be nil")
	}
	if n.Descend("x", "y") != nil {
		t.Error("Descend on nil node should be nil")
	}
}

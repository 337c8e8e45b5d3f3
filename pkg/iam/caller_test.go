package iam

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/mirrorops/cloudiam/pkg/provider"
	"github.com/mirrorops/cloudiam/pkg/provider/query"
)

// fakeCaller scripts provider responses per action and records every
// invocation for assertions.
type fakeCaller struct {
	handlers map[string]func(params map[string]string) (*query.Node, error)
	calls    []recordedCall
}

type recordedCall struct {
	action string
	params map[string]string
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{handlers: map[string]func(map[string]string) (*query.Node, error){}}
}

func (f *fakeCaller) handle(action string, fn func(params map[string]string) (*query.Node, error)) {
	f.handlers[action] = fn
}

// respond registers a fixed XML response for an action.
func (f *fakeCaller) respond(t *testing.T, action, xml string) {
	t.Helper()
	node := parseXML(t, xml)
	f.handle(action, func(map[string]string) (*query.Node, error) {
		return node, nil
	})
}

// fail registers a fixed error for an action.
func (f *fakeCaller) fail(action string, err error) {
	f.handle(action, func(map[string]string) (*query.Node, error) {
		return nil, err
	})
}

func (f *fakeCaller) Invoke(_ context.Context, action string, params map[string]string) (*query.Node, error) {
	f.calls = append(f.calls, recordedCall{action: action, params: params})
	fn, ok := f.handlers[action]
	if !ok {
		return nil, fmt.Errorf("unexpected action %q", action)
	}
	return fn(params)
}

func (f *fakeCaller) actions() []string {
	actions := make([]string, len(f.calls))
	for i, c := range f.calls {
		actions[i] = c.action
	}
	return actions
}

func (f *fakeCaller) called(action string) bool {
	for _, c := range f.calls {
		if c.action == action {
			return true
		}
	}
	return false
}

func parseXML(t *testing.T, xml string) *query.Node {
	t.Helper()
	node, err := query.Parse(strings.NewReader(xml))
	if err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return node
}

func notFoundError() error {
	return &provider.Error{StatusCode: 404, Code: "NoSuchEntity", Message: "no such entity"}
}

func accessDeniedError() error {
	return &provider.Error{StatusCode: 403, Code: "AccessDenied", Message: "not authorized"}
}

// Shared fixtures.

const oneUserListing = `<ListUsersResponse><ListUsersResult>
  <Users>
    <member><UserId>AIDA1</UserId><UserName>alice</UserName><Path>/</Path></member>
  </Users>
  <IsTruncated>false</IsTruncated>
</ListUsersResult></ListUsersResponse>`

const oneGroupListing = `<ListGroupsResponse><ListGroupsResult>
  <Groups>
    <member><GroupId>AGPA1</GroupId><GroupName>devs</GroupName><Path>/</Path></member>
  </Groups>
  <IsTruncated>false</IsTruncated>
</ListGroupsResult></ListGroupsResponse>`

const emptyUserListing = `<ListUsersResponse><ListUsersResult>
  <Users/>
  <IsTruncated>false</IsTruncated>
</ListUsersResult></ListUsersResponse>`

package iam

import (
	"github.com/mirrorops/cloudiam/pkg/provider/query"
)

// User is a user principal. ID is assigned by the provider and immutable;
// Name is the mutable handle most provider calls take.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// Group is a group principal.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// userFromNode reads a user fragment. A fragment missing either the id or
// the name is unusable and yields nil, never a partially-populated user.
func userFromNode(n *query.Node) *User {
	if n == nil {
		return nil
	}
	id := n.ChildText("UserId")
	name := n.ChildText("UserName")
	if id == "" || name == "" {
		return nil
	}
	path := n.ChildText("Path")
	if path == "" {
		path = "/"
	}
	return &User{ID: id, Name: name, Path: path}
}

// groupFromNode reads a group fragment with the same discard rule as
// userFromNode.
func groupFromNode(n *query.Node) *Group {
	if n == nil {
		return nil
	}
	id := n.ChildText("GroupId")
	name := n.ChildText("GroupName")
	if id == "" || name == "" {
		return nil
	}
	path := n.ChildText("Path")
	if path == "" {
		path = "/"
	}
	return &Group{ID: id, Name: name, Path: path}
}

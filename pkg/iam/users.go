package iam

import (
	"context"
	"fmt"

	"github.com/mirrorops/cloudiam/pkg/provider"
)

// CreateUser creates a user with the given name at the default path.
func (c *Client) CreateUser(ctx context.Context, name string) (*User, error) {
	root, err := c.caller.Invoke(ctx, "CreateUser", map[string]string{"UserName": name})
	if err != nil {
		return nil, err
	}
	user := userFromNode(root.Descend("CreateUserResult", "User"))
	if user == nil {
		return nil, fmt.Errorf("create user %q: response carried no usable user", name)
	}
	return user, nil
}

// GetUser fetches a user by name. Absent users yield (nil, nil).
func (c *Client) GetUser(ctx context.Context, name string) (*User, error) {
	root, err := c.caller.Invoke(ctx, "GetUser", map[string]string{"UserName": name})
	if err != nil {
		if provider.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return userFromNode(root.Descend("GetUserResult", "User")), nil
}

// DeleteUser removes a user by name.
func (c *Client) DeleteUser(ctx context.Context, name string) error {
	_, err := c.caller.Invoke(ctx, "DeleteUser", map[string]string{"UserName": name})
	return err
}

// ListUsers drains every page of the account's users.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	return collectAll(func(marker string) ([]User, string, error) {
		root, err := c.caller.Invoke(ctx, "ListUsers", markerParams(marker, nil))
		if err != nil {
			return nil, "", err
		}
		result := root.Child("ListUsersResult")
		var users []User
		for _, member := range result.Child("Users").ChildrenNamed("member") {
			if user := userFromNode(member); user != nil {
				users = append(users, *user)
			}
		}
		return users, nextMarker(result), nil
	})
}

// AddUserToGroup puts a user, by name, into a group.
func (c *Client) AddUserToGroup(ctx context.Context, userName, groupName string) error {
	_, err := c.caller.Invoke(ctx, "AddUserToGroup", map[string]string{
		"UserName":  userName,
		"GroupName": groupName,
	})
	return err
}

// RemoveUserFromGroup takes a user, by name, out of a group.
func (c *Client) RemoveUserFromGroup(ctx context.Context, userName, groupName string) error {
	_, err := c.caller.Invoke(ctx, "RemoveUserFromGroup", map[string]string{
		"UserName":  userName,
		"GroupName": groupName,
	})
	return err
}

// ListGroupsForUser drains every page of the groups a user belongs to.
func (c *Client) ListGroupsForUser(ctx context.Context, userName string) ([]Group, error) {
	return collectAll(func(marker string) ([]Group, string, error) {
		params := markerParams(marker, map[string]string{"UserName": userName})
		root, err := c.caller.Invoke(ctx, "ListGroupsForUser", params)
		if err != nil {
			return nil, "", err
		}
		result := root.Child("ListGroupsForUserResult")
		var groups []Group
		for _, member := range result.Child("Groups").ChildrenNamed("member") {
			if group := groupFromNode(member); group != nil {
				groups = append(groups, *group)
			}
		}
		return groups, nextMarker(result), nil
	})
}

package iam

import (
	"context"
	"fmt"

	"github.com/mirrorops/cloudiam/pkg/provider"
)

// CreateGroup creates a group with the given name at the default path.
func (c *Client) CreateGroup(ctx context.Context, name string) (*Group, error) {
	root, err := c.caller.Invoke(ctx, "CreateGroup", map[string]string{"GroupName": name})
	if err != nil {
		return nil, err
	}
	group := groupFromNode(root.Descend("CreateGroupResult", "Group"))
	if group == nil {
		return nil, fmt.Errorf("create group %q: response carried no usable group", name)
	}
	return group, nil
}

// GetGroup fetches a group by name. Absent groups yield (nil, nil).
func (c *Client) GetGroup(ctx context.Context, name string) (*Group, error) {
	root, err := c.caller.Invoke(ctx, "GetGroup", map[string]string{"GroupName": name})
	if err != nil {
		if provider.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return groupFromNode(root.Descend("GetGroupResult", "Group")), nil
}

// DeleteGroup removes a group by name.
func (c *Client) DeleteGroup(ctx context.Context, name string) error {
	_, err := c.caller.Invoke(ctx, "DeleteGroup", map[string]string{"GroupName": name})
	return err
}

// ListGroups drains every page of the account's groups.
func (c *Client) ListGroups(ctx context.Context) ([]Group, error) {
	return collectAll(func(marker string) ([]Group, string, error) {
		root, err := c.caller.Invoke(ctx, "ListGroups", markerParams(marker, nil))
		if err != nil {
			return nil, "", err
		}
		result := root.Child("ListGroupsResult")
		var groups []Group
		for _, member := range result.Child("Groups").ChildrenNamed("member") {
			if group := groupFromNode(member); group != nil {
				groups = append(groups, *group)
			}
		}
		return groups, nextMarker(result), nil
	})
}

// ListUserNamesForGroup drains the group's member listing and returns the
// raw user names in page order.
func (c *Client) ListUserNamesForGroup(ctx context.Context, groupName string) ([]string, error) {
	return collectAll(func(marker string) ([]string, string, error) {
		params := markerParams(marker, map[string]string{"GroupName": groupName})
		root, err := c.caller.Invoke(ctx, "GetGroup", params)
		if err != nil {
			return nil, "", err
		}
		result := root.Child("GetGroupResult")
		var names []string
		for _, member := range result.Child("Users").ChildrenNamed("member") {
			if name := member.ChildText("UserName"); name != "" {
				names = append(names, name)
			}
		}
		return names, nextMarker(result), nil
	})
}

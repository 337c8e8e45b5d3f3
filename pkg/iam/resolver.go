package iam

import (
	"context"
	"fmt"
)

// The provider has no by-id lookup for principals, so by-id resolution
// drains the full listing and scans it. That makes every by-id call O(n)
// in the number of principals in the account; callers resolving many ids
// in a loop pay that cost each time, since no listing cache is kept.

// UserByID resolves a user by its immutable id. Absent users yield
// (nil, nil).
func (c *Client) UserByID(ctx context.Context, id string) (*User, error) {
	users, err := c.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// UserByName resolves a user by its mutable name handle. Absent users
// yield (nil, nil).
func (c *Client) UserByName(ctx context.Context, name string) (*User, error) {
	return c.GetUser(ctx, name)
}

// GroupByID resolves a group by its immutable id. Absent groups yield
// (nil, nil).
func (c *Client) GroupByID(ctx context.Context, id string) (*Group, error) {
	groups, err := c.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i], nil
		}
	}
	return nil, nil
}

// GroupByName resolves a group by name. Absent groups yield (nil, nil).
func (c *Client) GroupByName(ctx context.Context, name string) (*Group, error) {
	return c.GetGroup(ctx, name)
}

// requireUser resolves a user by id for operations that cannot proceed
// without one; a miss is a hard failure wrapping ErrNotFound.
func (c *Client) requireUser(ctx context.Context, id string) (*User, error) {
	user, err := c.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", id, ErrNotFound)
	}
	return user, nil
}

// requireGroup is requireUser for groups.
func (c *Client) requireGroup(ctx context.Context, id string) (*Group, error) {
	group, err := c.GroupByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("group %q: %w", id, ErrNotFound)
	}
	return group, nil
}

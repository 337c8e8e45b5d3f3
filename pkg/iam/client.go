package iam

import (
	"errors"

	"github.com/mirrorops/cloudiam/pkg/provider"
)

// ErrNotFound is returned by operations that cannot proceed because a
// referenced principal or policy does not exist at the provider.
var ErrNotFound = errors.New("entity not found")

// Client exposes the identity service as domain objects. Every operation
// is synchronous: it issues one or more sequential provider calls and
// returns the full logical result. The client keeps no state between
// calls, so concurrent use needs no locking.
type Client struct {
	caller provider.Caller
}

// NewClient creates a client on top of a provider call boundary.
func NewClient(caller provider.Caller) *Client {
	return &Client{caller: caller}
}

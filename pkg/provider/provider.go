package provider

import (
	"context"

	"github.com/mirrorops/cloudiam/pkg/provider/query"
)

// Caller executes one provider API call and returns the parsed response
// tree. Failures carry a *Error when the provider reported them; transport
// failures are returned as-is.
type Caller interface {
	Invoke(ctx context.Context, action string, params map[string]string) (*query.Node, error)
}

// CallerFunc adapts a function to the Caller interface.
type CallerFunc func(ctx context.Context, action string, params map[string]string) (*query.Node, error)

// Invoke implements Caller.
func (f CallerFunc) Invoke(ctx context.Context, action string, params map[string]string) (*query.Node, error) {
	return f(ctx, action, params)
}

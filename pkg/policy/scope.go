package policy

//go:generate go run github.com/dmarkham/enumer -type Scope -trimprefix Scope -transform snake -json -output scope.gen.go

// Scope classifies where a policy lives: published by the provider,
// managed within the account, or embedded inline in a single principal.
type Scope int

const (
	ScopeProviderManaged Scope = iota
	ScopeAccountManaged
	ScopeInline
)

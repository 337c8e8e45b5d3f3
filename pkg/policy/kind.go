package policy

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -transform lower -yaml -json -output kind.gen.go

// Kind is the kind of principal a policy can be scoped to.
type Kind int

const (
	KindUser Kind = iota
	KindGroup
)

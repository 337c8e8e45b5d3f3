package policy

//go:generate go run github.com/dmarkham/enumer -type Effect -trimprefix Effect -transform lower -yaml -json -output effect.gen.go

// Effect is the outcome of a permission rule.
type Effect int

const (
	EffectAllow Effect = iota
	EffectDeny
)

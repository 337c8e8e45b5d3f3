package codec

import (
	"encoding/json"
	"fmt"

	"github.com/mirrorops/cloudiam/pkg/policy"
)

// Version is the provider-mandated policy language version emitted on every
// encoded document.
const Version = "2012-10-17"

const (
	effectAllow = "Allow"
	effectDeny  = "Deny"
	wildcard    = "*"
)

// document is the provider's native policy document shape. Field names are
// case-sensitive on the wire.
type document struct {
	Version   string            `json:"Version"`
	Statement []json.RawMessage `json:"Statement"`
}

type statement struct {
	Sid       string        `json:"Sid,omitempty"`
	Effect    string        `json:"Effect,omitempty"`
	Action    *actionList   `json:"Action,omitempty"`
	NotAction *actionList   `json:"NotAction,omitempty"`
	Resource  *resourceList `json:"Resource,omitempty"`
}

// Decode converts a native policy document into vendor-neutral rules.
//
// Statements whose effect is absent or unrecognized are skipped silently,
// tolerating statement shapes introduced after this code was written.
// Unknown top-level document fields are ignored for the same reason. A
// document that is not parseable JSON is an error.
func Decode(data []byte) ([]policy.Rule, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse policy document: %w", err)
	}

	rules := make([]policy.Rule, 0, len(doc.Statement))
	for _, raw := range doc.Statement {
		var st statement
		if err := json.Unmarshal(raw, &st); err != nil {
			// Unknown statement shape, skip it.
			continue
		}

		var effect policy.Effect
		switch st.Effect {
		case effectAllow:
			effect = policy.EffectAllow
		case effectDeny:
			effect = policy.EffectDeny
		default:
			continue
		}

		rule := policy.Rule{Effect: effect}
		if st.Resource != nil {
			rule.Resources = st.Resource.normalized()
		}
		if st.Action != nil {
			rule.Actions = st.Action.normalized()
		} else if st.NotAction != nil {
			rule.ExcludeActions = true
			rule.Actions = st.NotAction.normalized()
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Encode converts vendor-neutral rules into the provider's native policy
// document, one statement per rule in input order.
func Encode(rules []policy.Rule) ([]byte, error) {
	statements := make([]json.RawMessage, 0, len(rules))
	for i, rule := range rules {
		resources := resourceList(rule.Resources)
		st := statement{Resource: &resources}
		switch rule.Effect {
		case policy.EffectAllow:
			st.Effect = effectAllow
		case policy.EffectDeny:
			st.Effect = effectDeny
		default:
			return nil, fmt.Errorf("rule %d has unknown effect %v", i, rule.Effect)
		}
		actions := actionList(rule.Actions)
		if rule.ExcludeActions && len(rule.Actions) > 0 {
			st.NotAction = &actions
		} else {
			st.Action = &actions
		}

		raw, err := json.Marshal(st)
		if err != nil {
			return nil, fmt.Errorf("failed to encode statement %d: %w", i, err)
		}
		statements = append(statements, raw)
	}

	return json.Marshal(document{
		Version:   Version,
		Statement: statements,
	})
}

// actionList serializes an action set: empty means "all actions" and is
// written as the wildcard scalar, anything else is written as a JSON array.
type actionList []string

func (a actionList) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return json.Marshal(wildcard)
	}
	return json.Marshal([]string(a))
}

func (a *actionList) UnmarshalJSON(data []byte) error {
	one, many, err := scalarOrList(data)
	if err != nil {
		return err
	}
	if many != nil {
		*a = many
		return nil
	}
	*a = actionList{one}
	return nil
}

// normalized collapses the single-wildcard form to "all actions".
func (a actionList) normalized() []string {
	if len(a) == 1 && a[0] == wildcard {
		return nil
	}
	return a
}

// resourceList serializes a resource set: empty means "all resources" and
// is written as the wildcard scalar, a single matcher is written as a
// scalar, two or more as a JSON array.
type resourceList []string

func (r resourceList) MarshalJSON() ([]byte, error) {
	switch len(r) {
	case 0:
		return json.Marshal(wildcard)
	case 1:
		return json.Marshal(r[0])
	default:
		return json.Marshal([]string(r))
	}
}

func (r *resourceList) UnmarshalJSON(data []byte) error {
	one, many, err := scalarOrList(data)
	if err != nil {
		return err
	}
	if many != nil {
		// List form is preserved verbatim, order included.
		*r = many
		return nil
	}
	if one == wildcard {
		*r = nil
		return nil
	}
	*r = resourceList{one}
	return nil
}

func (r resourceList) normalized() []string {
	if len(r) == 0 {
		return nil
	}
	return r
}

// scalarOrList decodes a JSON value the provider writes either as a single
// string or as an array of strings.
func scalarOrList(data []byte) (string, []string, error) {
	if len(data) > 0 && data[0] == '"' {
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return "", nil, err
		}
		return one, nil, nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return "", nil, err
	}
	if many == nil {
		many = []string{}
	}
	return "", many, nil
}

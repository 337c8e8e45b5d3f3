package policy

import (
	"io"

	"gopkg.in/yaml.v3"
)

// ParseRules parses a YAML rules file and returns the rules in document
// order. A rules file is a YAML sequence of rule mappings:
//
//	- effect: allow
//	  actions: [svc:Get, svc:List]
//	  resources: [arn:aws:svc:::thing]
//	- effect: deny
//	  exclude_actions: true
//	  actions: [svc:Delete]
func ParseRules(r io.Reader) ([]Rule, error) {
	var rules []Rule
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// WriteRules writes rules as YAML in the same form ParseRules accepts.
func WriteRules(w io.Writer, rules []Rule) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(rules)
}

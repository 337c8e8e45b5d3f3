package iam

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mirrorops/cloudiam/pkg/arn"
	"github.com/mirrorops/cloudiam/pkg/policy"
	"github.com/mirrorops/cloudiam/pkg/policy/codec"
	"github.com/mirrorops/cloudiam/pkg/provider"
	"github.com/mirrorops/cloudiam/pkg/provider/query"
)

// ListFilter selects which policy scopes ListPolicies composes. The zero
// filter lists both managed scopes.
type ListFilter struct {
	// Provider includes policies published by the provider.
	Provider bool
	// Account includes policies managed within the account.
	Account bool
	// UserID includes policies inlined in this user.
	UserID string
	// GroupID includes policies inlined in this group.
	GroupID string
}

func (f ListFilter) empty() bool {
	return !f.Provider && !f.Account && f.UserID == "" && f.GroupID == ""
}

// GetPolicy fetches policy metadata. For the managed target the id is the
// policy's structured identifier; for inline targets it is the policy name
// within the target principal. Absent policies yield (nil, nil).
func (c *Client) GetPolicy(ctx context.Context, id string, target Target) (*policy.Policy, error) {
	ref, inline := target.Principal()
	if !inline {
		return c.getManagedPolicy(ctx, id)
	}

	principalName, err := c.lookupPrincipalName(ctx, ref)
	if err != nil {
		return nil, err
	}
	if principalName == "" {
		return nil, nil
	}

	action, nameParam := inlineCall(ref.Kind, "Get")
	_, err = c.caller.Invoke(ctx, action, map[string]string{
		nameParam:    principalName,
		"PolicyName": id,
	})
	if err != nil {
		if provider.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return inlinePolicy(id, ref, principalName), nil
}

// GetPolicyRules fetches and decodes a policy's current document. For the
// managed target this resolves the policy's default version first; inline
// documents have no versions and are fetched directly. Absent policies
// yield (nil, nil).
func (c *Client) GetPolicyRules(ctx context.Context, id string, target Target) ([]policy.Rule, error) {
	ref, inline := target.Principal()
	if !inline {
		return c.getManagedPolicyRules(ctx, id)
	}

	principalName, err := c.lookupPrincipalName(ctx, ref)
	if err != nil {
		return nil, err
	}
	if principalName == "" {
		return nil, nil
	}

	action, nameParam := inlineCall(ref.Kind, "Get")
	root, err := c.caller.Invoke(ctx, action, map[string]string{
		nameParam:    principalName,
		"PolicyName": id,
	})
	if err != nil {
		if provider.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	document := root.Child(action + "Result").ChildText("PolicyDocument")
	return decodeDocument(document)
}

// ListPolicies concatenates the listings the filter asks for: provider
// managed, account managed, inline per user, inline per group. Managed
// listings drain every page before returning.
func (c *Client) ListPolicies(ctx context.Context, filter ListFilter) ([]policy.Policy, error) {
	if filter.empty() {
		filter.Provider = true
		filter.Account = true
	}

	var policies []policy.Policy
	if filter.Provider {
		listed, err := c.listManagedPolicies(ctx, "AWS")
		if err != nil {
			return nil, err
		}
		policies = append(policies, listed...)
	}
	if filter.Account {
		listed, err := c.listManagedPolicies(ctx, "Local")
		if err != nil {
			return nil, err
		}
		policies = append(policies, listed...)
	}
	if filter.UserID != "" {
		listed, err := c.listInlinePolicies(ctx, policy.UserRef(filter.UserID))
		if err != nil {
			return nil, err
		}
		policies = append(policies, listed...)
	}
	if filter.GroupID != "" {
		listed, err := c.listInlinePolicies(ctx, policy.GroupRef(filter.GroupID))
		if err != nil {
			return nil, err
		}
		policies = append(policies, listed...)
	}
	return policies, nil
}

// CreatePolicy creates a policy holding the given rules. For inline
// targets the document is put under the resolved principal and the name is
// the policy's identity; for the managed target the provider generates the
// identifier, returned on the resulting Policy.
func (c *Client) CreatePolicy(ctx context.Context, name, description string, rules []policy.Rule, target Target) (*policy.Policy, error) {
	document, err := codec.Encode(rules)
	if err != nil {
		return nil, err
	}

	ref, inline := target.Principal()
	if inline {
		principalName, err := c.resolvePrincipalName(ctx, ref)
		if err != nil {
			return nil, err
		}
		action, nameParam := inlineCall(ref.Kind, "Put")
		if _, err := c.caller.Invoke(ctx, action, map[string]string{
			nameParam:        principalName,
			"PolicyName":     name,
			"PolicyDocument": string(document),
		}); err != nil {
			return nil, err
		}
		return inlinePolicy(name, ref, principalName), nil
	}

	params := map[string]string{
		"PolicyName":     name,
		"PolicyDocument": string(document),
	}
	if description != "" {
		params["Description"] = description
	}
	root, err := c.caller.Invoke(ctx, "CreatePolicy", params)
	if err != nil {
		return nil, err
	}
	return managedPolicyFromNode(root.Descend("CreatePolicyResult", "Policy"))
}

// ModifyPolicy replaces a policy's rules. Inline documents are fully
// replaced in place; managed policies get a new document version marked as
// the default, since the provider versions them instead of mutating.
func (c *Client) ModifyPolicy(ctx context.Context, id string, rules []policy.Rule, target Target) error {
	document, err := codec.Encode(rules)
	if err != nil {
		return err
	}

	ref, inline := target.Principal()
	if inline {
		principalName, err := c.resolvePrincipalName(ctx, ref)
		if err != nil {
			return err
		}
		action, nameParam := inlineCall(ref.Kind, "Put")
		_, err = c.caller.Invoke(ctx, action, map[string]string{
			nameParam:        principalName,
			"PolicyName":     id,
			"PolicyDocument": string(document),
		})
		return err
	}

	_, err = c.caller.Invoke(ctx, "CreatePolicyVersion", map[string]string{
		"PolicyArn":      id,
		"PolicyDocument": string(document),
		"SetAsDefault":   "true",
	})
	return err
}

// RemovePolicy deletes a policy.
func (c *Client) RemovePolicy(ctx context.Context, id string, target Target) error {
	ref, inline := target.Principal()
	if inline {
		principalName, err := c.resolvePrincipalName(ctx, ref)
		if err != nil {
			return err
		}
		action, nameParam := inlineCall(ref.Kind, "Delete")
		_, err = c.caller.Invoke(ctx, action, map[string]string{
			nameParam:    principalName,
			"PolicyName": id,
		})
		return err
	}

	_, err := c.caller.Invoke(ctx, "DeletePolicy", map[string]string{"PolicyArn": id})
	return err
}

// AttachPolicyToUser attaches a managed policy to the user with the given
// id. An unresolvable user is a hard failure.
func (c *Client) AttachPolicyToUser(ctx context.Context, policyID, userID string) error {
	user, err := c.requireUser(ctx, userID)
	if err != nil {
		return err
	}
	_, err = c.caller.Invoke(ctx, "AttachUserPolicy", map[string]string{
		"UserName":  user.Name,
		"PolicyArn": policyID,
	})
	return err
}

// DetachPolicyFromUser detaches a managed policy from the user with the
// given id.
func (c *Client) DetachPolicyFromUser(ctx context.Context, policyID, userID string) error {
	user, err := c.requireUser(ctx, userID)
	if err != nil {
		return err
	}
	_, err = c.caller.Invoke(ctx, "DetachUserPolicy", map[string]string{
		"UserName":  user.Name,
		"PolicyArn": policyID,
	})
	return err
}

// AttachPolicyToGroup attaches a managed policy to the group with the
// given id.
func (c *Client) AttachPolicyToGroup(ctx context.Context, policyID, groupID string) error {
	group, err := c.requireGroup(ctx, groupID)
	if err != nil {
		return err
	}
	_, err = c.caller.Invoke(ctx, "AttachGroupPolicy", map[string]string{
		"GroupName": group.Name,
		"PolicyArn": policyID,
	})
	return err
}

// DetachPolicyFromGroup detaches a managed policy from the group with the
// given id.
func (c *Client) DetachPolicyFromGroup(ctx context.Context, policyID, groupID string) error {
	group, err := c.requireGroup(ctx, groupID)
	if err != nil {
		return err
	}
	_, err = c.caller.Invoke(ctx, "DetachGroupPolicy", map[string]string{
		"GroupName": group.Name,
		"PolicyArn": policyID,
	})
	return err
}

// ListEntitiesForPolicy drains the listing of principal names a managed
// policy is attached to, filtered by kind. It returns raw names; callers
// that need full entities resolve each name themselves.
func (c *Client) ListEntitiesForPolicy(ctx context.Context, policyID string, kind policy.Kind) ([]string, error) {
	var entityFilter, listName, nameField string
	switch kind {
	case policy.KindUser:
		entityFilter, listName, nameField = "User", "PolicyUsers", "UserName"
	case policy.KindGroup:
		entityFilter, listName, nameField = "Group", "PolicyGroups", "GroupName"
	default:
		return nil, fmt.Errorf("unknown principal kind %v", kind)
	}

	return collectAll(func(marker string) ([]string, string, error) {
		params := markerParams(marker, map[string]string{
			"PolicyArn":    policyID,
			"EntityFilter": entityFilter,
		})
		root, err := c.caller.Invoke(ctx, "ListEntitiesForPolicy", params)
		if err != nil {
			return nil, "", err
		}
		result := root.Child("ListEntitiesForPolicyResult")
		var names []string
		for _, member := range result.Child(listName).ChildrenNamed("member") {
			if name := member.ChildText(nameField); name != "" {
				names = append(names, name)
			}
		}
		return names, nextMarker(result), nil
	})
}

// UsersForPolicy resolves the users a managed policy is attached to. A
// name that no longer resolves, for instance a user deleted between the
// listing and the lookup, is omitted rather than failing the whole
// operation.
func (c *Client) UsersForPolicy(ctx context.Context, policyID string) ([]User, error) {
	names, err := c.ListEntitiesForPolicy(ctx, policyID, policy.KindUser)
	if err != nil {
		return nil, err
	}
	var users []User
	for _, name := range names {
		user, err := c.GetUser(ctx, name)
		if err != nil || user == nil {
			continue
		}
		users = append(users, *user)
	}
	return users, nil
}

// GroupsForPolicy is UsersForPolicy for groups.
func (c *Client) GroupsForPolicy(ctx context.Context, policyID string) ([]Group, error) {
	names, err := c.ListEntitiesForPolicy(ctx, policyID, policy.KindGroup)
	if err != nil {
		return nil, err
	}
	var groups []Group
	for _, name := range names {
		group, err := c.GetGroup(ctx, name)
		if err != nil || group == nil {
			continue
		}
		groups = append(groups, *group)
	}
	return groups, nil
}

func (c *Client) getManagedPolicy(ctx context.Context, id string) (*policy.Policy, error) {
	root, err := c.caller.Invoke(ctx, "GetPolicy", map[string]string{"PolicyArn": id})
	if err != nil {
		if provider.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return managedPolicyFromNode(root.Descend("GetPolicyResult", "Policy"))
}

func (c *Client) getManagedPolicyRules(ctx context.Context, id string) ([]policy.Rule, error) {
	root, err := c.caller.Invoke(ctx, "GetPolicy", map[string]string{"PolicyArn": id})
	if err != nil {
		if provider.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	versionID := root.Descend("GetPolicyResult", "Policy").ChildText("DefaultVersionId")
	if versionID == "" {
		return nil, fmt.Errorf("policy %q has no default version", id)
	}

	root, err = c.caller.Invoke(ctx, "GetPolicyVersion", map[string]string{
		"PolicyArn": id,
		"VersionId": versionID,
	})
	if err != nil {
		return nil, err
	}
	document := root.Descend("GetPolicyVersionResult", "PolicyVersion").ChildText("Document")
	return decodeDocument(document)
}

func (c *Client) listManagedPolicies(ctx context.Context, scopeParam string) ([]policy.Policy, error) {
	return collectAll(func(marker string) ([]policy.Policy, string, error) {
		params := markerParams(marker, map[string]string{"Scope": scopeParam})
		root, err := c.caller.Invoke(ctx, "ListPolicies", params)
		if err != nil {
			return nil, "", err
		}
		result := root.Child("ListPoliciesResult")
		var policies []policy.Policy
		for _, member := range result.Child("Policies").ChildrenNamed("member") {
			listed, err := managedPolicyFromNode(member)
			if err != nil {
				return nil, "", err
			}
			policies = append(policies, *listed)
		}
		return policies, nextMarker(result), nil
	})
}

func (c *Client) listInlinePolicies(ctx context.Context, ref policy.PrincipalRef) ([]policy.Policy, error) {
	principalName, err := c.lookupPrincipalName(ctx, ref)
	if err != nil {
		return nil, err
	}
	if principalName == "" {
		return nil, nil
	}

	action, nameParam := inlineCall(ref.Kind, "List")
	names, err := collectAll(func(marker string) ([]string, string, error) {
		params := markerParams(marker, map[string]string{nameParam: principalName})
		root, err := c.caller.Invoke(ctx, action, params)
		if err != nil {
			return nil, "", err
		}
		result := root.Child(action + "Result")
		var names []string
		for _, member := range result.Child("PolicyNames").ChildrenNamed("member") {
			if name := member.Text; name != "" {
				names = append(names, name)
			}
		}
		return names, nextMarker(result), nil
	})
	if err != nil {
		return nil, err
	}

	policies := make([]policy.Policy, 0, len(names))
	for _, name := range names {
		policies = append(policies, *inlinePolicy(name, ref, principalName))
	}
	return policies, nil
}

// lookupPrincipalName resolves an inline target's principal for read
// paths: an absent principal yields "" so the read can degrade to an
// absent result.
func (c *Client) lookupPrincipalName(ctx context.Context, ref policy.PrincipalRef) (string, error) {
	switch ref.Kind {
	case policy.KindUser:
		user, err := c.UserByID(ctx, ref.ID)
		if err != nil || user == nil {
			return "", err
		}
		return user.Name, nil
	case policy.KindGroup:
		group, err := c.GroupByID(ctx, ref.ID)
		if err != nil || group == nil {
			return "", err
		}
		return group.Name, nil
	default:
		return "", fmt.Errorf("unknown principal kind %v", ref.Kind)
	}
}

// resolvePrincipalName resolves an inline target's principal for mutating
// paths, where a miss is a hard failure.
func (c *Client) resolvePrincipalName(ctx context.Context, ref policy.PrincipalRef) (string, error) {
	switch ref.Kind {
	case policy.KindUser:
		user, err := c.requireUser(ctx, ref.ID)
		if err != nil {
			return "", err
		}
		return user.Name, nil
	case policy.KindGroup:
		group, err := c.requireGroup(ctx, ref.ID)
		if err != nil {
			return "", err
		}
		return group.Name, nil
	default:
		return "", fmt.Errorf("unknown principal kind %v", ref.Kind)
	}
}

// inlineCall maps a principal kind and verb ("Get", "Put", "Delete",
// "List") to the provider action and principal-name parameter for inline
// policy calls.
func inlineCall(kind policy.Kind, verb string) (action, nameParam string) {
	if kind == policy.KindGroup {
		if verb == "List" {
			return "ListGroupPolicies", "GroupName"
		}
		return verb + "GroupPolicy", "GroupName"
	}
	if verb == "List" {
		return "ListUserPolicies", "UserName"
	}
	return verb + "UserPolicy", "UserName"
}

// inlinePolicy builds the domain object for a policy embedded in a
// principal. Inline policies have no identity of their own, so the name
// doubles as the id and the description is synthesized.
func inlinePolicy(name string, ref policy.PrincipalRef, principalName string) *policy.Policy {
	owner := ref
	return &policy.Policy{
		ID:          name,
		Name:        name,
		Description: fmt.Sprintf("inline policy for %s", principalName),
		Scope:       policy.ScopeInline,
		Owner:       &owner,
	}
}

// managedPolicyFromNode reads a managed policy fragment, classifying its
// scope from the owner segment of its identifier. A malformed identifier
// fails rather than guessing.
func managedPolicyFromNode(n *query.Node) (*policy.Policy, error) {
	if n == nil {
		return nil, fmt.Errorf("response carried no policy")
	}
	id := n.ChildText("Arn")
	name := n.ChildText("PolicyName")
	if id == "" || name == "" {
		return nil, fmt.Errorf("policy fragment is missing its identifier or name")
	}

	ownership, err := arn.Classify(id)
	if err != nil {
		return nil, err
	}
	scope := policy.ScopeAccountManaged
	if ownership.ProviderOwned {
		scope = policy.ScopeProviderManaged
	}
	return &policy.Policy{
		ID:          id,
		Name:        name,
		Description: n.ChildText("Description"),
		Scope:       scope,
	}, nil
}

// decodeDocument unescapes and decodes a policy document as it appears in
// a response tree. The provider percent-encodes documents on the wire.
func decodeDocument(document string) ([]policy.Rule, error) {
	if document == "" {
		return nil, fmt.Errorf("response carried no policy document")
	}
	unescaped, err := url.QueryUnescape(document)
	if err != nil {
		return nil, fmt.Errorf("failed to unescape policy document: %w", err)
	}
	return codec.Decode([]byte(unescaped))
}

package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/mirrorops/cloudiam/pkg/iam"
	"github.com/mirrorops/cloudiam/pkg/model"
	"github.com/mirrorops/cloudiam/pkg/policy"
	"github.com/mirrorops/cloudiam/pkg/policy/codec"
)

// Source abstracts the provider reads the syncer needs. *iam.Client
// satisfies it.
type Source interface {
	ListUsers(ctx context.Context) ([]iam.User, error)
	ListGroups(ctx context.Context) ([]iam.Group, error)
	ListUserNamesForGroup(ctx context.Context, groupName string) ([]string, error)
	ListPolicies(ctx context.Context, filter iam.ListFilter) ([]policy.Policy, error)
	GetPolicyRules(ctx context.Context, id string, target iam.Target) ([]policy.Rule, error)
	ListEntitiesForPolicy(ctx context.Context, policyID string, kind policy.Kind) ([]string, error)
}

// Syncer pulls a full directory snapshot from the provider and swaps
// it into the store in one transaction.
type Syncer struct {
	source Source
	store  Store
	now    func() time.Time
}

// NewSyncer creates a Syncer.
func NewSyncer(source Source, store Store) *Syncer {
	return &Syncer{source: source, store: store, now: time.Now}
}

// Sync drains users, groups, memberships, policies and attachments from
// the provider and replaces the stored snapshot. Names that no longer
// resolve to a stored principal are dropped from the edge tables rather
// than failing the pull.
func (s *Syncer) Sync(ctx context.Context) (*model.SyncRun, error) {
	startedAt := s.now()

	users, err := s.source.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	groups, err := s.source.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	userIDByName := make(map[string]string, len(users))
	for _, u := range users {
		userIDByName[u.Name] = u.ID
	}
	groupIDByName := make(map[string]string, len(groups))
	for _, g := range groups {
		groupIDByName[g.Name] = g.ID
	}

	memberships, err := s.collectMemberships(ctx, groups, userIDByName)
	if err != nil {
		return nil, err
	}

	managed, err := s.source.ListPolicies(ctx, iam.ListFilter{Provider: true, Account: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list managed policies: %w", err)
	}

	policies, attachments, err := s.collectManaged(ctx, managed, userIDByName, groupIDByName)
	if err != nil {
		return nil, err
	}

	inline, err := s.collectInline(ctx, users, groups)
	if err != nil {
		return nil, err
	}

	run := &model.SyncRun{
		StartedAt:   startedAt,
		FinishedAt:  s.now(),
		UserCount:   len(users),
		GroupCount:  len(groups),
		PolicyCount: len(policies) + len(inline),
	}

	err = s.store.Transaction(func(tx Store) error {
		if err := tx.ReplaceUsers(userModels(users, run.FinishedAt)); err != nil {
			return err
		}
		if err := tx.ReplaceGroups(groupModels(groups, run.FinishedAt)); err != nil {
			return err
		}
		if err := tx.ReplaceMemberships(memberships); err != nil {
			return err
		}
		if err := tx.ReplaceManagedPolicies(policies); err != nil {
			return err
		}
		if err := tx.ReplaceInlinePolicies(inline); err != nil {
			return err
		}
		if err := tx.ReplaceAttachments(attachments); err != nil {
			return err
		}
		return tx.RecordSyncRun(run)
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

func (s *Syncer) collectMemberships(ctx context.Context, groups []iam.Group, userIDByName map[string]string) ([]model.GroupMembership, error) {
	var memberships []model.GroupMembership
	for _, g := range groups {
		names, err := s.source.ListUserNamesForGroup(ctx, g.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to list members of %q: %w", g.Name, err)
		}
		for _, name := range names {
			userID, ok := userIDByName[name]
			if !ok {
				continue
			}
			memberships = append(memberships, model.GroupMembership{GroupID: g.ID, UserID: userID})
		}
	}
	return memberships, nil
}

func (s *Syncer) collectManaged(ctx context.Context, listed []policy.Policy, userIDByName, groupIDByName map[string]string) ([]model.ManagedPolicy, []model.PolicyAttachment, error) {
	syncedAt := s.now()
	policies := make([]model.ManagedPolicy, 0, len(listed))
	var attachments []model.PolicyAttachment
	for _, p := range listed {
		row := model.ManagedPolicy{
			PolicyID:    p.ID,
			Name:        p.Name,
			Description: p.Description,
			Scope:       p.Scope.String(),
			SyncedAt:    syncedAt,
		}
		// Provider-published documents are not part of the account's
		// auditable surface, so only account-managed documents are
		// pulled.
		if p.Scope == policy.ScopeAccountManaged {
			document, err := s.fetchDocument(ctx, p.ID, iam.Managed())
			if err != nil {
				return nil, nil, err
			}
			row.Document = document
		}
		policies = append(policies, row)

		userNames, err := s.source.ListEntitiesForPolicy(ctx, p.ID, policy.KindUser)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list users for policy %q: %w", p.ID, err)
		}
		for _, name := range userNames {
			if id, ok := userIDByName[name]; ok {
				attachments = append(attachments, model.PolicyAttachment{
					PolicyID:      p.ID,
					PrincipalKind: policy.KindUser.String(),
					PrincipalID:   id,
				})
			}
		}

		groupNames, err := s.source.ListEntitiesForPolicy(ctx, p.ID, policy.KindGroup)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list groups for policy %q: %w", p.ID, err)
		}
		for _, name := range groupNames {
			if id, ok := groupIDByName[name]; ok {
				attachments = append(attachments, model.PolicyAttachment{
					PolicyID:      p.ID,
					PrincipalKind: policy.KindGroup.String(),
					PrincipalID:   id,
				})
			}
		}
	}
	return policies, attachments, nil
}

func (s *Syncer) collectInline(ctx context.Context, users []iam.User, groups []iam.Group) ([]model.InlinePolicy, error) {
	syncedAt := s.now()
	var inline []model.InlinePolicy

	for _, u := range users {
		listed, err := s.source.ListPolicies(ctx, iam.ListFilter{UserID: u.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to list inline policies of user %q: %w", u.Name, err)
		}
		for _, p := range listed {
			document, err := s.fetchDocument(ctx, p.Name, iam.InlineUser(u.ID))
			if err != nil {
				return nil, err
			}
			inline = append(inline, model.InlinePolicy{
				OwnerKind: policy.KindUser.String(),
				OwnerID:   u.ID,
				Name:      p.Name,
				Document:  document,
				SyncedAt:  syncedAt,
			})
		}
	}

	for _, g := range groups {
		listed, err := s.source.ListPolicies(ctx, iam.ListFilter{GroupID: g.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to list inline policies of group %q: %w", g.Name, err)
		}
		for _, p := range listed {
			document, err := s.fetchDocument(ctx, p.Name, iam.InlineGroup(g.ID))
			if err != nil {
				return nil, err
			}
			inline = append(inline, model.InlinePolicy{
				OwnerKind: policy.KindGroup.String(),
				OwnerID:   g.ID,
				Name:      p.Name,
				Document:  document,
				SyncedAt:  syncedAt,
			})
		}
	}

	return inline, nil
}

// fetchDocument pulls a policy's current rules and re-serializes them
// in normalized form. A policy deleted between the listing and the
// fetch yields an empty document.
func (s *Syncer) fetchDocument(ctx context.Context, id string, target iam.Target) (string, error) {
	rules, err := s.source.GetPolicyRules(ctx, id, target)
	if err != nil {
		return "", fmt.Errorf("failed to fetch document of policy %q: %w", id, err)
	}
	if rules == nil {
		return "", nil
	}
	document, err := codec.Encode(rules)
	if err != nil {
		return "", err
	}
	return string(document), nil
}

func userModels(users []iam.User, syncedAt time.Time) []model.User {
	rows := make([]model.User, 0, len(users))
	for _, u := range users {
		rows = append(rows, model.User{
			UserID:   u.ID,
			Name:     u.Name,
			Path:     u.Path,
			SyncedAt: syncedAt,
		})
	}
	return rows
}

func groupModels(groups []iam.Group, syncedAt time.Time) []model.Group {
	rows := make([]model.Group, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, model.Group{
			GroupID:  g.ID,
			Name:     g.Name,
			Path:     g.Path,
			SyncedAt: syncedAt,
		})
	}
	return rows
}

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrorops/cloudiam/pkg/iam"
	"github.com/mirrorops/cloudiam/pkg/model"
	"github.com/mirrorops/cloudiam/pkg/policy"
	"github.com/mirrorops/cloudiam/pkg/snapshot"
)

// directorySource serves a canned directory to the syncer.
type directorySource struct {
	users    []iam.User
	groups   []iam.Group
	members  map[string][]string
	managed  []policy.Policy
	rules    map[string][]policy.Rule
	entities map[string]map[policy.Kind][]string
}

func (s *directorySource) ListUsers(ctx context.Context) ([]iam.User, error) {
	return s.users, nil
}

func (s *directorySource) ListGroups(ctx context.Context) ([]iam.Group, error) {
	return s.groups, nil
}

func (s *directorySource) ListUserNamesForGroup(ctx context.Context, groupName string) ([]string, error) {
	return s.members[groupName], nil
}

func (s *directorySource) ListPolicies(ctx context.Context, filter iam.ListFilter) ([]policy.Policy, error) {
	if filter.UserID != "" || filter.GroupID != "" {
		return nil, nil
	}
	return s.managed, nil
}

func (s *directorySource) GetPolicyRules(ctx context.Context, id string, target iam.Target) ([]policy.Rule, error) {
	return s.rules[id], nil
}

func (s *directorySource) ListEntitiesForPolicy(ctx context.Context, policyID string, kind policy.Kind) ([]string, error) {
	return s.entities[policyID][kind], nil
}

func TestSnapshotSync(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=1 to run.")
	}

	ctx := context.Background()
	tc, err := NewTestContext(ctx)
	require.NoError(t, err)
	defer tc.Close(ctx)

	deployersArn := "arn:aws:iam::123456789012:policy/deployers"
	source := &directorySource{
		users: []iam.User{
			{ID: "AIDA1", Name: "alice", Path: "/"},
			{ID: "AIDA2", Name: "bob", Path: "/ops/"},
		},
		groups:  []iam.Group{{ID: "AGPA1", Name: "devs", Path: "/"}},
		members: map[string][]string{"devs": {"alice", "bob"}},
		managed: []policy.Policy{
			{ID: deployersArn, Name: "deployers", Scope: policy.ScopeAccountManaged},
		},
		rules: map[string][]policy.Rule{
			deployersArn: {{Effect: policy.EffectAllow, Actions: []string{"deploy:Run"}}},
		},
		entities: map[string]map[policy.Kind][]string{
			deployersArn: {
				policy.KindUser:  {"bob"},
				policy.KindGroup: {"devs"},
			},
		},
	}

	store := snapshot.NewGormStore(tc.DB)
	syncer := snapshot.NewSyncer(source, store)

	run, err := syncer.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, run.UserCount)
	assert.Equal(t, 1, run.GroupCount)
	assert.Equal(t, 1, run.PolicyCount)
	assert.NotZero(t, run.ID)

	var users []model.User
	require.NoError(t, tc.DB.Order("user_id").Find(&users).Error)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Name)
	assert.Equal(t, "/ops/", users[1].Path)

	var memberships []model.GroupMembership
	require.NoError(t, tc.DB.Find(&memberships).Error)
	assert.Len(t, memberships, 2)

	var stored model.ManagedPolicy
	require.NoError(t, tc.DB.First(&stored, "policy_id = ?", deployersArn).Error)
	assert.Equal(t, "account_managed", stored.Scope)
	assert.Contains(t, stored.Document, "deploy:Run")

	var attachments []model.PolicyAttachment
	require.NoError(t, tc.DB.Order("principal_kind").Find(&attachments).Error)
	require.Len(t, attachments, 2)
	assert.Equal(t, "AGPA1", attachments[0].PrincipalID)
	assert.Equal(t, "AIDA2", attachments[1].PrincipalID)

	// A second sync swaps the snapshot rather than accumulating rows.
	source.users = source.users[:1]
	source.members = map[string][]string{"devs": {"alice"}}
	source.entities[deployersArn][policy.KindUser] = nil

	run, err = syncer.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, run.UserCount)

	var userCount int64
	require.NoError(t, tc.DB.Model(&model.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 1, userCount)

	var attachmentCount int64
	require.NoError(t, tc.DB.Model(&model.PolicyAttachment{}).Count(&attachmentCount).Error)
	assert.EqualValues(t, 1, attachmentCount)

	var runCount int64
	require.NoError(t, tc.DB.Model(&model.SyncRun{}).Count(&runCount).Error)
	assert.EqualValues(t, 2, runCount)
}

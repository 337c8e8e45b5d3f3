package iam

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserByIDScansListing(t *testing.T) {
	caller := newFakeCaller()
	caller.respond(t, "ListUsers", `<ListUsersResponse><ListUsersResult>
	  <Users>
	    <member><UserId>AIDA1</UserId><UserName>alice</UserName></member>
	    <member><UserId>AIDA2</UserId><UserName>bob</UserName></member>
	  </Users>
	  <IsTruncated>false</IsTruncated>
	</ListUsersResult></ListUsersResponse>`)
	client := NewClient(caller)

	user, err := client.UserByID(context.Background(), "AIDA2")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "bob", user.Name)

	// The provider has no by-id call, so resolution goes through the
	// listing.
	assert.Equal(t, []string{"ListUsers"}, caller.actions())
}

func TestUserByIDAbsent(t *testing.T) {
	caller := newFakeCaller()
	caller.respond(t, "ListUsers", emptyUserListing)

	user, err := NewClient(caller).UserByID(context.Background(), "AIDA404")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRequireUserMissIsHardFailure(t *testing.T) {
	caller := newFakeCaller()
	caller.respond(t, "ListUsers", emptyUserListing)

	_, err := NewClient(caller).requireUser(context.Background(), "AIDA404")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGroupByID(t *testing.T) {
	caller := newFakeCaller()
	caller.respond(t, "ListGroups", oneGroupListing)
	client := NewClient(caller)

	group, err := client.GroupByID(context.Background(), "AGPA1")
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, "devs", group.Name)

	absent, err := client.GroupByID(context.Background(), "AGPA404")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestUserByNameDelegatesToDirectCall(t *testing.T) {
	caller := newFakeCaller()
	caller.respond(t, "GetUser", `<GetUserResponse><GetUserResult>
	  <User><UserId>AIDA1</UserId><UserName>alice</UserName></User>
	</GetUserResult></GetUserResponse>`)

	user, err := NewClient(caller).UserByName(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "AIDA1", user.ID)
	assert.Equal(t, []string{"GetUser"}, caller.actions())
}

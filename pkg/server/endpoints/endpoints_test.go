package endpoints

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrorops/cloudiam/pkg/iam"
	"github.com/mirrorops/cloudiam/pkg/policy"
	"github.com/mirrorops/cloudiam/pkg/server"
)

var testSecret = []byte("endpoint-test-secret")

const deployersArn = "arn:aws:iam::123456789012:policy/deployers"
const encodedDeployersArn = "arn%3Aaws%3Aiam%3A%3A123456789012%3Apolicy%2Fdeployers"

type fakeDirectory struct {
	users      []iam.User
	groups     []iam.Group
	policies   []policy.Policy
	byID       map[string]*policy.Policy
	rules      map[string][]policy.Rule
	entities   map[string][]string
	lastFilter iam.ListFilter
	lastKind   policy.Kind
	err        error
}

func (f *fakeDirectory) ListUsers(context.Context) ([]iam.User, error) {
	return f.users, f.err
}

func (f *fakeDirectory) ListGroups(context.Context) ([]iam.Group, error) {
	return f.groups, f.err
}

func (f *fakeDirectory) ListPolicies(_ context.Context, filter iam.ListFilter) ([]policy.Policy, error) {
	f.lastFilter = filter
	return f.policies, f.err
}

func (f *fakeDirectory) GetPolicy(_ context.Context, id string, _ iam.Target) (*policy.Policy, error) {
	return f.byID[id], f.err
}

func (f *fakeDirectory) GetPolicyRules(_ context.Context, id string, _ iam.Target) ([]policy.Rule, error) {
	return f.rules[id], f.err
}

func (f *fakeDirectory) ListEntitiesForPolicy(_ context.Context, id string, kind policy.Kind) ([]string, error) {
	f.lastKind = kind
	return f.entities[id], f.err
}

func newTestServer(directory *fakeDirectory) *server.Server {
	srv := server.NewServer(directory, "127.0.0.1", "0")
	RegisterAll(srv, testSecret)
	return srv
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return "Bearer " + signed
}

func doRequest(t *testing.T, srv *server.Server, path string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if authorized {
		req.Header.Set("Authorization", bearerToken(t))
	}
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	return w
}

func TestStatusRequiresNoAuth(t *testing.T) {
	srv := newTestServer(&fakeDirectory{})

	w := doRequest(t, srv, "/status", false)
	require.Equal(t, http.StatusOK, w.Code)

	var status StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status.Status)
}

func TestEndpointsRequireAuth(t *testing.T) {
	srv := newTestServer(&fakeDirectory{})

	for _, path := range []string{"/users", "/groups", "/policies", "/policies/" + encodedDeployersArn} {
		w := doRequest(t, srv, path, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "path %s", path)
	}
}

func TestListUsers(t *testing.T) {
	directory := &fakeDirectory{
		users: []iam.User{{ID: "AIDA1", Name: "alice", Path: "/"}},
	}
	srv := newTestServer(directory)

	w := doRequest(t, srv, "/users", true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp UsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "alice", resp.Users[0].Name)
}

func TestListUsersEmptyIsJSONArray(t *testing.T) {
	srv := newTestServer(&fakeDirectory{})

	w := doRequest(t, srv, "/users", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users":[]}`, w.Body.String())
}

func TestListPoliciesScopeFilter(t *testing.T) {
	directory := &fakeDirectory{}
	srv := newTestServer(directory)

	w := doRequest(t, srv, "/policies?scope=account", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, directory.lastFilter.Account)
	assert.False(t, directory.lastFilter.Provider)

	w = doRequest(t, srv, "/policies", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, directory.lastFilter.Account)
	assert.False(t, directory.lastFilter.Provider)

	w = doRequest(t, srv, "/policies?scope=inline", true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPolicy(t *testing.T) {
	directory := &fakeDirectory{
		byID: map[string]*policy.Policy{
			deployersArn: {
				ID:    deployersArn,
				Name:  "deployers",
				Scope: policy.ScopeAccountManaged,
			},
		},
	}
	srv := newTestServer(directory)

	w := doRequest(t, srv, "/policies/"+encodedDeployersArn, true)
	require.Equal(t, http.StatusOK, w.Code)

	var got policy.Policy
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "deployers", got.Name)
}

func TestGetPolicyAbsentIs404(t *testing.T) {
	srv := newTestServer(&fakeDirectory{})

	w := doRequest(t, srv, "/policies/"+encodedDeployersArn, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPolicyRules(t *testing.T) {
	directory := &fakeDirectory{
		rules: map[string][]policy.Rule{
			deployersArn: {{Effect: policy.EffectAllow, Actions: []string{"svc:Deploy"}}},
		},
	}
	srv := newTestServer(directory)

	w := doRequest(t, srv, "/policies/"+encodedDeployersArn+"/rules", true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp RulesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rules, 1)
	assert.Equal(t, policy.EffectAllow, resp.Rules[0].Effect)
}

func TestListPolicyEntities(t *testing.T) {
	directory := &fakeDirectory{
		entities: map[string][]string{deployersArn: {"devs"}},
	}
	srv := newTestServer(directory)

	w := doRequest(t, srv, "/policies/"+encodedDeployersArn+"/entities?kind=group", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, policy.KindGroup, directory.lastKind)

	var resp EntitiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "group", resp.Kind)
	assert.Equal(t, []string{"devs"}, resp.Names)
}

func TestDirectoryErrorIsBadGateway(t *testing.T) {
	srv := newTestServer(&fakeDirectory{err: assert.AnError})

	w := doRequest(t, srv, "/users", true)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

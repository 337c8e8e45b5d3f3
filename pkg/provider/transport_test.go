package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeSendsSignedForm(t *testing.T) {
	var gotForm map[string][]string
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`<GetUserResponse><GetUserResult><User><UserName>alice</UserName><UserId>AIDA1</UserId></User></GetUserResult></GetUserResponse>`))
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, Region: "us-east-1"})
	root, err := client.Invoke(context.Background(), "GetUser", map[string]string{"UserName": "alice"})
	require.NoError(t, err)

	assert.Equal(t, []string{"GetUser"}, gotForm["Action"])
	assert.Equal(t, []string{APIVersion}, gotForm["Version"])
	assert.Equal(t, []string{"alice"}, gotForm["UserName"])
	assert.Contains(t, gotAuth, "AWS4-HMAC-SHA256")

	assert.Equal(t, "alice", root.Descend("GetUserResult", "User").ChildText("UserName"))
}

func TestInvokeDecodesProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`<ErrorResponse><Error><Type>Sender</Type><Code>NoSuchEntity</Code><Message>The user with name alice cannot be found.</Message></Error></ErrorResponse>`))
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, Region: "us-east-1"})
	_, err := client.Invoke(context.Background(), "GetUser", map[string]string{"UserName": "alice"})
	require.Error(t, err)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusNotFound, perr.StatusCode)
	assert.Equal(t, "NoSuchEntity", perr.Code)
	assert.True(t, IsNotFound(err))
}

func TestInvokeErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, Region: "us-east-1"})
	_, err := client.Invoke(context.Background(), "ListUsers", nil)
	require.Error(t, err)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusServiceUnavailable, perr.StatusCode)
	assert.False(t, IsNotFound(err))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&Error{StatusCode: 404}))
	assert.True(t, IsNotFound(&Error{StatusCode: 400, Code: "NoSuchEntity"}))
	assert.False(t, IsNotFound(&Error{StatusCode: 403, Code: "AccessDenied"}))
	assert.False(t, IsNotFound(errors.New("plain error")))
	assert.False(t, IsNotFound(nil))
}

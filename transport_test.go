package aerofs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient spins up a server running handler and returns a Client
// pointed at it.
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(server.URL, "test-token", opts...)
	require.NoError(t, err)
	return client
}

func TestRequest_BearerToken(t *testing.T) {
	var authorization string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := client.GetUser(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", authorization)
}

func TestRequest_PathEscaping(t *testing.T) {
	var path string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := client.GetUser(context.Background(), "alice+test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "/users/alice+test@example.com", path)

	_, err = client.GetSFMember(context.Background(), "0123", "who?@example.com")
	require.NoError(t, err)
	assert.Equal(t, "/shares/0123/members/who%3F@example.com", path)
}

func TestGetJSON_IfNoneMatchJoinsETags(t *testing.T) {
	var header string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("If-None-Match")
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := client.GetFolder(context.Background(), "f1", FolderFields{}, "etag-a", "etag-b")
	require.NoError(t, err)
	assert.Equal(t, "etag-a, etag-b", header)
}

func TestGetJSON_NotModified(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))

	folder, err := client.GetFolder(context.Background(), "f1", FolderFields{}, "etag-a")
	require.NoError(t, err)
	assert.Nil(t, folder)
}

func TestWriteJSON_IfMatchJoinsETags(t *testing.T) {
	var header, contentType string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("If-Match")
		contentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := client.MoveFolder(context.Background(), "f1", "f2", "renamed", "etag-a", "etag-b")
	require.NoError(t, err)
	assert.Equal(t, "etag-a, etag-b", header)
	assert.Equal(t, "application/json", contentType)
}

func TestDecodeJSON_CapturesUnquotedETag(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"abc123"`)
		_, _ = w.Write([]byte(`{"id":"f1","name":"docs","parent":"root","is_shared":false}`))
	}))

	folder, err := client.GetFolder(context.Background(), "f1", FolderFields{})
	require.NoError(t, err)
	assert.Equal(t, "abc123", folder.ETag)
}

func TestCheckStatus_ErrorRetainsBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))

	_, err := client.GetFolder(context.Background(), "f1", FolderFields{})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.JSONEq(t, `{"message":"boom"}`, string(statusErr.Body))
}

func TestDel_NoPrecondition(t *testing.T) {
	var method string
	var hasIfMatch bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		_, hasIfMatch = r.Header["If-Match"]
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteFile(context.Background(), "file-1"))
	assert.Equal(t, http.MethodDelete, method)
	assert.False(t, hasIfMatch)
}

package aerofs

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroup(t *testing.T) {
	var body map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"g1","name":"engineering"}`))
	}))

	group, err := client.CreateGroup(context.Background(), "engineering")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "engineering"}, body)
	assert.Equal(t, GroupID("g1"), group.ID)
}

func TestListGroups_Cursor(t *testing.T) {
	var query string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"groups":[{"id":"g2","name":"sales"}],"has_more":false}`))
	}))

	list, err := client.ListGroups(context.Background(), 10, "g1")
	require.NoError(t, err)
	assert.Equal(t, "after=g1&limit=10", query)
	assert.False(t, list.HasMore)
	require.Len(t, list.Groups, 1)

	_, err = client.ListGroups(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Empty(t, query)
}

func TestGetGroup(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"g1","name":"engineering","members":[{"email":"alice@example.com"}]}`))
	}))

	group, err := client.GetGroup(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, group.Members, 1)
	assert.Equal(t, "alice@example.com", group.Members[0].Email)
}

func TestAddGroupMember(t *testing.T) {
	var path string
	var body map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"email":"bob@example.com"}`))
	}))

	member, err := client.AddGroupMember(context.Background(), "g1", "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "/groups/g1/members", path)
	assert.Equal(t, map[string]string{"email": "bob@example.com"}, body)
	assert.Equal(t, "bob@example.com", member.Email)
}

func TestRemoveGroupMember(t *testing.T) {
	var method, path string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.RemoveGroupMember(context.Background(), "g1", "bob@example.com"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/groups/g1/members/bob@example.com", path)
}

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		HostName:     "https://share.example.com",
		ClientID:     "app-id",
		ClientSecret: "app-secret",
		RedirectURI:  "https://myapp.example.com/callback",
	}
}

func TestAuthorizationURL(t *testing.T) {
	raw, err := testConfig().AuthorizationURL(ScopeFilesRead, ScopeFilesWrite)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "share.example.com", u.Host)
	assert.Equal(t, "/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "app-id", q.Get("client_id"))
	assert.Equal(t, "https://myapp.example.com/callback", q.Get("redirect_uri"))
	assert.Equal(t, "files.read,files.write", q.Get("scope"))
}

func TestAuthorizationURL_TrimsTrailingSlash(t *testing.T) {
	cfg := testConfig()
	cfg.HostName = "https://share.example.com/"

	raw, err := cfg.AuthorizationURL(ScopeUserRead)
	require.NoError(t, err)
	assert.Contains(t, raw, "https://share.example.com/authorize?")
}

func TestAuthorizationURL_Validation(t *testing.T) {
	cfg := testConfig()
	cfg.HostName = ""
	_, err := cfg.AuthorizationURL(ScopeFilesRead)
	assert.ErrorIs(t, err, errHostNameRequired)

	cfg = testConfig()
	cfg.ClientID = ""
	_, err = cfg.AuthorizationURL(ScopeFilesRead)
	assert.ErrorIs(t, err, errClientIDRequired)

	cfg = testConfig()
	cfg.ClientSecret = ""
	_, err = cfg.AuthorizationURL(ScopeFilesRead)
	assert.ErrorIs(t, err, errClientSecretRequired)

	_, err = testConfig().AuthorizationURL()
	assert.ErrorIs(t, err, errScopeRequired)
}

func TestExchangeCode(t *testing.T) {
	var path, grantType, code string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, r.ParseForm())
		grantType = r.FormValue("grant_type")
		code = r.FormValue("code")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"token-123","token_type":"bearer","expires_in":3600,"scope":"files.read"}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.HostName = server.URL
	cfg.HTTPClient = server.Client()

	token, err := cfg.ExchangeCode(context.Background(), "auth-code-xyz")
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)
	assert.Equal(t, "/auth/token", path)
	assert.Equal(t, "authorization_code", grantType)
	assert.Equal(t, "auth-code-xyz", code)
}

func TestExchangeCode_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.HostName = server.URL
	cfg.HTTPClient = server.Client()

	_, err := cfg.ExchangeCode(context.Background(), "expired-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exchange authorization code failed")
}

func TestRevokeToken(t *testing.T) {
	var path, token, clientID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, r.ParseForm())
		token = r.FormValue("token")
		clientID = r.FormValue("client_id")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.HostName = server.URL
	cfg.HTTPClient = server.Client()

	require.NoError(t, cfg.RevokeToken(context.Background(), "token-123"))
	assert.Equal(t, "/auth/token/revoke", path)
	assert.Equal(t, "token-123", token)
	assert.Equal(t, "app-id", clientID)
}

func TestRevokeToken_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.HostName = server.URL
	cfg.HTTPClient = server.Client()

	err := cfg.RevokeToken(context.Background(), "token-123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoke token failed")
}

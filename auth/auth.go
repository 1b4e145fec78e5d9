package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

// Scope is an OAuth2 permission an app requests from the user during the
// authorization flow.
type Scope string

const (
	ScopeFilesRead         Scope = "files.read"
	ScopeFilesWrite        Scope = "files.write"
	ScopeFilesAppData      Scope = "files.appdata"
	ScopeUserRead          Scope = "user.read"
	ScopeUserWrite         Scope = "user.write"
	ScopeUserPassword      Scope = "user.password"
	ScopeACLRead           Scope = "acl.read"
	ScopeACLWrite          Scope = "acl.write"
	ScopeACLInvitations    Scope = "acl.invitations"
	ScopeOrganizationAdmin Scope = "organization.admin"
)

var (
	errHostNameRequired     = errors.New("host name is required")
	errClientIDRequired     = errors.New("client ID is required")
	errClientSecretRequired = errors.New("client secret is required")
	errScopeRequired        = errors.New("at least one scope is required")
)

// Config holds the app credentials registered with the appliance. The values
// must match the app's registration; a mismatched RedirectURI is rejected by
// the appliance during the code exchange.
type Config struct {
	// HostName is the base URL of the appliance, e.g.
	// "https://share.example.com". A trailing slash is tolerated.
	HostName string

	// ClientID and ClientSecret identify the app to the appliance.
	ClientID     string
	ClientSecret string

	// RedirectURI is where the appliance sends the user after consent.
	RedirectURI string

	// HTTPClient overrides the client used for token requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client
}

func (c *Config) validate() error {
	if c.HostName == "" {
		return errHostNameRequired
	}
	if c.ClientID == "" {
		return errClientIDRequired
	}
	if c.ClientSecret == "" {
		return errClientSecretRequired
	}
	return nil
}

func (c *Config) hostName() string {
	return strings.TrimRight(c.HostName, "/")
}

func (c *Config) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.hostName() + "/authorize",
			TokenURL: c.hostName() + "/auth/token",
		},
	}
}

func (c *Config) context(ctx context.Context) context.Context {
	if c.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTPClient)
	}
	return ctx
}

// AuthorizationURL returns the URL to send the user to for consent. The
// appliance joins scopes with commas, not the space of RFC 6749.
func (c *Config) AuthorizationURL(scopes ...Scope) (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}
	if len(scopes) == 0 {
		return "", errScopeRequired
	}

	names := make([]string, len(scopes))
	for i, scope := range scopes {
		names[i] = string(scope)
	}
	scopeList := oauth2.SetAuthURLParam("scope", strings.Join(names, ","))
	return c.oauth2Config().AuthCodeURL("", scopeList), nil
}

// ExchangeCode trades the authorization code from the consent redirect for
// an access token usable with aerofs.New.
func (c *Config) ExchangeCode(ctx context.Context, code string) (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}

	token, err := c.oauth2Config().Exchange(c.context(ctx), code)
	if err != nil {
		return "", fmt.Errorf("exchange authorization code failed: %w", err)
	}
	return token.AccessToken, nil
}

// RevokeToken invalidates an access token on the appliance. Requests already
// in flight with the token may still complete.
func (c *Config) RevokeToken(ctx context.Context, token string) error {
	if err := c.validate(); err != nil {
		return err
	}

	form := url.Values{
		"token":         {token},
		"client_id":     {c.ClientID},
		"client_secret": {c.ClientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.hostName()+"/auth/token/revoke", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read side
	io.Copy(io.Discard, resp.Body) //nolint:errcheck // draining

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("revoke token failed: server returned %s", resp.Status)
	}
	return nil
}

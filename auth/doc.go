// Package auth implements the OAuth2 authorization-code flow against an
// AeroFS appliance, producing access tokens for the aerofs package.
//
// # Usage
//
//	cfg := &auth.Config{
//	    HostName:     "https://share.example.com",
//	    ClientID:     os.Getenv("AEROFS_CLIENT_ID"),
//	    ClientSecret: os.Getenv("AEROFS_CLIENT_SECRET"),
//	    RedirectURI:  "https://myapp.example.com/callback",
//	}
//
//	consentURL, err := cfg.AuthorizationURL(auth.ScopeFilesRead, auth.ScopeFilesWrite)
//	// ... send the user to consentURL; the appliance redirects back with ?code=...
//
//	token, err := cfg.ExchangeCode(ctx, code)
//	client, err := aerofs.New("https://share.example.com/api/v1.2", token)
package auth

package aerofs

import (
	"errors"
	"net/http"
	"strings"
)

// DefaultChunkSize is the default maximum number of bytes uploaded per
// request when uploading file content.
const DefaultChunkSize = 4096

var (
	errEndpointRequired    = errors.New("non-empty endpoint URL is required")
	errAccessTokenRequired = errors.New("non-empty access token is required")
	errInvalidChunkSize    = errors.New("upload chunk size must be greater than 0")
)

// Client talks to an AeroFS appliance's REST API on behalf of a single
// authenticated user.
//
// A Client holds no mutable state after construction. All methods are safe
// to call concurrently, with the exception that the upload calls for a
// single UploadID must be issued in sequence (see UploadContent).
type Client struct {
	endpoint    string
	accessToken string
	chunkSize   int
	httpClient  *http.Client
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient sets the http.Client used for every request. Use this to
// plug in request timeouts, proxies, or transport middleware.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithChunkSize sets the maximum number of bytes uploaded per request when
// uploading file content. Default is DefaultChunkSize.
func WithChunkSize(size int) Option {
	return func(c *Client) {
		c.chunkSize = size
	}
}

// New creates a Client against the given API endpoint, e.g.
// "https://share.example.com/api/v1.2", authenticating every request with
// the given OAuth2 access token.
//
// Configuration is validated here and is immutable afterwards.
func New(endpoint, accessToken string, opts ...Option) (*Client, error) {
	c := &Client{
		endpoint:    strings.TrimRight(endpoint, "/"),
		accessToken: accessToken,
		chunkSize:   DefaultChunkSize,
		httpClient:  http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.endpoint == "" {
		return nil, errEndpointRequired
	}
	if c.accessToken == "" {
		return nil, errAccessTokenRequired
	}
	if c.chunkSize <= 0 {
		return nil, errInvalidChunkSize
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}

	return c, nil
}

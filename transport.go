package aerofs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// escape makes an identifier or email safe for use as a single path segment.
func escape(segment string) string {
	return url.PathEscape(segment)
}

// etagSetter is implemented by entities that carry a server-side ETag.
// Successful calls copy the response's ETag header into the decoded entity
// so the caller can chain conditional requests without a separate fetch.
type etagSetter interface {
	setETag(etag string)
}

// newRequest builds a request against {endpoint}/{path} carrying the bearer
// credential. This is the single chokepoint every operation falls through.
// query is appended verbatim; the server expects literal commas in the
// fields parameter, which url.Values.Encode would percent-encode.
func (c *Client) newRequest(ctx context.Context, method, path, query string, body io.Reader) (*http.Request, error) {
	u := c.endpoint + "/" + path
	if query != "" {
		u += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	return req, nil
}

// send issues the request and returns the raw response. It does not retry
// and does not inspect status codes; callers branch on status themselves.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// checkStatus consumes the response body into a StatusError for any
// non-success status.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return newStatusError(resp)
}

// setIfMatch attaches an If-Match precondition built from the given ETags.
// A stale ETag makes the server answer 412, surfaced as
// ErrPreconditionFailed.
func setIfMatch(req *http.Request, etags []string) {
	if len(etags) > 0 {
		req.Header.Set("If-Match", strings.Join(etags, ", "))
	}
}

// setIfNoneMatch attaches an If-None-Match precondition built from the given
// ETags. A matching ETag makes the server answer 304, surfaced as a nil
// entity with a nil error.
func setIfNoneMatch(req *http.Request, etags []string) {
	if len(etags) > 0 {
		req.Header.Set("If-None-Match", strings.Join(etags, ", "))
	}
}

// responseETag returns the response's ETag header with surrounding quotes
// stripped, or "" if absent.
func responseETag(resp *http.Response) string {
	return strings.Trim(resp.Header.Get("ETag"), `"`)
}

// getJSON fetches path and decodes the response into out. A 304 answer to
// the If-None-Match precondition returns notModified == true with out left
// untouched.
func (c *Client) getJSON(ctx context.Context, path, query string, etags []string, out any) (notModified bool, err error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return false, err
	}
	setIfNoneMatch(req, etags)

	resp, err := c.send(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close() //nolint:errcheck // read side

	if resp.StatusCode == http.StatusNotModified {
		return true, nil
	}
	if err := checkStatus(resp); err != nil {
		return false, err
	}
	return false, decodeJSON(resp, out)
}

// postJSON sends body as JSON and decodes the response into out, if non-nil.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	return c.writeJSON(ctx, http.MethodPost, path, body, out, nil)
}

// putJSON sends body as JSON with an optional If-Match precondition and
// decodes the response into out, if non-nil.
func (c *Client) putJSON(ctx context.Context, path string, body, out any, etags []string) error {
	return c.writeJSON(ctx, http.MethodPut, path, body, out, etags)
}

func (c *Client) writeJSON(ctx context.Context, method, path string, body, out any, etags []string) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request failed: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, "", reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	setIfMatch(req, etags)

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // read side

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeJSON(resp, out)
}

// del issues a DELETE with an optional If-Match precondition.
func (c *Client) del(ctx context.Context, path string, etags []string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, "", nil)
	if err != nil {
		return err
	}
	setIfMatch(req, etags)

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // read side

	return checkStatus(resp)
}

func decodeJSON(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response failed: %w", err)
	}
	if s, ok := out.(etagSetter); ok {
		if etag := responseETag(resp); etag != "" {
			s.setETag(etag)
		}
	}
	return nil
}

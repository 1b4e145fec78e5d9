package aerofs

import "context"

// CreateLinkOptions carries the optional properties of a new link. Nil
// fields are left at the server's defaults.
type CreateLinkOptions struct {
	Password     *string
	RequireLogin *bool

	// Expiry is the requested lifetime of the link in seconds.
	Expiry *int64
}

// UpdateLinkOptions carries a partial update of a link's properties. Nil
// fields are left unchanged.
type UpdateLinkOptions struct {
	Password     *string
	RequireLogin *bool
	Expiry       *int64
}

type linkProperties struct {
	ObjectID     ObjectID `json:"soid,omitempty"`
	Password     *string  `json:"password,omitempty"`
	RequireLogin *bool    `json:"require_login,omitempty"`
	Expires      *int64   `json:"expires,omitempty"`
}

// CreateLink creates a shareable link to a file or folder. The link lives
// in the share containing the target; its key is scoped to that share.
func (c *Client) CreateLink(ctx context.Context, objectID ObjectID, opts CreateLinkOptions) (*Link, error) {
	body := linkProperties{
		ObjectID:     objectID,
		Password:     opts.Password,
		RequireLogin: opts.RequireLogin,
		Expires:      opts.Expiry,
	}

	link := new(Link)
	if err := c.postJSON(ctx, "shares/"+escape(objectID.ShareID().String())+"/urls", body, link); err != nil {
		return nil, err
	}
	return link, nil
}

// GetLinkInfo retrieves the properties of a link.
func (c *Client) GetLinkInfo(ctx context.Context, shareID ShareID, key LinkID) (*Link, error) {
	link := new(Link)
	if _, err := c.getJSON(ctx, linkPath(shareID, key), "", nil, link); err != nil {
		return nil, err
	}
	return link, nil
}

// ListLinks lists all links within a share.
func (c *Client) ListLinks(ctx context.Context, shareID ShareID) ([]Link, error) {
	var out struct {
		URLs []Link `json:"urls"`
	}
	if _, err := c.getJSON(ctx, "shares/"+escape(shareID.String())+"/urls", "", nil, &out); err != nil {
		return nil, err
	}
	return out.URLs, nil
}

// DeleteLink deletes a link.
func (c *Client) DeleteLink(ctx context.Context, shareID ShareID, key LinkID) error {
	return c.del(ctx, linkPath(shareID, key), nil)
}

// UpdateLinkInfo updates any subset of a link's properties in one call.
// Properties left nil in opts are not touched.
func (c *Client) UpdateLinkInfo(ctx context.Context, shareID ShareID, key LinkID, opts UpdateLinkOptions) (*Link, error) {
	body := linkProperties{
		Password:     opts.Password,
		RequireLogin: opts.RequireLogin,
		Expires:      opts.Expiry,
	}

	link := new(Link)
	if err := c.putJSON(ctx, linkPath(shareID, key), body, link, nil); err != nil {
		return nil, err
	}
	return link, nil
}

// UpdateLinkPassword sets or replaces the password required to open a link.
func (c *Client) UpdateLinkPassword(ctx context.Context, shareID ShareID, key LinkID, password string) (*Link, error) {
	link := new(Link)
	if err := c.putJSON(ctx, linkPath(shareID, key)+"/password", password, link, nil); err != nil {
		return nil, err
	}
	return link, nil
}

// RemoveLinkPassword removes the password from a link. Removing a password
// that is not set is not an error.
func (c *Client) RemoveLinkPassword(ctx context.Context, shareID ShareID, key LinkID) error {
	return c.del(ctx, linkPath(shareID, key)+"/password", nil)
}

// UpdateLinkRequireLogin sets whether opening the link requires a signed-in
// account.
func (c *Client) UpdateLinkRequireLogin(ctx context.Context, shareID ShareID, key LinkID, requireLogin bool) (*Link, error) {
	link := new(Link)
	if err := c.putJSON(ctx, linkPath(shareID, key)+"/require_login", requireLogin, link, nil); err != nil {
		return nil, err
	}
	return link, nil
}

// UpdateLinkExpiry sets the lifetime of a link in seconds.
//
// The Expires value of a subsequently fetched link is re-encoded by the
// server relative to its own clock and will not equal the value set here.
func (c *Client) UpdateLinkExpiry(ctx context.Context, shareID ShareID, key LinkID, expiry int64) (*Link, error) {
	link := new(Link)
	if err := c.putJSON(ctx, linkPath(shareID, key)+"/expires", expiry, link, nil); err != nil {
		return nil, err
	}
	return link, nil
}

// RemoveLinkExpiry makes a link permanent. Removing expiry from a permanent
// link is not an error.
func (c *Client) RemoveLinkExpiry(ctx context.Context, shareID ShareID, key LinkID) error {
	return c.del(ctx, linkPath(shareID, key)+"/expires", nil)
}

func linkPath(shareID ShareID, key LinkID) string {
	return "shares/" + escape(shareID.String()) + "/urls/" + escape(key.String())
}

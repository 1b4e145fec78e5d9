package aerofs

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetUser retrieves information on an existing user.
func (c *Client) GetUser(ctx context.Context, email string) (*User, error) {
	user := new(User)
	if _, err := c.getJSON(ctx, "users/"+escape(email), "", nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers lists the users of the organization, a page at a time. limit
// bounds the page size (0 lets the server choose); after is the email of the
// last user of the previous page, or "" for the first page.
func (c *Client) ListUsers(ctx context.Context, limit int, after string) (*UserPage, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if after != "" {
		query.Set("after", after)
	}

	page := new(UserPage)
	if _, err := c.getJSON(ctx, "users", query.Encode(), nil, page); err != nil {
		return nil, err
	}
	return page, nil
}

// CreateUser provisions a new user account. Requires an organization admin
// token.
func (c *Client) CreateUser(ctx context.Context, email, firstName, lastName string) (*User, error) {
	body := struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}{email, firstName, lastName}

	user := new(User)
	if err := c.postJSON(ctx, "users", body, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser changes a user's name.
func (c *Client) UpdateUser(ctx context.Context, email, firstName, lastName string) (*User, error) {
	body := struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}{firstName, lastName}

	user := new(User)
	if err := c.putJSON(ctx, "users/"+escape(email), body, user, nil); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser deletes a user account. Requires an organization admin token.
func (c *Client) DeleteUser(ctx context.Context, email string) error {
	return c.del(ctx, "users/"+escape(email), nil)
}

// ChangeUserPassword replaces a user's password.
func (c *Client) ChangeUserPassword(ctx context.Context, email, password string) error {
	return c.putJSON(ctx, "users/"+escape(email)+"/password", password, nil, nil)
}

// CreateInvitee invites a person to sign up for an account. emailFrom must
// be the email of an existing user.
func (c *Client) CreateInvitee(ctx context.Context, emailTo, emailFrom string) (*Invitee, error) {
	body := struct {
		EmailTo   string `json:"email_to"`
		EmailFrom string `json:"email_from"`
	}{emailTo, emailFrom}

	invitee := new(Invitee)
	if err := c.postJSON(ctx, "invitees", body, invitee); err != nil {
		return nil, err
	}
	return invitee, nil
}

// GetInvitee retrieves a pending sign-up invitation.
func (c *Client) GetInvitee(ctx context.Context, email string) (*Invitee, error) {
	invitee := new(Invitee)
	if _, err := c.getJSON(ctx, "invitees/"+escape(email), "", nil, invitee); err != nil {
		return nil, err
	}
	return invitee, nil
}

// DeleteInvitee retracts a pending sign-up invitation.
func (c *Client) DeleteInvitee(ctx context.Context, email string) error {
	return c.del(ctx, "invitees/"+escape(email), nil)
}

// ListInvitations lists a user's pending invitations into shares.
func (c *Client) ListInvitations(ctx context.Context, email string) ([]Invitation, error) {
	var invitations []Invitation
	if _, err := c.getJSON(ctx, "users/"+escape(email)+"/invitations", "", nil, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

// AcceptInvitation accepts an invitation into a share on behalf of a user.
// external marks the share as living outside the user's root anchor.
func (c *Client) AcceptInvitation(ctx context.Context, email string, shareID ShareID, external bool) (*SharedFolder, error) {
	query := url.Values{}
	if external {
		query.Set("external", "1")
	}

	req, err := c.newRequest(ctx, http.MethodPost, invitationPath(email, shareID), query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // read side

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	sf := new(SharedFolder)
	if err := decodeJSON(resp, sf); err != nil {
		return nil, err
	}
	return sf, nil
}

// IgnoreInvitation declines an invitation into a share on behalf of a user.
func (c *Client) IgnoreInvitation(ctx context.Context, email string, shareID ShareID) error {
	return c.del(ctx, invitationPath(email, shareID), nil)
}

func invitationPath(email string, shareID ShareID) string {
	return "users/" + escape(email) + "/invitations/" + escape(shareID.String())
}

package aerofs

import "context"

// CreateSharedFolder creates a new shared folder with the given name,
// owned by the caller.
func (c *Client) CreateSharedFolder(ctx context.Context, name string) (*SharedFolder, error) {
	body := struct {
		Name string `json:"name"`
	}{name}

	sf := new(SharedFolder)
	if err := c.postJSON(ctx, "shares", body, sf); err != nil {
		return nil, err
	}
	return sf, nil
}

// GetSharedFolder retrieves the attributes and membership of a share.
//
// If ETags are given they are sent as an If-None-Match precondition; a 304
// answer returns (nil, nil).
func (c *Client) GetSharedFolder(ctx context.Context, shareID ShareID, etags ...string) (*SharedFolder, error) {
	sf := new(SharedFolder)
	notModified, err := c.getJSON(ctx, "shares/"+escape(shareID.String()), "", etags, sf)
	if err != nil || notModified {
		return nil, err
	}
	return sf, nil
}

// ListSharedFolders lists the shares a user is a member of.
//
// If ETags are given they are sent as an If-None-Match precondition; a 304
// answer returns (nil, nil).
func (c *Client) ListSharedFolders(ctx context.Context, email string, etags ...string) (*SharedFolderList, error) {
	list := new(SharedFolderList)
	notModified, err := c.getJSON(ctx, "users/"+escape(email)+"/shares", "", etags, list)
	if err != nil || notModified {
		return nil, err
	}
	return list, nil
}

// ListSFMembers lists the users who are members of a share.
//
// If ETags are given they are sent as an If-None-Match precondition; a 304
// answer returns (nil, nil).
func (c *Client) ListSFMembers(ctx context.Context, shareID ShareID, etags ...string) (*SFMemberList, error) {
	list := new(SFMemberList)
	notModified, err := c.getJSON(ctx, "shares/"+escape(shareID.String())+"/members", "", etags, list)
	if err != nil || notModified {
		return nil, err
	}
	return list, nil
}

// GetSFMember retrieves one member of a share.
//
// If ETags are given they are sent as an If-None-Match precondition; a 304
// answer returns (nil, nil).
func (c *Client) GetSFMember(ctx context.Context, shareID ShareID, email string, etags ...string) (*SFMember, error) {
	member := new(SFMember)
	notModified, err := c.getJSON(ctx, sfMemberPath(shareID, email), "", etags, member)
	if err != nil || notModified {
		return nil, err
	}
	return member, nil
}

// AddSFMember adds an existing user to a share with the given permissions.
func (c *Client) AddSFMember(ctx context.Context, shareID ShareID, email string, permissions []Permission) (*SFMember, error) {
	body := struct {
		Email       string       `json:"email"`
		Permissions []Permission `json:"permissions"`
	}{email, permissions}

	member := new(SFMember)
	if err := c.postJSON(ctx, "shares/"+escape(shareID.String())+"/members", body, member); err != nil {
		return nil, err
	}
	return member, nil
}

// SetSFMemberPermissions replaces a member's permissions. ETags, if given,
// are sent as an If-Match precondition; a stale ETag fails with
// ErrPreconditionFailed.
func (c *Client) SetSFMemberPermissions(ctx context.Context, shareID ShareID, email string, permissions []Permission, etags ...string) (*SFMember, error) {
	body := struct {
		Permissions []Permission `json:"permissions"`
	}{permissions}

	member := new(SFMember)
	if err := c.putJSON(ctx, sfMemberPath(shareID, email), body, member, etags); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveSFMember removes a user from a share. ETags, if given, are sent as
// an If-Match precondition.
func (c *Client) RemoveSFMember(ctx context.Context, shareID ShareID, email string, etags ...string) error {
	return c.del(ctx, sfMemberPath(shareID, email), etags)
}

// ListSFGroupMembers lists the groups that are members of a share.
func (c *Client) ListSFGroupMembers(ctx context.Context, shareID ShareID) ([]SFGroupMember, error) {
	var members []SFGroupMember
	if _, err := c.getJSON(ctx, "shares/"+escape(shareID.String())+"/groups", "", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddSFGroupMember adds a group to a share with the given permissions.
func (c *Client) AddSFGroupMember(ctx context.Context, shareID ShareID, groupID GroupID, permissions []Permission) (*SFGroupMember, error) {
	body := struct {
		ID          GroupID      `json:"id"`
		Permissions []Permission `json:"permissions"`
	}{groupID, permissions}

	member := new(SFGroupMember)
	if err := c.postJSON(ctx, "shares/"+escape(shareID.String())+"/groups", body, member); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveSFGroupMember removes a group from a share.
func (c *Client) RemoveSFGroupMember(ctx context.Context, shareID ShareID, groupID GroupID) error {
	return c.del(ctx, "shares/"+escape(shareID.String())+"/groups/"+escape(groupID.String()), nil)
}

// ListSFPendingMembers lists the users invited to a share who have not
// accepted yet.
func (c *Client) ListSFPendingMembers(ctx context.Context, shareID ShareID) ([]SFPendingMember, error) {
	var pending []SFPendingMember
	if _, err := c.getJSON(ctx, "shares/"+escape(shareID.String())+"/pending", "", nil, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// InviteToSharedFolder invites a user to a share. The user shows up in the
// share's pending list until they accept.
func (c *Client) InviteToSharedFolder(ctx context.Context, shareID ShareID, email string, permissions []Permission, note string) (*SFPendingMember, error) {
	body := struct {
		Email       string       `json:"email"`
		Permissions []Permission `json:"permissions"`
		Note        string       `json:"note,omitempty"`
	}{email, permissions, note}

	pending := new(SFPendingMember)
	if err := c.postJSON(ctx, "shares/"+escape(shareID.String())+"/pending", body, pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// RemoveSFPendingMember retracts a share invitation.
func (c *Client) RemoveSFPendingMember(ctx context.Context, shareID ShareID, email string) error {
	return c.del(ctx, "shares/"+escape(shareID.String())+"/pending/"+escape(email), nil)
}

func sfMemberPath(shareID ShareID, email string) string {
	return "shares/" + escape(shareID.String()) + "/members/" + escape(email)
}

package aerofs

import (
	"context"
	"net/url"
	"strconv"
)

// CreateGroup creates a new, empty group. Requires an organization admin
// token.
func (c *Client) CreateGroup(ctx context.Context, name string) (*Group, error) {
	body := struct {
		Name string `json:"name"`
	}{name}

	group := new(Group)
	if err := c.postJSON(ctx, "groups", body, group); err != nil {
		return nil, err
	}
	return group, nil
}

// GetGroup retrieves a group and its members.
func (c *Client) GetGroup(ctx context.Context, groupID GroupID) (*Group, error) {
	group := new(Group)
	if _, err := c.getJSON(ctx, "groups/"+escape(groupID.String()), "", nil, group); err != nil {
		return nil, err
	}
	return group, nil
}

// DeleteGroup deletes a group. Share memberships granted through the group
// are revoked.
func (c *Client) DeleteGroup(ctx context.Context, groupID GroupID) error {
	return c.del(ctx, "groups/"+escape(groupID.String()), nil)
}

// ListGroups lists the groups of the organization, a page at a time. limit
// bounds the page size (0 lets the server choose); after is the ID of the
// last group of the previous page, or "" for the first page.
func (c *Client) ListGroups(ctx context.Context, limit int, after GroupID) (*GroupList, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if after != "" {
		query.Set("after", after.String())
	}

	list := new(GroupList)
	if _, err := c.getJSON(ctx, "groups", query.Encode(), nil, list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListGroupMembers lists the users belonging to a group.
func (c *Client) ListGroupMembers(ctx context.Context, groupID GroupID) ([]GroupMember, error) {
	var members []GroupMember
	if _, err := c.getJSON(ctx, "groups/"+escape(groupID.String())+"/members", "", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetGroupMember retrieves one member of a group.
func (c *Client) GetGroupMember(ctx context.Context, groupID GroupID, email string) (*GroupMember, error) {
	member := new(GroupMember)
	if _, err := c.getJSON(ctx, groupMemberPath(groupID, email), "", nil, member); err != nil {
		return nil, err
	}
	return member, nil
}

// AddGroupMember adds an existing user to a group.
func (c *Client) AddGroupMember(ctx context.Context, groupID GroupID, email string) (*GroupMember, error) {
	body := struct {
		Email string `json:"email"`
	}{email}

	member := new(GroupMember)
	if err := c.postJSON(ctx, "groups/"+escape(groupID.String())+"/members", body, member); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveGroupMember removes a user from a group.
func (c *Client) RemoveGroupMember(ctx context.Context, groupID GroupID, email string) error {
	return c.del(ctx, groupMemberPath(groupID, email), nil)
}

func groupMemberPath(groupID GroupID, email string) string {
	return "groups/" + escape(groupID.String()) + "/members/" + escape(email)
}

package aerofs

import (
	"context"
	"net/http"
)

// GetFolder retrieves the attributes of a folder.
//
// If ETags are given they are sent as an If-None-Match precondition; a 304
// answer returns (nil, nil).
func (c *Client) GetFolder(ctx context.Context, folderID FolderID, fields FolderFields, etags ...string) (*Folder, error) {
	folder := new(Folder)
	notModified, err := c.getJSON(ctx, "folders/"+escape(folderID.String()), fields.query(), etags, folder)
	if err != nil || notModified {
		return nil, err
	}
	return folder, nil
}

// CreateFolder creates a new folder under an existing parent folder.
func (c *Client) CreateFolder(ctx context.Context, parent FolderID, name string) (*Folder, error) {
	body := struct {
		Parent FolderID `json:"parent"`
		Name   string   `json:"name"`
	}{parent, name}

	folder := new(Folder)
	if err := c.postJSON(ctx, "folders", body, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// MoveFolder moves a folder under a new parent and/or gives it a new name.
// ETags, if given, are sent as an If-Match precondition; a stale ETag fails
// with ErrPreconditionFailed.
func (c *Client) MoveFolder(ctx context.Context, folderID, newParent FolderID, newName string, etags ...string) (*Folder, error) {
	body := struct {
		Parent FolderID `json:"parent"`
		Name   string   `json:"name"`
	}{newParent, newName}

	folder := new(Folder)
	if err := c.putJSON(ctx, "folders/"+escape(folderID.String()), body, folder, etags); err != nil {
		return nil, err
	}
	return folder, nil
}

// DeleteFolder deletes a folder and, recursively, everything under it.
// ETags, if given, are sent as an If-Match precondition.
func (c *Client) DeleteFolder(ctx context.Context, folderID FolderID, etags ...string) error {
	return c.del(ctx, "folders/"+escape(folderID.String()), etags)
}

// ListRoot lists the files and folders under the caller's root folder.
func (c *Client) ListRoot(ctx context.Context) (*Children, error) {
	return c.ListChildren(ctx, RootFolderID)
}

// ListChildren lists the files and folders directly under a folder.
func (c *Client) ListChildren(ctx context.Context, folderID FolderID) (*Children, error) {
	children := new(Children)
	if _, err := c.getJSON(ctx, "folders/"+escape(folderID.String())+"/children", "", nil, children); err != nil {
		return nil, err
	}
	return children, nil
}

// ShareFolder converts an existing folder into a shared folder. The folder
// keeps its ID; its ShareID is derived from it.
func (c *Client) ShareFolder(ctx context.Context, folderID FolderID, etags ...string) error {
	req, err := c.newRequest(ctx, http.MethodPut, "folders/"+escape(folderID.String())+"/is_shared", "", nil)
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

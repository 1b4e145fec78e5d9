package aerofs

import (
	"context"
	"io"
	"net/http"
)

// GetFile retrieves the attributes of a file.
//
// If ETags are given they are sent as an If-None-Match precondition; a 304
// answer returns (nil, nil).
func (c *Client) GetFile(ctx context.Context, fileID FileID, fields FileFields, etags ...string) (*File, error) {
	file := new(File)
	notModified, err := c.getJSON(ctx, "files/"+escape(fileID.String()), fields.query(), etags, file)
	if err != nil || notModified {
		return nil, err
	}
	return file, nil
}

// GetFilePath retrieves the chain of ancestor folders of a file.
func (c *Client) GetFilePath(ctx context.Context, fileID FileID) (*ParentPath, error) {
	path := new(ParentPath)
	if _, err := c.getJSON(ctx, "files/"+escape(fileID.String())+"/path", "", nil, path); err != nil {
		return nil, err
	}
	return path, nil
}

// CreateFile creates a new file under an existing parent folder. The file
// has no content until an upload sequence is finished against it; until
// then both LastModified and Size are nil.
func (c *Client) CreateFile(ctx context.Context, parent FolderID, name string) (*File, error) {
	body := struct {
		Parent FolderID `json:"parent"`
		Name   string   `json:"name"`
	}{parent, name}

	file := new(File)
	if err := c.postJSON(ctx, "files", body, file); err != nil {
		return nil, err
	}
	return file, nil
}

// MoveFile moves a file under a new parent and/or gives it a new name.
// ETags, if given, are sent as an If-Match precondition; a stale ETag fails
// with ErrPreconditionFailed.
func (c *Client) MoveFile(ctx context.Context, fileID FileID, newParent FolderID, newName string, etags ...string) (*File, error) {
	body := struct {
		Parent FolderID `json:"parent"`
		Name   string   `json:"name"`
	}{newParent, newName}

	file := new(File)
	if err := c.putJSON(ctx, "files/"+escape(fileID.String()), body, file, etags); err != nil {
		return nil, err
	}
	return file, nil
}

// DeleteFile deletes a file. ETags, if given, are sent as an If-Match
// precondition.
func (c *Client) DeleteFile(ctx context.Context, fileID FileID, etags ...string) error {
	return c.del(ctx, "files/"+escape(fileID.String()), etags)
}

// DownloadFile streams the content of a file. The caller must close the
// returned reader to release the connection.
//
// If ETags are given they are sent as an If-None-Match precondition; a 304
// answer returns (nil, nil).
func (c *Client) DownloadFile(ctx context.Context, fileID FileID, etags ...string) (io.ReadCloser, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "files/"+escape(fileID.String())+"/content", "", nil)
	if err != nil {
		return nil, err
	}
	setIfNoneMatch(req, etags)

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotModified {
		resp.Body.Close() //nolint:errcheck // read side
		return nil, nil
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

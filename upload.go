package aerofs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// uploadIDHeader identifies the upload sequence on every request after the
// first; the server assigns the ID in its response to the first request.
const uploadIDHeader = "Upload-ID"

// StartUpload starts a new upload sequence to replace the content of a file
// and uploads the first chunk read from content.
//
// If content yields no bytes at all, a zero-length probe is sent instead so
// the server still allocates an UploadID, and the returned progress has
// EOFReached set. Either way the caller proceeds with UploadContent until
// EOFReached and then commits with FinishUpload.
func (c *Client) StartUpload(ctx context.Context, fileID FileID, content io.Reader) (*UploadProgress, error) {
	buf := make([]byte, c.chunkSize)
	n, err := readChunk(content, buf)
	if err != nil {
		return nil, err
	}

	if n == 0 {
		progress, err := c.uploadRound(ctx, fileID, "bytes */*", "", nil)
		if err != nil {
			return nil, err
		}
		progress.EOFReached = true
		return progress, nil
	}

	contentRange := fmt.Sprintf("bytes 0-%d/*", n-1)
	return c.uploadRound(ctx, fileID, contentRange, "", bytes.NewReader(buf[:n]))
}

// UploadContent continues an upload sequence with the next chunk read from
// content.
//
// If content is exhausted, no request is sent: the returned progress carries
// the same byte count with EOFReached set. Calls for a single UploadID must
// be issued in sequence; concurrent chunk submissions to one sequence are
// undefined server-side.
func (c *Client) UploadContent(ctx context.Context, fileID FileID, progress *UploadProgress, content io.Reader) (*UploadProgress, error) {
	buf := make([]byte, c.chunkSize)
	n, err := readChunk(content, buf)
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return &UploadProgress{
			UploadID:      progress.UploadID,
			BytesUploaded: progress.BytesUploaded,
			EOFReached:    true,
		}, nil
	}

	contentRange := fmt.Sprintf("bytes %d-%d/*", progress.BytesUploaded, progress.BytesUploaded+int64(n)-1)
	return c.uploadRound(ctx, fileID, contentRange, progress.UploadID, bytes.NewReader(buf[:n]))
}

// ResumeUpload recovers the progress of an existing upload sequence, e.g.
// after a process restart, by probing the server for the number of bytes it
// has accepted so far.
//
// A 400 answer to the probe means no bytes have ever been received for this
// sequence. That is an expected outcome, not a failure: it yields a progress
// of zero bytes with EOFReached unset. Any other error status propagates.
func (c *Client) ResumeUpload(ctx context.Context, fileID FileID, uploadID UploadID) (*UploadProgress, error) {
	req, err := c.newUploadRequest(ctx, fileID, "bytes */*", uploadID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // read side

	if resp.StatusCode == http.StatusBadRequest {
		id := UploadID(resp.Header.Get(uploadIDHeader))
		if id == "" {
			id = uploadID
		}
		return &UploadProgress{UploadID: id, BytesUploaded: 0, EOFReached: false}, nil
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return uploadProgressFromResponse(resp, uploadID)
}

// FinishUpload commits an upload sequence by asserting its total length.
// Once it returns, the new content is visible to subsequent reads.
//
// It returns the file's new content ETag.
func (c *Client) FinishUpload(ctx context.Context, fileID FileID, progress *UploadProgress) (string, error) {
	contentRange := fmt.Sprintf("bytes */%d", progress.BytesUploaded)
	req, err := c.newUploadRequest(ctx, fileID, contentRange, progress.UploadID, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.send(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck // read side

	if err := checkStatus(resp); err != nil {
		return "", err
	}
	return responseETag(resp), nil
}

func (c *Client) newUploadRequest(ctx context.Context, fileID FileID, contentRange string, uploadID UploadID, chunk io.Reader) (*http.Request, error) {
	path := "files/" + escape(fileID.String()) + "/content"
	req, err := c.newRequest(ctx, http.MethodPut, path, "", chunk)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Range", contentRange)
	if uploadID != "" {
		req.Header.Set(uploadIDHeader, uploadID.String())
	}
	if chunk != nil {
		req.Header.Set("Content-Type", "application/octet-stream")
	}
	return req, nil
}

func (c *Client) uploadRound(ctx context.Context, fileID FileID, contentRange string, uploadID UploadID, chunk io.Reader) (*UploadProgress, error) {
	req, err := c.newUploadRequest(ctx, fileID, contentRange, uploadID, chunk)
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
	return uploadProgressFromResponse(resp, uploadID)
}

// uploadProgressFromResponse folds a chunk response into a progress value.
// uploadID is kept when the response omits the Upload-ID header, so a flaky
// intermediary cannot strip the sequence identity mid-upload.
func uploadProgressFromResponse(resp *http.Response, uploadID UploadID) (*UploadProgress, error) {
	uploaded, err := parseAckRange(resp.Header.Get("Range"))
	if err != nil {
		return nil, err
	}
	id := UploadID(resp.Header.Get(uploadIDHeader))
	if id == "" {
		id = uploadID
	}
	return &UploadProgress{
		UploadID:      id,
		BytesUploaded: uploaded,
		EOFReached:    false,
	}, nil
}

// parseAckRange extracts the server's acknowledged byte high-water mark from
// a "Range: bytes 0-K" header; the uploaded count is K+1. An absent header
// means the server has acknowledged nothing.
func parseAckRange(header string) (int64, error) {
	if header == "" {
		return 0, nil
	}
	i := strings.LastIndex(header, "-")
	if i < 0 {
		return 0, fmt.Errorf("malformed Range header %q", header)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(header[i+1:]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed Range header %q: %w", header, err)
	}
	return end + 1, nil
}

// readChunk fills buf with as many bytes as the reader yields, tolerating
// short reads. A return of 0 with a nil error means the reader is exhausted.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}
	if err != nil {
		return n, fmt.Errorf("read content failed: %w", err)
	}
	return n, nil
}

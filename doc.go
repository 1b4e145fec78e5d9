// Package aerofs is a typed client for the AeroFS Private Cloud REST API.
// It covers folders, files, resumable content uploads, downloads, shareable
// links, shared-folder membership, users, groups, invitations, and devices.
//
// # Usage
//
//	client, err := aerofs.New(
//	    "https://share.example.com/api/v1.2",
//	    os.Getenv("AEROFS_ACCESS_TOKEN"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	folder, err := client.CreateFolder(ctx, aerofs.RootFolderID, "reports")
//	if err != nil {
//	    return err
//	}
//
// # Uploading content
//
// File content is uploaded in chunks through an explicit upload sequence.
// The sequence is driven by an opaque UploadProgress token; the caller may
// persist the token's UploadID (together with the FileID) and recover the
// sequence later with ResumeUpload:
//
//	progress, err := client.StartUpload(ctx, file.ID, content)
//	if err != nil {
//	    return err
//	}
//	for !progress.EOFReached {
//	    progress, err = client.UploadContent(ctx, file.ID, progress, content)
//	    if err != nil {
//	        return err
//	    }
//	}
//	etag, err := client.FinishUpload(ctx, file.ID, progress)
//
// The client never retries a failed request; retry policy belongs to the
// caller. The server-side upload sequence survives client failures and can
// be resumed until it is finished.
//
// # Conditional requests
//
// Reads and mutations accept optional ETags. On reads they become an
// If-None-Match precondition and an unchanged resource yields (nil, nil).
// On mutations they become an If-Match precondition and a stale ETag yields
// an error matching ErrPreconditionFailed:
//
//	folder, err := client.GetFolder(ctx, id, aerofs.FolderFields{})
//	...
//	same, err := client.GetFolder(ctx, id, aerofs.FolderFields{}, folder.ETag)
//	// same == nil when the folder is unchanged
//
// # Authorization
//
// Every request carries an OAuth2 bearer token obtained through the flow in
// the companion package github.com/aerofs/aerofs-sdk-go/auth.
package aerofs

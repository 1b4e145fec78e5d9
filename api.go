package aerofs

import (
	"context"
	"io"
)

// API is the full surface of the file-storage REST API exposed by this
// package. *Client implements it; the interface exists so callers can swap
// in a mock or a decorator.
//
// All calls surface failures as errors: transport failures wrapped with the
// underlying cause, HTTP error statuses as *StatusError (branch with
// errors.Is against ErrNotFound and ErrPreconditionFailed), and malformed
// response bodies as decode errors. Reads taking ETags answer a matching
// If-None-Match with (nil, nil) rather than an error.
type API interface {
	// GetFolder retrieves the attributes of a folder.
	GetFolder(ctx context.Context, folderID FolderID, fields FolderFields, etags ...string) (*Folder, error)

	// CreateFolder creates a new folder under an existing parent folder.
	CreateFolder(ctx context.Context, parent FolderID, name string) (*Folder, error)

	// MoveFolder moves and/or renames a folder, optionally guarded by ETags.
	MoveFolder(ctx context.Context, folderID, newParent FolderID, newName string, etags ...string) (*Folder, error)

	// DeleteFolder deletes a folder recursively, optionally guarded by ETags.
	DeleteFolder(ctx context.Context, folderID FolderID, etags ...string) error

	// ListRoot lists the files and folders under the caller's root folder.
	ListRoot(ctx context.Context) (*Children, error)

	// ListChildren lists the files and folders directly under a folder.
	ListChildren(ctx context.Context, folderID FolderID) (*Children, error)

	// ShareFolder converts an existing folder into a shared folder.
	ShareFolder(ctx context.Context, folderID FolderID, etags ...string) error

	// GetFile retrieves the attributes of a file.
	GetFile(ctx context.Context, fileID FileID, fields FileFields, etags ...string) (*File, error)

	// GetFilePath retrieves the chain of ancestor folders of a file.
	GetFilePath(ctx context.Context, fileID FileID) (*ParentPath, error)

	// CreateFile creates a new file, without content, under a parent folder.
	CreateFile(ctx context.Context, parent FolderID, name string) (*File, error)

	// MoveFile moves and/or renames a file, optionally guarded by ETags.
	MoveFile(ctx context.Context, fileID FileID, newParent FolderID, newName string, etags ...string) (*File, error)

	// DeleteFile deletes a file, optionally guarded by ETags.
	DeleteFile(ctx context.Context, fileID FileID, etags ...string) error

	// DownloadFile streams the content of a file; the caller closes the
	// reader.
	DownloadFile(ctx context.Context, fileID FileID, etags ...string) (io.ReadCloser, error)

	// StartUpload starts an upload sequence against a file with the first
	// chunk of content.
	StartUpload(ctx context.Context, fileID FileID, content io.Reader) (*UploadProgress, error)

	// UploadContent continues an upload sequence with the next chunk of
	// content.
	UploadContent(ctx context.Context, fileID FileID, progress *UploadProgress, content io.Reader) (*UploadProgress, error)

	// ResumeUpload recovers the progress of an upload sequence from the
	// server.
	ResumeUpload(ctx context.Context, fileID FileID, uploadID UploadID) (*UploadProgress, error)

	// FinishUpload commits an upload sequence and returns the file's new
	// content ETag.
	FinishUpload(ctx context.Context, fileID FileID, progress *UploadProgress) (string, error)

	// CreateLink creates a shareable link to a file or folder.
	CreateLink(ctx context.Context, objectID ObjectID, opts CreateLinkOptions) (*Link, error)

	// GetLinkInfo retrieves the properties of a link.
	GetLinkInfo(ctx context.Context, shareID ShareID, key LinkID) (*Link, error)

	// ListLinks lists all links within a share.
	ListLinks(ctx context.Context, shareID ShareID) ([]Link, error)

	// DeleteLink deletes a link.
	DeleteLink(ctx context.Context, shareID ShareID, key LinkID) error

	// UpdateLinkInfo updates any subset of a link's properties in one call.
	UpdateLinkInfo(ctx context.Context, shareID ShareID, key LinkID, opts UpdateLinkOptions) (*Link, error)

	// UpdateLinkPassword sets or replaces a link's password.
	UpdateLinkPassword(ctx context.Context, shareID ShareID, key LinkID, password string) (*Link, error)

	// RemoveLinkPassword removes a link's password.
	RemoveLinkPassword(ctx context.Context, shareID ShareID, key LinkID) error

	// UpdateLinkRequireLogin sets whether a link requires a signed-in
	// account.
	UpdateLinkRequireLogin(ctx context.Context, shareID ShareID, key LinkID, requireLogin bool) (*Link, error)

	// UpdateLinkExpiry sets a link's lifetime in seconds.
	UpdateLinkExpiry(ctx context.Context, shareID ShareID, key LinkID, expiry int64) (*Link, error)

	// RemoveLinkExpiry makes a link permanent.
	RemoveLinkExpiry(ctx context.Context, shareID ShareID, key LinkID) error

	// CreateSharedFolder creates a new shared folder owned by the caller.
	CreateSharedFolder(ctx context.Context, name string) (*SharedFolder, error)

	// GetSharedFolder retrieves the attributes and membership of a share.
	GetSharedFolder(ctx context.Context, shareID ShareID, etags ...string) (*SharedFolder, error)

	// ListSharedFolders lists the shares a user is a member of.
	ListSharedFolders(ctx context.Context, email string, etags ...string) (*SharedFolderList, error)

	// ListSFMembers lists the users who are members of a share.
	ListSFMembers(ctx context.Context, shareID ShareID, etags ...string) (*SFMemberList, error)

	// GetSFMember retrieves one member of a share.
	GetSFMember(ctx context.Context, shareID ShareID, email string, etags ...string) (*SFMember, error)

	// AddSFMember adds an existing user to a share.
	AddSFMember(ctx context.Context, shareID ShareID, email string, permissions []Permission) (*SFMember, error)

	// SetSFMemberPermissions replaces a member's permissions, optionally
	// guarded by ETags.
	SetSFMemberPermissions(ctx context.Context, shareID ShareID, email string, permissions []Permission, etags ...string) (*SFMember, error)

	// RemoveSFMember removes a user from a share, optionally guarded by
	// ETags.
	RemoveSFMember(ctx context.Context, shareID ShareID, email string, etags ...string) error

	// ListSFGroupMembers lists the groups that are members of a share.
	ListSFGroupMembers(ctx context.Context, shareID ShareID) ([]SFGroupMember, error)

	// AddSFGroupMember adds a group to a share.
	AddSFGroupMember(ctx context.Context, shareID ShareID, groupID GroupID, permissions []Permission) (*SFGroupMember, error)

	// RemoveSFGroupMember removes a group from a share.
	RemoveSFGroupMember(ctx context.Context, shareID ShareID, groupID GroupID) error

	// ListSFPendingMembers lists a share's pending invitations.
	ListSFPendingMembers(ctx context.Context, shareID ShareID) ([]SFPendingMember, error)

	// InviteToSharedFolder invites a user to a share.
	InviteToSharedFolder(ctx context.Context, shareID ShareID, email string, permissions []Permission, note string) (*SFPendingMember, error)

	// RemoveSFPendingMember retracts a share invitation.
	RemoveSFPendingMember(ctx context.Context, shareID ShareID, email string) error

	// GetUser retrieves information on an existing user.
	GetUser(ctx context.Context, email string) (*User, error)

	// ListUsers lists the organization's users a page at a time, keyed by an
	// email cursor.
	ListUsers(ctx context.Context, limit int, after string) (*UserPage, error)

	// CreateUser provisions a new user account.
	CreateUser(ctx context.Context, email, firstName, lastName string) (*User, error)

	// UpdateUser changes a user's name.
	UpdateUser(ctx context.Context, email, firstName, lastName string) (*User, error)

	// DeleteUser deletes a user account.
	DeleteUser(ctx context.Context, email string) error

	// ChangeUserPassword replaces a user's password.
	ChangeUserPassword(ctx context.Context, email, password string) error

	// CreateInvitee invites a person to sign up for an account.
	CreateInvitee(ctx context.Context, emailTo, emailFrom string) (*Invitee, error)

	// GetInvitee retrieves a pending sign-up invitation.
	GetInvitee(ctx context.Context, email string) (*Invitee, error)

	// DeleteInvitee retracts a pending sign-up invitation.
	DeleteInvitee(ctx context.Context, email string) error

	// ListInvitations lists a user's pending invitations into shares.
	ListInvitations(ctx context.Context, email string) ([]Invitation, error)

	// AcceptInvitation accepts an invitation into a share.
	AcceptInvitation(ctx context.Context, email string, shareID ShareID, external bool) (*SharedFolder, error)

	// IgnoreInvitation declines an invitation into a share.
	IgnoreInvitation(ctx context.Context, email string, shareID ShareID) error

	// CreateGroup creates a new, empty group.
	CreateGroup(ctx context.Context, name string) (*Group, error)

	// GetGroup retrieves a group and its members.
	GetGroup(ctx context.Context, groupID GroupID) (*Group, error)

	// DeleteGroup deletes a group.
	DeleteGroup(ctx context.Context, groupID GroupID) error

	// ListGroups lists the organization's groups a page at a time.
	ListGroups(ctx context.Context, limit int, after GroupID) (*GroupList, error)

	// ListGroupMembers lists the users belonging to a group.
	ListGroupMembers(ctx context.Context, groupID GroupID) ([]GroupMember, error)

	// GetGroupMember retrieves one member of a group.
	GetGroupMember(ctx context.Context, groupID GroupID, email string) (*GroupMember, error)

	// AddGroupMember adds an existing user to a group.
	AddGroupMember(ctx context.Context, groupID GroupID, email string) (*GroupMember, error)

	// RemoveGroupMember removes a user from a group.
	RemoveGroupMember(ctx context.Context, groupID GroupID, email string) error

	// ListDevices lists the devices registered under a user's account.
	ListDevices(ctx context.Context, email string) ([]Device, error)

	// GetDevice retrieves the attributes of a device.
	GetDevice(ctx context.Context, deviceID DeviceID) (*Device, error)

	// UpdateDevice renames a device.
	UpdateDevice(ctx context.Context, deviceID DeviceID, name string) (*Device, error)

	// GetDeviceStatus retrieves the reachability of a device.
	GetDeviceStatus(ctx context.Context, deviceID DeviceID) (*DeviceStatus, error)
}

var _ API = (*Client)(nil)

package aerofs

import "time"

// Permission is a single access right granted to a member of a share.
type Permission string

// Permissions recognized by the server.
const (
	PermissionWrite  Permission = "WRITE"
	PermissionManage Permission = "MANAGE"
)

// ContentState describes the availability of a file's content on the
// appliance answering the request.
type ContentState string

// Content states reported by the server.
const (
	ContentAvailable           ContentState = "AVAILABLE"
	ContentSyncing             ContentState = "SYNCING"
	ContentDeselected          ContentState = "DESELECTED"
	ContentInsufficientStorage ContentState = "INSUFFICIENT_STORAGE"
)

// File holds the attributes of a file.
//
// A file may have no content yet, in which case both LastModified and Size
// are nil. This is distinct from empty content, where Size points to 0 and
// LastModified is set.
//
// Path is an on-demand field and is nil unless requested via FileFields.
type File struct {
	ID           FileID       `json:"id"`
	Name         string       `json:"name"`
	Parent       FolderID     `json:"parent"`
	LastModified *time.Time   `json:"last_modified,omitempty"`
	Size         *int64       `json:"size,omitempty"`
	MimeType     string       `json:"mime_type,omitempty"`
	ETag         string       `json:"etag,omitempty"`
	Path         *ParentPath  `json:"path,omitempty"`
	ContentState ContentState `json:"content_state,omitempty"`
}

func (f *File) setETag(etag string) { f.ETag = etag }

// Folder holds the attributes of a folder.
//
// If the folder is not shared, IsShared is false and ShareID is empty.
// Path and Children are on-demand fields and are nil unless requested via
// FolderFields.
type Folder struct {
	ID       FolderID    `json:"id"`
	Name     string      `json:"name"`
	Parent   FolderID    `json:"parent"`
	IsShared bool        `json:"is_shared"`
	ShareID  ShareID     `json:"sid,omitempty"`
	Path     *ParentPath `json:"path,omitempty"`
	Children *Children   `json:"children,omitempty"`
	ETag     string      `json:"etag,omitempty"`
}

func (f *Folder) setETag(etag string) { f.ETag = etag }

// Children lists the files and folders directly under a folder.
type Children struct {
	Folders []Folder `json:"folders"`
	Files   []File   `json:"files"`
}

// ParentPath is the chain of ancestor folders of a file or folder, outermost
// first.
type ParentPath struct {
	Folders []Folder `json:"folders"`
}

// Link is a shareable URL granting access to a file or folder.
type Link struct {
	Key          LinkID   `json:"key"`
	ObjectID     ObjectID `json:"soid"`
	Token        string   `json:"token,omitempty"`
	CreatedBy    string   `json:"created_by,omitempty"`
	RequireLogin bool     `json:"require_login"`
	HasPassword  bool     `json:"has_password"`

	// Expires is the number of seconds until the link expires, measured in
	// server time at the moment the response was produced. Zero means the
	// link never expires. Because the server re-encodes expiry relative to
	// its own clock, the value read back after a write will not equal the
	// value written.
	Expires int64 `json:"expires"`
}

// ShareID returns the ID of the share containing the link's target.
func (l *Link) ShareID() ShareID { return l.ObjectID.ShareID() }

// SharedFolder holds the attributes and membership of a share.
type SharedFolder struct {
	ID                         ShareID           `json:"id"`
	Name                       string            `json:"name"`
	Members                    []SFMember        `json:"members,omitempty"`
	Groups                     []SFGroupMember   `json:"groups,omitempty"`
	Pending                    []SFPendingMember `json:"pending,omitempty"`
	IsExternal                 bool              `json:"is_external"`
	CallerEffectivePermissions []Permission      `json:"caller_effective_permissions,omitempty"`
	ETag                       string            `json:"-"`
}

func (sf *SharedFolder) setETag(etag string) { sf.ETag = etag }

// SharedFolderList is the set of shares a user is a member of.
type SharedFolderList struct {
	SharedFolders []SharedFolder `json:"shared_folders"`
	ETag          string         `json:"-"`
}

func (l *SharedFolderList) setETag(etag string) { l.ETag = etag }

// SFMember is a user who is a member of a share.
type SFMember struct {
	Email       string       `json:"email"`
	FirstName   string       `json:"first_name,omitempty"`
	LastName    string       `json:"last_name,omitempty"`
	Permissions []Permission `json:"permissions"`
	ETag        string       `json:"-"`
}

func (m *SFMember) setETag(etag string) { m.ETag = etag }

// SFMemberList is the membership of a share.
type SFMemberList struct {
	Members []SFMember `json:"members"`
	ETag    string     `json:"-"`
}

func (l *SFMemberList) setETag(etag string) { l.ETag = etag }

// SFGroupMember is a group that is a member of a share.
type SFGroupMember struct {
	ID          GroupID      `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// SFPendingMember is a user who has been invited to a share but has not
// accepted yet.
type SFPendingMember struct {
	Email       string       `json:"email"`
	FirstName   string       `json:"first_name,omitempty"`
	LastName    string       `json:"last_name,omitempty"`
	InvitedBy   string       `json:"invited_by"`
	Permissions []Permission `json:"permissions"`
}

// Group is a named collection of users that can be granted share membership
// as a unit.
type Group struct {
	ID      GroupID       `json:"id"`
	Name    string        `json:"name"`
	Members []GroupMember `json:"members,omitempty"`
}

// GroupMember is a user belonging to a group.
type GroupMember struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// GroupList is a page of groups within the organization.
type GroupList struct {
	Groups  []Group `json:"groups"`
	HasMore bool    `json:"has_more"`
}

// User holds the attributes of a user account.
type User struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserPage is one page of the organization's user listing. When HasMore is
// true, pass the email of the last user as the cursor of the next call.
type UserPage struct {
	Users   []User `json:"users"`
	HasMore bool   `json:"has_more"`
}

// Invitation is a pending invitation of a user into a share.
type Invitation struct {
	ShareID          ShareID      `json:"share_id"`
	SharedFolderName string       `json:"share_name"`
	InvitedBy        string       `json:"invited_by"`
	Permissions      []Permission `json:"permissions"`
}

// Invitee is a person invited to sign up for an account.
type Invitee struct {
	EmailTo    string `json:"email_to"`
	EmailFrom  string `json:"email_from"`
	SignUpCode string `json:"signup_code,omitempty"`
}

// Device is a machine running the sync client under a user's account.
type Device struct {
	ID          DeviceID   `json:"id"`
	Owner       string     `json:"owner"`
	Name        string     `json:"name"`
	OSFamily    string     `json:"os_family"`
	InstallDate *time.Time `json:"install_date,omitempty"`
}

// DeviceStatus is the reachability of a device as last observed by the
// appliance.
type DeviceStatus struct {
	Online   bool       `json:"online"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}

// UploadProgress is the progress token of an in-flight upload sequence.
//
// Callers forward it unmodified between upload calls. It may be persisted
// (together with the FileID) and restored to survive a process restart;
// ResumeUpload recovers the server-side byte count from the UploadID alone.
type UploadProgress struct {
	UploadID      UploadID
	BytesUploaded int64
	EOFReached    bool
}

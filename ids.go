package aerofs

// shareIDLength is the fixed length of a ShareID embedded as the prefix of a
// full object ID on the wire. Well-known IDs such as "root" and "appdata" are
// shorter than this and pass through whole.
const shareIDLength = 32

// ObjectID identifies a file or folder when the caller does not know, or does
// not care, which of the two it is. Links target ObjectIDs.
type ObjectID string

// String returns the raw wire value of the ID.
func (id ObjectID) String() string { return string(id) }

// ShareID returns the ID of the share containing the object. The share ID is
// structurally the first 32 characters of the object ID.
func (id ObjectID) ShareID() ShareID { return shareIDOf(string(id)) }

// FileID identifies a file.
type FileID string

// String returns the raw wire value of the ID.
func (id FileID) String() string { return string(id) }

// ShareID returns the ID of the share containing the file.
func (id FileID) ShareID() ShareID { return shareIDOf(string(id)) }

// FolderID identifies a folder.
type FolderID string

// Well-known folder IDs recognized by the server.
const (
	// RootFolderID addresses the authenticated user's root folder.
	RootFolderID FolderID = "root"

	// AppDataFolderID addresses the per-application data folder.
	AppDataFolderID FolderID = "appdata"
)

// String returns the raw wire value of the ID.
func (id FolderID) String() string { return string(id) }

// ShareID returns the ID of the share containing the folder.
func (id FolderID) ShareID() ShareID { return shareIDOf(string(id)) }

// ShareID identifies a shared folder (a "share").
type ShareID string

// String returns the raw wire value of the ID.
func (id ShareID) String() string { return string(id) }

// UploadID identifies a server-side upload sequence. It is assigned by the
// server on the first chunk request and must accompany every subsequent
// request of the same sequence.
type UploadID string

// String returns the raw wire value of the ID.
func (id UploadID) String() string { return string(id) }

// LinkID is the key of a shareable link within its share.
type LinkID string

// String returns the raw wire value of the ID.
func (id LinkID) String() string { return string(id) }

// GroupID identifies a user group.
type GroupID string

// String returns the raw wire value of the ID.
func (id GroupID) String() string { return string(id) }

// DeviceID identifies a device belonging to a user.
type DeviceID string

// String returns the raw wire value of the ID.
func (id DeviceID) String() string { return string(id) }

func shareIDOf(s string) ShareID {
	if len(s) < shareIDLength {
		return ShareID(s)
	}
	return ShareID(s[:shareIDLength])
}

package aerofs

import "strings"

// FileFields selects the on-demand fields of a GetFile call. The zero value
// requests none.
type FileFields struct {
	// Path includes the file's chain of ancestor folders.
	Path bool
}

func (f FileFields) query() string {
	var names []string
	if f.Path {
		names = append(names, "path")
	}
	return fieldsQuery(names)
}

// FolderFields selects the on-demand fields of a GetFolder call. The zero
// value requests none.
type FolderFields struct {
	// Path includes the folder's chain of ancestor folders.
	Path bool

	// Children includes the listing of files and folders directly under the
	// folder.
	Children bool
}

func (f FolderFields) query() string {
	var names []string
	if f.Path {
		names = append(names, "path")
	}
	if f.Children {
		names = append(names, "children")
	}
	return fieldsQuery(names)
}

// fieldsQuery builds fields=a,b from the selected field names, with the
// literal comma the server expects. No names, no parameter.
func fieldsQuery(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return "fields=" + strings.Join(names, ",")
}

package drivefs

import (
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
)

const (
	mimeTypeGoogleAppFolder   = "application/vnd.google-apps.folder"
	mimeTypeGoogleAppShortcut = "application/vnd.google-apps.shortcut"
	mimeTypePrefixGoogleApp   = "application/vnd.google-apps."
)

// FileID identifies a Drive item.
type FileID string

// FileInfo describes a Drive item.
type FileInfo struct {
	Name    string
	ID      FileID
	Size    int64
	Mime    string
	ModTime time.Time
}

// IsFolder reports whether the item is a Drive folder.
func (i FileInfo) IsFolder() bool {
	return i.Mime == mimeTypeGoogleAppFolder
}

// IsShortcut reports whether the item is a Drive shortcut.
func (i FileInfo) IsShortcut() bool {
	return i.Mime == mimeTypeGoogleAppShortcut
}

// IsAppFile reports whether the item has a Google Workspace MIME type.
func (i FileInfo) IsAppFile() bool {
	return strings.HasPrefix(i.Mime, mimeTypePrefixGoogleApp)
}

func newFileInfo(f *drive.File) FileInfo {
	modTime, _ := time.Parse(time.RFC3339, f.ModifiedTime)
	return FileInfo{
		Name:    f.Name,
		ID:      FileID(f.Id),
		Size:    f.Size,
		Mime:    f.MimeType,
		ModTime: modTime,
	}
}

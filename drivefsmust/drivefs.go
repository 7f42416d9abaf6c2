// Package drivefsmust wraps the drivefs package with panic-based error handling.
//
// It provides the same operations as drivefs, but instead of returning
// errors, all exported methods panic on failure.
package drivefsmust

import (
	"context"

	"google.golang.org/api/drive/v3"

	"github.com/Jumpaku/go-posixpath"
	"github.com/Jumpaku/go-posixpath/drivefs"
)

// DriveFS resolves posixpath paths against a Google Drive folder tree.
//
// All methods of DriveFS panic on error instead of returning an error value.
type DriveFS struct {
	driveFS *drivefs.DriveFS
}

// New creates a new DriveFS instance with the given drive.Service.
// The service should be properly authenticated before being passed to this function.
func New(service *drive.Service, opts ...drivefs.Option) *DriveFS {
	return &DriveFS{driveFS: drivefs.New(service, opts...)}
}

// FindByPath returns every item reached by the absolute path p from rootID.
//
// It panics if p is invalid or if the Drive API fails.
func (s *DriveFS) FindByPath(ctx context.Context, rootID drivefs.FileID, p posixpath.Path) (infos []drivefs.FileInfo) {
	return must1(s.driveFS.FindByPath(ctx, rootID, p))
}

// MkdirAll creates the missing folders along the absolute path p below rootID
// and returns the last one.
//
// It panics if an error occurs, including cases where two or more folders with the same name exist at any level.
func (s *DriveFS) MkdirAll(ctx context.Context, rootID drivefs.FileID, p posixpath.Path) (info drivefs.FileInfo) {
	return must1(s.driveFS.MkdirAll(ctx, rootID, p))
}

// ResolvePath returns the absolute path of fileID.
//
// It panics if the item is missing or has more than one parent.
func (s *DriveFS) ResolvePath(ctx context.Context, fileID drivefs.FileID) (p posixpath.Path) {
	return must1(s.driveFS.ResolvePath(ctx, fileID))
}

// Info returns the FileInfo for the item with the given fileID.
//
// It panics if the item is missing.
func (s *DriveFS) Info(ctx context.Context, fileID drivefs.FileID) (info drivefs.FileInfo) {
	return must1(s.driveFS.Info(ctx, fileID))
}

// ReadDir lists the items of the folder with the given fileID.
func (s *DriveFS) ReadDir(ctx context.Context, fileID drivefs.FileID) (children []drivefs.FileInfo) {
	return must1(s.driveFS.ReadDir(ctx, fileID))
}

// Walk walks the tree rooted at rootID, calling fn for each item.
//
// It panics if the walk fails or fn returns an error.
func (s *DriveFS) Walk(ctx context.Context, rootID drivefs.FileID, fn func(posixpath.Path, drivefs.FileInfo) error) {
	must0(s.driveFS.Walk(ctx, rootID, fn))
}

// Package drivefs resolves posixpath paths against a Google Drive folder tree.
//
// A path is read from a root folder: "/a/b" names the item b inside the
// folder a inside the root. Drive allows several items with one name in a
// folder, so a path may match more than one item.
package drivefs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/Jumpaku/go-posixpath"
)

// DriveFS resolves paths against the folders of a Google Drive.
type DriveFS struct {
	service *drive.Service
	logger  logr.Logger
}

// Option configures a DriveFS.
type Option func(*DriveFS)

// WithLogger sets the logger. Resolution steps are logged at V(1).
func WithLogger(logger logr.Logger) Option {
	return func(s *DriveFS) {
		s.logger = logger
	}
}

// New creates a new DriveFS instance with the given drive.Service.
func New(service *drive.Service, opts ...Option) *DriveFS {
	s := &DriveFS{service: service, logger: logr.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindByPath returns every item reached by the absolute path p from rootID.
// The path is normalized first, so "/a/./b/../c" finds the items at "/a/c".
func (s *DriveFS) FindByPath(ctx context.Context, rootID FileID, p posixpath.Path) (infos []FileInfo, err error) {
	names, err := splitPath(p)
	if err != nil {
		return nil, fmt.Errorf("path validation failed: %w", err)
	}
	root, found, err := findByID(ctx, s.service, string(rootID))
	if err != nil {
		return nil, fmt.Errorf("failed to find root directory: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("root not found: %s: %w", rootID, ErrNotFound)
	}
	s.logger.V(1).Info("finding by path", "root", rootID, "path", p.String(), "names", names)
	err = s.dfsFindByPath(ctx, root, names, func(info FileInfo) error {
		infos = append(infos, info)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", p, err)
	}
	return infos, nil
}

// MkdirAll creates the folders along the absolute path p below rootID that do
// not exist yet and returns the last one. A level holding more than one item
// with the wanted name fails with ErrAlreadyExists.
func (s *DriveFS) MkdirAll(ctx context.Context, rootID FileID, p posixpath.Path) (info FileInfo, err error) {
	names, err := splitPath(p)
	if err != nil {
		return FileInfo{}, fmt.Errorf("path validation failed: %w", err)
	}
	file, found, err := findByID(ctx, s.service, string(rootID))
	if err != nil {
		return FileInfo{}, err
	}
	if !found {
		return FileInfo{}, fmt.Errorf("root not found: %s: %w", rootID, ErrNotFound)
	}
	for _, name := range names {
		files, err := findAllByNameIn(ctx, s.service, file.Id, name)
		if err != nil {
			return FileInfo{}, fmt.Errorf("failed to find directory '%s' in '%s': %w", name, file.Id, err)
		}
		if len(files) > 1 {
			return FileInfo{}, fmt.Errorf("multiple directories '%s' already exist in '%s': %w", name, file.Id, ErrAlreadyExists)
		}
		if len(files) == 1 {
			file = files[0]
			continue
		}
		parentID := file.Id
		file, err = createDirIn(ctx, s.service, parentID, name)
		if err != nil {
			return FileInfo{}, fmt.Errorf("failed to create directory '%s' in '%s': %w", name, parentID, err)
		}
		s.logger.V(1).Info("created directory", "name", name, "parent", parentID, "id", file.Id)
	}
	return newFileInfo(file), nil
}

// ResolvePath returns the absolute path of fileID, built from its chain of
// parents up to the item that has none. That topmost item is the root "/".
func (s *DriveFS) ResolvePath(ctx context.Context, fileID FileID) (p posixpath.Path, err error) {
	var names []string
	currentID := string(fileID)
	for {
		f, found, err := findByID(ctx, s.service, currentID)
		if err != nil {
			return posixpath.Path{}, fmt.Errorf("failed to get file info: %w", err)
		}
		if !found {
			return posixpath.Path{}, fmt.Errorf("file not found: %s: %w", currentID, ErrNotFound)
		}
		if len(f.Parents) == 0 {
			break
		}
		if len(f.Parents) > 1 {
			return posixpath.Path{}, fmt.Errorf("failed to resolve path of '%s' with multiple parents: %w", currentID, ErrMultiParentsNotSupported)
		}
		names = append(names, f.Name)
		currentID = f.Parents[0]
	}
	slices.Reverse(names)

	p = joinNames(posixpath.New("/"), names...)
	p.ForceAbsolute()
	s.logger.V(1).Info("resolved path", "id", fileID, "path", p.String())
	return p, nil
}

// Info returns the FileInfo for the item with the given fileID.
func (s *DriveFS) Info(ctx context.Context, fileID FileID) (info FileInfo, err error) {
	f, found, err := findByID(ctx, s.service, string(fileID))
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to get file info '%s': %w", fileID, err)
	}
	if !found {
		return FileInfo{}, fmt.Errorf("file not found: %s: %w", fileID, ErrNotFound)
	}
	return newFileInfo(f), nil
}

// ReadDir lists the items of the folder with the given fileID.
func (s *DriveFS) ReadDir(ctx context.Context, fileID FileID) (children []FileInfo, err error) {
	files, err := findAllIn(ctx, s.service, string(fileID))
	if err != nil {
		return nil, fmt.Errorf("failed to list directory contents: %w", err)
	}
	for _, f := range files {
		children = append(children, newFileInfo(f))
	}
	return children, nil
}

// Walk walks the tree rooted at rootID, calling fn for each item including
// the root itself, which is reported as "/".
func (s *DriveFS) Walk(ctx context.Context, rootID FileID, fn func(posixpath.Path, FileInfo) error) (err error) {
	file, found, err := findByID(ctx, s.service, string(rootID))
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}
	if !found {
		return fmt.Errorf("file not found: %s: %w", rootID, ErrNotFound)
	}
	return s.walk(ctx, posixpath.New("/"), file, fn)
}

func (s *DriveFS) walk(ctx context.Context, p posixpath.Path, file *drive.File, fn func(posixpath.Path, FileInfo) error) error {
	if err := fn(p, newFileInfo(file)); err != nil {
		return err
	}
	if file.MimeType != mimeTypeGoogleAppFolder {
		return nil
	}
	files, err := findAllIn(ctx, s.service, file.Id)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}
	for _, child := range files {
		if err := s.walk(ctx, joinNames(p, child.Name), child, fn); err != nil {
			return err
		}
	}
	return nil
}

func (s *DriveFS) dfsFindByPath(ctx context.Context, file *drive.File, names []string, onPathMatch func(FileInfo) error) error {
	if len(names) == 0 {
		return onPathMatch(newFileInfo(file))
	}
	if file.MimeType != mimeTypeGoogleAppFolder {
		return nil
	}
	files, err := findAllByNameIn(ctx, s.service, file.Id, names[0])
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}
	for _, child := range files {
		if err := s.dfsFindByPath(ctx, child, names[1:], onPathMatch); err != nil {
			return err
		}
	}
	return nil
}

// splitPath returns the folder names along p. p must be absolute and free of
// a root name; "." and ".." are resolved lexically.
func splitPath(p posixpath.Path) (names []string, err error) {
	if p.Empty() {
		return nil, newInvalidPathError("empty path", nil)
	}
	if p.HasRootName() {
		return nil, newInvalidPathError(fmt.Sprintf("root name %q is not supported", p.RootNameString()), nil)
	}
	if !p.HasRootDirectory() {
		return nil, newInvalidPathError(fmt.Sprintf("path %q must be absolute and start with '/'", p), nil)
	}
	for seg := range p.LexicallyFullNormal().All() {
		if seg.String() == "/" {
			continue
		}
		names = append(names, seg.String())
	}
	return names, nil
}

// joinNames appends Drive item names to p. Drive allows "/" inside a name; it
// is replaced by "_" so that each name stays one component.
func joinNames(p posixpath.Path, names ...string) posixpath.Path {
	for _, name := range names {
		p = posixpath.Join(p, posixpath.New(strings.ReplaceAll(name, "/", "_")))
	}
	return p
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return s
}

const (
	driveFileFields  = "parents,id,name,mimeType,size,modifiedTime"
	driveFilesFields = "nextPageToken,files(parents,id,name,mimeType,size,modifiedTime)"
)

func queryFiles(ctx context.Context, s *drive.Service, query string) (results []*drive.File, err error) {
	err = s.Files.List().
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Q(query).
		Fields(driveFilesFields).
		Pages(ctx, func(list *drive.FileList) error {
			results = append(results, list.Files...)
			return nil
		})
	if err != nil {
		return nil, newAPIError("failed to query files", err)
	}
	return results, nil
}

func findAllByNameIn(ctx context.Context, s *drive.Service, parentID string, name string) (files []*drive.File, err error) {
	q := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false", escapeQuery(name), escapeQuery(parentID))
	return queryFiles(ctx, s, q)
}

func findAllIn(ctx context.Context, s *drive.Service, parentID string) (files []*drive.File, err error) {
	q := fmt.Sprintf("'%s' in parents and trashed = false", escapeQuery(parentID))
	return queryFiles(ctx, s, q)
}

func findByID(ctx context.Context, s *drive.Service, fileID string) (file *drive.File, found bool, err error) {
	file, err = s.Files.Get(fileID).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Context(ctx).
		Do()
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) && gErr.Code == http.StatusNotFound {
			return nil, false, nil
		}
		return nil, false, newAPIError("failed to get file", err)
	}
	return file, true, nil
}

func createDirIn(ctx context.Context, s *drive.Service, parentID, name string) (file *drive.File, err error) {
	file, err = s.Files.Create(&drive.File{
		Name:     name,
		MimeType: mimeTypeGoogleAppFolder,
		Parents:  []string{parentID},
	}).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, newAPIError("failed to create directory", err)
	}
	return file, nil
}

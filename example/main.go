package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/Jumpaku/go-posixpath"
	"github.com/Jumpaku/go-posixpath/drivefs"
)

func newDriveFS(ctx context.Context, logger logr.Logger) *drivefs.DriveFS {
	client, err := google.DefaultClient(ctx,
		drive.DriveScope,
	)
	if err != nil {
		log.Panic(err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.Panic(err)
	}
	return drivefs.New(driveService, drivefs.WithLogger(logger))
}

func describe(p posixpath.Path) {
	fmt.Printf("path:           %s\n", p)
	fmt.Printf("  root name:    %q\n", p.RootNameString())
	fmt.Printf("  root dir:     %q\n", p.RootDirectoryString())
	fmt.Printf("  relative:     %q\n", p.RelativePathString())
	fmt.Printf("  parent:       %q\n", p.ParentPathString())
	fmt.Printf("  filename:     %q\n", p.FilenameString())
	fmt.Printf("  stem:         %q\n", p.StemString())
	fmt.Printf("  extension:    %q\n", p.ExtensionString())
	fmt.Printf("  normal:       %q\n", p.LexicallyNormal())
	fmt.Printf("  full normal:  %q\n", p.LexicallyFullNormal())
	fmt.Printf("  windows:      %q\n", posixpath.ToWin32(p))
	fmt.Printf("  native:       %q\n", p.Native())
	fmt.Print("  segments:    ")
	for s := range p.All() {
		fmt.Printf(" %q", s)
	}
	fmt.Println()
}

func main() {
	stdr.SetVerbosity(1)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"/foo/bar/../baz.tar.gz", "//c:/Users/./me/", "//host/share/a/b", "./x/../y/."}
	}

	cwd := posixpath.New("/home/user")
	var paths []posixpath.Path
	for _, arg := range args {
		p, err := posixpath.Parse(arg)
		if err != nil {
			logger.Error(err, "skipping argument", "arg", arg)
			continue
		}
		describe(p)
		fmt.Printf("  absonormed:   %q\n", p.Absonormed(cwd))
		paths = append(paths, p)
	}

	// Resolve the paths on Google Drive when a root folder is given.
	rootID := os.Getenv("DRIVE_ROOT_ID")
	if rootID == "" {
		return
	}
	ctx := context.Background()
	driveFS := newDriveFS(ctx, logger)
	for _, p := range paths {
		if !p.IsAbsolute() || p.HasRootName() {
			continue
		}
		infos, err := driveFS.FindByPath(ctx, drivefs.FileID(rootID), p)
		if err != nil {
			log.Fatal(err)
		}
		for _, info := range infos {
			resolved, err := driveFS.ResolvePath(ctx, info.ID)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%s: %s (ID: %s, folder: %v)\n", p, resolved, info.ID, info.IsFolder())
		}
	}
}

package posixpath

import (
	"strings"
)

const (
	dotString = "."
	sepString = "/"
)

// filenameOf returns the filename. A trailing separator yields "." and a path
// made of root separators only yields "/".
func filenameOf(s string) string {
	if s == "" {
		return ""
	}
	if strings.Trim(s, sepString) == "" {
		return sepString
	}
	fpos, rootSepPos := findFilenamePos(s)
	if fpos == noPos {
		return ""
	}
	if fpos == rootSepPos {
		return sepString
	}
	if fpos == len(s)-1 && s[fpos] == sep {
		return dotString
	}
	return s[fpos:]
}

// parentOf strips a trailing run of separators, or the filename and the
// separators before it, never going past a root.
func parentOf(s string) string {
	if s == "" {
		return ""
	}
	if s[len(s)-1] == sep {
		return strings.TrimRight(s, sepString)
	}

	fpos, rootSepPos := findFilenamePos(s)
	if fpos == 0 || fpos == noPos {
		return ""
	}
	if rootSepPos == fpos-1 {
		return s[:fpos]
	}
	if fpos == driveRootPos && isDriveRoot(s) {
		return s[:driveRootPos] // "//c:foo"
	}
	cut := fpos - 1
	for cut > 0 && s[cut-1] == sep && cut-1 != rootSepPos {
		cut--
	}
	return s[:cut]
}

func extensionOf(s string) string {
	if i := findExtensionPos(s); i != noPos {
		return s[i:]
	}
	return ""
}

func stemOf(s string) string {
	if s == "" || s[len(s)-1] == sep {
		return ""
	}
	fpos, _ := findFilenamePos(s)
	if fpos == noPos {
		return ""
	}
	if i := findExtensionPos(s); i != noPos {
		return s[fpos:i]
	}
	return s[fpos:]
}

func rootNameOf(s string) string {
	switch {
	case isDriveRoot(s):
		return s[:driveRootPos]
	case isNetworkRoot(s):
		if i := findNetworkRootSep(s); i != noPos {
			return s[:i]
		}
		return s
	default:
		return ""
	}
}

func rootDirectoryOf(s string) string {
	if findRootDirPos(s) == noPos {
		return ""
	}
	return sepString
}

// rootPathOf includes the root directory only when it is present in s.
func rootPathOf(s string) string {
	switch {
	case isDriveRoot(s):
		if findRootDirPos(s) == driveRootPos {
			return s[:driveRootPos+1]
		}
		return s[:driveRootPos]
	case isNetworkRoot(s):
		if i := findNetworkRootSep(s); i != noPos {
			return s[:i+1]
		}
		return s
	case s != "" && s[0] == sep:
		return sepString
	default:
		return ""
	}
}

func relativePathOf(s string) string {
	switch {
	case isDriveRoot(s):
		return strings.TrimLeft(s[driveRootPos:], sepString)
	case isNetworkRoot(s):
		i := findNetworkRootSep(s)
		if i == noPos {
			return ""
		}
		return strings.TrimLeft(s[i+1:], sepString)
	case s != "" && s[0] == sep:
		return strings.TrimLeft(s, sepString)
	default:
		return s
	}
}

// Filename returns the last component. If the path ends with "/", the
// filename is ".".
func (p Path) Filename() Path {
	return New(filenameOf(p.text))
}

// FilenameString is Filename as a string.
func (p Path) FilenameString() string {
	return filenameOf(p.text)
}

// ParentPath returns the path without its last component. Hints carry over.
func (p Path) ParentPath() Path {
	return Path{text: parentOf(p.text), normalized: p.normalized, absolute: p.absolute}
}

// ParentPathString is ParentPath as a string.
func (p Path) ParentPathString() string {
	return parentOf(p.text)
}

// Extension returns the filename's extension including the dot.
func (p Path) Extension() Path {
	return New(extensionOf(p.text))
}

// ExtensionString is Extension as a string.
func (p Path) ExtensionString() string {
	return extensionOf(p.text)
}

// Stem returns the filename without its extension.
func (p Path) Stem() Path {
	return New(stemOf(p.text))
}

// StemString is Stem as a string.
func (p Path) StemString() string {
	return stemOf(p.text)
}

// RootName returns "//x:" for drive paths, "//host" for network paths, or "".
func (p Path) RootName() Path {
	return New(rootNameOf(p.text))
}

// RootNameString is RootName as a string.
func (p Path) RootNameString() string {
	return rootNameOf(p.text)
}

// RootDirectory returns "/" if the path is absolute, or "".
func (p Path) RootDirectory() Path {
	return New(rootDirectoryOf(p.text))
}

// RootDirectoryString is RootDirectory as a string.
func (p Path) RootDirectoryString() string {
	return rootDirectoryOf(p.text)
}

// RootPath returns root name and root directory. The root directory is not
// synthesized: "//c:" yields "//c:" and "//c:/" yields "//c:/".
func (p Path) RootPath() Path {
	return New(rootPathOf(p.text))
}

// RootPathString is RootPath as a string.
func (p Path) RootPathString() string {
	return rootPathOf(p.text)
}

// RelativePath returns the path after its root path.
func (p Path) RelativePath() Path {
	return New(relativePathOf(p.text))
}

// RelativePathString is RelativePath as a string.
func (p Path) RelativePathString() string {
	return relativePathOf(p.text)
}

// HasFilename reports whether Filename is not empty.
func (p Path) HasFilename() bool {
	return filenameOf(p.text) != ""
}

// HasParentPath reports whether ParentPath is not empty.
func (p Path) HasParentPath() bool {
	return parentOf(p.text) != ""
}

// HasExtension reports whether Extension is not empty.
func (p Path) HasExtension() bool {
	return extensionOf(p.text) != ""
}

// HasStem reports whether Stem is not empty.
func (p Path) HasStem() bool {
	return stemOf(p.text) != ""
}

// HasRootName reports whether the path starts with a drive or network root.
func (p Path) HasRootName() bool {
	return rootNameOf(p.text) != ""
}

// HasRootDirectory reports whether RootDirectory is not empty.
func (p Path) HasRootDirectory() bool {
	return rootDirectoryOf(p.text) != ""
}

// HasRootPath reports whether RootPath is not empty.
func (p Path) HasRootPath() bool {
	return rootPathOf(p.text) != ""
}

// HasRelativePath reports whether RelativePath is not empty.
func (p Path) HasRelativePath() bool {
	return relativePathOf(p.text) != ""
}

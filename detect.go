package posixpath

import (
	"strings"
)

const (
	sep      = '/'
	win32Sep = '\\'
	dot      = '.'

	// driveChar terminates the drive letter of an emulated drive root.
	// ':' is also the POSIX PATH list separator, but drive-rooted paths are
	// not expected to end up in such lists.
	driveChar = ':'

	// driveRootPos is the offset of the root directory in "//d:/".
	driveRootPos = 4

	noPos = -1
)

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || ('0' <= c && c <= '9')
}

// isDriveRoot reports whether s starts with "//x:".
func isDriveRoot(s string) bool {
	return len(s) >= driveRootPos &&
		s[0] == sep && s[1] == sep && isAlpha(s[2]) && s[3] == driveChar
}

// isNetworkRoot reports whether s starts with "//x" and is not a drive root.
func isNetworkRoot(s string) bool {
	isNet := len(s) >= 3 && s[0] == sep && s[1] == sep && isAlnum(s[2])
	return isNet && !(len(s) >= driveRootPos && s[3] == driveChar)
}

func hasRootName(s string) bool {
	return isDriveRoot(s) || isNetworkRoot(s)
}

// findNextSep returns the first separator at or after start, or noPos.
func findNextSep(s string, start int) int {
	if start < 0 || start >= len(s) {
		return noPos
	}
	if i := strings.IndexByte(s[start:], sep); i >= 0 {
		return start + i
	}
	return noPos
}

// findPrevSep returns the last separator in s, or noPos.
func findPrevSep(s string) int {
	return strings.LastIndexByte(s, sep)
}

// findNetworkRootSep returns the separator ending the host of a network
// root, or noPos if the host runs to the end of s.
func findNetworkRootSep(s string) int {
	if !isNetworkRoot(s) {
		panic("posixpath: findNetworkRootSep called without a network root: " + s)
	}
	return findNextSep(s, 3)
}

// isRootSeparator reports whether the separator at pos is the root directory
// following a root name.
func isRootSeparator(s string, pos int) bool {
	if pos == driveRootPos && isDriveRoot(s) {
		return true
	}
	if pos >= 3 && isNetworkRoot(s) {
		return findNetworkRootSep(s) == pos
	}
	return false
}

// findRootDirPos returns the offset of the root directory separator, or noPos.
func findRootDirPos(s string) int {
	if len(s) == 0 || s[0] != sep {
		return noPos
	}
	if isDriveRoot(s) {
		if len(s) > driveRootPos && s[driveRootPos] == sep {
			return driveRootPos
		}
		return noPos
	}
	if isNetworkRoot(s) {
		return findNetworkRootSep(s)
	}
	return 0
}

// findFilenamePos returns the start of the filename and the root separator
// position. A path ending with a separator reports that final separator as
// its filename start. Root-name-only paths have no filename.
func findFilenamePos(s string) (filenamePos, rootSepPos int) {
	lastPos := len(s) - 1
	lastSep := findPrevSep(s)
	if lastSep == noPos {
		return 0, noPos
	}

	rootSepPos = noPos
	switch {
	case isDriveRoot(s):
		if lastSep == 1 {
			if len(s) == driveRootPos {
				return noPos, noPos // "//c:"
			}
			return driveRootPos, noPos // "//c:foo"
		}
		if lastSep == driveRootPos && lastSep == lastPos {
			return lastSep, driveRootPos // "//c:/"
		}
		rootSepPos = findRootDirPos(s)
	case isNetworkRoot(s):
		rootSepPos = findNetworkRootSep(s)
		if lastSep == 1 {
			return noPos, noPos // "//host"
		}
		if lastSep == lastPos && lastSep == rootSepPos {
			return lastSep, rootSepPos // "//host/"
		}
	case s[0] == sep:
		rootSepPos = 0
	}

	if lastSep == lastPos {
		return lastSep, rootSepPos
	}
	return lastSep + 1, rootSepPos
}

// findExtensionPos returns the offset of the dot starting the extension of
// the filename, or noPos. Names starting with a dot have no extension unless
// they contain another dot after it, and a leading ".." never starts one.
func findExtensionPos(s string) int {
	fpos, _ := findFilenamePos(s)
	if fpos == noPos || fpos >= len(s) || s[fpos] == sep {
		return noPos
	}
	name := s[fpos:]
	i := strings.LastIndexByte(name, dot)
	if i <= 0 || (i == 1 && name[0] == dot) {
		return noPos
	}
	return fpos + i
}

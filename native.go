package posixpath

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// System selects how paths are converted to and from the host's native form.
type System int

const (
	SystemPOSIX System = iota
	SystemWindows
)

func (s System) String() string {
	switch s {
	case SystemPOSIX:
		return "POSIX"
	case SystemWindows:
		return "Windows"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// HostSystem returns the System of the running program.
func HostSystem() System {
	if runtime.GOOS == "windows" {
		return SystemWindows
	}
	return SystemPOSIX
}

// ToNative converts p to the native form of s.
func (s System) ToNative(p Path) string {
	if s == SystemWindows {
		return ToWin32(p)
	}
	return p.text
}

// FromNative converts a native path of s to a Path.
func (s System) FromNative(native string) Path {
	if s == SystemWindows {
		return FromWin32(native)
	}
	return New(native)
}

// Native returns p in the host's native form.
func (p Path) Native() string {
	return HostSystem().ToNative(p)
}

// ToWin32 converts p to a Windows path: "//c:/foo" becomes `c:\foo` and
// "//host/foo" becomes `\\host\foo`.
func ToWin32(p Path) string {
	s := p.text
	if isDriveRoot(s) {
		s = s[2:]
	}
	return strings.ReplaceAll(s, sepString, string(win32Sep))
}

// FromWin32 converts a Windows path to a Path: `c:\foo` becomes "//c:/foo".
func FromWin32(native string) Path {
	s := strings.ReplaceAll(native, string(win32Sep), sepString)
	if len(s) >= 2 && isAlpha(s[0]) && s[1] == driveChar {
		s = "//" + s
	}
	return New(s)
}

var win32UTF16 = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeWin32UTF16 returns the Windows form of p as UTF-16LE bytes, the
// layout of a Windows wide string without its terminator.
func EncodeWin32UTF16(p Path) ([]byte, error) {
	b, err := win32UTF16.NewEncoder().Bytes([]byte(ToWin32(p)))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q as UTF-16: %w: %w", p.text, ErrInvalidPath, err)
	}
	return b, nil
}

// DecodeWin32UTF16 converts UTF-16LE bytes holding a Windows path to a Path.
func DecodeWin32UTF16(b []byte) (Path, error) {
	if len(b)%2 != 0 {
		return Path{}, fmt.Errorf("odd UTF-16 byte length %d: %w", len(b), ErrInvalidPath)
	}
	u8, err := win32UTF16.NewDecoder().Bytes(b)
	if err != nil {
		return Path{}, fmt.Errorf("failed to decode UTF-16: %w: %w", ErrInvalidPath, err)
	}
	return Parse(FromWin32(string(u8)).text)
}

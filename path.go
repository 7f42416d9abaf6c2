// Package posixpath provides a path value type that treats every path as
// POSIX style, UTF-8 encoded text, whatever the host system.
//
// Windows drives are represented with the network-root form: `C:\foo` is
// written "//c:/foo". Network roots are "//host/path". Root names, root
// directories and the other components follow std::filesystem::path.
//
// All analysis is lexical. Nothing here touches a filesystem.
package posixpath

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// hint caches what is known about a path. Only known is a guarantee; unknown
// says nothing either way.
type hint uint8

const (
	unknown hint = iota
	known
)

// form records which normal forms a path is known to be in. A LexicalFullNormal
// result is also in LexicalNormal form; the reverse does not hold.
type form uint8

const (
	notNormal   form = 0
	formLexical form = 1 << (iota - 1)
	formFull
)

func (f form) has(mode Normalization) bool {
	if mode == LexicalFullNormal {
		return f&formFull != 0
	}
	return f&formLexical != 0
}

// Path is a lexical path. The zero value is the empty path.
//
// Use Equal or Compare to compare paths: the cached hints take part in ==.
type Path struct {
	text string

	normalized form
	absolute   hint
}

// New returns a Path holding s as is.
func New(s string) Path {
	p := Path{text: s}
	if s == "" {
		p.normalized = formLexical | formFull
	}
	return p
}

// Parse returns a Path for s, rejecting text that is not valid UTF-8 or that
// contains NUL bytes.
func Parse(s string) (Path, error) {
	if !utf8.ValidString(s) {
		return Path{}, fmt.Errorf("path %q is not valid UTF-8: %w", s, ErrInvalidPath)
	}
	if strings.IndexByte(s, 0) >= 0 {
		return Path{}, fmt.Errorf("path %q contains NUL: %w", s, ErrInvalidPath)
	}
	return New(s), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the path text as given.
func (p Path) String() string {
	return p.text
}

// Empty reports whether the path text is "".
func (p Path) Empty() bool {
	return p.text == ""
}

// IsAbsolute reports whether the path has a root directory.
func (p Path) IsAbsolute() bool {
	return p.absolute == known || findRootDirPos(p.text) != noPos
}

// IsRelative reports whether the path has no root directory.
func (p Path) IsRelative() bool {
	return !p.IsAbsolute()
}

// IsNormalized is speculative: false only means the path has not been proven normal.
func (p Path) IsNormalized() bool {
	return p.text == "" || p.normalized != notNormal
}

// isNormalIn reports whether p is known to be in the given normal form.
func (p Path) isNormalIn(mode Normalization) bool {
	return p.text == "" || p.normalized.has(mode)
}

// IsAbsonorm is speculative like IsNormalized.
func (p Path) IsAbsonorm() bool {
	return p.normalized != notNormal && p.absolute == known
}

// ForceNormalized records that the path is known to be in LexicalNormal form.
func (p *Path) ForceNormalized() *Path {
	p.normalized |= formLexical
	return p
}

// ForceAbsolute records that the path is known to be absolute.
func (p *Path) ForceAbsolute() *Path {
	p.absolute = known
	return p
}

// Clear resets p to the empty path.
func (p *Path) Clear() {
	*p = Path{}
}

// Compare orders paths by their text, like strings.Compare.
func (p Path) Compare(q Path) int {
	return strings.Compare(p.text, q.text)
}

// Equal reports whether p and q have the same text. Hints are ignored.
func (p Path) Equal(q Path) bool {
	return p.text == q.text
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is checked
// like Parse.
func (p *Path) UnmarshalText(b []byte) error {
	q, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = q
	return nil
}

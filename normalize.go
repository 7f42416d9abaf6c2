package posixpath

import (
	"fmt"
	"strings"
)

// Normalization selects the lexical normal form used by NormalizedWith and
// AbsonormedWith.
type Normalization int

const (
	// LexicalNormal follows std::filesystem::path::lexically_normal.
	LexicalNormal Normalization = iota
	// LexicalFullNormal drops every trailing separator and turns a path that
	// reduces to nothing into "" instead of ".".
	LexicalFullNormal
)

func (n Normalization) String() string {
	switch n {
	case LexicalNormal:
		return "LexicalNormal"
	case LexicalFullNormal:
		return "LexicalFullNormal"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// Normalized returns the LexicalNormal form of p. Paths already known to be
// normalized are returned as is.
func (p Path) Normalized() Path {
	return p.NormalizedWith(LexicalNormal)
}

// NormalizedWith returns p in the normal form selected by mode. The work is
// skipped only when p is already known to be in that form.
func (p Path) NormalizedWith(mode Normalization) Path {
	if p.isNormalIn(mode) {
		return p
	}
	if mode == LexicalFullNormal {
		return p.LexicallyFullNormal()
	}
	return p.LexicallyNormal()
}

// Normalize replaces p with its normalized form.
func (p *Path) Normalize() *Path {
	*p = p.Normalized()
	return p
}

// Absonormed returns the weakly canonical form of p: made absolute against
// cwd, then normalized. cwd must be absolute; Absonormed panics otherwise.
func (p Path) Absonormed(cwd Path) Path {
	return p.AbsonormedWith(cwd, LexicalNormal)
}

// AbsonormedWith is Absonormed with the normal form selected by mode.
func (p Path) AbsonormedWith(cwd Path, mode Normalization) Path {
	if !cwd.IsAbsolute() {
		panic(fmt.Errorf("posixpath: cwd %q: %w", cwd.text, ErrNotAbsolute))
	}
	if p.absolute == known && p.isNormalIn(mode) {
		return p
	}
	abs := p
	if !p.IsAbsolute() {
		abs = Join(cwd, p)
	}
	canon := abs.NormalizedWith(mode)
	canon.absolute = known
	return canon
}

// Absonormize replaces p with its weakly canonical form.
func (p *Path) Absonormize(cwd Path) *Path {
	*p = p.Absonormed(cwd)
	return p
}

// LexicallyNormal computes the normal form of std::filesystem:
//
//  1. An empty path stays empty.
//  2. Runs of separators become one separator.
//  3. Each "." is removed along with its separator.
//  4. Each "name/.." pair is removed.
//  5. A ".." directly after the root directory is removed.
//  6. A trailing separator is kept only after a filename; "/x/." becomes "/x/".
//  7. A path that reduces to nothing becomes ".".
func (p Path) LexicallyNormal() Path {
	if p.text == "" {
		return p
	}
	stack, last, finalSep := reduceSegments(p.text)
	if len(stack) == 0 {
		return Path{text: dotString, normalized: formLexical, absolute: p.absolute}
	}
	if last == SectionDot && stack[len(stack)-1].Section == SectionFilename {
		finalSep = true
	}
	return Path{text: joinSegments(stack, finalSep), normalized: formLexical, absolute: p.absolute}
}

// LexicallyFullNormal is LexicallyNormal without trailing separators, and a
// path that reduces to nothing becomes "":
//
//	"/x/y/." -> "/x/y"
//	"/x/y/"  -> "/x/y"
//	"./"     -> ""
func (p Path) LexicallyFullNormal() Path {
	if p.text == "" {
		return p
	}
	stack, _, _ := reduceSegments(p.text)
	if len(stack) == 0 {
		return New("")
	}
	return Path{text: joinSegments(stack, false), normalized: formLexical | formFull, absolute: p.absolute}
}

// reduceSegments replays the tokenizer into a stack, dropping dots and
// cancelling "name/.." pairs. It reports the last section seen and whether a
// trailing separator follows a filename.
func reduceSegments(text string) (stack []Segment, last Section, finalSep bool) {
	stack = make([]Segment, 0, 32)
	top := func() Section {
		if len(stack) == 0 {
			return SectionEnd
		}
		return stack[len(stack)-1].Section
	}

	last = SectionNone
	it := NewSegmentIterator(text)
	for seg := it.Begin(); seg != it.End(); seg = it.Next() {
		switch seg.Section {
		case SectionDot:
		case SectionDotDot:
			switch top() {
			case SectionFilename:
				stack = stack[:len(stack)-1]
			case SectionRootDir:
				// nothing above the root
			default:
				stack = append(stack, seg)
			}
		case SectionRootName, SectionRootDir, SectionFilename:
			stack = append(stack, seg)
		case SectionFinalSep:
			// "./" is ".", "../" is ".."
			finalSep = top() == SectionFilename && last != SectionDot
		}
		last = seg.Section
	}
	return stack, last, finalSep
}

// joinSegments reassembles a reduced stack. The builder is sized up front
// from the segment lengths plus one separator per segment.
func joinSegments(stack []Segment, finalSep bool) string {
	size := len(stack) + 1
	for _, seg := range stack {
		size += len(seg.Text)
	}

	var b strings.Builder
	b.Grow(size)
	prev := SectionNone
	for _, seg := range stack {
		switch {
		case prev == SectionNone, prev == SectionRootName, prev == SectionRootDir:
		case seg.Section == SectionRootDir:
		default:
			b.WriteByte(sep)
		}
		b.WriteString(seg.Text)
		prev = seg.Section
	}
	if finalSep {
		b.WriteByte(sep)
	}
	return b.String()
}

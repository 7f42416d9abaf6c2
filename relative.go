package posixpath

// elementsOf returns the components compared by LexicallyRelative. A trailing
// separator is the empty element.
func elementsOf(text string) []string {
	segments := collectSegments(text)
	elems := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.Section == SectionFinalSep {
			elems = append(elems, "")
			continue
		}
		elems = append(elems, seg.Text)
	}
	return elems
}

// LexicallyRelative returns p relative to base without normalizing either.
// It returns the empty path if the roots differ or if base climbs above the
// point where the paths diverge:
//
//	"/a/d"  relative to "/a/b/c" -> "../../d"
//	"a/b/c" relative to "a"      -> "b/c"
//	"a/b"   relative to "/a/b"   -> ""
func (p Path) LexicallyRelative(base Path) Path {
	if rootNameOf(p.text) != rootNameOf(base.text) ||
		p.HasRootDirectory() != base.HasRootDirectory() {
		return Path{}
	}

	a, b := elementsOf(p.text), elementsOf(base.text)
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	if i == len(a) && i == len(b) {
		return New(dotString)
	}

	n := 0
	for _, e := range b[i:] {
		switch e {
		case "..":
			n--
		case dotString, "":
		default:
			n++
		}
	}
	if n < 0 {
		return Path{}
	}
	if n == 0 && (i == len(a) || a[i] == "") {
		return New(dotString)
	}

	var rel Path
	for ; n > 0; n-- {
		rel.Append(New(".."))
	}
	for _, e := range a[i:] {
		rel.Append(New(e))
	}
	return rel
}

// LexicallyProximate is LexicallyRelative, falling back to p when no relative
// path exists.
func (p Path) LexicallyProximate(base Path) Path {
	if rel := p.LexicallyRelative(base); !rel.Empty() {
		return rel
	}
	return p
}

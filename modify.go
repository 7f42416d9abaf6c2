package posixpath

// Concat appends q's text as is, without a separator.
func (p *Path) Concat(q Path) *Path {
	return p.concat(q.text)
}

func (p *Path) concat(s string) *Path {
	p.text += s
	p.normalized = notNormal
	return p
}

// Append joins q onto p with a separator. An empty q appends a single
// separator. A q starting with "/" (absolute or carrying a root name)
// replaces p entirely.
func (p *Path) Append(q Path) *Path {
	if q.text == "" {
		return p.concat(sepString)
	}
	if q.text[0] == sep {
		*p = q
		return p
	}
	if p.text != "" && p.text[len(p.text)-1] != sep {
		p.text += sepString
	}
	return p.concat(q.text)
}

// Join returns base with each element appended as by Append.
func Join(base Path, elems ...Path) Path {
	for _, e := range elems {
		base.Append(e)
	}
	return base
}

// Concat returns base with each element concatenated as by (*Path).Concat.
func Concat(base Path, elems ...Path) Path {
	for _, e := range elems {
		base.Concat(e)
	}
	return base
}

// Shorten drops the last n bytes, leaving "" if n is at least the length.
// Both hints are reset since a root or a normal form may be cut away.
func (p *Path) Shorten(n int) *Path {
	if n < len(p.text) {
		p.text = p.text[:len(p.text)-max(n, 0)]
	} else {
		p.text = ""
	}
	p.normalized = notNormal
	p.absolute = unknown
	return p
}

// RemoveFilename drops the filename, keeping the separator before it.
// Paths without a filename to remove are left unchanged.
func (p *Path) RemoveFilename() *Path {
	if p.text == "" {
		return p
	}
	fpos, _ := findFilenamePos(p.text)
	if fpos == noPos || p.text[fpos] == sep {
		return p
	}
	p.text = p.text[:fpos]
	p.normalized = notNormal
	return p
}

// ReplaceFilename swaps the filename for replacement.
func (p *Path) ReplaceFilename(replacement Path) *Path {
	return p.RemoveFilename().Append(replacement)
}

// ReplaceExtension swaps the extension for replacement, which may be given
// with or without its leading dot. An empty replacement removes the extension.
func (p *Path) ReplaceExtension(replacement Path) *Path {
	r := replacement.text
	hasDot := r != "" && r[0] == dot
	if i := findExtensionPos(p.text); i != noPos {
		if hasDot || r == "" {
			p.text = p.text[:i]
		} else {
			p.text = p.text[:i+1]
		}
	} else if r != "" && !hasDot {
		p.text += dotString
	}
	return p.concat(r)
}

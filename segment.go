package posixpath

// Section classifies a Segment.
type Section uint8

const (
	// SectionNone is the state before the first segment.
	SectionNone Section = iota
	// SectionRootName is "//x:" or "//host".
	SectionRootName
	// SectionRootDir is the separator that makes a path absolute.
	SectionRootDir
	// SectionDot is a "." component.
	SectionDot
	// SectionDotDot is a ".." component.
	SectionDotDot
	// SectionFilename is any other component, including "..." and ".x".
	SectionFilename
	// SectionFinalSep is a trailing separator after a filename, dot or dot-dot.
	SectionFinalSep
	// sectionSep is an inner separator. It is consumed by the iterator and
	// never returned.
	sectionSep
	// SectionEnd marks the end of the path.
	SectionEnd
)

// String returns the section name without the "Section" prefix.
func (s Section) String() string {
	switch s {
	case SectionNone:
		return "None"
	case SectionRootName:
		return "RootName"
	case SectionRootDir:
		return "RootDir"
	case SectionDot:
		return "Dot"
	case SectionDotDot:
		return "DotDot"
	case SectionFilename:
		return "Filename"
	case SectionFinalSep:
		return "FinalSep"
	case sectionSep:
		return "Sep"
	case SectionEnd:
		return "End"
	default:
		return "Section(?)"
	}
}

// Segment is one lexical component of a path. Text is a substring of the
// text the SegmentIterator was created with.
type Segment struct {
	Text    string
	Section Section
}

var endSegment = Segment{Section: SectionEnd}

// SegmentIterator tokenizes a path string left to right, one Segment per call.
//
//	it := NewSegmentIterator("/foo/../bar")
//	for seg := it.Begin(); seg != it.End(); seg = it.Next() {
//		...
//	}
type SegmentIterator struct {
	text         string
	pos          int
	last         Section
	seenFilename bool
}

// NewSegmentIterator returns an iterator over text. Call Begin before Next.
func NewSegmentIterator(text string) *SegmentIterator {
	return &SegmentIterator{text: text}
}

// Begin resets the iterator and returns the first segment.
func (it *SegmentIterator) Begin() Segment {
	it.pos = 0
	it.last = SectionNone
	it.seenFilename = false
	return it.advance()
}

// Next returns the next segment. Once the end is reached it keeps returning End.
func (it *SegmentIterator) Next() Segment {
	return it.advance()
}

// End returns the sentinel segment that Begin and Next yield past the end.
func (it *SegmentIterator) End() Segment {
	return endSegment
}

func (it *SegmentIterator) advance() Segment {
	for {
		section := it.currentSection()
		it.last = section
		switch section {
		case SectionRootName:
			return it.onRootName()
		case SectionFilename:
			it.seenFilename = true
			return it.onFilename()
		case SectionRootDir:
			return it.take(1, SectionRootDir)
		case SectionDot:
			it.seenFilename = true
			return it.take(1, SectionDot)
		case SectionDotDot:
			it.seenFilename = true
			return it.take(2, SectionDotDot)
		case SectionFinalSep:
			// A bare trailing slash with nothing before it is not reported.
			if !it.seenFilename {
				it.pos++
				return endSegment
			}
			return it.take(1, SectionFinalSep)
		case sectionSep:
			it.pos++
		default:
			return endSegment
		}
	}
}

func (it *SegmentIterator) take(n int, section Section) Segment {
	seg := Segment{Text: it.text[it.pos : it.pos+n], Section: section}
	it.pos += n
	return seg
}

// currentSection decides the section starting at pos given the last one.
func (it *SegmentIterator) currentSection() Section {
	c, ok := it.current()
	switch it.last {
	case SectionEnd, SectionFinalSep:
		return SectionEnd
	case SectionNone:
		switch {
		case !ok:
			return SectionEnd
		case c == sep:
			return it.onInitialSep()
		case c == dot:
			return it.onDot()
		default:
			return SectionFilename
		}
	case SectionRootName:
		switch {
		case !ok:
			return SectionEnd
		case c == sep:
			return SectionRootDir
		case c == dot:
			return it.onDot()
		default:
			return SectionFilename
		}
	default:
		switch {
		case !ok:
			return SectionEnd
		case c == sep:
			if _, more := it.peek(1); !more {
				return SectionFinalSep
			}
			return sectionSep
		case c == dot:
			return it.onDot()
		default:
			return SectionFilename
		}
	}
}

// onInitialSep handles a separator at offset 0: a root name needs "//" plus a
// drive letter or host character, anything else is the root directory.
func (it *SegmentIterator) onInitialSep() Section {
	if hasRootName(it.text) {
		return SectionRootName
	}
	return SectionRootDir
}

func (it *SegmentIterator) onDot() Section {
	next, ok := it.peek(1)
	switch {
	case !ok || next == sep:
		return SectionDot
	case next == dot:
		if after, ok := it.peek(2); !ok || after == sep {
			return SectionDotDot
		}
		return SectionFilename
	default:
		return SectionFilename
	}
}

func (it *SegmentIterator) onRootName() Segment {
	n := len(it.text)
	if isDriveRoot(it.text) {
		n = driveRootPos
	} else if p := findNetworkRootSep(it.text); p != noPos {
		n = p
	}
	return it.take(n, SectionRootName)
}

func (it *SegmentIterator) onFilename() Segment {
	n := len(it.text) - it.pos
	if p := findNextSep(it.text, it.pos+1); p != noPos {
		n = p - it.pos
	}
	return it.take(n, SectionFilename)
}

func (it *SegmentIterator) current() (byte, bool) {
	return it.peek(0)
}

func (it *SegmentIterator) peek(ahead int) (byte, bool) {
	if i := it.pos + ahead; i < len(it.text) {
		return it.text[i], true
	}
	return 0, false
}

// collectSegments runs the iterator to completion.
func collectSegments(text string) []Segment {
	var segments []Segment
	it := NewSegmentIterator(text)
	for seg := it.Begin(); seg != it.End(); seg = it.Next() {
		segments = append(segments, seg)
	}
	return segments
}

package posixpath

import (
	"iter"
)

// Iterator walks the components of a Path in both directions. Root
// directories and trailing separators surface as "/".
//
// The components are built once, on first use; an end Iterator that is
// never moved or dereferenced builds nothing.
type Iterator struct {
	path     *Path
	index    int
	segments *[]Path
}

// Begin returns an Iterator at the first component, or End for an empty path.
func (p *Path) Begin() Iterator {
	if p.Empty() {
		return p.End()
	}
	return Iterator{path: p, index: 0}
}

// End returns the Iterator past the last component of p.
func (p *Path) End() Iterator {
	return Iterator{path: p, index: noPos}
}

func (it *Iterator) components() []Path {
	if it.segments == nil {
		segments := segmentPaths(it.path.text)
		it.segments = &segments
	}
	return *it.segments
}

// Value returns the component at the iterator. It panics at End.
func (it *Iterator) Value() Path {
	if it.index == noPos {
		panic("posixpath: Value called on end Iterator")
	}
	return it.components()[it.index]
}

// Next moves to the following component; past the last one it becomes End.
func (it *Iterator) Next() *Iterator {
	if it.index == noPos {
		return it
	}
	if it.index == len(it.components())-1 {
		it.index = noPos
	} else {
		it.index++
	}
	return it
}

// Prev moves to the preceding component; from End it moves to the last one.
// Moving before the first component is not allowed.
func (it *Iterator) Prev() *Iterator {
	if it.index == noPos {
		it.index = len(it.components()) - 1
		return it
	}
	if it.index == 0 {
		panic("posixpath: Prev called on first component")
	}
	it.index--
	return it
}

// Equal reports whether both iterators point at the same position of the
// same Path.
func (it Iterator) Equal(other Iterator) bool {
	return it.path == other.path && it.index == other.index
}

// IsEnd reports whether the iterator is past the last component.
func (it Iterator) IsEnd() bool {
	return it.index == noPos
}

func segmentPaths(text string) []Path {
	segments := collectSegments(text)
	paths := make([]Path, 0, len(segments))
	for _, seg := range segments {
		paths = append(paths, New(seg.Text))
	}
	return paths
}

// Segments returns the components of p in order.
func (p Path) Segments() []Path {
	return segmentPaths(p.text)
}

// All yields the components of p from first to last.
func (p Path) All() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		it := NewSegmentIterator(p.text)
		for seg := it.Begin(); seg != it.End(); seg = it.Next() {
			if !yield(New(seg.Text)) {
				return
			}
		}
	}
}

// Backward yields the components of p from last to first.
func (p Path) Backward() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		segments := segmentPaths(p.text)
		for i := len(segments) - 1; i >= 0; i-- {
			if !yield(segments[i]) {
				return
			}
		}
	}
}

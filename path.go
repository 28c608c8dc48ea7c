package skema

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: either an object field name or an array
// index.
type Segment struct {
	key   string
	index int
	isKey bool
}

// Key returns a field-name segment.
func Key(name string) Segment { return Segment{key: name, isKey: true} }

// Index returns an array-index segment.
func Index(i int) Segment { return Segment{index: i} }

// IsKey reports whether the segment is a field name.
func (s Segment) IsKey() bool { return s.isKey }

// Field returns the field name; empty for index segments.
func (s Segment) Field() string { return s.key }

// Pos returns the array index; zero for key segments.
func (s Segment) Pos() int { return s.index }

func (s Segment) String() string {
	if s.isKey {
		return s.key
	}
	return strconv.Itoa(s.index)
}

// Path locates a sub-value within the root value under validation.
type Path []Segment

// child returns a new Path extended by seg. The receiver is copied so sibling
// branches never share backing storage.
func (p Path) child(seg Segment) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = seg
	return np
}

// String renders the path as a JSON Pointer, "/" for the root.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(seg.String())
	}
	return b.String()
}

// Equal reports whether two paths address the same location.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

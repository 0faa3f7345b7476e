package types

import "fmt"

// Affinity tells which side of a soft line wrap a caret binds to when its
// index sits exactly on the wrap point.
type Affinity int

const (
	// Before binds the caret to the start of the following row.
	Before Affinity = iota
	// After binds the caret to the end of the preceding row.
	After
)

func (a Affinity) String() string {
	if a == After {
		return "after"
	}
	return "before"
}

// IndexAffinity is a byte offset into the text plus its affinity.
// Index is always on a grapheme boundary and never exceeds len(text).
type IndexAffinity struct {
	Index    int
	Affinity Affinity
}

// NewIndexAffinity is shorthand for an IndexAffinity literal.
func NewIndexAffinity(index int, affinity Affinity) IndexAffinity {
	return IndexAffinity{Index: index, Affinity: affinity}
}

func (ia IndexAffinity) String() string {
	return fmt.Sprintf("%d/%s", ia.Index, ia.Affinity)
}

// Cursor is a selection with an actively moved Head and an anchored Tail.
// Head == Tail (by index) means a plain caret.
type Cursor struct {
	Head IndexAffinity
	Tail IndexAffinity
}

// Caret returns a cursor with both ends at ia.
func Caret(ia IndexAffinity) Cursor {
	return Cursor{Head: ia, Tail: ia}
}

// Start returns whichever end has the lower index.
func (c Cursor) Start() IndexAffinity {
	if c.Head.Index <= c.Tail.Index {
		return c.Head
	}
	return c.Tail
}

// End returns whichever end has the higher index.
func (c Cursor) End() IndexAffinity {
	if c.Head.Index > c.Tail.Index {
		return c.Head
	}
	return c.Tail
}

// Range returns the selected half-open byte range [start, end).
func (c Cursor) Range() (start, end int) {
	return c.Start().Index, c.End().Index
}

// IsEmpty reports whether nothing is selected.
func (c Cursor) IsEmpty() bool {
	return c.Head.Index == c.Tail.Index
}

// Clamp limits both ends to n.
func (c Cursor) Clamp(n int) Cursor {
	if c.Head.Index > n {
		c.Head = IndexAffinity{Index: n, Affinity: After}
	}
	if c.Tail.Index > n {
		c.Tail = IndexAffinity{Index: n, Affinity: After}
	}
	return c
}

func (c Cursor) String() string {
	return fmt.Sprintf("{head: %s, tail: %s}", c.Head, c.Tail)
}

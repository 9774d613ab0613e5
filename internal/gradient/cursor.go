package gradient

// Direction is the step applied when cycling through stops.
type Direction int

const (
	// Previous moves the selection one stop towards index 0.
	Previous Direction = -1
	// Next moves the selection one stop towards the last index.
	Next Direction = 1
)

// Cursor is the selection over a stop sequence of length Len.
type Cursor struct {
	Index int
	Len   int
}

// NewCursor selects the first of length stops.
func NewCursor(length int) Cursor {
	return Cursor{Index: 0, Len: length}
}

// Valid reports whether Index addresses a stop.
func (c Cursor) Valid() bool {
	return c.Index >= 0 && c.Index < c.Len
}

// Cycle moves the selection by one stop. At either end the cursor is
// returned unchanged; selection never wraps.
func (c Cursor) Cycle(d Direction) Cursor {
	next := c.Index + int(d)
	if next < 0 || next >= c.Len {
		return c
	}
	c.Index = next
	return c
}

// Select moves to index if it is in range.
func (c Cursor) Select(index int) Cursor {
	if index < 0 || index >= c.Len {
		return c
	}
	c.Index = index
	return c
}

// AfterInsert selects the stop inserted at index.
func (c Cursor) AfterInsert(index int) Cursor {
	return Cursor{Index: index, Len: c.Len + 1}
}

// AfterRemove shrinks the sequence by one and pulls the selection back when
// it pointed past the new end.
func (c Cursor) AfterRemove() Cursor {
	c.Len--
	if c.Index >= c.Len {
		c.Index = c.Len - 1
	}
	if c.Index < 0 {
		c.Index = 0
	}
	return c
}

// Resize clamps the selection for a sequence replaced wholesale.
func (c Cursor) Resize(length int) Cursor {
	c.Len = length
	if c.Index >= length {
		c.Index = length - 1
	}
	if c.Index < 0 {
		c.Index = 0
	}
	return c
}

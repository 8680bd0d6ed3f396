package navigation

// Cursor is a linear index over N sections. The index always stays in
// [0, N-1] and moves never wrap.
type Cursor struct {
	index  int
	length int
}

// NewCursor returns a cursor at 0. Lengths below 1 are treated as 1.
func NewCursor(length int) *Cursor {
	if length < 1 {
		length = 1
	}
	return &Cursor{length: length}
}

func (c *Cursor) Index() int { return c.index }

func (c *Cursor) Len() int { return c.length }

func (c *Cursor) Next() bool {
	if c.index >= c.length-1 {
		return false
	}
	c.index++
	return true
}

func (c *Cursor) Prev() bool {
	if c.index <= 0 {
		return false
	}
	c.index--
	return true
}

// Jump moves to i. Out of range targets are ignored.
func (c *Cursor) Jump(i int) bool {
	if i < 0 || i >= c.length {
		return false
	}
	c.index = i
	return true
}

// Apply performs a navigation action and reports whether the index moved
func (c *Cursor) Apply(a Action) bool {
	switch a {
	case ActionNext:
		return c.Next()
	case ActionPrev:
		return c.Prev()
	default:
		return false
	}
}

func (c *Cursor) IsFirst() bool { return c.index == 0 }

func (c *Cursor) IsLast() bool { return c.index == c.length-1 }

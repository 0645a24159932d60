// Package cursor tracks the selected row and scroll offset of a list.
package cursor

// Direction is the direction the cursor last moved in.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// Cursor holds the selected index and the first visible index. The list
// length and viewport height are passed to each call because both change
// as the display list is recomputed and the terminal resized.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below the cursor
	dir    Direction
}

// New creates a cursor at the top of the list.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the index of the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Direction returns the direction of the last movement that changed the
// position, or DirNone after New, Reset or ClearDirection.
func (c Cursor) Direction() Direction {
	return c.dir
}

// ClearDirection forgets the last movement direction.
func (c *Cursor) ClearDirection() {
	c.dir = DirNone
}

// AtTop reports whether the first row is visible.
func (c Cursor) AtTop() bool {
	return c.offset == 0
}

// Move moves the cursor by delta rows, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump moves the cursor to pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.moveTo(clamp(pos, listLen-1))
	c.EnsureVisible(listLen, height)
}

// JumpStart moves the cursor to the first row.
func (c *Cursor) JumpStart() {
	c.moveTo(0)
	c.offset = 0
}

// JumpEnd moves the cursor to the last row.
func (c *Cursor) JumpEnd(listLen, height int) {
	c.Jump(listLen-1, listLen, height)
}

// EnsureVisible scrolls so the cursor stays at least margin rows away from
// the viewport edges, without scrolling past the end of the list.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds pulls the cursor back inside a list that shrank and reports
// whether it moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos, c.offset = 0, 0
		return changed
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	return c.pos != old
}

// VisibleRange returns the visible indices as [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Reset moves the cursor back to the top.
func (c *Cursor) Reset() {
	c.pos, c.offset = 0, 0
	c.dir = DirNone
}

// HandleKey handles the list movement keys and reports whether key was one:
// j/down, k/up, g/home, G/end, and ctrl+d / ctrl+u for half a page.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.JumpStart()
	case "G", "end":
		c.JumpEnd(listLen, height)
	case "ctrl+d":
		c.Move(height/2, listLen, height)
	case "ctrl+u":
		c.Move(-height/2, listLen, height)
	default:
		return false
	}
	return true
}

func (c *Cursor) moveTo(pos int) {
	switch {
	case pos > c.pos:
		c.dir = DirDown
	case pos < c.pos:
		c.dir = DirUp
	}
	c.pos = pos
}

func clamp(v, maxVal int) int {
	return min(max(v, 0), maxVal)
}

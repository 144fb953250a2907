package initiative

// cursorState distinguishes a cursor that was never started from one
// that was started and then orphaned by the queue emptying. Reset is
// legal in the second case but not the first.
type cursorState int

const (
	cursorNotStarted cursorState = iota
	cursorActive
	cursorExhausted
)

// Cursor points at the entry whose turn is current. It is a position
// into the queue's front-based ordering and must be told about every
// change to the queue's size or ordering (see Tracker).
type Cursor struct {
	state cursorState
	pos   int
}

// Position returns the current position and whether the cursor is
// pointing at anything.
func (c *Cursor) Position() (int, bool) {
	return c.pos, c.state == cursorActive
}

// Started reports whether Start has ever been called.
func (c *Cursor) Started() bool {
	return c.state != cursorNotStarted
}

// Start points the cursor at position 0. Valid in any state; on an
// empty queue the cursor ends up started but pointing at nothing.
func (c *Cursor) Start(size int) {
	c.state = cursorActive
	c.pos = 0
	c.fixUp(size)
}

// Next advances the cursor one position, wrapping past the end.
// Returns ErrCursorNotStarted unless the cursor points at an entry.
func (c *Cursor) Next(size int) error {
	return c.advance(1, size)
}

// Prev moves the cursor back one position, wrapping past the front.
// Returns ErrCursorNotStarted unless the cursor points at an entry.
func (c *Cursor) Prev(size int) error {
	return c.advance(-1, size)
}

// Reset points the cursor back at position 0. Unlike Start it is an
// error if the cursor was never started.
func (c *Cursor) Reset(size int) error {
	if c.state == cursorNotStarted {
		return ErrCursorNotStarted
	}
	c.state = cursorActive
	c.pos = 0
	c.fixUp(size)
	return nil
}

func (c *Cursor) advance(delta, size int) error {
	if c.state != cursorActive {
		return ErrCursorNotStarted
	}
	// size > 0 whenever the cursor is active; adding size keeps the
	// dividend non-negative for delta = -1.
	c.pos = (c.pos + delta + size) % size
	return nil
}

// shift nudges an active cursor without wrapping, used when an
// insertion or removal ahead of it changes what its position means.
func (c *Cursor) shift(delta int) {
	if c.state == cursorActive {
		c.pos += delta
	}
}

// fixUp re-validates the cursor after the queue's size changed: an
// active cursor on an empty queue becomes exhausted, otherwise its
// position is taken modulo the new size.
func (c *Cursor) fixUp(size int) {
	if c.state != cursorActive {
		return
	}
	if size == 0 {
		c.state = cursorExhausted
		c.pos = 0
		return
	}
	c.pos %= size
}

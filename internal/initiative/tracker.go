package initiative

// Tracker combines a Queue with the Cursor that follows it, applying
// the cursor adjustment rules on every mutation so the cursor keeps
// pointing at the same logical entry:
//
//   - an entry added at or before the cursor shifts it forward by one
//   - an entry removed strictly before the cursor shifts it back by one
//   - after any size change the cursor is re-validated (modulo the new
//     size, or exhausted when the queue emptied)
//
// Every operation either fully succeeds or fails without mutating
// anything; failures are validated up front.
type Tracker struct {
	queue  *Queue
	cursor Cursor
}

// NewTracker creates a tracker over an empty queue.
func NewTracker() *Tracker {
	return &Tracker{queue: NewQueue()}
}

// Add inserts a new entry, shifting the cursor if the newcomer lands at
// or before it.
func (t *Tracker) Add(name string, priority int) error {
	if err := t.queue.Add(name, priority); err != nil {
		return err
	}
	if cur, ok := t.cursor.Position(); ok {
		if pos, err := t.queue.PositionOf(name); err == nil && pos <= cur {
			t.cursor.shift(+1)
		}
	}
	t.cursor.fixUp(t.queue.Len())
	return nil
}

// Remove deletes the named entry, shifting the cursor back if the entry
// sat strictly before it.
func (t *Tracker) Remove(name string) error {
	pos, err := t.queue.PositionOf(name)
	if err != nil {
		return err
	}
	if cur, ok := t.cursor.Position(); ok && pos < cur {
		t.cursor.shift(-1)
	}
	if err := t.queue.Remove(name); err != nil {
		return err
	}
	t.cursor.fixUp(t.queue.Len())
	return nil
}

// Update reassigns an entry's priority. The queue's size is unchanged
// so the cursor stays where it is, which may mean a different entry's
// turn is now current.
func (t *Tracker) Update(name string, priority int) error {
	if err := t.queue.Update(name, priority); err != nil {
		return err
	}
	t.cursor.fixUp(t.queue.Len())
	return nil
}

// Rename changes an entry's name in place.
func (t *Tracker) Rename(name, newName string) error {
	return t.queue.Rename(name, newName)
}

// MoveUp swaps the named entry one step toward the front within its
// tie-group.
func (t *Tracker) MoveUp(name string) error {
	return t.queue.MoveUp(name)
}

// MoveDown swaps the named entry one step toward the back within its
// tie-group.
func (t *Tracker) MoveDown(name string) error {
	return t.queue.MoveDown(name)
}

// Clear empties the queue. A started cursor becomes exhausted and can be
// brought back with Start or Reset.
func (t *Tracker) Clear() {
	t.queue.Clear()
	t.cursor.fixUp(0)
}

// Start points the cursor at the front of the queue.
func (t *Tracker) Start() {
	t.cursor.Start(t.queue.Len())
}

// Next advances the cursor, wrapping around.
func (t *Tracker) Next() error {
	return t.cursor.Next(t.queue.Len())
}

// Prev moves the cursor back, wrapping around.
func (t *Tracker) Prev() error {
	return t.cursor.Prev(t.queue.Len())
}

// Reset points the cursor back at the front; errors if the cursor was
// never started.
func (t *Tracker) Reset() error {
	return t.cursor.Reset(t.queue.Len())
}

// CursorPosition returns the cursor's position and whether it points at
// an entry.
func (t *Tracker) CursorPosition() (int, bool) {
	return t.cursor.Position()
}

// PositionOf returns an entry's front-based position.
func (t *Tracker) PositionOf(name string) (int, error) {
	return t.queue.PositionOf(name)
}

// At returns the entry at a front-based position; negative positions
// count from the back.
func (t *Tracker) At(pos int) (Entry, error) {
	return t.queue.At(pos)
}

// Contains reports whether the named entry exists.
func (t *Tracker) Contains(name string) bool {
	return t.queue.Contains(name)
}

// Len returns the number of entries.
func (t *Tracker) Len() int {
	return t.queue.Len()
}

// Empty reports whether the queue has no entries.
func (t *Tracker) Empty() bool {
	return t.queue.Empty()
}

// Entries returns a snapshot of the turn order, highest priority first.
func (t *Tracker) Entries() []Entry {
	return t.queue.Entries()
}

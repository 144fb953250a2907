package initiative

import (
	"fmt"
	"sort"
)

// Entry is one participant in the turn order.
type Entry struct {
	Name     string
	Priority int
}

// Queue holds participants sorted by priority, highest first.
// Entries with equal priority keep a meaningful relative order: a new
// entry lands last among its ties, and MoveUp/MoveDown swap adjacent
// tied entries. Names are unique within a queue.
//
// Everything is O(n) per operation. The queue is driven by one
// interactive session, one command at a time, so this is fine.
//
// Positions are 0-based from the front (position 0 = highest priority).
// Internally entries are stored ascending by priority so that binary
// search boundaries give the tie placement we want.
type Queue struct {
	entries []Entry
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add inserts a new entry. Among entries sharing the same priority the
// newcomer is placed last in turn order. Returns ErrDuplicateName if an
// entry with that name already exists.
func (q *Queue) Add(name string, priority int) error {
	if q.indexOf(name) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	q.insert(q.bisectLeft(priority), Entry{Name: name, Priority: priority})
	return nil
}

// Remove deletes the named entry, preserving the relative order of all
// others. Returns ErrNameNotFound if absent.
func (q *Queue) Remove(name string) error {
	idx := q.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNameNotFound, name)
	}
	q.delete(idx)
	return nil
}

// Update reassigns an entry's priority. Equivalent to remove followed by
// add: the entry is re-ranked as the most recent arrival at its new
// priority. Returns ErrNameNotFound if absent.
func (q *Queue) Update(name string, priority int) error {
	idx := q.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNameNotFound, name)
	}
	q.delete(idx)
	q.insert(q.bisectLeft(priority), Entry{Name: name, Priority: priority})
	return nil
}

// Rename changes an entry's name without moving it. Returns
// ErrNameNotFound if name is absent, or ErrDuplicateName if newName
// already belongs to a different entry.
func (q *Queue) Rename(name, newName string) error {
	idx := q.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNameNotFound, name)
	}
	if newName != name && q.indexOf(newName) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateName, newName)
	}
	q.entries[idx].Name = newName
	return nil
}

// MoveUp swaps the named entry with the tied entry directly in front of
// it (one step closer to position 0). Returns ErrOrderViolation if no
// entry with the same priority is ahead of it, ErrNameNotFound if absent.
func (q *Queue) MoveUp(name string) error {
	idx := q.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNameNotFound, name)
	}
	// Front of the tie-group sits at the highest internal index.
	maxValid := q.bisectRight(q.entries[idx].Priority) - 1
	if maxValid <= idx {
		return fmt.Errorf("%w: can't move %s up", ErrOrderViolation, name)
	}
	q.entries[idx], q.entries[idx+1] = q.entries[idx+1], q.entries[idx]
	return nil
}

// MoveDown swaps the named entry with the tied entry directly behind it
// (one step further from position 0). Returns ErrOrderViolation if it is
// already last among its ties, ErrNameNotFound if absent.
func (q *Queue) MoveDown(name string) error {
	idx := q.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNameNotFound, name)
	}
	minValid := q.bisectLeft(q.entries[idx].Priority)
	if minValid >= idx {
		return fmt.Errorf("%w: can't move %s down", ErrOrderViolation, name)
	}
	q.entries[idx], q.entries[idx-1] = q.entries[idx-1], q.entries[idx]
	return nil
}

// PositionOf returns the entry's 0-based position counting from the
// front. Returns ErrNameNotFound if absent.
func (q *Queue) PositionOf(name string) (int, error) {
	idx := q.indexOf(name)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s", ErrNameNotFound, name)
	}
	return len(q.entries) - idx - 1, nil
}

// Clear removes every entry.
func (q *Queue) Clear() {
	q.entries = q.entries[:0]
}

// Len returns the number of entries.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Empty reports whether the queue has no entries.
func (q *Queue) Empty() bool {
	return len(q.entries) == 0
}

// Contains reports whether an entry with the given name exists.
func (q *Queue) Contains(name string) bool {
	return q.indexOf(name) >= 0
}

// At returns the entry at the given front-based position. Negative
// positions count from the back: At(-1) is the lowest priority entry.
// Returns ErrIndexOutOfRange when out of bounds.
func (q *Queue) At(pos int) (Entry, error) {
	n := len(q.entries)
	idx := pos
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return Entry{}, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, pos, n)
	}
	return q.entries[n-idx-1], nil
}

// Entries returns a snapshot of all entries from highest to lowest
// priority. The returned slice is a copy and safe to hold.
func (q *Queue) Entries() []Entry {
	out := make([]Entry, len(q.entries))
	for i, e := range q.entries {
		out[len(q.entries)-i-1] = e
	}
	return out
}

// indexOf returns the internal index of name, or -1.
func (q *Queue) indexOf(name string) int {
	for i, e := range q.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// bisectLeft returns the lowest internal index whose priority is >= p.
// Inserting there puts a newcomer below every existing tie, i.e. last
// among equals when read front-to-back.
func (q *Queue) bisectLeft(p int) int {
	return sort.Search(len(q.entries), func(i int) bool {
		return q.entries[i].Priority >= p
	})
}

// bisectRight returns the lowest internal index whose priority is > p.
func (q *Queue) bisectRight(p int) int {
	return sort.Search(len(q.entries), func(i int) bool {
		return q.entries[i].Priority > p
	})
}

func (q *Queue) insert(idx int, e Entry) {
	q.entries = append(q.entries, Entry{})
	copy(q.entries[idx+1:], q.entries[idx:])
	q.entries[idx] = e
}

func (q *Queue) delete(idx int) {
	q.entries = append(q.entries[:idx], q.entries[idx+1:]...)
}

package initiative

import (
	"errors"
	"testing"
)

func newTracker(t *testing.T, entries ...Entry) *Tracker {
	t.Helper()
	tr := NewTracker()
	for _, e := range entries {
		if err := tr.Add(e.Name, e.Priority); err != nil {
			t.Fatalf("Add(%q, %d) returned error: %v", e.Name, e.Priority, err)
		}
	}
	return tr
}

func cursorAt(t *testing.T, tr *Tracker, want int) {
	t.Helper()
	pos, ok := tr.CursorPosition()
	if !ok {
		t.Fatalf("cursor not active, want position %d", want)
	}
	if pos != want {
		t.Fatalf("cursor position = %d, want %d", pos, want)
	}
}

func fiveEntries() []Entry {
	return []Entry{
		{"Tasha", 18}, {"Buzz", 15}, {"Elyn", 15}, {"Explictica", 15}, {"Isis", 14},
	}
}

func TestCursorRequiresStart(t *testing.T) {
	tr := newTracker(t, fiveEntries()...)

	if err := tr.Next(); !errors.Is(err, ErrCursorNotStarted) {
		t.Fatalf("Next before start error = %v, want %v", err, ErrCursorNotStarted)
	}
	if err := tr.Prev(); !errors.Is(err, ErrCursorNotStarted) {
		t.Fatalf("Prev before start error = %v, want %v", err, ErrCursorNotStarted)
	}
	if err := tr.Reset(); !errors.Is(err, ErrCursorNotStarted) {
		t.Fatalf("Reset before start error = %v, want %v", err, ErrCursorNotStarted)
	}
}

func TestCursorWrapsAround(t *testing.T) {
	tr := newTracker(t, fiveEntries()...)

	tr.Start()
	cursorAt(t, tr, 0)

	for i := 0; i < 3; i++ {
		if err := tr.Next(); err != nil {
			t.Fatalf("Next returned error: %v", err)
		}
	}
	cursorAt(t, tr, 3)

	if err := tr.Next(); err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	cursorAt(t, tr, 4)

	if err := tr.Next(); err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	cursorAt(t, tr, 0)

	if err := tr.Prev(); err != nil {
		t.Fatalf("Prev returned error: %v", err)
	}
	cursorAt(t, tr, 4)
}

func TestCursorStartOnEmptyQueue(t *testing.T) {
	tr := NewTracker()

	tr.Start()
	if _, ok := tr.CursorPosition(); ok {
		t.Fatal("cursor active on empty queue")
	}
	// Started but exhausted: next still fails, reset is permitted.
	if err := tr.Next(); !errors.Is(err, ErrCursorNotStarted) {
		t.Fatalf("Next on empty queue error = %v, want %v", err, ErrCursorNotStarted)
	}
	if err := tr.Reset(); err != nil {
		t.Fatalf("Reset after start returned error: %v", err)
	}
}

func TestCursorExhaustedByClear(t *testing.T) {
	tr := newTracker(t, fiveEntries()...)
	tr.Start()

	tr.Clear()
	if _, ok := tr.CursorPosition(); ok {
		t.Fatal("cursor active after Clear")
	}
	if err := tr.Next(); !errors.Is(err, ErrCursorNotStarted) {
		t.Fatalf("Next after Clear error = %v, want %v", err, ErrCursorNotStarted)
	}

	// Reset is still legal: the cursor had been started.
	if err := tr.Add("Tasha", 18); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := tr.Reset(); err != nil {
		t.Fatalf("Reset after Clear returned error: %v", err)
	}
	cursorAt(t, tr, 0)
}

func TestRemoveBeforeCursorShiftsBack(t *testing.T) {
	tr := newTracker(t, fiveEntries()...)
	tr.Start()
	tr.Next()
	tr.Next()
	cursorAt(t, tr, 2) // Elyn

	if err := tr.Remove("Tasha"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	cursorAt(t, tr, 1)

	e, err := tr.At(1)
	if err != nil {
		t.Fatalf("At(1) returned error: %v", err)
	}
	if e.Name != "Elyn" {
		t.Fatalf("cursor entry = %q, want Elyn", e.Name)
	}
}

func TestRemoveAtCursorKeepsPosition(t *testing.T) {
	tr := newTracker(t, fiveEntries()...)
	tr.Start()
	tr.Next()
	cursorAt(t, tr, 1) // Buzz

	if err := tr.Remove("Buzz"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	// The next entry slides into the cursor's position.
	cursorAt(t, tr, 1)
	e, err := tr.At(1)
	if err != nil {
		t.Fatalf("At(1) returned error: %v", err)
	}
	if e.Name != "Elyn" {
		t.Fatalf("cursor entry = %q, want Elyn", e.Name)
	}
}

func TestRemoveLastEntryWrapsCursor(t *testing.T) {
	tr := newTracker(t, Entry{"Tasha", 18}, Entry{"Elyn", 12})
	tr.Start()
	tr.Next()
	cursorAt(t, tr, 1)

	if err := tr.Remove("Elyn"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	cursorAt(t, tr, 0)
}

func TestAddAtOrBeforeCursorShiftsForward(t *testing.T) {
	tr := newTracker(t, fiveEntries()...)
	tr.Start()
	tr.Next()
	tr.Next()
	cursorAt(t, tr, 2) // Elyn

	if err := tr.Add("Nyx", 20); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	cursorAt(t, tr, 3)
	e, err := tr.At(3)
	if err != nil {
		t.Fatalf("At(3) returned error: %v", err)
	}
	if e.Name != "Elyn" {
		t.Fatalf("cursor entry = %q, want Elyn", e.Name)
	}
}

func TestAddAfterCursorLeavesCursorAlone(t *testing.T) {
	tr := newTracker(t, fiveEntries()...)
	tr.Start()
	cursorAt(t, tr, 0)

	if err := tr.Add("Nyx", 1); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	cursorAt(t, tr, 0)
}

func TestResetReturnsToFront(t *testing.T) {
	tr := newTracker(t, fiveEntries()...)
	tr.Start()
	tr.Next()
	tr.Next()
	cursorAt(t, tr, 2)

	if err := tr.Reset(); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	cursorAt(t, tr, 0)
}

func TestTrackerFailuresLeaveStateUntouched(t *testing.T) {
	tr := newTracker(t, fiveEntries()...)
	tr.Start()
	tr.Next()

	if err := tr.Add("Tasha", 3); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("Add duplicate error = %v, want %v", err, ErrDuplicateName)
	}
	if err := tr.Remove("Nyx"); !errors.Is(err, ErrNameNotFound) {
		t.Fatalf("Remove absent error = %v, want %v", err, ErrNameNotFound)
	}
	if err := tr.MoveUp("Tasha"); !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("MoveUp error = %v, want %v", err, ErrOrderViolation)
	}

	if tr.Len() != 5 {
		t.Fatalf("queue size changed to %d after failed operations", tr.Len())
	}
	cursorAt(t, tr, 1)
}

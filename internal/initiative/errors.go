package initiative

import "errors"

// ErrDuplicateName indicates an add or rename would produce two entries
// with the same name.
var ErrDuplicateName = errors.New("duplicate name in initiative queue")

// ErrNameNotFound indicates a by-name operation referenced an absent entry.
var ErrNameNotFound = errors.New("name not in initiative queue")

// ErrOrderViolation indicates a move would break initiative order.
var ErrOrderViolation = errors.New("move would violate initiative order")

// ErrIndexOutOfRange indicates positional access beyond the current size.
var ErrIndexOutOfRange = errors.New("position out of range")

// ErrCursorNotStarted indicates a cursor operation before start was called.
var ErrCursorNotStarted = errors.New("cursor not started")

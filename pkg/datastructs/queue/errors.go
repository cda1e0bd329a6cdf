package queue

import (
	"github.com/pkg/errors"
)

var (
	// ErrInterrupted is returned by every push and pop once the queue has been
	// interrupted, and by waiters woken by the interruption.
	ErrInterrupted = errors.New("queue interrupted")

	// ErrTimeout is returned when a blocking wait exceeds the configured timeout.
	ErrTimeout = errors.New("queue wait timed out")

	// ErrInsufficientElements is returned by a non-blocking pop or peek when
	// fewer elements than requested are queued.
	ErrInsufficientElements = errors.New("queue has insufficient elements")
)

// Status is the result code of a queue operation.
type Status uint8

const (
	StatusSuccess Status = iota
	StatusInterrupted
	StatusTimeout
	StatusInsufficientElements
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusInterrupted:
		return "Interrupted"
	case StatusTimeout:
		return "Timeout"
	case StatusInsufficientElements:
		return "InsufficientElements"
	default:
		return "Unknown"
	}
}

// StatusOf maps an error returned by a queue operation to its Status.
// Wrapped errors are unwrapped. The boolean is false for errors that did not
// originate from this package.
func StatusOf(err error) (Status, bool) {
	switch {
	case err == nil:
		return StatusSuccess, true
	case errors.Is(err, ErrInterrupted):
		return StatusInterrupted, true
	case errors.Is(err, ErrTimeout):
		return StatusTimeout, true
	case errors.Is(err, ErrInsufficientElements):
		return StatusInsufficientElements, true
	default:
		return StatusSuccess, false
	}
}

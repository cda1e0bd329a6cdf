package batcher

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-blockingqueue/pkg/datastructs/queue"
)

// stripe is a single worker's batch buffer.
// It is NOT thread-safe and is owned by exactly one worker.
type stripe[T any] struct {
	cons Consumer[T]
	data []T
	cap  int
}

// newStripe creates a new stripe with the given consumer and capacity.
func newStripe[T any](cons Consumer[T], capacity int) *stripe[T] {
	return &stripe[T]{
		cons: cons,
		data: make([]T, 0, capacity),
		cap:  capacity,
	}
}

// fill blocks until a full batch is popped from src. When src times out it
// takes whatever is queued instead so that slow producers still get flushed.
func (s *stripe[T]) fill(src Source[T]) error {
	var err error
	s.data, err = src.PopBatch(s.data, s.cap, true)
	if errors.Is(err, queue.ErrTimeout) {
		return s.fillAvailable(src)
	}
	return err
}

// fillAvailable takes whatever is queued, up to the free room in the stripe,
// in one non-blocking pop. A pop that loses a race with another worker is
// retried against the new size.
func (s *stripe[T]) fillAvailable(src Source[T]) error {
	for {
		n := min(src.Size(), s.cap-len(s.data))
		if n <= 0 {
			return nil
		}

		var err error
		s.data, err = src.PopBatch(s.data, n, false)
		if errors.Is(err, queue.ErrInsufficientElements) {
			continue
		}
		return err
	}
}

// empty reports whether nothing is buffered.
func (s *stripe[T]) empty() bool {
	return len(s.data) == 0
}

// flush hands the buffered items to the consumer.
func (s *stripe[T]) flush() error {
	if len(s.data) == 0 {
		return nil
	}

	err := s.cons.Consume(s.data)

	// The Consumer owns the passed slice, so start a fresh one.
	s.data = make([]T, 0, s.cap)
	return err
}

package queue

// Queue is a generic interface for unbounded FIFO queues.
//
// Every operation reports its outcome as an error: nil on success, otherwise
// one of ErrInterrupted, ErrTimeout or ErrInsufficientElements. A failed call
// never leaves the queue partially modified.
type Queue[T any] interface {
	// PushOne appends an item to the tail.
	PushOne(item T) error

	// PushBatch appends items to the tail, preserving their order.
	PushBatch(items ...T) error

	// PopOne removes and returns the head item.
	PopOne(blocking bool) (T, error)

	// PopBatch removes exactly count items from the head and appends them to dst.
	PopBatch(dst []T, count int, blocking bool) ([]T, error)

	// Front returns the head item without removing it.
	Front(blocking bool) (T, error)

	// FrontBatch appends copies of the first count items to dst without removing them.
	FrontBatch(dst []T, count int, blocking bool) ([]T, error)

	// Size returns the number of queued items.
	Size() int

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool

	// Clear drops every queued item.
	Clear()
}

package queue

import (
	"iter"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-blockingqueue/pkg/datastructs/buffer"
)

var _ Queue[int] = (*ConcurrentQueue[int])(nil)

// ConcurrentQueue is an unbounded, mutex-guarded FIFO queue with blocking
// pops, an optional wait timeout and cooperative interruption.
//
// Behavior:
//   - Pushes append at the tail and wake every waiter.
//   - Pops and peeks wait (when blocking) until enough elements are queued or
//     the queue is interrupted, then transfer all requested elements or none.
//   - Once interrupted, every push and pop fails with ErrInterrupted until
//     SetInterrupted(false) re-arms the queue.
//
// A ConcurrentQueue must be created with New or one of its siblings.
// Waiters must be woken and drained (Interrupt) before the queue is dropped.
type ConcurrentQueue[T any] struct {
	mu sync.Mutex

	// changed is closed and replaced on every broadcast; waiters select on
	// it so a wait can race the timeout timer.
	changed chan struct{}

	data        *buffer.Ring[T]
	interrupted bool
	timeout     time.Duration
	hasTimeout  bool

	logger *zap.Logger
	stats  counters
}

// New creates an empty queue.
func New[T any](opts ...Option) *ConcurrentQueue[T] {
	o := buildOptions(opts)
	return newQueue(buffer.NewRing[T](o.capacity), o)
}

// NewFilled creates a queue holding count copies of value.
func NewFilled[T any](count int, value T, opts ...Option) *ConcurrentQueue[T] {
	o := buildOptions(opts)
	data := buffer.NewRing[T](max(count, o.capacity))
	for range count {
		data.PushBack(value)
	}
	return newQueue(data, o)
}

// NewFromSlice creates a queue holding a copy of values in order.
func NewFromSlice[T any](values []T, opts ...Option) *ConcurrentQueue[T] {
	o := buildOptions(opts)
	data := buffer.NewRing[T](max(len(values), o.capacity))
	data.PushBackSlice(values)
	return newQueue(data, o)
}

// NewFromSeq creates a queue holding the values yielded by seq in order.
func NewFromSeq[T any](seq iter.Seq[T], opts ...Option) *ConcurrentQueue[T] {
	return NewFromSlice(slices.Collect(seq), opts...)
}

// NewMovedFrom creates a queue that takes over the contents and timeout of
// other, leaving other empty. The interrupt flag is not transferred.
//
// Construction is not safe against concurrent mutation of other; callers
// must serialise it with other producers and consumers.
func NewMovedFrom[T any](other *ConcurrentQueue[T]) *ConcurrentQueue[T] {
	other.mu.Lock()
	defer other.mu.Unlock()

	data := other.data
	other.data = buffer.NewRing[T](0)

	return newQueue(data, options{
		timeout:    other.timeout,
		hasTimeout: other.hasTimeout,
		logger:     other.logger,
	})
}

func newQueue[T any](data *buffer.Ring[T], o options) *ConcurrentQueue[T] {
	return &ConcurrentQueue[T]{
		changed:    make(chan struct{}),
		data:       data,
		timeout:    o.timeout,
		hasTimeout: o.hasTimeout,
		logger:     o.logger,
	}
}

// Clone returns a new queue holding a copy of the contents and timeout.
// The clone is not interrupted.
//
// Like NewMovedFrom, Clone must be serialised with concurrent mutation.
func (q *ConcurrentQueue[T]) Clone() *ConcurrentQueue[T] {
	q.mu.Lock()
	defer q.mu.Unlock()

	return newQueue(q.data.Clone(), options{
		timeout:    q.timeout,
		hasTimeout: q.hasTimeout,
		logger:     q.logger,
	})
}

// PushOne appends value to the tail.
func (q *ConcurrentQueue[T]) PushOne(value T) error {
	return q.push(1, func(data *buffer.Ring[T]) {
		data.PushBack(value)
	})
}

// PushBatch appends values to the tail in order. An empty batch is a no-op.
func (q *ConcurrentQueue[T]) PushBatch(values ...T) error {
	if len(values) == 0 {
		return nil
	}
	return q.push(len(values), func(data *buffer.Ring[T]) {
		data.PushBackSlice(values)
	})
}

// PushSeq appends the values yielded by seq in order.
// seq is drained before the lock is taken.
func (q *ConcurrentQueue[T]) PushSeq(seq iter.Seq[T]) error {
	return q.PushBatch(slices.Collect(seq)...)
}

// push runs insert under the lock unless interrupted, then wakes all waiters.
func (q *ConcurrentQueue[T]) push(n int, insert func(*buffer.Ring[T])) error {
	q.mu.Lock()
	if q.interrupted {
		q.mu.Unlock()
		q.stats.interrupted.Add(1)
		return ErrInterrupted
	}

	insert(q.data)
	q.broadcastLocked()
	q.mu.Unlock()

	q.stats.pushed.Add(uint64(n))
	return nil
}

// PopOne removes and returns the head element.
func (q *ConcurrentQueue[T]) PopOne(blocking bool) (T, error) {
	v, err := q.one(blocking, true)
	q.observe("pop", 1, err, true)
	return v, err
}

// PopBatch removes exactly count elements from the head and appends them to
// dst in order. On failure dst is returned unchanged and nothing is removed.
// A count <= 0 succeeds immediately.
func (q *ConcurrentQueue[T]) PopBatch(dst []T, count int, blocking bool) ([]T, error) {
	if count <= 0 {
		return dst, nil
	}
	dst, err := q.batch(dst, count, blocking, true)
	q.observe("pop_batch", count, err, true)
	return dst, err
}

// Front returns a copy of the head element without removing it.
func (q *ConcurrentQueue[T]) Front(blocking bool) (T, error) {
	v, err := q.one(blocking, false)
	q.observe("front", 1, err, false)
	return v, err
}

// FrontBatch appends copies of the first count elements to dst without
// removing them. On failure dst is returned unchanged.
// A count <= 0 succeeds immediately.
func (q *ConcurrentQueue[T]) FrontBatch(dst []T, count int, blocking bool) ([]T, error) {
	if count <= 0 {
		return dst, nil
	}
	dst, err := q.batch(dst, count, blocking, false)
	q.observe("front_batch", count, err, false)
	return dst, err
}

func (q *ConcurrentQueue[T]) one(blocking, consume bool) (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.acquireLocked(1, blocking); err != nil {
		var zero T
		return zero, err
	}

	if consume {
		v, _ := q.data.PopFront()
		return v, nil
	}
	v, _ := q.data.Front()
	return v, nil
}

func (q *ConcurrentQueue[T]) batch(dst []T, count int, blocking, consume bool) ([]T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.acquireLocked(count, blocking); err != nil {
		return dst, err
	}

	if consume {
		return q.data.PopFrontInto(dst, count), nil
	}
	return q.data.AppendFront(dst, count), nil
}

// acquireLocked waits (when blocking) for need elements and checks that they
// can be extracted. On nil the caller may take exactly need elements before
// releasing the lock.
func (q *ConcurrentQueue[T]) acquireLocked(need int, blocking bool) error {
	if blocking {
		if err := q.waitLocked(need); err != nil {
			return err
		}
	}

	if q.interrupted {
		return ErrInterrupted
	}
	if q.data.Len() < need {
		return ErrInsufficientElements
	}
	return nil
}

// waitLocked parks until need elements are queued or the queue is
// interrupted. With a timeout configured, the deadline is measured from the
// start of the wait and the predicate is checked one last time once it passes.
// The lock is released while parked and held again on return.
func (q *ConcurrentQueue[T]) waitLocked(need int) error {
	if q.readyLocked(need) {
		return nil
	}

	var deadline <-chan time.Time
	if q.hasTimeout {
		timer := time.NewTimer(q.timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for !q.readyLocked(need) {
		changed := q.changed
		q.mu.Unlock()

		select {
		case <-changed:
			q.mu.Lock()
		case <-deadline:
			q.mu.Lock()
			if q.readyLocked(need) {
				return nil
			}
			return ErrTimeout
		}
	}
	return nil
}

func (q *ConcurrentQueue[T]) readyLocked(need int) bool {
	return q.interrupted || q.data.Len() >= need
}

// broadcastLocked wakes every goroutine parked in waitLocked.
func (q *ConcurrentQueue[T]) broadcastLocked() {
	close(q.changed)
	q.changed = make(chan struct{})
}

// observe updates the counters and logs timeouts. Called without the lock.
func (q *ConcurrentQueue[T]) observe(op string, n int, err error, consume bool) {
	q.stats.record(err, n, consume)
	if err == ErrTimeout {
		q.logger.Debug("queue wait timed out",
			zap.String("op", op),
			zap.Int("count", n),
		)
	}
}

// SetTimeout bounds every subsequent blocking wait to d.
// A negative d is treated as zero, which turns waits into a single re-check.
func (q *ConcurrentQueue[T]) SetTimeout(d time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.timeout = max(d, 0)
	q.hasTimeout = true
}

// ClearTimeout makes blocking waits indefinite again.
func (q *ConcurrentQueue[T]) ClearTimeout() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.timeout = 0
	q.hasTimeout = false
}

// Timeout returns the configured wait timeout and whether one is set.
func (q *ConcurrentQueue[T]) Timeout() (time.Duration, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.timeout, q.hasTimeout
}

// SetInterrupted sets or clears the interrupt flag and wakes every waiter so
// that blocked pops observe the change promptly.
func (q *ConcurrentQueue[T]) SetInterrupted(flag bool) {
	q.mu.Lock()
	q.interrupted = flag
	q.broadcastLocked()
	q.mu.Unlock()

	q.logger.Debug("queue interrupt flag changed", zap.Bool("interrupted", flag))
}

// Interrupt is shorthand for SetInterrupted(true).
func (q *ConcurrentQueue[T]) Interrupt() {
	q.SetInterrupted(true)
}

// IsInterrupted reports whether the queue is interrupted.
func (q *ConcurrentQueue[T]) IsInterrupted() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.interrupted
}

// Size returns the number of queued elements.
func (q *ConcurrentQueue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.data.Len()
}

// IsEmpty reports whether the queue holds no elements.
func (q *ConcurrentQueue[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.data.IsEmpty()
}

// Clear drops every queued element. The interrupt flag is left as is.
func (q *ConcurrentQueue[T]) Clear() {
	q.mu.Lock()
	dropped := q.data.Len()
	q.data.Reset()
	retained := q.data.Cap()
	q.mu.Unlock()

	q.logger.Debug("queue cleared",
		zap.Int("dropped", dropped),
		zap.Int("capacity", retained),
	)
}

// Snapshot appends a copy of every queued element, front to back, to dst.
// It never blocks and ignores the interrupt flag.
func (q *ConcurrentQueue[T]) Snapshot(dst []T) []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.AppendSeq(dst, q.data.All())
}

// Stats returns a snapshot of the operation counters.
func (q *ConcurrentQueue[T]) Stats() Stats {
	return q.stats.snapshot()
}

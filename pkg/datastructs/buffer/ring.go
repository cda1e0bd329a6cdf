package buffer

import (
	"iter"

	"github.com/huynhanx03/go-blockingqueue/pkg/utils"
)

// Ring is a growable circular buffer of elements kept in insertion order.
// Capacity is always zero or a power of two so indices wrap with a mask.
//
// Ring is NOT thread-safe. Callers are expected to guard it with their own lock.
type Ring[T any] struct {
	buf     []T
	readPos int // index of the front element
	size    int // number of buffered elements
}

// NewRing creates a new Ring with the given initial capacity.
// The capacity will be rounded up to the nearest power of two.
// A capacity <= 0 defers allocation to the first write.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		return &Ring[T]{}
	}
	return &Ring[T]{buf: make([]T, utils.CeilToPowerOfTwo(capacity))}
}

// PushBack appends v at the tail, growing if necessary.
func (r *Ring[T]) PushBack(v T) {
	if r.size == len(r.buf) {
		r.grow(r.size + 1)
	}
	r.buf[r.wrapIndex(r.readPos+r.size)] = v
	r.size++
}

// PushBackSlice appends vs at the tail preserving their order.
func (r *Ring[T]) PushBackSlice(vs []T) {
	if len(vs) == 0 {
		return
	}
	if free := len(r.buf) - r.size; len(vs) > free {
		r.grow(r.size + len(vs))
	}

	writePos := r.wrapIndex(r.readPos + r.size)
	n := copy(r.buf[writePos:], vs)
	if n < len(vs) {
		// Wrap-around case
		copy(r.buf, vs[n:])
	}
	r.size += len(vs)
}

// Front returns the front element without removing it.
func (r *Ring[T]) Front() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.readPos], true
}

// PopFront removes and returns the front element.
func (r *Ring[T]) PopFront() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}

	v := r.buf[r.readPos]
	r.buf[r.readPos] = zero
	r.readPos = r.wrapIndex(r.readPos + 1)
	r.size--
	if r.size == 0 {
		r.readPos = 0
	}
	return v, true
}

// AppendFront appends copies of the first n elements to dst and returns the
// extended slice. The ring is left untouched. n is clamped to Len().
func (r *Ring[T]) AppendFront(dst []T, n int) []T {
	head, tail := r.peek(n)
	dst = append(dst, head...)
	return append(dst, tail...)
}

// PopFrontInto moves the first n elements to dst and returns the extended
// slice. Vacated slots are zeroed so the ring does not retain references.
// n is clamped to Len().
func (r *Ring[T]) PopFrontInto(dst []T, n int) []T {
	head, tail := r.peek(n)
	dst = append(dst, head...)
	dst = append(dst, tail...)

	clear(head)
	clear(tail)

	moved := len(head) + len(tail)
	r.readPos = r.wrapIndex(r.readPos + moved)
	r.size -= moved
	if r.size == 0 {
		r.readPos = 0
	}
	return dst
}

// peek returns the first n elements as up to two slices of the backing array.
// Returns two slices to handle wrap-around case.
func (r *Ring[T]) peek(n int) (head, tail []T) {
	if n > r.size {
		n = r.size
	}
	if n <= 0 {
		return nil, nil
	}

	headLen := len(r.buf) - r.readPos
	if n <= headLen {
		return r.buf[r.readPos : r.readPos+n], nil
	}
	return r.buf[r.readPos:], r.buf[:n-headLen]
}

// Len returns the number of buffered elements.
func (r *Ring[T]) Len() int {
	return r.size
}

// Cap returns the capacity of the backing array.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// IsEmpty returns true if the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.size == 0
}

// Reset drops all elements but keeps the backing array.
func (r *Ring[T]) Reset() {
	head, tail := r.peek(r.size)
	clear(head)
	clear(tail)
	r.readPos = 0
	r.size = 0
}

// Clone returns a copy of the ring with its own backing array.
func (r *Ring[T]) Clone() *Ring[T] {
	c := &Ring[T]{}
	if r.size == 0 {
		return c
	}
	c.buf = make([]T, utils.CeilToPowerOfTwo(r.size))
	c.buf = r.AppendFront(c.buf[:0], r.size)[:len(c.buf)]
	c.size = r.size
	return c
}

// All yields the buffered elements front to back.
// The ring must not be mutated during iteration.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.size {
			if !yield(r.buf[r.wrapIndex(r.readPos+i)]) {
				return
			}
		}
	}
}

// wrapIndex returns the index wrapped within buffer capacity.
func (r *Ring[T]) wrapIndex(idx int) int {
	return idx & (len(r.buf) - 1)
}

// grow expands the buffer to hold at least minCap elements, unwrapping the
// contents so the front lands at index 0.
func (r *Ring[T]) grow(minCap int) {
	newBuf := make([]T, utils.GrowCapacity(len(r.buf), minCap))
	r.AppendFront(newBuf[:0], r.size)

	r.buf = newBuf
	r.readPos = 0
}

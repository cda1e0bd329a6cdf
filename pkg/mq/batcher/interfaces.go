package batcher

import "github.com/huynhanx03/go-blockingqueue/pkg/settings"

// Consumer is the interface that must be implemented by users of the Drainer.
// It is responsible for processing a batch of items.
type Consumer[T any] interface {
	// Consume processes a batch of items. The batch is owned by the Consumer.
	// Returns an error if processing fails; the Drainer then stops.
	Consume(batch []T) error
}

// ConsumerFunc adapts a plain function to the Consumer interface.
type ConsumerFunc[T any] func(batch []T) error

// Consume calls f(batch).
func (f ConsumerFunc[T]) Consume(batch []T) error { return f(batch) }

// Source is the subset of queue.ConcurrentQueue the Drainer pops from.
type Source[T any] interface {
	PopBatch(dst []T, count int, blocking bool) ([]T, error)
	Size() int
}

// Interrupter is implemented by sources that can be woken for shutdown.
type Interrupter interface {
	Interrupt()
}

// Config holds configuration for the Drainer.
type Config struct {
	// BatchSize is the number of items a worker waits for before calling the
	// Consumer. Smaller batches are flushed when the source times out.
	BatchSize int

	// Workers is the number of goroutines popping from the source.
	Workers int
}

// ConfigFromSettings builds a Config from the queue settings.
func ConfigFromSettings(cfg settings.Queue) Config {
	return Config{
		BatchSize: cfg.BatchSize,
		Workers:   cfg.Workers,
	}
}

package batcher

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-blockingqueue/pkg/datastructs/queue"
)

const defaultBatchSize = 512

// Drainer pops batches from a Source and hands them to a Consumer.
//
// Behavior:
//   - Workers goroutines each wait for BatchSize items and flush them.
//   - If the source has a timeout configured, a worker that times out flushes
//     whatever is queued (up to BatchSize) instead of waiting forever.
//   - A worker whose timed-out wait found nothing backs off before waiting
//     again, so a short or zero source timeout does not spin.
//   - Run returns once the source is interrupted. Items a worker already
//     popped are flushed first; items still queued stay in the source.
//   - A Consumer error stops every worker and is returned from Run.
type Drainer[T any] struct {
	src    Source[T]
	cons   Consumer[T]
	cfg    Config
	logger *zap.Logger
}

// Option configures a Drainer.
type Option func(*drainerOptions)

type drainerOptions struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for worker lifecycle and failures.
func WithLogger(l *zap.Logger) Option {
	return func(o *drainerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a new Drainer for type T.
func New[T any](src Source[T], cons Consumer[T], cfg Config, opts ...Option) *Drainer[T] {
	// Default config
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	o := drainerOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Drainer[T]{
		src:    src,
		cons:   cons,
		cfg:    cfg,
		logger: o.logger,
	}
}

// Run drains the source until it is interrupted or a Consumer fails.
//
// When ctx is cancelled, or a Consumer fails, the source is interrupted if it
// implements Interrupter so that parked workers return. Note that this
// interrupts the source for every other user as well. Run does not touch the
// source once it has returned, so callers may re-arm it afterwards.
func (d *Drainer[T]) Run(ctx context.Context) error {
	if in, ok := d.src.(Interrupter); ok {
		fired := make(chan struct{})
		stop := context.AfterFunc(ctx, func() {
			defer close(fired)
			in.Interrupt()
		})
		defer func() {
			if !stop() {
				<-fired
			}
		}()
	}

	var g errgroup.Group
	for id := range d.cfg.Workers {
		g.Go(func() error {
			err := d.work(ctx, id)
			if err != nil {
				d.interrupt()
			}
			return err
		})
	}

	return g.Wait()
}

// interrupt wakes the other workers after a failure.
func (d *Drainer[T]) interrupt() {
	if in, ok := d.src.(Interrupter); ok {
		in.Interrupt()
	}
}

func (d *Drainer[T]) work(ctx context.Context, id int) error {
	log := d.logger.With(zap.Int("worker", id))
	log.Debug("drainer worker started", zap.Int("batch_size", d.cfg.BatchSize))

	s := newStripe(d.cons, d.cfg.BatchSize)
	idle := newIdleBackoff()
	for {
		fillErr := s.fill(d.src)
		if fillErr != nil && !errors.Is(fillErr, queue.ErrInterrupted) {
			log.Error("drainer worker failed to pop", zap.Error(fillErr))
			return errors.Wrapf(fillErr, "worker %d: pop", id)
		}

		if fillErr == nil && s.empty() {
			// Timed out with nothing queued.
			idle.wait(ctx)
			continue
		}
		idle.reset()

		if err := s.flush(); err != nil {
			log.Error("drainer consumer failed", zap.Error(err))
			return errors.Wrapf(err, "worker %d: consume", id)
		}

		if fillErr != nil {
			log.Debug("drainer worker stopped")
			return nil
		}
	}
}

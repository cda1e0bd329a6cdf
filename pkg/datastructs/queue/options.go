package queue

import (
	"time"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-blockingqueue/pkg/settings"
)

type options struct {
	capacity   int
	timeout    time.Duration
	hasTimeout bool
	logger     *zap.Logger
}

// Option configures a ConcurrentQueue at construction.
type Option func(*options)

// WithTimeout bounds every blocking wait to d.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = max(d, 0)
		o.hasTimeout = true
	}
}

// WithCapacity preallocates room for n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the logger used for interrupt and timeout events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConfig applies the capacity and timeout of cfg.
func WithConfig(cfg settings.Queue) Option {
	return func(o *options) {
		o.capacity = cfg.InitialCapacity
		o.timeout, o.hasTimeout = cfg.Timeout()
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

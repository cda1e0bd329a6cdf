package queue

import "sync/atomic"

// Stats is a point-in-time snapshot of a queue's operation counters.
// Counters only ever grow.
type Stats struct {
	Pushed       uint64 // elements appended
	Popped       uint64 // elements removed by PopOne/PopBatch
	Peeked       uint64 // elements copied by Front/FrontBatch
	Interrupted  uint64 // calls that returned ErrInterrupted
	TimedOut     uint64 // calls that returned ErrTimeout
	Insufficient uint64 // calls that returned ErrInsufficientElements
}

type counters struct {
	pushed       atomic.Uint64
	popped       atomic.Uint64
	peeked       atomic.Uint64
	interrupted  atomic.Uint64
	timedOut     atomic.Uint64
	insufficient atomic.Uint64
}

// record accounts for the outcome of one call that moved n elements on success.
func (c *counters) record(err error, n int, consume bool) {
	switch err {
	case nil:
		if consume {
			c.popped.Add(uint64(n))
		} else {
			c.peeked.Add(uint64(n))
		}
	case ErrInterrupted:
		c.interrupted.Add(1)
	case ErrTimeout:
		c.timedOut.Add(1)
	case ErrInsufficientElements:
		c.insufficient.Add(1)
	}
}

func (c *counters) snapshot() Stats {
	return Stats{
		Pushed:       c.pushed.Load(),
		Popped:       c.popped.Load(),
		Peeked:       c.peeked.Load(),
		Interrupted:  c.interrupted.Load(),
		TimedOut:     c.timedOut.Load(),
		Insufficient: c.insufficient.Load(),
	}
}

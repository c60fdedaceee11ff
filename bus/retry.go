package bus

import (
	"context"
	"errors"
	"time"
)

// Policy bounds the busy-retry loop of a Retrier. The zero Policy retries
// immediately and without limit, which only suits a caller with nothing
// else to do on a bus known to recover.
type Policy struct {
	MaxAttempts int           // Attempts per primitive; 0 for unbounded.
	Interval    time.Duration // Pause between attempts; 0 to spin.
	Timeout     time.Duration // Time budget per primitive; 0 for none.
}

// Stats counts primitive attempts, by Op.
type Stats struct {
	Attempts [OP_COUNT]int // Every attempt, successful or not.
	Busy     [OP_COUNT]int // Attempts that reported busy.
}

// Retries is the total number of busy attempts across all primitives.
func (st *Stats) Retries() (count int) {
	for _, n := range st.Busy {
		count += n
	}
	return
}

// Retrier wraps each primitive of a Bus in a retry loop. Callers only see
// success, a permanent failure, or (for a bounded Policy) ErrBusTimeout.
type Retrier struct {
	Bus    Bus
	Policy Policy
	Stats  Stats
}

// NewRetrier creates a Retrier for a bus.
func NewRetrier(b Bus, policy Policy) *Retrier {
	return &Retrier{Bus: b, Policy: policy}
}

func (rt *Retrier) retry(ctx context.Context, op Op, attempt func() error) (err error) {
	var deadline time.Time
	if rt.Policy.Timeout > 0 {
		deadline = time.Now().Add(rt.Policy.Timeout)
	}

	for n := 1; ; n++ {
		rt.Stats.Attempts[op]++
		err = attempt()
		if err == nil {
			return
		}
		if !errors.Is(err, ErrBusy) {
			err = &ErrTransfer{Op: op, Err: err}
			return
		}
		rt.Stats.Busy[op]++

		if rt.Policy.MaxAttempts > 0 && n >= rt.Policy.MaxAttempts {
			err = &ErrTransfer{Op: op, Err: ErrBusTimeout}
			return
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			err = &ErrTransfer{Op: op, Err: ErrBusTimeout}
			return
		}

		if rt.Policy.Interval > 0 {
			timer := time.NewTimer(rt.Policy.Interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				err = &ErrTransfer{Op: op, Err: ctx.Err()}
				return
			case <-timer.C:
			}
		} else if ctx.Err() != nil {
			err = &ErrTransfer{Op: op, Err: ctx.Err()}
			return
		}
	}
}

// Begin issues a start condition and the selector byte.
func (rt *Retrier) Begin(ctx context.Context, selector byte) error {
	return rt.retry(ctx, OP_START, func() error {
		return rt.Bus.Start(selector)
	})
}

// Send writes a single byte.
func (rt *Retrier) Send(ctx context.Context, value byte) error {
	return rt.retry(ctx, OP_WRITE, func() error {
		return rt.Bus.Send(value)
	})
}

// ReceiveAck reads a byte and acknowledges it; more are to follow.
func (rt *Retrier) ReceiveAck(ctx context.Context) (value byte, err error) {
	err = rt.retry(ctx, OP_READ_ACK, func() (err error) {
		value, err = rt.Bus.Receive(true)
		return
	})
	return
}

// ReceiveNack reads the final byte of a transfer and withholds the
// acknowledge, which ends the transfer.
func (rt *Retrier) ReceiveNack(ctx context.Context) (value byte, err error) {
	err = rt.retry(ctx, OP_READ_NACK, func() (err error) {
		value, err = rt.Bus.Receive(false)
		return
	})
	return
}

// End issues a stop condition.
func (rt *Retrier) End(ctx context.Context) error {
	return rt.retry(ctx, OP_STOP, func() error {
		return rt.Bus.Stop()
	})
}

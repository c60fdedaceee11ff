package bus

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// flaky is a Bus that reports busy a set number of times per primitive
// before succeeding.
type flaky struct {
	busy   int
	fail   error
	calls  int
	reads  []byte
	writes []byte
	starts []byte
	stops  int
	acks   []bool
}

func (fb *flaky) attempt() error {
	fb.calls++
	if fb.fail != nil {
		return fb.fail
	}
	if fb.busy > 0 {
		fb.busy--
		return fmt.Errorf("arbitration: %w", ErrBusy)
	}
	return nil
}

func (fb *flaky) Start(selector byte) (err error) {
	err = fb.attempt()
	if err == nil {
		fb.starts = append(fb.starts, selector)
	}
	return
}

func (fb *flaky) Send(value byte) (err error) {
	err = fb.attempt()
	if err == nil {
		fb.writes = append(fb.writes, value)
	}
	return
}

func (fb *flaky) Receive(ack bool) (value byte, err error) {
	err = fb.attempt()
	if err == nil {
		value = fb.reads[0]
		fb.reads = fb.reads[1:]
		fb.acks = append(fb.acks, ack)
	}
	return
}

func (fb *flaky) Stop() (err error) {
	err = fb.attempt()
	if err == nil {
		fb.stops++
	}
	return
}

func TestRetrier_Unbounded(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	fb := &flaky{busy: 1000, reads: []byte{0x12, 0x34}}
	rt := NewRetrier(fb, Policy{})

	err := rt.Begin(ctx, 0xa0)
	assert.NoError(err)
	assert.Equal([]byte{0xa0}, fb.starts)
	assert.Equal(1001, rt.Stats.Attempts[OP_START])
	assert.Equal(1000, rt.Stats.Busy[OP_START])

	fb.busy = 3
	err = rt.Send(ctx, 0x55)
	assert.NoError(err)
	assert.Equal([]byte{0x55}, fb.writes)

	fb.busy = 2
	value, err := rt.ReceiveAck(ctx)
	assert.NoError(err)
	assert.Equal(byte(0x12), value)

	value, err = rt.ReceiveNack(ctx)
	assert.NoError(err)
	assert.Equal(byte(0x34), value)
	assert.Equal([]bool{true, false}, fb.acks)

	fb.busy = 7
	err = rt.End(ctx)
	assert.NoError(err)
	assert.Equal(1, fb.stops)

	assert.Equal(1000+3+2+7, rt.Stats.Retries())
}

func TestRetrier_MaxAttempts(t *testing.T) {
	assert := assert.New(t)

	fb := &flaky{busy: 10}
	rt := NewRetrier(fb, Policy{MaxAttempts: 4})

	err := rt.Send(context.Background(), 0x01)
	assert.ErrorIs(err, ErrBusTimeout)
	assert.Equal(4, fb.calls)
	assert.Empty(fb.writes)

	var transfer *ErrTransfer
	assert.True(errors.As(err, &transfer))
	assert.Equal(OP_WRITE, transfer.Op)

	// Succeeds on the last allowed attempt.
	fb.busy = 3
	fb.calls = 0
	err = rt.Send(context.Background(), 0x02)
	assert.NoError(err)
	assert.Equal(4, fb.calls)
}

func TestRetrier_Timeout(t *testing.T) {
	assert := assert.New(t)

	fb := &flaky{busy: 1 << 30}
	rt := NewRetrier(fb, Policy{Timeout: 5 * time.Millisecond, Interval: time.Millisecond})

	err := rt.Begin(context.Background(), 0xa0)
	assert.ErrorIs(err, ErrBusTimeout)
	assert.Greater(fb.calls, 1)
}

func TestRetrier_Cancel(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fb := &flaky{busy: 1 << 30}
	rt := NewRetrier(fb, Policy{})
	err := rt.Begin(ctx, 0xa0)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(1, fb.calls)

	fb.calls = 0
	rt.Policy.Interval = time.Hour
	err = rt.End(ctx)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(1, fb.calls)
}

func TestRetrier_Permanent(t *testing.T) {
	assert := assert.New(t)

	fb := &flaky{fail: ErrNoAck}
	rt := NewRetrier(fb, Policy{})

	_, err := rt.ReceiveAck(context.Background())
	assert.ErrorIs(err, ErrNoAck)
	assert.NotErrorIs(err, ErrBusy)
	assert.Equal(1, fb.calls)
	assert.Equal(0, rt.Stats.Retries())
}

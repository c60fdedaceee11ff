package bus

import (
	"fmt"
	"log"
)

// Item is one primitive attempt seen by a Recorder.
type Item struct {
	Op    Op
	Value byte  // Selector for start, byte written or read.
	Err   error // Result of the attempt.
}

func (it Item) String() string {
	var text string
	switch it.Op {
	case OP_STOP:
		text = it.Op.String()
	default:
		text = fmt.Sprintf("%v 0x%02x", it.Op, it.Value)
	}
	if it.Err != nil {
		text += fmt.Sprintf(" > %v", it.Err)
	}
	return text
}

// Recorder is a Bus that logs every primitive passed to the Bus it wraps.
type Recorder struct {
	Verbose bool // If set, each primitive is written to the log.
	Bus     Bus
	Log     []Item
}

var _ Bus = (*Recorder)(nil)

func (rec *Recorder) record(item Item) {
	rec.Log = append(rec.Log, item)
	if rec.Verbose {
		log.Printf("bus: %v", item)
	}
}

// Reset forgets all recorded items.
func (rec *Recorder) Reset() {
	rec.Log = nil
}

func (rec *Recorder) Start(selector byte) (err error) {
	err = rec.Bus.Start(selector)
	rec.record(Item{Op: OP_START, Value: selector, Err: err})
	return
}

func (rec *Recorder) Send(value byte) (err error) {
	err = rec.Bus.Send(value)
	rec.record(Item{Op: OP_WRITE, Value: value, Err: err})
	return
}

func (rec *Recorder) Receive(ack bool) (value byte, err error) {
	value, err = rec.Bus.Receive(ack)
	op := OP_READ_ACK
	if !ack {
		op = OP_READ_NACK
	}
	rec.record(Item{Op: op, Value: value, Err: err})
	return
}

func (rec *Recorder) Stop() (err error) {
	err = rec.Bus.Stop()
	rec.record(Item{Op: OP_STOP, Err: err})
	return
}

// Successful returns the recorded items that completed, dropping retried
// attempts.
func (rec *Recorder) Successful() (items []Item) {
	for _, item := range rec.Log {
		if item.Err == nil {
			items = append(items, item)
		}
	}
	return
}

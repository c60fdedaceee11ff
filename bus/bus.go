// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package bus drives the elementary operations of a two-wire (I2C)
// serial bus, and retries them while the bus or its target reports busy.
package bus

// Bus is a single-attempt bus peripheral. Each call either completes,
// reports a transient condition wrapping ErrBusy, or fails permanently.
type Bus interface {
	// Start issues a start (or repeated start) condition followed by the
	// selector byte, and checks for the target's acknowledge.
	Start(selector byte) error
	// Send clocks out one byte and checks for the acknowledge.
	Send(value byte) error
	// Receive clocks in one byte. When ack is false the byte is not
	// acknowledged, which ends the transfer and releases the bus.
	Receive(ack bool) (value byte, err error)
	// Stop issues a stop condition.
	Stop() error
}

// Op names a bus primitive.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_START     = Op(0) // start
	OP_WRITE     = Op(1) // write
	OP_READ_ACK  = Op(2) // read-ack
	OP_READ_NACK = Op(3) // read-nack
	OP_STOP      = Op(4) // stop

	OP_COUNT = 5
)

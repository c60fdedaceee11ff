// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package sim simulates a 24xx serial EEPROM at the bus primitive level.
package sim

import (
	"fmt"
	"io"
	"os"

	"github.com/ezrec/i2ceeprom/bus"
	"github.com/ezrec/i2ceeprom/eeprom"
)

// ERASED is the value of an unprogrammed cell.
const ERASED = 0xff

type state int

const (
	stateIdle     state = iota // Bus released.
	stateAddrHigh              // Selected for write, expecting address high byte.
	stateAddrLow               // Expecting address low byte.
	stateWrite                 // Latching data bytes into the page buffer.
	stateRead                  // Driving data bytes.
)

var stateNames = [...]string{"idle", "address high", "address low", "writing", "reading"}

func (st state) String() string {
	return stateNames[st]
}

type latch struct {
	address int
	value   byte
}

// EEPROM is a simulated device on a private bus. It implements bus.Bus.
type EEPROM struct {
	Addr       bus.Addr7
	Geometry   eeprom.Geometry
	WriteCycle int // Start attempts refused after each committed page write.

	// Busy, if set, is consulted before every primitive; returning true
	// reports a transient bus busy without side effect.
	Busy func(op bus.Op) bool

	Data    []byte
	Commits int // Number of committed page writes.

	state    state
	cursor   int     // Internal address counter.
	pageBase int     // Page the write latch is bound to.
	latched  []latch // Bytes waiting for the stop condition.
	acked    bool    // Last byte read was acknowledged.
	cycle    int     // Remaining refused starts.
}

var _ bus.Bus = (*EEPROM)(nil)

// NewEEPROM creates an erased device.
func NewEEPROM(addr bus.Addr7, geom eeprom.Geometry) (dev *EEPROM) {
	dev = &EEPROM{
		Addr:     addr,
		Geometry: geom,
	}
	dev.Erase()
	return
}

// Erase sets every cell to ERASED and releases the bus.
func (dev *EEPROM) Erase() {
	if len(dev.Data) != dev.Geometry.Capacity {
		dev.Data = make([]byte, dev.Geometry.Capacity)
	}
	for n := range dev.Data {
		dev.Data[n] = ERASED
	}
	dev.Reset()
}

// Reset returns the bus interface to idle, dropping any latched write.
func (dev *EEPROM) Reset() {
	dev.state = stateIdle
	dev.latched = nil
	dev.acked = false
	dev.cycle = 0
}

func (dev *EEPROM) busy(op bus.Op) bool {
	return dev.Busy != nil && dev.Busy(op)
}

func (dev *EEPROM) violation(op bus.Op) error {
	return &ErrState{Op: op.String(), State: dev.state.String()}
}

// Start handles a start or repeated start and the selector byte.
func (dev *EEPROM) Start(selector byte) (err error) {
	if dev.busy(bus.OP_START) {
		return bus.ErrBusy
	}

	if dev.state == stateRead && dev.acked {
		// The device still drives the data line.
		return dev.violation(bus.OP_START)
	}

	if dev.cycle > 0 {
		dev.cycle--
		return fmt.Errorf("%w: %w", bus.ErrBusy, ErrWriteCycle)
	}

	if selector>>1 != dev.Addr.WriteSelector()>>1 {
		dev.state = stateIdle
		return ErrNoDevice
	}

	// A repeated start abandons any latched bytes.
	dev.latched = nil
	dev.acked = false

	if selector&1 == 1 {
		dev.state = stateRead
	} else {
		dev.state = stateAddrHigh
	}

	return
}

// Send handles an address or data byte written by the master.
func (dev *EEPROM) Send(value byte) (err error) {
	if dev.busy(bus.OP_WRITE) {
		return bus.ErrBusy
	}

	switch dev.state {
	case stateAddrHigh:
		dev.cursor = int(value) << 8
		dev.state = stateAddrLow
	case stateAddrLow:
		dev.cursor = (dev.cursor | int(value)) % dev.Geometry.Capacity
		dev.pageBase = dev.cursor - dev.cursor%dev.Geometry.PageSize
		dev.state = stateWrite
	case stateWrite:
		// The address counter rolls over within the page.
		dev.latched = append(dev.latched, latch{address: dev.cursor, value: value})
		offset := (dev.cursor + 1 - dev.pageBase) % dev.Geometry.PageSize
		dev.cursor = dev.pageBase + offset
	default:
		err = dev.violation(bus.OP_WRITE)
	}

	return
}

// Receive drives the byte at the address counter onto the bus.
func (dev *EEPROM) Receive(ack bool) (value byte, err error) {
	op := bus.OP_READ_ACK
	if !ack {
		op = bus.OP_READ_NACK
	}

	if dev.busy(op) {
		err = bus.ErrBusy
		return
	}

	if dev.state != stateRead {
		err = dev.violation(op)
		return
	}

	value = dev.Data[dev.cursor]
	dev.cursor = (dev.cursor + 1) % dev.Geometry.Capacity

	dev.acked = ack
	if !ack {
		dev.state = stateIdle
	}

	return
}

// Stop ends the transfer, committing any latched bytes.
func (dev *EEPROM) Stop() (err error) {
	if dev.busy(bus.OP_STOP) {
		return bus.ErrBusy
	}

	switch dev.state {
	case stateIdle:
		err = dev.violation(bus.OP_STOP)
		return
	case stateRead:
		if dev.acked {
			err = dev.violation(bus.OP_STOP)
			return
		}
	case stateWrite:
		if len(dev.latched) > 0 {
			for _, l := range dev.latched {
				dev.Data[l.address] = l.value
			}
			dev.Commits++
			dev.cycle = dev.WriteCycle
		}
	}

	dev.latched = nil
	dev.state = stateIdle

	return
}

// Unmarshal loads the memory array from an image. A short image leaves the
// remaining cells erased.
func (dev *EEPROM) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(io.LimitReader(file, int64(dev.Geometry.Capacity)+1))
	if err != nil {
		return
	}
	if len(data) > dev.Geometry.Capacity {
		err = ErrImageSize
		return
	}

	dev.Erase()
	copy(dev.Data, data)

	return
}

// Marshal writes the memory array as an image.
func (dev *EEPROM) Marshal(file io.Writer) (err error) {
	_, err = file.Write(dev.Data)

	return
}

// Load reads the memory array from an image file. A missing file leaves the
// device erased.
func (dev *EEPROM) Load(path string) (err error) {
	inf, err := os.Open(path)
	if os.IsNotExist(err) {
		dev.Erase()
		err = nil
		return
	}
	if err != nil {
		return
	}
	defer inf.Close()

	err = dev.Unmarshal(inf)
	return
}

// Save writes the memory array to an image file.
func (dev *EEPROM) Save(path string) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = dev.Marshal(ouf)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()
	return
}
